package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/localnerve/goldphotos/internal/database"
	"github.com/localnerve/goldphotos/internal/docstore"
	"github.com/localnerve/goldphotos/internal/repository"
	"github.com/localnerve/goldphotos/internal/testenv"
	"github.com/sirupsen/logrus"
)

func main() {
	var showHelp bool
	var envFilename, dbType, proceduresPath string
	flag.BoolVar(&showHelp, "h", false, "show help")
	flag.StringVar(&envFilename, "f", "", "path to the .env file")
	flag.StringVar(&dbType, "t", "", "database type (mysql, postgres, sqlserver), default $DB_TYPE or mysql")
	flag.StringVar(&proceduresPath, "p", "", "procedure manifest directory, default embedded")
	flag.Parse()

	usage := `
Start a disposable goldphotos database container, provision the document store
and print the environment to reach it. Ctrl-C terminates the container.

Usage:

devdb [-h] [-f ENV_FILE_PATH] [-t DB_TYPE] [-p PROCEDURES_PATH]

example
  devdb -t postgres
`
	if showHelp {
		fmt.Println(usage)
		return
	}

	if envFilename != "" {
		logrus.Infof("Loading environment variables from %s", envFilename)
		if err := godotenv.Load(envFilename); err != nil {
			logrus.Fatalf("Failed to load environment variables: %v", err)
		}
	}
	if dbType == "" {
		dbType = os.Getenv("DB_TYPE")
	}
	if dbType == "" {
		dbType = "mysql"
	}

	ctx := context.Background()
	container, err := testenv.StartDatabase(ctx, dbType)
	if err != nil {
		logrus.Fatalf("Failed to start database container: %v", err)
	}
	defer func() {
		if err := container.Terminate(context.Background()); err != nil {
			logrus.Errorf("Failed to terminate database container: %v", err)
		}
	}()

	cfg := container.Config()
	if err := provision(ctx, cfg.DocstoreDatabase, proceduresPath, container); err != nil {
		logrus.Errorf("Failed to provision document store: %v", err)
		return
	}

	fmt.Printf("DB_TYPE=%s\nDB_HOST=%s\nDB_PORT=%s\nDB_APP_DATABASE=%s\nDB_APP_USER=%s\nDB_APP_PASSWORD=%s\n",
		cfg.DBType, cfg.DBHost, cfg.DBPort, cfg.DBAppDatabase, cfg.DBAppUser, cfg.DBAppPassword)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	sig := <-sigs
	logrus.Infof("Received signal: %v, terminating database container...", sig)
}

func provision(ctx context.Context, databaseID, proceduresPath string, container *testenv.Database) error {
	cfg := container.Config()
	db, err := database.Connect(cfg)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		return err
	}

	repo, err := repository.New(docstore.New(db, databaseID, cfg.DocstoreCollection), repository.SettingsFromConfig(cfg))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	return repo.InitializeDatabaseIfNotExisting(ctx, proceduresPath)
}
