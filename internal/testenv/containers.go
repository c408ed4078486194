// containers.go
//
// Photo sharing and gold economy data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of goldphotos.
// goldphotos is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// goldphotos is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with goldphotos.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

// Package testenv starts disposable database containers for integration
// tests and local development.
package testenv

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	"github.com/localnerve/goldphotos/internal/config"
	"github.com/localnerve/goldphotos/internal/database"
	"github.com/sirupsen/logrus"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	databaseName = "goldphotos"
	databaseUser = "goldphotos"
	databasePass = "Gold-Photos-1"
)

// engine describes how to run one database type in a container
type engine struct {
	image   string
	port    string
	env     map[string]string
	dataDir string
	ready   wait.Strategy
	user    string
}

func engineFor(dbType string) (engine, error) {
	switch dbType {
	case "mysql", "mariadb":
		return engine{
			image: "mariadb:11",
			port:  "3306",
			env: map[string]string{
				"MYSQL_ROOT_PASSWORD": databasePass,
				"MYSQL_DATABASE":      databaseName,
				"MYSQL_USER":          databaseUser,
				"MYSQL_PASSWORD":      databasePass,
			},
			dataDir: "/var/lib/mysql",
			ready:   wait.ForLog("ready for connections").WithOccurrence(2),
			user:    databaseUser,
		}, nil
	case "postgres", "postgresql":
		return engine{
			image: "postgres:17-alpine",
			port:  "5432",
			env: map[string]string{
				"POSTGRES_PASSWORD": databasePass,
				"POSTGRES_USER":     databaseUser,
				"POSTGRES_DB":       databaseName,
			},
			dataDir: "/var/lib/postgresql/data",
			ready:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			user:    databaseUser,
		}, nil
	case "sqlserver", "mssql":
		return engine{
			image: "mcr.microsoft.com/mssql/server:2022-latest",
			port:  "1433",
			env: map[string]string{
				"ACCEPT_EULA":       "Y",
				"MSSQL_SA_PASSWORD": databasePass,
			},
			ready: wait.ForLog("SQL Server is now ready for client connections"),
			user:  "sa",
		}, nil
	}
	return engine{}, fmt.Errorf("no container engine for database type %q", dbType)
}

// Database is a running database container
type Database struct {
	Container testcontainers.Container
	cfg       config.Config
}

// Config returns a configuration that connects to the container
func (d *Database) Config() *config.Config {
	cfg := d.cfg
	return &cfg
}

// Terminate stops and removes the container
func (d *Database) Terminate(ctx context.Context) error {
	if d == nil || d.Container == nil {
		return nil
	}
	return d.Container.Terminate(ctx)
}

// StartDatabase starts a database container of dbType. DB_IMAGE overrides the default image.
func StartDatabase(ctx context.Context, dbType string) (*Database, error) {
	eng, err := engineFor(dbType)
	if err != nil {
		return nil, err
	}
	if image := os.Getenv("DB_IMAGE"); image != "" {
		eng.image = image
	}

	port, err := nat.NewPort("tcp", eng.port)
	if err != nil {
		return nil, fmt.Errorf("failed to create database port: %w", err)
	}

	dataDir := eng.dataDir
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        eng.image,
			ExposedPorts: []string{string(port)},
			Env:          eng.env,
			WaitingFor: wait.ForAll(
				wait.ForListeningPort(port),
				eng.ready,
			).WithDeadline(2 * time.Minute),
			HostConfigModifier: func(hostConfig *container.HostConfig) {
				// Throwaway data, keep it in memory
				if dataDir != "" {
					hostConfig.Tmpfs = map[string]string{dataDir: "rw"}
				}
			},
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", eng.image, err)
	}
	db := &Database{Container: c}

	host, err := c.Host(ctx)
	if err != nil {
		_ = db.Terminate(ctx)
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}
	mapped, err := c.MappedPort(ctx, port)
	if err != nil {
		_ = db.Terminate(ctx)
		return nil, fmt.Errorf("failed to get container port: %w", err)
	}

	db.cfg = config.Config{
		LogLevel:              "silent",
		DBType:                dbType,
		DBHost:                host,
		DBPort:                mapped.Port(),
		DBAppDatabase:         databaseName,
		DBAppUser:             eng.user,
		DBAppPassword:         databasePass,
		DBAppConnectionLimit:  5,
		DocstoreDatabase:      "goldphotos",
		DocstoreCollection:    "documents",
		NewUserGold:           20,
		FirstProfilePhotoGold: 5,
		NewPhotoGold:          1,
		CacheSize:             64,
	}
	if dbType == "sqlserver" || dbType == "mssql" {
		db.cfg.DBAppDatabase = "master"
	}

	if err := waitForConnection(ctx, db.Config()); err != nil {
		_ = db.Terminate(ctx)
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"image": eng.image,
		"host":  host,
		"port":  mapped.Port(),
	}).Info("database container started")
	return db, nil
}

// waitForConnection pings until the server accepts the application user
func waitForConnection(ctx context.Context, cfg *config.Config) error {
	var lastErr error
	for i := 0; i < 30; i++ {
		conn, err := database.Connect(cfg)
		if err == nil {
			sqlDB, dbErr := conn.DB()
			if dbErr == nil {
				err = sqlDB.PingContext(ctx)
			} else {
				err = dbErr
			}
			_ = database.Close(conn)
			if err == nil {
				return nil
			}
		}
		lastErr = err

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Second):
		}
	}
	return fmt.Errorf("database not ready after 30 seconds: %w", lastErr)
}
