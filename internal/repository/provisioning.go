package repository

import (
	"context"
	"io/fs"
	"os"

	"github.com/localnerve/goldphotos/data"
	"github.com/localnerve/goldphotos/internal/docstore"
	"github.com/localnerve/goldphotos/internal/types"
	"github.com/sirupsen/logrus"
)

var requiredProcedures = []string{ProcedureTransferGold, ProcedureRecentPhotos}

// procedureSource returns the manifest directory, falling back to the embedded defaults
func procedureSource(serverPath string) fs.FS {
	if serverPath == "" {
		return data.Procedures()
	}
	return os.DirFS(serverPath)
}

// InitializeDatabaseIfNotExisting provisions the database, the collection and
// both procedures. It is safe to call repeatedly.
func (r *DocumentRepository) InitializeDatabaseIfNotExisting(ctx context.Context, serverPath string) error {
	log := r.log.WithFields(logrus.Fields{"op": "InitializeDatabaseIfNotExisting", "path": serverPath})

	definitions, err := docstore.LoadDefinitions(procedureSource(serverPath))
	if err != nil {
		return types.NewError(types.InvalidConfiguration, err, "load procedures from %q", serverPath)
	}

	byID := make(map[string]docstore.ProcedureDefinition, len(definitions))
	for _, def := range definitions {
		byID[def.ID] = def
	}
	for _, id := range requiredProcedures {
		if _, ok := byID[id]; !ok {
			return types.ConfigurationError("procedure %s is missing from %q", id, serverPath)
		}
	}

	created, err := r.store.CreateDatabaseIfNotExists(ctx)
	if err != nil {
		return types.UnknownError(err, "create database")
	}
	if created {
		log.Info("database created")
	}

	created, err = r.store.CreateCollectionIfNotExists(ctx)
	if err != nil {
		return types.UnknownError(err, "create collection")
	}
	if created {
		log.Info("collection created")
	}

	for _, def := range definitions {
		if err := r.store.UpsertProcedure(ctx, def); err != nil {
			return types.UnknownError(err, "provision procedure %s", def.ID)
		}
	}

	log.WithField("procedures", len(definitions)).Info("database initialized")
	return nil
}

// ReinitializeDatabase deletes the database and provisions it again
func (r *DocumentRepository) ReinitializeDatabase(ctx context.Context, serverPath string) error {
	if err := r.store.DeleteDatabase(ctx); err != nil {
		return types.UnknownError(err, "delete database")
	}
	r.log.WithField("op", "ReinitializeDatabase").Warn("database deleted")
	return r.InitializeDatabaseIfNotExisting(ctx, serverPath)
}
