package services

import (
	"context"
	"fmt"

	"github.com/localnerve/goldphotos/internal/config"
	"github.com/localnerve/goldphotos/internal/models"
	"github.com/localnerve/goldphotos/internal/utils"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RequiredProcedures are the procedures a provisioned collection must carry
var RequiredProcedures = []string{"transferGoldBetweenUsers", "getRecentPhotosForCategories"}

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string            `json:"status"`
	Database     string            `json:"database"`
	Docstore     string            `json:"docstore"`
	Authorizer   string            `json:"authorizer"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

func (r *HealthCheckResult) fail(component, message string, err error) {
	r.Status = "unhealthy"
	r.Details[component+"_error"] = err.Error()
	if r.ErrorMessage == "" {
		r.ErrorMessage = fmt.Sprintf("%s: %v", message, err)
	} else {
		r.ErrorMessage += fmt.Sprintf("; %s: %v", message, err)
	}
	logrus.WithField("component", component).WithError(err).Warn("health check failed")
}

// HealthCheck checks the database, the provisioned document collection and the Authorizer
func HealthCheck(ctx context.Context, cfg *config.Config, db *gorm.DB) HealthCheckResult {
	result := HealthCheckResult{
		Status:  "healthy",
		Details: make(map[string]string),
	}

	sqlDB, err := db.DB()
	if err != nil {
		result.Database = "error"
		result.fail("database", "Database connection error", err)
	} else if err := sqlDB.PingContext(ctx); err != nil {
		result.Database = "unreachable"
		result.fail("database", "Database ping failed", err)
	} else {
		result.Database = "ok"
		result.Details["database_type"] = cfg.DBType
		result.Details["database_name"] = cfg.DBAppDatabase
	}

	if result.Database == "ok" {
		if err := checkProvisioned(ctx, cfg, db); err != nil {
			result.Docstore = "unprovisioned"
			result.fail("docstore", "Document collection check failed", err)
		} else {
			result.Docstore = "ok"
			result.Details["docstore_collection"] = cfg.DocstoreDatabase + "/" + cfg.DocstoreCollection
		}
	}

	if err := utils.PingAuthorizer(cfg.AuthzURL); err != nil {
		result.Authorizer = "unreachable"
		result.fail("authorizer", "Authorizer ping failed", err)
	} else {
		result.Authorizer = "ok"
		result.Details["authorizer_url"] = cfg.AuthzURL
	}

	if result.Status == "healthy" {
		logrus.Info("health check passed - all systems operational")
	}

	return result
}

// checkProvisioned verifies the collection exists and carries its procedures
func checkProvisioned(ctx context.Context, cfg *config.Config, db *gorm.DB) error {
	var collections int64
	err := db.WithContext(ctx).Model(&models.DocumentCollection{}).
		Where("database_id = ? AND collection_id = ?", cfg.DocstoreDatabase, cfg.DocstoreCollection).
		Count(&collections).Error
	if err != nil {
		return err
	}
	if collections == 0 {
		return fmt.Errorf("collection %s/%s does not exist", cfg.DocstoreDatabase, cfg.DocstoreCollection)
	}

	var found []string
	err = db.WithContext(ctx).Model(&models.StoredProcedure{}).
		Where("database_id = ? AND collection_id = ?", cfg.DocstoreDatabase, cfg.DocstoreCollection).
		Pluck("procedure_id", &found).Error
	if err != nil {
		return err
	}
	have := make(map[string]bool, len(found))
	for _, id := range found {
		have[id] = true
	}
	for _, id := range RequiredProcedures {
		if !have[id] {
			return fmt.Errorf("procedure %s is not provisioned", id)
		}
	}
	return nil
}
