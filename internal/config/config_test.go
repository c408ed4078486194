package config

import "testing"

func setRequired(t *testing.T) {
	t.Setenv("DB_APP_DATABASE", "photos")
	t.Setenv("DB_APP_USER", "app")
	t.Setenv("AUTHZ_URL", "http://authorizer:8080")
	t.Setenv("AUTHZ_CLIENT_ID", "client")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "3000" {
		t.Errorf("expected default port 3000, got %s", cfg.Port)
	}
	if cfg.DocstoreCollection != "documents" {
		t.Errorf("expected default collection, got %s", cfg.DocstoreCollection)
	}
	if cfg.NewUserGold != 20 || cfg.FirstProfilePhotoGold != 5 {
		t.Errorf("unexpected gold defaults: %d %d", cfg.NewUserGold, cfg.FirstProfilePhotoGold)
	}
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("NEW_USER_GOLD", "100")
	t.Setenv("CACHE_SIZE", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.NewUserGold != 100 {
		t.Errorf("expected 100, got %d", cfg.NewUserGold)
	}
	if cfg.CacheSize != 256 {
		t.Errorf("expected fallback cache size, got %d", cfg.CacheSize)
	}
}

func TestLoadMissingRequired(t *testing.T) {
	tests := []struct {
		name  string
		unset string
	}{
		{"database", "DB_APP_DATABASE"},
		{"authorizer url", "AUTHZ_URL"},
		{"authorizer client", "AUTHZ_CLIENT_ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.unset, "")

			if _, err := Load(); err == nil {
				t.Errorf("expected error when %s is missing", tt.unset)
			}
		})
	}
}

func TestLoadSqliteNeedsNoUser(t *testing.T) {
	setRequired(t)
	t.Setenv("DB_TYPE", "sqlite")
	t.Setenv("DB_APP_USER", "")

	if _, err := Load(); err != nil {
		t.Errorf("expected sqlite without user to load, got %v", err)
	}
}
