package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	os.Setenv("BOT_TOKEN", "test_bot_token")
	os.Setenv("DB_PASSWORD", "test_password")
	os.Setenv("ADMIN_SECRET", "test_admin_secret")
	defer func() {
		os.Unsetenv("BOT_TOKEN")
		os.Unsetenv("DB_PASSWORD")
		os.Unsetenv("ADMIN_SECRET")
	}()

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.BotToken != "test_bot_token" {
		t.Errorf("BotToken = %q, want %q", cfg.BotToken, "test_bot_token")
	}

	if cfg.AdminSecret != "test_admin_secret" {
		t.Errorf("AdminSecret = %q, want %q", cfg.AdminSecret, "test_admin_secret")
	}

	if cfg.RateLimitPerUser != 20 {
		t.Errorf("RateLimitPerUser = %d, want 20", cfg.RateLimitPerUser)
	}

	if cfg.RateLimitWindowSecs != 60 {
		t.Errorf("RateLimitWindowSecs = %d, want 60", cfg.RateLimitWindowSecs)
	}
}

func TestGetRateLimitWindow(t *testing.T) {
	cfg := &Config{RateLimitWindowSecs: 90}
	if got := cfg.GetRateLimitWindow(); got != 90*time.Second {
		t.Errorf("GetRateLimitWindow() = %v, want 90s", got)
	}
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name: "Missing BOT_TOKEN",
			envVars: map[string]string{
				"DB_PASSWORD":  "password",
				"ADMIN_SECRET": "secret",
			},
		},
		{
			name: "Missing DB_PASSWORD",
			envVars: map[string]string{
				"BOT_TOKEN":    "token",
				"ADMIN_SECRET": "secret",
			},
		},
		{
			name: "Missing ADMIN_SECRET",
			envVars: map[string]string{
				"BOT_TOKEN":   "token",
				"DB_PASSWORD": "password",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()

			for k, v := range tt.envVars {
				os.Setenv(k, v)
			}

			_, err := LoadConfig()
			if err == nil {
				t.Error("LoadConfig() expected error for missing required field, got nil")
			}
		})
	}
}

func TestValidateProductionSecurity(t *testing.T) {
	tests := []struct {
		name      string
		cfg       *Config
		shouldErr bool
	}{
		{
			name: "Valid production config",
			cfg: &Config{
				AppEnv:      "production",
				DBSSLMode:   "require",
				AdminSecret: "a_long_production_secret",
			},
			shouldErr: false,
		},
		{
			name: "Development mode - no validation",
			cfg: &Config{
				AppEnv:    "development",
				DBSSLMode: "disable",
			},
			shouldErr: false,
		},
		{
			name: "Production without SSL",
			cfg: &Config{
				AppEnv:      "production",
				DBSSLMode:   "disable",
				AdminSecret: "a_long_production_secret",
			},
			shouldErr: true,
		},
		{
			name: "Production with short admin secret",
			cfg: &Config{
				AppEnv:      "production",
				DBSSLMode:   "require",
				AdminSecret: "1234",
			},
			shouldErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.ValidateProductionSecurity()
			if tt.shouldErr && err == nil {
				t.Error("ValidateProductionSecurity() expected error, got nil")
			}
			if !tt.shouldErr && err != nil {
				t.Errorf("ValidateProductionSecurity() unexpected error = %v", err)
			}
		})
	}
}

func TestGetDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "localhost",
		DBPort:     "5432",
		DBUser:     "testuser",
		DBPassword: "testpass",
		DBName:     "testdb",
		DBSSLMode:  "disable",
	}

	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	dsn := cfg.GetDSN()

	if dsn != expected {
		t.Errorf("GetDSN() = %q, want %q", dsn, expected)
	}
}
