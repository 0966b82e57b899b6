package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Password.BcryptCost != 12 {
		t.Fatalf("expected bcrypt cost 12 default, got %d", cfg.Password.BcryptCost)
	}
	if cfg.Stats.JobsBaseline != 734 || cfg.Stats.EmployersBaseline != 370 || cfg.Stats.HiredBaseline != 1485 {
		t.Fatalf("unexpected stats baselines: %+v", cfg.Stats)
	}
	if cfg.Session.CookieName == "" {
		t.Fatalf("expected a default session cookie name")
	}
}

func TestAppEnvHelpers(t *testing.T) {
	app := AppConfig{Env: "DEV"}
	if !app.IsDev() || app.IsProd() {
		t.Fatalf("expected case-insensitive dev detection")
	}
}

func TestRedisConfigured(t *testing.T) {
	if (RedisConfig{}).Configured() {
		t.Fatalf("empty redis config should not report configured")
	}
	if !(RedisConfig{Address: "localhost:6379"}).Configured() {
		t.Fatalf("address should mark redis configured")
	}
}

func TestSeedEnvOverride(t *testing.T) {
	t.Setenv("NORTHHAUL_SEED_ADMIN_USERNAME", "ops")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Seed.AdminUsername != "ops" {
		t.Fatalf("expected env override, got %q", cfg.Seed.AdminUsername)
	}
}
