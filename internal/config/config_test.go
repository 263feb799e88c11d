package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STARK_DB", "")
	t.Setenv("STARK_ADDR", "")
	t.Setenv("STARK_JWT_SECRET", "")

	cfg := Load()
	if cfg.DBPath != "stark.sqlite3" {
		t.Errorf("expected default db path, got %q", cfg.DBPath)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("expected default addr, got %q", cfg.Addr)
	}
	if cfg.JWTSecret != "" {
		t.Errorf("expected empty secret by default, got %q", cfg.JWTSecret)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("STARK_DB", "/tmp/store.sqlite3")
	t.Setenv("STARK_ADDR", ":9999")
	t.Setenv("STARK_JWT_SECRET", "hunter2")

	cfg := Load()
	if cfg.DBPath != "/tmp/store.sqlite3" {
		t.Errorf("unexpected db path %q", cfg.DBPath)
	}
	if cfg.Addr != ":9999" {
		t.Errorf("unexpected addr %q", cfg.Addr)
	}
	if cfg.JWTSecret != "hunter2" {
		t.Errorf("unexpected secret %q", cfg.JWTSecret)
	}
}
