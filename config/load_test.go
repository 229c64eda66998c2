package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/kingsystem_test")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("Port = %q; want 8080", cfg.Port)
	}
	if cfg.Env != "dev" {
		t.Errorf("Env = %q; want dev", cfg.Env)
	}
	if cfg.DatabaseURL != "postgres://localhost/kingsystem_test" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://db/prod")
	t.Setenv("APP_PORT", "9000")
	t.Setenv("PDF_RENDERER_URL", "http://pdf:9090")

	cfg := Load()
	if cfg.Port != "9000" {
		t.Errorf("Port = %q; want 9000", cfg.Port)
	}
	if cfg.PdfRendererURL != "http://pdf:9090" {
		t.Errorf("PdfRendererURL = %q", cfg.PdfRendererURL)
	}
}

func TestLoad_PanicsWithoutDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for missing DATABASE_URL")
		}
	}()
	Load()
}
