package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rpattn/filtergen/internal/codegen"
	"github.com/rpattn/filtergen/pkg/filterquery"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "filtergen.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.File != "" {
		t.Fatalf("expected no config file, got %s", cfg.File)
	}
	want := DefaultConfig()
	if cfg.Generator != want.Generator || cfg.Database != want.Database || cfg.Log != want.Log {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
generator:
  package: store
  binding: form
  dialect: sqlite
  per_page: 50
database:
  host: db.internal
  port: 6432
log:
  level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.File != path {
		t.Fatalf("expected file %s, got %s", path, cfg.File)
	}
	if cfg.Generator.Package != "store" || cfg.Generator.PerPage != 50 {
		t.Fatalf("unexpected generator config %+v", cfg.Generator)
	}
	if cfg.Generator.RuntimeImport != codegen.DefaultRuntimeImport {
		t.Fatalf("expected runtime import default to survive, got %s", cfg.Generator.RuntimeImport)
	}
	if cfg.Database.Host != "db.internal" || cfg.Database.Port != 6432 || cfg.Database.User != "postgres" {
		t.Fatalf("unexpected database config %+v", cfg.Database)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "console" {
		t.Fatalf("unexpected log config %+v", cfg.Log)
	}

	opts, err := cfg.Generator.Options()
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if opts.Binding != codegen.BindingForm || opts.Dialect != filterquery.SQLite || opts.DefaultPerPage != 50 {
		t.Fatalf("unexpected options %+v", opts)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "generator:\n  binding: form\n")
	t.Setenv("FILTERGEN_GENERATOR_BINDING", "graphql")
	t.Setenv("FILTERGEN_GENERATOR_PER_PAGE", "10")
	t.Setenv("FILTERGEN_DATABASE_DSN", "postgres://app@localhost/app")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Generator.Binding != "graphql" || cfg.Generator.PerPage != 10 {
		t.Fatalf("expected env overrides, got %+v", cfg.Generator)
	}
	if cfg.Database.ConnString() != "postgres://app@localhost/app" {
		t.Fatalf("expected dsn override, got %s", cfg.Database.ConnString())
	}
}

func TestLoad_ExplicitFileMustExist(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing explicit config file")
	}
}

func TestGeneratorOptions_Invalid(t *testing.T) {
	if _, err := (GeneratorConfig{Binding: "xml"}).Options(); err == nil {
		t.Fatalf("expected binding error")
	}
	if _, err := (GeneratorConfig{Dialect: "oracle"}).Options(); err == nil {
		t.Fatalf("expected dialect error")
	}
}
