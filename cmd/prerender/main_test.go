package main

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/dadosjusbr/site/config"
)

func TestSplitRoutes(t *testing.T) {
	got := splitRoutes(" /, /sobre ,,/contato")
	want := []string{"/", "/sobre", "/contato"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("splitRoutes() = %v, want %v", got, want)
	}
	if got := splitRoutes(""); got != nil {
		t.Errorf("splitRoutes(\"\") = %v, want nil", got)
	}
}

func TestRunStatic(t *testing.T) {
	t.Setenv("ANALYTICS_ID", "")
	siteConfig, err := config.Load()
	if err != nil {
		t.Fatalf("config.Load() error = %v", err)
	}
	siteConfig.StaticDir = t.TempDir()

	if err := run(context.Background(), "static", siteConfig, []string{"/", "/sobre"}, "", ""); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	for _, f := range []string{"index.html", filepath.Join("sobre", "index.html")} {
		if _, err := os.Stat(filepath.Join(siteConfig.StaticDir, f)); err != nil {
			t.Errorf("%s not written: %v", f, err)
		}
	}
}

func TestRunUnknownMode(t *testing.T) {
	if err := run(context.Background(), "pdf", config.SiteConfig{}, nil, "", ""); err == nil {
		t.Error("run() should reject an unknown mode")
	}
}
