package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dadosjusbr/site/config"
	"github.com/dadosjusbr/site/prerender"
	"github.com/dadosjusbr/site/server"
	"github.com/dadosjusbr/site/webapp"
)

func TestIsAddressInUse(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("listen tcp :8080: bind: address already in use"), true},
		{errors.New("permission denied"), false},
	}
	for _, tt := range tests {
		if got := isAddressInUse(tt.err); got != tt.want {
			t.Errorf("isAddressInUse(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestNextPort(t *testing.T) {
	got, err := nextPort("8080")
	if err != nil || got != "8081" {
		t.Errorf("nextPort(8080) = %q, %v", got, err)
	}
	if _, err := nextPort("http"); err == nil {
		t.Error("nextPort(http) should fail")
	}
}

func TestInjectGlobals(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	injectGlobals(logger)
	if Logger != logger || config.Logger != logger || server.Logger != logger || prerender.Logger != logger {
		t.Error("injectGlobals should set every package logger")
	}
}

// getBrowser finds an available browser for testing
func getBrowser() (string, error) {
	browsers := []string{"chromium", "chromium-browser", "google-chrome", "chrome"}
	for _, browser := range browsers {
		if path, err := exec.LookPath(browser); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no suitable browser found")
}

// TestSiteWithChromedp loads the site pages in a headless browser and checks
// the prerendered markup and titles
func TestSiteWithChromedp(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	browserPath, err := getBrowser()
	if err != nil {
		t.Skip("No Chrome or Chromium found, skipping browser test")
	}
	t.Logf("Using browser: %s", browserPath)

	t.Setenv("WEB_DIR", t.TempDir())
	t.Setenv("STATIC_DIR", filepath.Join(t.TempDir(), "dist"))
	t.Setenv("ANALYTICS_ID", "")
	siteConfig, err := config.Load()
	if err != nil {
		t.Fatalf("config.Load() error = %v", err)
	}
	appHandler, err := webapp.Bootstrap(siteConfig, webapp.DefaultPlugins(siteConfig)...)
	if err != nil {
		t.Fatalf("Bootstrap() error = %v", err)
	}
	serverHandler, err := server.New(siteConfig, appHandler, webapp.API())
	if err != nil {
		t.Fatalf("server.New() error = %v", err)
	}
	site := httptest.NewServer(serverHandler.Echo)
	defer site.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	renderer, err := prerender.NewBrowserRenderer(ctx, site.URL, prerender.WithExecPath(browserPath))
	if err != nil {
		t.Skipf("Browser could not be started: %v", err)
	}
	defer renderer.Close()

	tests := []struct {
		path  string
		title string
		want  string
	}{
		{"/", "DadosJusBr", "Remunerações do sistema de justiça"},
		{"/sobre", "Sobre | DadosJusBr", "Sobre o DadosJusBr"},
		{"/orgao/tjpb/2020/1", "TJPB - Janeiro de 2020 | DadosJusBr", "Janeiro de 2020"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			html, err := renderer.Render(ctx, tt.path)
			if err != nil {
				t.Fatalf("Render(%s) error = %v", tt.path, err)
			}
			page := string(html)
			if !strings.Contains(page, "<title>"+tt.title+"</title>") {
				t.Errorf("page %s should have title %q", tt.path, tt.title)
			}
			if !strings.Contains(page, tt.want) {
				t.Errorf("page %s should contain %q", tt.path, tt.want)
			}
		})
	}
}
