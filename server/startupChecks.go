package server

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dadosjusbr/site/prerender"
	"github.com/dadosjusbr/site/webapp"
)

// apiCheckTimeout bounds the API reachability probe at startup
const apiCheckTimeout = 5 * time.Second

// StartupChecks performs all the checks to make sure everything works. Only
// a broken static directory or prerender list is fatal; a missing wasm binary
// or an unreachable API is logged and the site starts anyway.
func (h *Handler) StartupChecks(ctx context.Context) error {
	webDirectoryChecks(h.Config.WebDir)
	if err := staticDirectoryChecks(h.Config.StaticDir); err != nil {
		return err
	}
	if err := prerender.Validate(webapp.Routes(), h.Config.PrerenderRoutes); err != nil {
		Logger.Error("Invalid prerender routes", "error", err)
		return fmt.Errorf("prerender routes: %w", err)
	}
	h.apiChecks(ctx)
	return nil
}

// webDirectoryChecks warns when the compiled application is missing
func webDirectoryChecks(webDir string) {
	wasm := filepath.Join(webDir, "app.wasm")
	if _, err := os.Stat(wasm); err != nil {
		Logger.Warn("WebAssembly binary not found, pages will not be interactive", "path", wasm, "error", err)
		return
	}
	Logger.Info("WebAssembly binary found", "path", wasm)
}

// staticDirectoryChecks ensures the snapshot directory exists
func staticDirectoryChecks(staticDir string) error {
	if staticDir == "" {
		Logger.Warn("Static directory not configured, prerendered pages disabled")
		return nil
	}

	info, err := os.Stat(staticDir)
	if err != nil {
		if os.IsNotExist(err) {
			Logger.Info("Creating static directory", "path", staticDir)
			if err := os.MkdirAll(staticDir, 0755); err != nil {
				Logger.Error("Failed to create static directory", "path", staticDir, "error", err)
				return err
			}
			Logger.Info("Static directory created successfully", "path", staticDir)
			return nil
		}
		Logger.Error("Error checking static directory", "path", staticDir, "error", err)
		return err
	}

	if !info.IsDir() {
		Logger.Error("Static path exists but is not a directory", "path", staticDir)
		return fmt.Errorf("static path is not a directory: %s", staticDir)
	}

	Logger.Info("Static directory exists", "path", staticDir)
	return nil
}

// apiChecks probes the API the pages link to
func (h *Handler) apiChecks(ctx context.Context) {
	if h.API == nil {
		Logger.Warn("API client not configured")
		return
	}
	ctx, cancel := context.WithTimeout(ctx, apiCheckTimeout)
	defer cancel()
	if err := h.API.Ping(ctx); err != nil {
		Logger.Warn("API not reachable", "url", h.API.BaseURL(), "error", err)
		return
	}
	Logger.Info("API reachable", "url", h.API.BaseURL())
}
