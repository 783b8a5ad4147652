package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dadosjusbr/site/config"
	"github.com/dadosjusbr/site/prerender"
	"github.com/dadosjusbr/site/server"
	"github.com/dadosjusbr/site/webapp"
)

// Logger is global since we will need it everywhere
var Logger *slog.Logger

// maxRetries is how many consecutive ports are tried before giving up
const maxRetries = 5

// injectGlobals injects all of our globals into their packages
func injectGlobals(logger *slog.Logger) {
	Logger = logger
	config.Logger = Logger
	server.Logger = Logger
	prerender.Logger = Logger
}

func main() {
	siteConfig, logger, err := config.SetupSite()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	injectGlobals(logger) //inject the logger into all of the packages

	Logger.Info("Setting up go-app WASM UI")
	appHandler, err := webapp.Bootstrap(siteConfig, webapp.DefaultPlugins(siteConfig)...)
	if err != nil {
		Logger.Error("Failed to bootstrap the application", "error", err)
		os.Exit(1)
	}

	serverHandler, err := server.New(siteConfig, appHandler, webapp.API())
	if err != nil {
		Logger.Error("Failed to set up the server", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	Logger.Info("Running startup checks")
	if err := serverHandler.StartupChecks(ctx); err != nil {
		Logger.Error("Startup checks failed", "error", err)
		os.Exit(1)
	}
	Logger.Info("Startup checks complete, about to initialize schedules")
	scheduler, err := serverHandler.InitializeSchedules(ctx) //initialize the prerender refresh
	if err != nil {
		Logger.Error("Failed to initialize schedules", "error", err)
		os.Exit(1)
	}
	if scheduler != nil {
		defer scheduler.Stop()
	}

	if siteConfig.ListenAddrIP == "" {
		Logger.Info("No Ip Addr set, binding on ALL addresses")
	}

	Logger.Info("Starting HTTP server")
	if err := start(serverHandler.Echo, siteConfig.ListenAddrIP, siteConfig.ListenAddrPort); err != nil {
		Logger.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}

// start runs the server, moving to the next port when the requested one is
// in use
func start(e *echo.Echo, ip, port string) error {
	startPort := port
	for attempt := 0; attempt < maxRetries; attempt++ {
		addr := fmt.Sprintf("%s:%s", ip, port)
		Logger.Info("Attempting to start server", "address", addr, "attempt", attempt+1)

		err := e.Start(addr)
		if err == nil || err == http.ErrServerClosed {
			return nil
		}
		if !isAddressInUse(err) {
			return err
		}

		Logger.Warn("Port already in use, trying next port",
			"port", port,
			"attempt", attempt+1,
			"max_attempts", maxRetries)
		next, nerr := nextPort(port)
		if nerr != nil {
			return nerr
		}
		port = next
		if port != startPort {
			Logger.Warn("Server will use an alternative port due to conflicts",
				"requested_port", startPort,
				"port", port)
		}
	}
	return fmt.Errorf("no available port after %d attempts starting at %s", maxRetries, startPort)
}

// nextPort returns the port after p
func nextPort(p string) (string, error) {
	n, err := strconv.Atoi(p)
	if err != nil {
		return "", fmt.Errorf("invalid port %q: %w", p, err)
	}
	return strconv.Itoa(n + 1), nil
}

// isAddressInUse checks if the error is due to address already in use
func isAddressInUse(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "address already in use")
}
