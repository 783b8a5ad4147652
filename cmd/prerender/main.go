package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/dadosjusbr/site/config"
	"github.com/dadosjusbr/site/prerender"
	"github.com/dadosjusbr/site/webapp"
)

// Logger is global since we will need it everywhere
var Logger *slog.Logger

func main() {
	// Parse command-line flags
	mode := flag.String("mode", "static", "Renderer: static (in process), browser (headless Chrome) or site (full static website)")
	dir := flag.String("dir", "", "Output directory (overrides STATIC_DIR)")
	siteURL := flag.String("url", "http://localhost:8080", "Running site to render in browser mode")
	browser := flag.String("browser", "", "Chrome or Chromium binary for browser mode")
	routes := flag.String("routes", "", "Comma separated paths (overrides PRERENDER_ROUTES)")
	staticRoutes := flag.Bool("static-routes", false, "Render every route without parameters (overrides -routes)")
	flag.Parse()

	siteConfig, logger, err := config.SetupSite()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	Logger = logger
	prerender.Logger = logger

	if *dir != "" {
		siteConfig.StaticDir = *dir
	}
	paths := siteConfig.PrerenderRoutes
	if *routes != "" {
		paths = splitRoutes(*routes)
	}
	if *staticRoutes {
		paths = prerender.StaticPaths(webapp.Routes())
	}

	if err := prerender.Validate(webapp.Routes(), paths); err != nil {
		Logger.Error("Invalid prerender routes", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, *mode, siteConfig, paths, *siteURL, *browser); err != nil {
		Logger.Error("Prerender failed", "mode", *mode, "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, mode string, siteConfig config.SiteConfig, paths []string, siteURL, browser string) error {
	switch mode {
	case "static":
		appHandler, err := webapp.Bootstrap(siteConfig, webapp.DefaultPlugins(siteConfig)...)
		if err != nil {
			return err
		}
		report, err := prerender.Run(ctx, prerender.StaticRenderer{Handler: appHandler}, siteConfig.StaticDir, paths)
		fmt.Println(report.Summary())
		return err

	case "browser":
		var opts []prerender.BrowserOption
		if browser != "" {
			opts = append(opts, prerender.WithExecPath(browser))
		}
		renderer, err := prerender.NewBrowserRenderer(ctx, siteURL, opts...)
		if err != nil {
			return err
		}
		defer renderer.Close()
		report, err := prerender.Run(ctx, renderer, siteConfig.StaticDir, paths)
		fmt.Println(report.Summary())
		return err

	case "site":
		appHandler, err := webapp.Bootstrap(siteConfig, webapp.DefaultPlugins(siteConfig)...)
		if err != nil {
			return err
		}
		return prerender.GenerateSite(siteConfig.StaticDir, appHandler, paths)

	default:
		return fmt.Errorf("unknown mode %q", mode)
	}
}

// splitRoutes parses the -routes flag
func splitRoutes(s string) []string {
	var out []string
	for _, r := range strings.Split(s, ",") {
		if r = strings.TrimSpace(r); r != "" {
			out = append(out, r)
		}
	}
	return out
}
