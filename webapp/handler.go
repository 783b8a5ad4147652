package webapp

import (
	"fmt"
	"time"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/dadosjusbr/site/apiclient"
	"github.com/dadosjusbr/site/config"
	"github.com/dadosjusbr/site/format"
)

// Version info - can be set at build time with -ldflags
var (
	Version   = "dev"
	BuildDate = ""
)

// DefaultPlugins returns the plugins the site runs with
func DefaultPlugins(cfg config.SiteConfig) []Plugin {
	return []Plugin{
		MaterialKit(),
		Analytics(cfg.AnalyticsID),
		DateFormat(cfg.Location()),
		HeadManager(SiteName),
	}
}

// Bootstrap builds the application: it attaches the API client, registers
// the routes and installs the plugins onto the returned handler
func Bootstrap(cfg config.SiteConfig, plugins ...Plugin) (*app.Handler, error) {
	client, err := apiclient.New(cfg.APIURL)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}
	SetAPI(client)

	if cfg.Version != "" {
		Version = cfg.Version
	}
	if cfg.BuildDate != "" {
		BuildDate = cfg.BuildDate
	}

	RegisterRoutes()

	h := &app.Handler{
		Name:        SiteName,
		ShortName:   SiteName,
		Title:       SiteName,
		Description: "Monitoramento aberto de remunerações do sistema de justiça brasileiro",
		Lang:        "pt-BR",
		Icon: app.Icon{
			Default: "/web/logo.png",
		},
		Styles: []string{
			"/web/site.css",
		},
		RawHeaders: []string{
			`<meta name="viewport" content="width=device-width, initial-scale=1">`,
		},
		Env: map[string]string{
			EnvAPIURL:    client.BaseURL(),
			EnvVersion:   Version,
			EnvBuildDate: BuildDate,
		},
	}

	for _, p := range plugins {
		if err := p.Install(h); err != nil {
			return nil, fmt.Errorf("install plugin %s: %w", p.Name(), err)
		}
	}
	return h, nil
}

// Start runs the application in the browser. It reads what the server put in
// the page environment, registers the routes and mounts the app.
func Start() {
	if app.IsClient {
		if v := app.Getenv(EnvVersion); v != "" {
			Version = v
		}
		if d := app.Getenv(EnvBuildDate); d != "" {
			BuildDate = d
		}
		if tz := app.Getenv(EnvTimezone); tz != "" {
			if loc, err := time.LoadLocation(tz); err == nil {
				format.SetLocation(loc)
			}
		}
		setSiteName(app.Getenv(EnvSiteName))
	}
	RegisterRoutes()
	app.RunWhenOnBrowser()
}
