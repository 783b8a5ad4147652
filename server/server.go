// Package server wires the site into echo: go-app resources, static assets,
// prerendered snapshots, the optional API proxy and the health endpoint.
package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/dadosjusbr/site/apiclient"
	"github.com/dadosjusbr/site/config"
	"github.com/dadosjusbr/site/prerender"
	"github.com/dadosjusbr/site/webapp"
)

// Logger is global since we will need it everywhere
var Logger = slog.Default()

// apiPrefix is the path the site proxies to the API when API_PROXY is set
const apiPrefix = "/uiapi"

// Handler holds everything the HTTP routes need
type Handler struct {
	Echo   *echo.Echo
	Config config.SiteConfig
	App    *app.Handler
	API    *apiclient.Client

	// refreshMu serializes snapshot refreshes
	refreshMu sync.Mutex
}

// New creates the echo instance and registers every route of the site
func New(cfg config.SiteConfig, appHandler *app.Handler, api *apiclient.Client) (*Handler, error) {
	e := echo.New()
	e.HideBanner = true

	h := &Handler{Echo: e, Config: cfg, App: appHandler, API: api}
	e.HTTPErrorHandler = h.errorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "method=${method}, uri=${uri}, status=${status}, latency=${latency_human}\n",
	}))
	e.Use(middleware.CORSWithConfig(middleware.DefaultCORSConfig))

	if err := h.registerRoutes(); err != nil {
		return nil, err
	}
	return h, nil
}

func (h *Handler) registerRoutes() error {
	e := h.Echo
	appHandler := echo.WrapHandler(h.App)

	// go-app specific resources
	e.GET("/app.js", appHandler)
	e.GET("/app.css", appHandler)
	e.GET("/app-worker.js", appHandler)
	e.GET("/wasm_exec.js", appHandler)
	e.GET("/manifest.webmanifest", appHandler)

	// Static assets: app.wasm, site.css, logo
	e.Static("/web", h.Config.WebDir)

	e.GET("/healthz", h.Healthz)

	if h.Config.APIProxy {
		target, err := apiOrigin(h.Config.APIURL)
		if err != nil {
			return err
		}
		Logger.Info("Proxying API requests", "prefix", apiPrefix, "target", target.String())
		api := e.Group(apiPrefix, middleware.ProxyWithConfig(middleware.ProxyConfig{
			Balancer: middleware.NewRoundRobinBalancer([]*middleware.ProxyTarget{
				{
					URL: target,
				},
			}),
		}))
		// The proxy answers every request, these routes only make the group match
		api.Any("", echo.NotFoundHandler)
		api.Any("/*", echo.NotFoundHandler)
	}

	// Pages are served last
	e.GET("/*", h.ServePage)
	e.HEAD("/*", h.ServePage)
	return nil
}

// apiOrigin returns the scheme and host of the API base URL
func apiOrigin(apiURL string) (*url.URL, error) {
	u, err := url.Parse(apiURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API URL %q: %w", apiURL, err)
	}
	return &url.URL{Scheme: u.Scheme, Host: u.Host}, nil
}

// ServePage serves a site page: the prerendered snapshot when there is one,
// the go-app handler otherwise. Paths that match no route get the not found
// page with a 404 status.
func (h *Handler) ServePage(c echo.Context) error {
	p := c.Request().URL.Path
	if p == apiPrefix || strings.HasPrefix(p, apiPrefix+"/") {
		return echo.ErrNotFound
	}

	if _, ok := webapp.Routes().Resolve(p); !ok {
		h.App.ServeHTTP(&notFoundWriter{ResponseWriter: c.Response()}, c.Request())
		return nil
	}

	if file, ok := h.snapshot(p); ok {
		return c.File(file)
	}
	h.App.ServeHTTP(c.Response(), c.Request())
	return nil
}

// snapshot returns the prerendered file for a page path, if one was written
func (h *Handler) snapshot(p string) (string, bool) {
	if h.Config.StaticDir == "" {
		return "", false
	}
	file, err := prerender.OutputPath(h.Config.StaticDir, p)
	if err != nil {
		return "", false
	}
	info, err := os.Stat(file)
	if err != nil || info.IsDir() {
		return "", false
	}
	return file, true
}

// Healthz reports that the server is up along with its build
func (h *Handler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":    "ok",
		"version":   webapp.Version,
		"buildDate": webapp.BuildDate,
	})
}

// errorHandler answers JSON under the API prefix and HTML everywhere else
func (h *Handler) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
	}

	if code != http.StatusNotFound {
		Logger.Error("Request failed", "uri", c.Request().RequestURI, "status", code, "error", err)
		h.Echo.DefaultHTTPErrorHandler(err, c)
		return
	}

	if strings.HasPrefix(c.Request().URL.Path, apiPrefix+"/") {
		c.JSON(http.StatusNotFound, map[string]string{
			"error":   "Not Found",
			"message": "The requested API endpoint does not exist",
			"path":    c.Request().URL.Path,
		})
		return
	}

	c.HTML(http.StatusNotFound, `<!DOCTYPE html>
<html lang="pt-BR">
<head><meta charset="utf-8"><title>Página não encontrada | DadosJusBr</title></head>
<body style="font-family: sans-serif; text-align: center; padding: 50px;">
	<h1>404</h1>
	<p>A página que você procura não existe ou foi movida.</p>
	<a href="/" style="color: #3498db; text-decoration: none; font-size: 18px;">← Voltar para o início</a>
</body>
</html>`)
}

// notFoundWriter turns the 200 the go-app handler writes into a 404
type notFoundWriter struct {
	http.ResponseWriter
	wroteHeader bool
}

func (w *notFoundWriter) WriteHeader(code int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	if code == http.StatusOK {
		code = http.StatusNotFound
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *notFoundWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}
