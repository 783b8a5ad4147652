// Package prerender writes static HTML snapshots of site routes so the first
// paint of those pages does not wait for the WebAssembly binary.
package prerender

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/dadosjusbr/site/format"
	"github.com/dadosjusbr/site/router"
)

// Logger is global since we will need it everywhere
var Logger = slog.Default()

// Renderer produces the HTML document of a site path.
type Renderer interface {
	Render(ctx context.Context, path string) ([]byte, error)
}

// Page is one written snapshot.
type Page struct {
	Path     string
	File     string
	Size     int64
	Duration time.Duration
}

// Report summarizes a prerender run.
type Report struct {
	Pages   []Page
	Bytes   int64
	Elapsed time.Duration
}

// Summary describes the run in one line, e.g.
// "3 páginas, 12 kB em 1,25 s".
func (r Report) Summary() string {
	noun := "páginas"
	if len(r.Pages) == 1 {
		noun = "página"
	}
	return fmt.Sprintf("%d %s, %s em %s s",
		len(r.Pages), noun, format.Bytes(r.Bytes), format.Number(r.Elapsed.Seconds()))
}

// StaticPaths returns the path of every route without parameters, in table
// order.
func StaticPaths[C any](t *router.Table[C]) []string {
	var paths []string
	for _, r := range t.Routes() {
		if !r.Static() {
			continue
		}
		p, err := r.Build(nil)
		if err != nil {
			continue
		}
		paths = append(paths, p)
	}
	return paths
}

// Validate checks a prerender path list against a route table: the list is
// not empty, every path resolves to a route and no two paths produce the same
// snapshot file.
func Validate[C any](t *router.Table[C], paths []string) error {
	if len(paths) == 0 {
		return errors.New("prerender: no paths to render")
	}

	var errs []error
	seen := make(map[string]string, len(paths))
	for _, p := range paths {
		if strings.ContainsAny(p, "?#") {
			errs = append(errs, fmt.Errorf("path %q: query and fragment are not allowed", p))
			continue
		}
		if _, ok := t.Resolve(p); !ok {
			errs = append(errs, fmt.Errorf("path %q does not match any route", p))
			continue
		}
		file, err := OutputPath("", p)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if prev, dup := seen[file]; dup {
			errs = append(errs, fmt.Errorf("path %q duplicates %q", p, prev))
			continue
		}
		seen[file] = p
	}
	return errors.Join(errs...)
}

// OutputPath returns the file a snapshot of urlPath is written to inside dir.
// "/" is written to dir/index.html and "/sobre" to dir/sobre/index.html.
func OutputPath(dir, urlPath string) (string, error) {
	if !strings.HasPrefix(urlPath, "/") {
		return "", fmt.Errorf("path %q must start with /", urlPath)
	}
	for _, seg := range strings.Split(urlPath, "/") {
		if seg == ".." || seg == "." {
			return "", fmt.Errorf("path %q: relative segments are not allowed", urlPath)
		}
	}
	clean := strings.Trim(path.Clean(urlPath), "/")
	return filepath.Join(dir, filepath.FromSlash(clean), "index.html"), nil
}

// Run renders every path with r and writes the snapshots under dir. Paths are
// rendered one after the other; a failing path does not stop the others and
// all failures are returned together.
func Run(ctx context.Context, r Renderer, dir string, paths []string) (Report, error) {
	start := time.Now()
	var (
		report Report
		errs   []error
	)

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		file, err := OutputPath(dir, p)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		pageStart := time.Now()
		html, err := r.Render(ctx, p)
		if err != nil {
			Logger.Error("Prerender failed", "path", p, "error", err)
			errs = append(errs, fmt.Errorf("render %s: %w", p, err))
			continue
		}
		if err := writeFile(file, html); err != nil {
			Logger.Error("Failed to write snapshot", "path", p, "file", file, "error", err)
			errs = append(errs, err)
			continue
		}

		page := Page{
			Path:     p,
			File:     file,
			Size:     int64(len(html)),
			Duration: time.Since(pageStart),
		}
		report.Pages = append(report.Pages, page)
		report.Bytes += page.Size
		Logger.Info("Prerendered page",
			"path", p,
			"file", file,
			"size", format.Bytes(page.Size),
			"duration", page.Duration.Round(time.Millisecond))
	}

	report.Elapsed = time.Since(start)
	Logger.Info("Prerender complete",
		"pages", len(report.Pages),
		"failed", len(errs),
		"total", format.Bytes(report.Bytes),
		"elapsed", report.Elapsed.Round(time.Millisecond))
	return report, errors.Join(errs...)
}

func writeFile(file string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
		return fmt.Errorf("create snapshot directory: %w", err)
	}
	tmp := file + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp, file); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

// GenerateSite writes a complete static website to dir: the go-app resources
// (wasm, app.js, manifest) plus one page per path.
func GenerateSite(dir string, h *app.Handler, paths []string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := app.GenerateStaticWebsite(dir, h, paths...); err != nil {
		return fmt.Errorf("generate static website: %w", err)
	}
	Logger.Info("Static website generated", "dir", dir, "pages", len(paths))
	return nil
}
