// Package router holds the site's route table: an ordered, immutable list of
// path patterns bound to named views.
package router

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// routeKey is the echo context key the match handlers write the route index to.
const routeKey = "router.route"

// Route binds a path pattern to a named component. Path segments starting
// with ':' are named parameters.
type Route[C any] struct {
	Path      string
	Name      string
	Component C
}

// Params are the named parameters extracted from a resolved path.
type Params map[string]string

// Get returns the value of a parameter or "" when absent.
func (p Params) Get(name string) string {
	return p[name]
}

// Int parses a numeric parameter.
func (p Params) Int(name string) (int, error) {
	v, ok := p[name]
	if !ok {
		return 0, fmt.Errorf("missing parameter %q", name)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parameter %s=%q is not a number", name, v)
	}
	return n, nil
}

// Match is the result of resolving a path against a Table.
type Match[C any] struct {
	Route  Route[C]
	Params Params
}

// Table is an immutable route table. Build it with New.
type Table[C any] struct {
	routes []Route[C]
	byName map[string]int
	echo   *echo.Echo
}

// New validates the routes and builds a table. Paths and names must be
// unique; the order of the routes is kept.
func New[C any](routes ...Route[C]) (*Table[C], error) {
	t := &Table[C]{
		routes: make([]Route[C], 0, len(routes)),
		byName: make(map[string]int, len(routes)),
		echo:   echo.New(),
	}

	var errs []error
	paths := make(map[string]bool, len(routes))
	for _, r := range routes {
		if err := validatePattern(r.Path); err != nil {
			errs = append(errs, fmt.Errorf("route %q: %w", r.Name, err))
			continue
		}
		if r.Name == "" {
			errs = append(errs, fmt.Errorf("route %s: empty name", r.Path))
			continue
		}
		if paths[r.Path] {
			errs = append(errs, fmt.Errorf("route %q: duplicate path %s", r.Name, r.Path))
			continue
		}
		if _, dup := t.byName[r.Name]; dup {
			errs = append(errs, fmt.Errorf("route %s: duplicate name %q", r.Path, r.Name))
			continue
		}
		paths[r.Path] = true
		idx := len(t.routes)
		t.byName[r.Name] = idx
		t.routes = append(t.routes, r)
		t.echo.Add(http.MethodGet, r.Path, func(c echo.Context) error {
			c.Set(routeKey, idx)
			return nil
		})
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return t, nil
}

// MustNew is like New but panics on an invalid table.
func MustNew[C any](routes ...Route[C]) *Table[C] {
	t, err := New(routes...)
	if err != nil {
		panic(err)
	}
	return t
}

func validatePattern(p string) error {
	if !strings.HasPrefix(p, "/") {
		return fmt.Errorf("path %q must start with /", p)
	}
	for _, seg := range segments(p) {
		if seg == ":" {
			return fmt.Errorf("path %q has an unnamed parameter", p)
		}
		if strings.Contains(seg, "*") {
			return fmt.Errorf("path %q: wildcards are not supported", p)
		}
	}
	return nil
}

func segments(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

// Resolve finds the route matching a literal path and extracts its
// parameters. A trailing slash is ignored. Every parameter of a match is
// non-empty, so URL can always rebuild the path.
func (t *Table[C]) Resolve(path string) (Match[C], bool) {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		path = "/"
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}

	c := t.echo.NewContext(nil, nil)
	t.echo.Router().Find(http.MethodGet, path, c)
	if err := c.Handler()(c); err != nil {
		return Match[C]{}, false
	}
	idx, ok := c.Get(routeKey).(int)
	if !ok {
		return Match[C]{}, false
	}

	params := make(Params, len(c.ParamNames()))
	values := c.ParamValues()
	for i, name := range c.ParamNames() {
		if i >= len(values) {
			break
		}
		if values[i] == "" {
			// echo matches an empty segment, but such a path cannot be built back
			return Match[C]{}, false
		}
		v, err := url.PathUnescape(values[i])
		if err != nil {
			v = values[i]
		}
		params[name] = v
	}
	return Match[C]{Route: t.routes[idx], Params: params}, true
}

// Lookup returns the route registered under name.
func (t *Table[C]) Lookup(name string) (Route[C], bool) {
	idx, ok := t.byName[name]
	if !ok {
		return Route[C]{}, false
	}
	return t.routes[idx], true
}

// Routes returns a copy of the routes in declaration order.
func (t *Table[C]) Routes() []Route[C] {
	out := make([]Route[C], len(t.routes))
	copy(out, t.routes)
	return out
}

// Paths returns the path patterns in declaration order.
func (t *Table[C]) Paths() []string {
	out := make([]string, 0, len(t.routes))
	for _, r := range t.routes {
		out = append(out, r.Path)
	}
	return out
}

// URL builds the path of a named route, filling in its parameters.
func (t *Table[C]) URL(name string, params Params) (string, error) {
	r, ok := t.Lookup(name)
	if !ok {
		return "", fmt.Errorf("unknown route %q", name)
	}
	return r.Build(params)
}

// MustURL is like URL but panics on error. Use it only with literal names.
func (t *Table[C]) MustURL(name string, params Params) string {
	u, err := t.URL(name, params)
	if err != nil {
		panic(err)
	}
	return u
}

// Build fills the route's parameters.
func (r Route[C]) Build(params Params) (string, error) {
	segs := segments(r.Path)
	if len(segs) == 0 {
		return "/", nil
	}
	for i, seg := range segs {
		if !strings.HasPrefix(seg, ":") {
			continue
		}
		name := seg[1:]
		v, ok := params[name]
		if !ok || v == "" {
			return "", fmt.Errorf("route %q: missing parameter %q", r.Name, name)
		}
		segs[i] = url.PathEscape(v)
	}
	return "/" + strings.Join(segs, "/"), nil
}

// ParamNames lists the route's parameters in path order.
func (r Route[C]) ParamNames() []string {
	var names []string
	for _, seg := range segments(r.Path) {
		if strings.HasPrefix(seg, ":") {
			names = append(names, seg[1:])
		}
	}
	return names
}

// Static reports whether the route has no parameters.
func (r Route[C]) Static() bool {
	return len(r.ParamNames()) == 0
}

// Regexp returns an anchored regular expression equivalent to the pattern.
// An optional trailing slash is accepted.
func (r Route[C]) Regexp() string {
	segs := segments(r.Path)
	if len(segs) == 0 {
		return `^/$`
	}
	var b strings.Builder
	b.WriteString("^")
	for _, seg := range segs {
		b.WriteString("/")
		if strings.HasPrefix(seg, ":") {
			b.WriteString(`[^/]+`)
			continue
		}
		b.WriteString(regexp.QuoteMeta(seg))
	}
	b.WriteString(`/?$`)
	return b.String()
}
