package webapp

import (
	"fmt"
	"regexp"
	"time"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/dadosjusbr/site/format"
)

// Plugin adds a capability to the application handler
type Plugin interface {
	Name() string
	Install(h *app.Handler) error
}

func setEnv(h *app.Handler, key, value string) {
	if h.Env == nil {
		h.Env = map[string]string{}
	}
	h.Env[key] = value
}

// MaterialKit loads the material design stylesheets, fonts and scripts
func MaterialKit() Plugin {
	return materialKit{}
}

type materialKit struct{}

func (materialKit) Name() string { return "material-kit" }

func (materialKit) Install(h *app.Handler) error {
	h.Styles = append([]string{
		"https://fonts.googleapis.com/css?family=Roboto:300,400,500,700&display=swap",
		"https://fonts.googleapis.com/icon?family=Material+Icons",
		"https://unpkg.com/material-components-web@14.0.0/dist/material-components-web.min.css",
	}, h.Styles...)
	h.Scripts = append(h.Scripts,
		"https://unpkg.com/material-components-web@14.0.0/dist/material-components-web.min.js",
	)
	return nil
}

var trackingIDPattern = regexp.MustCompile(`^(G|UA|GT|AW)-[A-Z0-9-]+$`)

// Analytics installs the Google Analytics tag. Page views are sent on every
// client side navigation. An empty tracking ID installs nothing.
func Analytics(trackingID string) Plugin {
	return analytics{id: trackingID}
}

type analytics struct {
	id string
}

func (analytics) Name() string { return "analytics" }

func (a analytics) Install(h *app.Handler) error {
	if a.id == "" {
		return nil
	}
	if !trackingIDPattern.MatchString(a.id) {
		return fmt.Errorf("invalid analytics tracking id %q", a.id)
	}
	h.RawHeaders = append(h.RawHeaders,
		fmt.Sprintf(`<script async src="https://www.googletagmanager.com/gtag/js?id=%s"></script>`, a.id),
		fmt.Sprintf(`<script>window.dataLayer = window.dataLayer || [];
function gtag(){dataLayer.push(arguments);}
gtag('js', new Date());
gtag('config', '%s', { send_page_view: false });</script>`, a.id),
	)
	setEnv(h, EnvAnalyticsID, a.id)
	return nil
}

// trackPageView reports a page view to analytics when running in the browser
// and the tag is loaded
func trackPageView(path, title string) {
	if !app.IsClient || app.Getenv(EnvAnalyticsID) == "" {
		return
	}
	if !app.Window().Get("gtag").Truthy() {
		return
	}
	app.Window().Call("gtag", "event", "page_view", map[string]any{
		"page_path":  path,
		"page_title": title,
	})
}

// DateFormat sets the time zone dates are displayed in, on the server and in
// the browser
func DateFormat(loc *time.Location) Plugin {
	return dateFormat{loc: loc}
}

type dateFormat struct {
	loc *time.Location
}

func (dateFormat) Name() string { return "date-format" }

func (d dateFormat) Install(h *app.Handler) error {
	if d.loc == nil {
		return fmt.Errorf("date format: nil location")
	}
	format.SetLocation(d.loc)
	setEnv(h, EnvTimezone, d.loc.String())
	return nil
}

// HeadManager sets the document title and description on every navigation.
// Titles are suffixed with siteName.
func HeadManager(siteName string) Plugin {
	return headManager{siteName: siteName}
}

type headManager struct {
	siteName string
}

func (headManager) Name() string { return "head-manager" }

func (m headManager) Install(h *app.Handler) error {
	setSiteName(m.siteName)
	setEnv(h, EnvSiteName, m.siteName)
	if h.Title == "" {
		h.Title = m.siteName
	}
	return nil
}
