package webapp

import (
	"sync"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/dadosjusbr/site/router"
)

// Route names
const (
	RouteHome       = "home"
	RouteState      = "state"
	RouteAgencyYear = "agency-year"
	RouteAgency     = "agency"
	RouteAbout      = "about"
	RouteContact    = "contact"
)

// Head holds the tags a page sets in the document head
type Head struct {
	Title       string
	Description string
}

// Page is a routed view
type Page interface {
	app.Composer
	Head() Head
}

// PageFunc builds the page for a resolved route
type PageFunc func(params router.Params) Page

var (
	routesOnce sync.Once
	routes     *router.Table[PageFunc]

	registerOnce sync.Once
)

// Routes returns the site route table
func Routes() *router.Table[PageFunc] {
	routesOnce.Do(func() {
		routes = router.MustNew(
			router.Route[PageFunc]{Path: "/", Name: RouteHome, Component: newHomePage},
			router.Route[PageFunc]{Path: "/estado/:stateName", Name: RouteState, Component: newStatePage},
			router.Route[PageFunc]{Path: "/orgao/:agencyName/:year", Name: RouteAgencyYear, Component: newAgencyYearPage},
			router.Route[PageFunc]{Path: "/orgao/:agencyName/:year/:month", Name: RouteAgency, Component: newAgencyPage},
			router.Route[PageFunc]{Path: "/sobre", Name: RouteAbout, Component: newAboutPage},
			router.Route[PageFunc]{Path: "/contato", Name: RouteContact, Component: newContactPage},
		)
	})
	return routes
}

// ResolvePage returns the page for path and whether a route matched. Unknown
// paths get the NotFoundPage.
func ResolvePage(path string) (Page, bool) {
	m, ok := Routes().Resolve(path)
	if !ok {
		return &NotFoundPage{}, false
	}
	return m.Route.Component(m.Params), true
}

// link builds the URL of a named route. Names are constants of this package,
// so a failure is a programming error.
func link(name string, params router.Params) string {
	return Routes().MustURL(name, params)
}

// RegisterRoutes registers every route of the table with the go-app router.
// Every route renders the App component, which picks the page.
func RegisterRoutes() {
	registerOnce.Do(func() {
		for _, r := range Routes().Routes() {
			app.RouteWithRegexp(r.Regexp(), newApp)
		}
		// Unknown paths still get the layout and the NotFoundPage
		app.RouteWithRegexp(`^/.*$`, newApp)
	})
}

func newApp() app.Composer {
	return &App{}
}
