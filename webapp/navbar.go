package webapp

import (
	"fmt"
	"time"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/dadosjusbr/site/format"
)

// NavBar is the navigation bar component
type NavBar struct {
	app.Compo
}

// Render renders the navigation bar
func (n *NavBar) Render() app.UI {
	return app.Nav().
		Class("navbar mdc-top-app-bar").
		Body(
			app.Div().Class("navbar-brand").Body(
				app.A().
					Href(link(RouteHome, nil)).
					Body(app.H1().Text(currentSiteName())),
			),
			app.Div().Class("navbar-menu").Body(
				n.renderItem("Início", link(RouteHome, nil)),
				n.renderItem("Sobre", link(RouteAbout, nil)),
				n.renderItem("Contato", link(RouteContact, nil)),
			),
		)
}

func (n *NavBar) renderItem(label, href string) app.UI {
	return app.A().
		Href(href).
		Class("navbar-item mdc-button").
		Body(app.Span().Class("mdc-button__label").Text(label))
}

// Footer shows the build information
type Footer struct {
	app.Compo
}

// Render renders the footer
func (f *Footer) Render() app.UI {
	return app.Footer().
		Class("footer").
		Body(
			app.P().Text("DadosJusBr: dados abertos sobre remunerações do sistema de justiça."),
			app.Span().Class("version-info").Text(versionInfo(time.Now())),
		)
}

// versionInfo returns formatted version and date information. Without a build
// date the render time is shown.
func versionInfo(now time.Time) string {
	date := BuildDate
	if date == "" {
		date = format.DateTime(now)
	}
	return fmt.Sprintf("%s | %s", Version, date)
}
