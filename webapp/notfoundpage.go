package webapp

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// NotFoundPage displays a 404 error message
type NotFoundPage struct {
	app.Compo
}

// Head returns the head tags of the 404 page
func (p *NotFoundPage) Head() Head {
	return Head{Title: "Página não encontrada"}
}

// Render renders the 404 page
func (p *NotFoundPage) Render() app.UI {
	return app.Div().
		Class("not-found-page").
		Body(
			app.Div().
				Class("not-found-container").
				Body(
					app.H1().
						Class("not-found-title").
						Text("404"),
					app.H2().
						Class("not-found-subtitle").
						Text("Página não encontrada"),
					app.P().
						Class("not-found-message").
						Text("A página que você procura não existe ou foi movida."),
					app.Div().
						Class("not-found-actions").
						Body(
							app.A().
								Href(link(RouteHome, nil)).
								Class("not-found-home-link").
								Text("Voltar para o início"),
						),
				),
		)
}
