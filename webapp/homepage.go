package webapp

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/dadosjusbr/site/router"
)

// HomePage lists the states and the branches of the justice system
type HomePage struct {
	app.Compo
}

func newHomePage(router.Params) Page {
	return &HomePage{}
}

// Head returns the head tags of the home page
func (h *HomePage) Head() Head {
	return Head{
		Description: "Remunerações de membros do sistema de justiça brasileiro, por estado e por órgão.",
	}
}

// Render renders the home page
func (h *HomePage) Render() app.UI {
	return app.Div().
		Class("home-page").
		Body(
			app.H2().Text("Remunerações do sistema de justiça"),
			app.P().Class("page-info").Text(
				"Escolha um estado ou um ramo da justiça para ver os órgãos e suas folhas de pagamento."),
			app.Section().Class("group-section").Body(
				app.H3().Text("Por ramo"),
				h.renderGroups(jurisdictions),
			),
			app.Section().Class("group-section").Body(
				app.H3().Text("Por estado"),
				h.renderGroups(states),
			),
		)
}

func (h *HomePage) renderGroups(groups []Group) app.UI {
	return app.Div().Class("group-grid").Body(
		app.Range(groups).Slice(func(i int) app.UI {
			g := groups[i]
			return app.A().
				Class("group-card mdc-card").
				Href(link(RouteState, router.Params{"stateName": g.Slug})).
				Body(
					app.Span().Class("group-name").Text(g.Name),
					app.If(g.State, func() app.UI {
						return app.Span().Class("group-slug").Text(g.Slug)
					}),
				)
		}),
	)
}
