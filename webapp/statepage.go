package webapp

import (
	"fmt"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/dadosjusbr/site/router"
)

// StatePage shows a state or a branch of the justice system. The group is
// looked up from StateName on every render so client navigation between
// two groups updates the mounted page.
type StatePage struct {
	app.Compo
	StateName string
}

func newStatePage(p router.Params) Page {
	return &StatePage{StateName: p.Get("stateName")}
}

// Head returns the head tags of the state page
func (s *StatePage) Head() Head {
	g, ok := LookupGroup(s.StateName)
	if !ok {
		return Head{Title: "Grupo não encontrado"}
	}
	return Head{
		Title:       g.DisplayName(),
		Description: fmt.Sprintf("Órgãos do sistema de justiça: %s.", g.DisplayName()),
	}
}

// Render renders the state page
func (s *StatePage) Render() app.UI {
	g, ok := LookupGroup(s.StateName)
	if !ok {
		return app.Div().Class("state-page").Body(
			app.H2().Text(slugTitle(s.StateName)),
			app.Div().Class("error").Body(
				app.Text(fmt.Sprintf("Grupo não encontrado: '%s'", s.StateName)),
			),
			app.A().Href(link(RouteHome, nil)).Text("Voltar para o início"),
		)
	}

	kind := "Ramo da justiça"
	if g.State {
		kind = "Estado"
	}
	return app.Div().Class("state-page").Body(
		app.H2().Text(g.DisplayName()),
		app.P().Class("page-info").Text(kind),
		app.P().Text("Selecione um órgão para ver as remunerações mês a mês."),
		app.A().Href(link(RouteHome, nil)).Class("mdc-button").Text("Ver outros grupos"),
	)
}
