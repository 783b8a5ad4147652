package webapp

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/dadosjusbr/site/router"
)

// ContactEmail is shown on the contact page
const ContactEmail = "dadosjusbr@gmail.com"

// AboutPage describes the project
type AboutPage struct {
	app.Compo
}

func newAboutPage(router.Params) Page {
	return &AboutPage{}
}

// Head returns the head tags of the about page
func (a *AboutPage) Head() Head {
	return Head{
		Title:       "Sobre",
		Description: "O que é o DadosJusBr e como os dados são coletados.",
	}
}

// Render renders the about page
func (a *AboutPage) Render() app.UI {
	return app.Div().Class("about-page").Body(
		app.H2().Text("Sobre o DadosJusBr"),
		app.Div().Class("about-content").Body(
			app.Div().Class("about-section").Body(
				app.H3().Text("O projeto"),
				app.P().Text("O DadosJusBr coleta, padroniza e publica as remunerações de membros do sistema de justiça brasileiro."),
				app.P().Text("Os dados são obtidos dos portais de transparência de cada órgão e disponibilizados em formato aberto."),
			),
			app.Div().Class("about-section").Body(
				app.H3().Text("Como usar"),
				app.P().Body(
					app.Text("Comece pela "),
					app.A().Href(link(RouteHome, nil)).Text("página inicial"),
					app.Text(" e escolha um estado ou um ramo da justiça."),
				),
			),
		),
	)
}

// ContactPage shows how to reach the team
type ContactPage struct {
	app.Compo
}

func newContactPage(router.Params) Page {
	return &ContactPage{}
}

// Head returns the head tags of the contact page
func (c *ContactPage) Head() Head {
	return Head{
		Title:       "Contato",
		Description: "Fale com a equipe do DadosJusBr.",
	}
}

// Render renders the contact page
func (c *ContactPage) Render() app.UI {
	return app.Div().Class("contact-page").Body(
		app.H2().Text("Contato"),
		app.P().Text("Dúvidas, sugestões ou problemas com os dados? Escreva para a equipe."),
		app.P().Body(
			app.Strong().Text("E-mail: "),
			app.A().Href("mailto:"+ContactEmail).Text(ContactEmail),
		),
	)
}
