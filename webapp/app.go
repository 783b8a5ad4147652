package webapp

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// App is the root component of the application
type App struct {
	app.Compo
	path string
	page Page
}

// OnPreRender is called when the page is rendered on the server
func (a *App) OnPreRender(ctx app.Context) {
	a.navigate(ctx)
}

// OnNav is called when navigation occurs in the browser
func (a *App) OnNav(ctx app.Context) {
	a.navigate(ctx)
	trackPageView(a.path, FullTitle(a.page.Head()))
}

// navigate resolves the current URL to a page and updates the head tags
func (a *App) navigate(ctx app.Context) {
	a.path = ctx.Page().URL().Path
	a.page, _ = ResolvePage(a.path)
	applyHead(ctx.Page(), a.page.Head())
}

// Render renders the app
func (a *App) Render() app.UI {
	return app.Div().
		Class("app-container").
		Body(
			app.Header().Body(
				&NavBar{},
			),
			app.Main().Class("main-content").Body(
				app.Div().Class("content").Body(
					a.renderPage(),
				),
			),
			&Footer{},
		)
}

// renderPage renders the resolved page, or a placeholder before the first
// navigation
func (a *App) renderPage() app.UI {
	if a.page == nil {
		return app.Div().Class("loading").Body(app.Text("Carregando..."))
	}
	return a.page
}
