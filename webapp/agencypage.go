package webapp

import (
	"fmt"
	"strconv"
	"time"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/dadosjusbr/site/format"
	"github.com/dadosjusbr/site/router"
)

// FirstYear is the first year with collected payrolls
const FirstYear = 2018

// now is replaced in tests
var now = time.Now

// monthRef is a payroll month of an agency
type monthRef struct {
	year  int
	month int
}

func (m monthRef) first() time.Time {
	return time.Date(m.year, time.Month(m.month), 1, 0, 0, 0, 0, format.Location())
}

func (m monthRef) add(months int) monthRef {
	t := m.first().AddDate(0, months, 0)
	return monthRef{year: t.Year(), month: int(t.Month())}
}

// hasPrevious reports whether there may be data for the month before m
func (m monthRef) hasPrevious() bool {
	return m.first().After(time.Date(FirstYear, time.January, 1, 0, 0, 0, 0, format.Location()))
}

// hasNext reports whether the month after m has already started
func (m monthRef) hasNext() bool {
	return !m.add(1).first().After(now())
}

func parseYear(p router.Params) (int, error) {
	year, err := p.Int("year")
	if err != nil {
		return 0, fmt.Errorf("Parâmetro ano=%s inválido", p.Get("year"))
	}
	if year < FirstYear || year > now().Year() {
		return 0, fmt.Errorf("Não há dados para o ano %d", year)
	}
	return year, nil
}

// AgencyPage shows the payroll of an agency in a given month. Its fields
// are the raw route parameters; go-app copies exported fields into the
// mounted page on client navigation, so everything else is derived from them.
type AgencyPage struct {
	app.Compo
	AgencyName string
	Year       string
	Month      string
}

func newAgencyPage(p router.Params) Page {
	return &AgencyPage{
		AgencyName: p.Get("agencyName"),
		Year:       p.Get("year"),
		Month:      p.Get("month"),
	}
}

// ref validates the year and month parameters
func (a *AgencyPage) ref() (monthRef, error) {
	year, err := parseYear(router.Params{"year": a.Year})
	if err != nil {
		return monthRef{}, err
	}
	month, err := strconv.Atoi(a.Month)
	if err != nil || month < 1 || month > 12 {
		return monthRef{}, fmt.Errorf("Parâmetro mês=%s inválido", a.Month)
	}
	return monthRef{year: year, month: month}, nil
}

// Head returns the head tags of the agency page
func (a *AgencyPage) Head() Head {
	ref, err := a.ref()
	if err != nil {
		return Head{Title: agencyLabel(a.AgencyName)}
	}
	period, _ := format.MonthYear(ref.year, ref.month)
	return Head{
		Title:       fmt.Sprintf("%s - %s", agencyLabel(a.AgencyName), period),
		Description: fmt.Sprintf("Remunerações do %s em %s.", agencyLabel(a.AgencyName), period),
	}
}

func (a *AgencyPage) monthLink(ref monthRef) string {
	return link(RouteAgency, router.Params{
		"agencyName": a.AgencyName,
		"year":       strconv.Itoa(ref.year),
		"month":      strconv.Itoa(ref.month),
	})
}

// Render renders the agency page
func (a *AgencyPage) Render() app.UI {
	ref, err := a.ref()
	if err != nil {
		return app.Div().Class("agency-page").Body(
			app.H2().Text(agencyLabel(a.AgencyName)),
			app.Div().Class("error").Body(app.Text(err.Error())),
		)
	}

	period, _ := format.MonthYear(ref.year, ref.month)
	prev := ref.add(-1)
	next := ref.add(1)
	return app.Div().Class("agency-page").Body(
		app.H2().Text(agencyLabel(a.AgencyName)),
		app.H3().Class("agency-period").Text(period),
		app.Div().Class("month-nav").Body(
			app.If(ref.hasPrevious(), func() app.UI {
				return app.A().
					Class("mdc-button month-prev").
					Href(a.monthLink(prev)).
					Text("← " + format.MonthName(time.Month(prev.month)))
			}),
			app.A().
				Class("mdc-button month-year").
				Href(link(RouteAgencyYear, router.Params{
					"agencyName": a.AgencyName,
					"year":       strconv.Itoa(ref.year),
				})).
				Text(fmt.Sprintf("Ver %d", ref.year)),
			app.If(ref.hasNext(), func() app.UI {
				return app.A().
					Class("mdc-button month-next").
					Href(a.monthLink(next)).
					Text(format.MonthName(time.Month(next.month)) + " →")
			}),
		),
	)
}

// AgencyYearPage lists the months of a year for an agency
type AgencyYearPage struct {
	app.Compo
	AgencyName string
	Year       string
}

func newAgencyYearPage(p router.Params) Page {
	return &AgencyYearPage{
		AgencyName: p.Get("agencyName"),
		Year:       p.Get("year"),
	}
}

func (a *AgencyYearPage) year() (int, error) {
	return parseYear(router.Params{"year": a.Year})
}

// Head returns the head tags of the agency year page
func (a *AgencyYearPage) Head() Head {
	year, err := a.year()
	if err != nil {
		return Head{Title: agencyLabel(a.AgencyName)}
	}
	return Head{
		Title:       fmt.Sprintf("%s - %d", agencyLabel(a.AgencyName), year),
		Description: fmt.Sprintf("Remunerações do %s em %d, mês a mês.", agencyLabel(a.AgencyName), year),
	}
}

// months returns the months of year that have already started
func months(year int) []monthRef {
	var out []monthRef
	for m := 1; m <= 12; m++ {
		ref := monthRef{year: year, month: m}
		if ref.first().After(now()) {
			break
		}
		out = append(out, ref)
	}
	return out
}

// Render renders the agency year page
func (a *AgencyYearPage) Render() app.UI {
	year, err := a.year()
	if err != nil {
		return app.Div().Class("agency-year-page").Body(
			app.H2().Text(agencyLabel(a.AgencyName)),
			app.Div().Class("error").Body(app.Text(err.Error())),
		)
	}

	refs := months(year)
	return app.Div().Class("agency-year-page").Body(
		app.H2().Text(fmt.Sprintf("%s - %d", agencyLabel(a.AgencyName), year)),
		app.Ul().Class("month-list").Body(
			app.Range(refs).Slice(func(i int) app.UI {
				ref := refs[i]
				return app.Li().Body(
					app.A().
						Href(link(RouteAgency, router.Params{
							"agencyName": a.AgencyName,
							"year":       strconv.Itoa(ref.year),
							"month":      strconv.Itoa(ref.month),
						})).
						Text(format.MonthName(time.Month(ref.month))),
				)
			}),
		),
	)
}
