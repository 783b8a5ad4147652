package webapp

import (
	"strings"

	"github.com/dadosjusbr/site/format"
)

// Group is a set of agencies listed together: a state or a branch of the
// justice system
type Group struct {
	Slug  string
	Name  string
	State bool
}

var states = []Group{
	{Slug: "AC", Name: "Acre", State: true},
	{Slug: "AL", Name: "Alagoas", State: true},
	{Slug: "AP", Name: "Amapá", State: true},
	{Slug: "AM", Name: "Amazonas", State: true},
	{Slug: "BA", Name: "Bahia", State: true},
	{Slug: "CE", Name: "Ceará", State: true},
	{Slug: "DF", Name: "Distrito Federal", State: true},
	{Slug: "ES", Name: "Espírito Santo", State: true},
	{Slug: "GO", Name: "Goiás", State: true},
	{Slug: "MA", Name: "Maranhão", State: true},
	{Slug: "MT", Name: "Mato Grosso", State: true},
	{Slug: "MS", Name: "Mato Grosso do Sul", State: true},
	{Slug: "MG", Name: "Minas Gerais", State: true},
	{Slug: "PA", Name: "Pará", State: true},
	{Slug: "PB", Name: "Paraíba", State: true},
	{Slug: "PR", Name: "Paraná", State: true},
	{Slug: "PE", Name: "Pernambuco", State: true},
	{Slug: "PI", Name: "Piauí", State: true},
	{Slug: "RJ", Name: "Rio de Janeiro", State: true},
	{Slug: "RN", Name: "Rio Grande do Norte", State: true},
	{Slug: "RS", Name: "Rio Grande do Sul", State: true},
	{Slug: "RO", Name: "Rondônia", State: true},
	{Slug: "RR", Name: "Roraima", State: true},
	{Slug: "SC", Name: "Santa Catarina", State: true},
	{Slug: "SP", Name: "São Paulo", State: true},
	{Slug: "SE", Name: "Sergipe", State: true},
	{Slug: "TO", Name: "Tocantins", State: true},
}

var jurisdictions = []Group{
	{Slug: "justica-eleitoral", Name: "Justiça Eleitoral"},
	{Slug: "ministerios-publicos", Name: "Ministérios Públicos"},
	{Slug: "justica-estadual", Name: "Justiça Estadual"},
	{Slug: "justica-do-trabalho", Name: "Justiça do Trabalho"},
	{Slug: "justica-federal", Name: "Justiça Federal"},
	{Slug: "justica-militar", Name: "Justiça Militar"},
	{Slug: "justica-superior", Name: "Justiça Superior"},
	{Slug: "conselhos-de-justica", Name: "Conselhos de Justiça"},
}

// LookupGroup finds a state by its UF code (any case) or a jurisdiction by
// its slug
func LookupGroup(name string) (Group, bool) {
	for _, g := range jurisdictions {
		if strings.EqualFold(g.Slug, name) {
			return g, true
		}
	}
	for _, g := range states {
		if strings.EqualFold(g.Slug, name) {
			return g, true
		}
	}
	return Group{}, false
}

// DisplayName is the heading used for the group
func (g Group) DisplayName() string {
	if g.State {
		return g.Name + " (" + g.Slug + ")"
	}
	return g.Name
}

// agencyLabel upper-cases an agency id for headings, "tjpb" becomes "TJPB"
func agencyLabel(id string) string {
	return strings.ToUpper(id)
}

// slugTitle turns an unknown slug into readable text for error messages
func slugTitle(slug string) string {
	return format.Title(strings.ReplaceAll(slug, "-", " "))
}
