package webapp

import (
	"regexp"
	"testing"

	"github.com/dadosjusbr/site/router"
)

func TestRoutesResolve(t *testing.T) {
	tests := []struct {
		path     string
		wantName string
		wantPage Page
		params   router.Params
	}{
		{"/", RouteHome, &HomePage{}, router.Params{}},
		{"/estado/PB", RouteState, &StatePage{}, router.Params{"stateName": "PB"}},
		{"/orgao/tjpb/2020", RouteAgencyYear, &AgencyYearPage{}, router.Params{"agencyName": "tjpb", "year": "2020"}},
		{"/orgao/tjpb/2020/1", RouteAgency, &AgencyPage{}, router.Params{"agencyName": "tjpb", "year": "2020", "month": "1"}},
		{"/sobre", RouteAbout, &AboutPage{}, router.Params{}},
		{"/contato", RouteContact, &ContactPage{}, router.Params{}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			m, ok := Routes().Resolve(tt.path)
			if !ok {
				t.Fatalf("Resolve(%q) found no route", tt.path)
			}
			if m.Route.Name != tt.wantName {
				t.Errorf("Resolve(%q) = %q, want %q", tt.path, m.Route.Name, tt.wantName)
			}
			for k, v := range tt.params {
				if m.Params[k] != v {
					t.Errorf("param %s = %q, want %q", k, m.Params[k], v)
				}
			}

			page, ok := ResolvePage(tt.path)
			if !ok {
				t.Fatalf("ResolvePage(%q) did not match", tt.path)
			}
			if got, want := typeName(page), typeName(tt.wantPage); got != want {
				t.Errorf("ResolvePage(%q) = %s, want %s", tt.path, got, want)
			}
		})
	}
}

func TestResolvePageNotFound(t *testing.T) {
	page, ok := ResolvePage("/nao/existe")
	if ok {
		t.Error("ResolvePage() should not match an unknown path")
	}
	if _, isNotFound := page.(*NotFoundPage); !isNotFound {
		t.Errorf("ResolvePage() = %T, want *NotFoundPage", page)
	}
}

func TestRouteRegexpsMatchTheirURLs(t *testing.T) {
	params := router.Params{"stateName": "PB", "agencyName": "tjpb", "year": "2020", "month": "1"}
	for _, r := range Routes().Routes() {
		u, err := r.Build(params)
		if err != nil {
			t.Fatalf("Build(%s) error = %v", r.Name, err)
		}
		if !regexp.MustCompile(r.Regexp()).MatchString(u) {
			t.Errorf("route %s: regexp %q does not match %q", r.Name, r.Regexp(), u)
		}
	}
}

func TestRouteNamesAreUsable(t *testing.T) {
	for _, name := range []string{RouteHome, RouteState, RouteAgencyYear, RouteAgency, RouteAbout, RouteContact} {
		if _, ok := Routes().Lookup(name); !ok {
			t.Errorf("route %q is not registered", name)
		}
	}
}

func typeName(p Page) string {
	switch p.(type) {
	case *HomePage:
		return "HomePage"
	case *StatePage:
		return "StatePage"
	case *AgencyYearPage:
		return "AgencyYearPage"
	case *AgencyPage:
		return "AgencyPage"
	case *AboutPage:
		return "AboutPage"
	case *ContactPage:
		return "ContactPage"
	case *NotFoundPage:
		return "NotFoundPage"
	default:
		return "unknown"
	}
}
