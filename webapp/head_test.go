package webapp

import (
	"testing"
	"time"

	"github.com/dadosjusbr/site/format"
)

func TestFullTitle(t *testing.T) {
	tests := []struct {
		name string
		head Head
		want string
	}{
		{"empty title", Head{}, "DadosJusBr"},
		{"site name", Head{Title: SiteName}, "DadosJusBr"},
		{"page title", Head{Title: "Sobre"}, "Sobre | DadosJusBr"},
		{"description ignored", Head{Title: "Contato", Description: "x"}, "Contato | DadosJusBr"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FullTitle(tt.head); got != tt.want {
				t.Errorf("FullTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSetSiteNameIgnoresEmpty(t *testing.T) {
	t.Cleanup(func() { setSiteName(SiteName) })
	setSiteName("")
	if currentSiteName() != SiteName {
		t.Errorf("currentSiteName() = %q, want %q", currentSiteName(), SiteName)
	}
}

func TestVersionInfo(t *testing.T) {
	origVersion, origDate, origLoc := Version, BuildDate, format.Location()
	t.Cleanup(func() {
		Version, BuildDate = origVersion, origDate
		format.SetLocation(origLoc)
	})
	format.SetLocation(time.UTC)

	Version = "v1.2.3"
	BuildDate = "2024-05-01"
	if got := versionInfo(time.Now()); got != "v1.2.3 | 2024-05-01" {
		t.Errorf("versionInfo() = %q", got)
	}

	BuildDate = ""
	ts := time.Date(2024, time.May, 2, 12, 0, 0, 0, time.UTC)
	if got := versionInfo(ts); got != "v1.2.3 | 02/05/2024 12:00" {
		t.Errorf("versionInfo() without build date = %q", got)
	}
}
