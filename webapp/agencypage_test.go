package webapp

import (
	"strings"
	"testing"
	"time"

	"github.com/dadosjusbr/site/format"
	"github.com/dadosjusbr/site/router"
)

// stubNow fixes the current time for the duration of a test
func stubNow(t *testing.T, ts time.Time) {
	t.Helper()
	orig := now
	now = func() time.Time { return ts }
	t.Cleanup(func() { now = orig })
}

func TestMonthRefNavigation(t *testing.T) {
	stubNow(t, time.Date(2021, time.March, 15, 12, 0, 0, 0, time.UTC))

	tests := []struct {
		name         string
		ref          monthRef
		wantPrevious bool
		wantNext     bool
	}{
		{"first month with data", monthRef{2018, 1}, false, true},
		{"second month", monthRef{2018, 2}, true, true},
		{"last closed month", monthRef{2021, 2}, true, true},
		{"current month", monthRef{2021, 3}, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ref.hasPrevious(); got != tt.wantPrevious {
				t.Errorf("hasPrevious() = %v, want %v", got, tt.wantPrevious)
			}
			if got := tt.ref.hasNext(); got != tt.wantNext {
				t.Errorf("hasNext() = %v, want %v", got, tt.wantNext)
			}
		})
	}
}

func TestMonthRefAdd(t *testing.T) {
	tests := []struct {
		ref    monthRef
		months int
		want   monthRef
	}{
		{monthRef{2020, 12}, 1, monthRef{2021, 1}},
		{monthRef{2020, 1}, -1, monthRef{2019, 12}},
		{monthRef{2020, 6}, 0, monthRef{2020, 6}},
	}
	for _, tt := range tests {
		if got := tt.ref.add(tt.months); got != tt.want {
			t.Errorf("%v.add(%d) = %v, want %v", tt.ref, tt.months, got, tt.want)
		}
	}
}

func TestParseYear(t *testing.T) {
	stubNow(t, time.Date(2021, time.March, 15, 12, 0, 0, 0, time.UTC))

	tests := []struct {
		year    string
		want    int
		wantErr bool
	}{
		{"2020", 2020, false},
		{"2018", 2018, false},
		{"2021", 2021, false},
		{"2017", 0, true},
		{"2022", 0, true},
		{"abc", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.year, func(t *testing.T) {
			got, err := parseYear(router.Params{"year": tt.year})
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseYear(%q) error = %v, wantErr %v", tt.year, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseYear(%q) = %d, want %d", tt.year, got, tt.want)
			}
		})
	}
}

func TestAgencyPage(t *testing.T) {
	stubNow(t, time.Date(2021, time.March, 15, 12, 0, 0, 0, time.UTC))

	t.Run("valid month", func(t *testing.T) {
		page := newAgencyPage(router.Params{"agencyName": "tjpb", "year": "2020", "month": "1"}).(*AgencyPage)
		ref, err := page.ref()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := page.Head().Title; got != "TJPB - Janeiro de 2020" {
			t.Errorf("Head().Title = %q", got)
		}
		if got := page.monthLink(ref.add(-1)); got != "/orgao/tjpb/2019/12" {
			t.Errorf("previous month link = %q", got)
		}
		if page.Render() == nil {
			t.Error("Render should return non-nil UI")
		}
	})

	t.Run("invalid month", func(t *testing.T) {
		page := newAgencyPage(router.Params{"agencyName": "tjpb", "year": "2020", "month": "13"}).(*AgencyPage)
		_, err := page.ref()
		if err == nil {
			t.Fatal("month 13 should be rejected")
		}
		if !strings.Contains(err.Error(), "mês=13") {
			t.Errorf("error = %q", err)
		}
		if page.Head().Title != "TJPB" {
			t.Errorf("Head().Title = %q, want TJPB", page.Head().Title)
		}
		if page.Render() == nil {
			t.Error("error state should return non-nil UI")
		}
	})

	t.Run("year out of range", func(t *testing.T) {
		page := newAgencyPage(router.Params{"agencyName": "tjpb", "year": "2015", "month": "1"}).(*AgencyPage)
		if _, err := page.ref(); err == nil {
			t.Fatal("2015 should be rejected")
		}
	})
}

func TestAgencyYearPageMonths(t *testing.T) {
	stubNow(t, time.Date(2021, time.March, 15, 12, 0, 0, 0, time.UTC))

	tests := []struct {
		year string
		want int
	}{
		{"2020", 12},
		{"2021", 3},
	}
	for _, tt := range tests {
		t.Run(tt.year, func(t *testing.T) {
			page := newAgencyYearPage(router.Params{"agencyName": "mppb", "year": tt.year}).(*AgencyYearPage)
			year, err := page.year()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := len(months(year)); got != tt.want {
				t.Errorf("months() = %d entries, want %d", got, tt.want)
			}
			if page.Render() == nil {
				t.Error("Render should return non-nil UI")
			}
		})
	}
}

func TestMonthRefUsesConfiguredLocation(t *testing.T) {
	orig := format.Location()
	t.Cleanup(func() { format.SetLocation(orig) })

	loc := time.FixedZone("BRT", -3*60*60)
	format.SetLocation(loc)
	if got := (monthRef{2020, 1}).first().Location(); got != loc {
		t.Errorf("first() location = %v, want %v", got, loc)
	}
}
