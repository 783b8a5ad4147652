// Package format renders dates, numbers and sizes the way the site shows
// them to Brazilian readers.
package format

import (
	"fmt"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var months = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

var (
	mu      sync.RWMutex
	loc     = time.UTC
	printer = message.NewPrinter(language.BrazilianPortuguese)
	titler  = cases.Title(language.BrazilianPortuguese)
)

// SetLocation sets the time zone dates are shown in.
func SetLocation(l *time.Location) {
	if l == nil {
		return
	}
	mu.Lock()
	loc = l
	mu.Unlock()
}

// Location returns the configured time zone.
func Location() *time.Location {
	mu.RLock()
	defer mu.RUnlock()
	return loc
}

// MonthName returns the Portuguese name of m.
func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return months[m-1]
}

// MonthYear formats a month reference, e.g. "Janeiro de 2020".
func MonthYear(year, month int) (string, error) {
	if month < 1 || month > 12 {
		return "", fmt.Errorf("invalid month %d", month)
	}
	if year < 1 {
		return "", fmt.Errorf("invalid year %d", year)
	}
	return fmt.Sprintf("%s de %d", months[month-1], year), nil
}

// Date formats t as dd/mm/yyyy in the configured location.
func Date(t time.Time) string {
	return t.In(Location()).Format("02/01/2006")
}

// DateTime formats t as dd/mm/yyyy hh:mm in the configured location.
func DateTime(t time.Time) string {
	return t.In(Location()).Format("02/01/2006 15:04")
}

// Title capitalises each word of s.
func Title(s string) string {
	mu.Lock()
	defer mu.Unlock()
	return titler.String(s)
}

// Number formats f with two decimals and Brazilian digit grouping.
func Number(f float64) string {
	mu.Lock()
	defer mu.Unlock()
	return printer.Sprintf("%.2f", f)
}

// Bytes formats a size for download links and build reports.
func Bytes(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.Bytes(uint64(n))
}
