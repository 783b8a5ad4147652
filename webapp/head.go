package webapp

import (
	"sync"

	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// SiteName is used when no HeadManager configured another name
const SiteName = "DadosJusBr"

var (
	headMu   sync.RWMutex
	siteName = SiteName
)

func setSiteName(name string) {
	if name == "" {
		return
	}
	headMu.Lock()
	siteName = name
	headMu.Unlock()
}

func currentSiteName() string {
	headMu.RLock()
	defer headMu.RUnlock()
	return siteName
}

// FullTitle returns the document title for a page head
func FullTitle(h Head) string {
	name := currentSiteName()
	if h.Title == "" || h.Title == name {
		return name
	}
	return h.Title + " | " + name
}

// applyHead writes the page head tags
func applyHead(p app.Page, h Head) {
	p.SetTitle("%s", FullTitle(h))
	if h.Description != "" {
		p.SetDescription("%s", h.Description)
	}
}
