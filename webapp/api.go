package webapp

import (
	"sync"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/dadosjusbr/site/apiclient"
)

// Keys of the environment passed from the server to the browser
const (
	EnvAPIURL      = "DADOSJUSBR_API_URL"
	EnvAnalyticsID = "DADOSJUSBR_ANALYTICS_ID"
	EnvTimezone    = "DADOSJUSBR_TIMEZONE"
	EnvSiteName    = "DADOSJUSBR_SITE_NAME"
	EnvVersion     = "DADOSJUSBR_VERSION"
	EnvBuildDate   = "DADOSJUSBR_BUILD_DATE"
)

var (
	apiMu     sync.RWMutex
	apiClient *apiclient.Client
)

// SetAPI attaches the shared API client to the application
func SetAPI(c *apiclient.Client) {
	apiMu.Lock()
	apiClient = c
	apiMu.Unlock()
}

// API returns the shared API client. In the browser it is built on first use
// from the base URL the server passed in the page environment; it returns nil
// when no base URL is known.
func API() *apiclient.Client {
	apiMu.RLock()
	c := apiClient
	apiMu.RUnlock()
	if c != nil || !app.IsClient {
		return c
	}

	apiMu.Lock()
	defer apiMu.Unlock()
	if apiClient != nil {
		return apiClient
	}
	c, err := apiclient.New(app.Getenv(EnvAPIURL))
	if err != nil {
		app.Log("api client not configured:", err)
		return nil
	}
	apiClient = c
	return apiClient
}
