package server

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/dadosjusbr/site/prerender"
)

// InitializeSchedules refreshes the prerendered snapshots now and then on the
// configured schedule. It returns nil when no schedule is set.
func (h *Handler) InitializeSchedules(ctx context.Context) (*cron.Cron, error) {
	if h.Config.PrerenderSchedule == "" {
		Logger.Info("Prerender schedule not set, snapshots will not be refreshed")
		return nil, nil
	}

	c := cron.New()
	var refreshJob cron.Job
	refreshJob = cron.FuncJob(func() { h.refreshJobFunc(ctx) })
	refreshJob = cron.NewChain(cron.SkipIfStillRunning(cron.DefaultLogger)).Then(refreshJob) //ensure we don't kick off another if old one is still running
	if _, err := c.AddJob(h.Config.PrerenderSchedule, refreshJob); err != nil {
		return nil, fmt.Errorf("invalid prerender schedule %q: %w", h.Config.PrerenderSchedule, err)
	}

	// Run the refresh job immediately at startup in a goroutine
	Logger.Info("Running prerender job at startup")
	go h.refreshJobFunc(ctx)

	Logger.Info("Adding prerender job scheduler", "schedule", h.Config.PrerenderSchedule)
	c.Start()
	return c, nil
}

func (h *Handler) refreshJobFunc(ctx context.Context) {
	if _, err := h.RefreshSnapshots(ctx); err != nil {
		Logger.Error("Prerender refresh failed", "error", err)
	}
}

// RefreshSnapshots renders the configured routes through the go-app handler
// and replaces the snapshots in the static directory
func (h *Handler) RefreshSnapshots(ctx context.Context) (prerender.Report, error) {
	h.refreshMu.Lock()
	defer h.refreshMu.Unlock()

	if h.Config.StaticDir == "" {
		return prerender.Report{}, fmt.Errorf("static directory not configured")
	}
	return prerender.Run(ctx, prerender.StaticRenderer{Handler: h.App}, h.Config.StaticDir, h.Config.PrerenderRoutes)
}
