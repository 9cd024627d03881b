package workers

import (
	"context"
	"log/slog"
	"time"
)

// Probe checks one dependency.
type Probe struct {
	Name  string
	Check func(ctx context.Context) error
}

type ServingStatusSetter interface {
	SetServing(serving bool)
}

// HealthProbeWorker periodically runs every probe and reports the process
// as serving only when all of them pass.
type HealthProbeWorker struct {
	log          *slog.Logger
	probes       []Probe
	status       ServingStatusSetter
	interval     time.Duration
	probeTimeout time.Duration
	serving      *bool
}

func NewHealthProbeWorker(log *slog.Logger, status ServingStatusSetter,
	interval time.Duration, probes ...Probe) *HealthProbeWorker {
	return &HealthProbeWorker{
		log:          log,
		probes:       probes,
		status:       status,
		interval:     interval,
		probeTimeout: interval / 2,
	}
}

func (w *HealthProbeWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.check(ctx)
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping health probes")
			return nil
		case <-ticker.C:
			w.check(ctx)
		}
	}
}

func (w *HealthProbeWorker) check(ctx context.Context) {
	serving := true
	for _, probe := range w.probes {
		probeCtx, cancel := context.WithTimeout(ctx, w.probeTimeout)
		err := probe.Check(probeCtx)
		cancel()
		if err != nil {
			serving = false
			w.log.Warn("Health probe failed", "probe", probe.Name, "error", err)
		}
	}
	if w.serving != nil && *w.serving == serving {
		return
	}
	w.serving = &serving
	w.status.SetServing(serving)
	w.log.Info("Serving status changed", "serving", serving)
}
