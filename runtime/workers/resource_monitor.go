package workers

import (
	"context"
	"log/slog"
	"os"
	"reflect"
	goruntime "runtime"
	"time"

	"github.com/shirou/gopsutil/process"
)

type NamedChannel struct {
	Name    string
	Channel any
}

type ChannelUsage struct {
	Name     string
	Length   int
	Capacity int
}

// Left is the room before a send would block or drop. Zero for unbuffered channels.
func (u ChannelUsage) Left() int {
	return u.Capacity - u.Length
}

// ResourceMonitorWorker periodically samples the buffered channels of the
// event pipeline and the resource usage of the process. Reading len and cap
// of a channel never blocks, so sampling does not disturb the producers.
type ResourceMonitorWorker struct {
	log                  *slog.Logger
	channels             []NamedChannel
	lowCapacityThreshold int
	interval             time.Duration
	process              *process.Process
}

func NewResourceMonitorWorker(log *slog.Logger, channels []NamedChannel,
	lowCapacityThreshold int, interval time.Duration) *ResourceMonitorWorker {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		log.Warn("Process stats unavailable", "error", err)
		p = nil
	}
	return &ResourceMonitorWorker{
		log:                  log,
		channels:             channels,
		lowCapacityThreshold: lowCapacityThreshold,
		interval:             interval,
		process:              p,
	}
}

func (w *ResourceMonitorWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping resource monitor")
			return nil
		case <-ticker.C:
			w.SampleChannels()
			w.sampleProcess()
		}
	}
}

// SampleChannels reports every channel and warns on the ones close to full.
func (w *ResourceMonitorWorker) SampleChannels() []ChannelUsage {
	usages := make([]ChannelUsage, 0, len(w.channels))
	for _, nc := range w.channels {
		v := reflect.ValueOf(nc.Channel)
		if v.Kind() != reflect.Chan {
			w.log.Error("Provided object is not a channel", "name", nc.Name)
			continue
		}
		usage := ChannelUsage{Name: nc.Name, Length: v.Len(), Capacity: v.Cap()}
		usages = append(usages, usage)
		w.log.Debug("Channel usage", "name", usage.Name, "length", usage.Length, "capacity", usage.Capacity)
		if usage.Capacity > 0 && usage.Left() <= w.lowCapacityThreshold {
			w.log.Warn("Channel close to saturation", "name", usage.Name, "left", usage.Left())
		}
	}
	return usages
}

func (w *ResourceMonitorWorker) sampleProcess() {
	if w.process == nil {
		return
	}
	memInfo, err := w.process.MemoryInfo()
	if err != nil {
		w.log.Error("Failed to collect self stats", "error", err)
		return
	}
	cpuPercent, err := w.process.CPUPercent()
	if err != nil {
		w.log.Error("Failed to collect self stats", "error", err)
		return
	}
	w.log.Debug("Process usage",
		"rss_bytes", memInfo.RSS,
		"cpu_percent", cpuPercent,
		"goroutines", goruntime.NumGoroutine())
}
