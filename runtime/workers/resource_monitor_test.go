package workers

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestResourceMonitorWorker_SampleChannels(t *testing.T) {
	req := require.New(t)

	// Given a nearly full channel, an empty one and something that is not a channel
	busy := make(chan int, 4)
	busy <- 1
	busy <- 2
	busy <- 3
	idle := make(chan string, 8)
	w := NewResourceMonitorWorker(logs.GetLoggerFromLevel(slog.LevelDebug), []NamedChannel{
		{Name: "busy", Channel: busy},
		{Name: "idle", Channel: idle},
		{Name: "bogus", Channel: 42},
	}, 1, time.Second)

	// When
	usages := w.SampleChannels()

	// Then the bogus entry is skipped
	req.Equal([]ChannelUsage{
		{Name: "busy", Length: 3, Capacity: 4},
		{Name: "idle", Length: 0, Capacity: 8},
	}, usages)
	req.Equal(1, usages[0].Left())
}

func TestResourceMonitorWorker_Run_Stops_With_Context(t *testing.T) {
	w := NewResourceMonitorWorker(logs.GetLoggerFromLevel(slog.LevelDebug), nil, 1, 5*time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	require.NoError(t, w.Run(ctx))
}
