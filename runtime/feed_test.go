package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestFeed_Notify_Coalesces(t *testing.T) {
	req := require.New(t)
	feed := NewFeed()
	changes, unlisten := feed.Listen("messages:a")
	defer unlisten()

	// When the topic is notified several times before anyone reads
	feed.Notify("messages:a")
	feed.Notify("messages:a", "messages:b")

	// Then a single signal is pending
	req.Len(changes, 1)
	<-changes
	req.Len(changes, 0)
}

func TestFeed_Unlisten(t *testing.T) {
	req := require.New(t)
	feed := NewFeed()
	_, unlisten := feed.Listen("participant:alice")
	req.Equal(1, feed.ListenerCount("participant:alice"))

	unlisten()
	unlisten()

	req.Equal(0, feed.ListenerCount("participant:alice"))
	feed.Notify("participant:alice")
}

func TestWatch_Emits_Initial_And_Live_Snapshots(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	feed := NewFeed()
	var version atomic.Int32

	sub := Watch(context.Background(), log, feed, "topic", func(ctx context.Context) (int32, error) {
		return version.Load(), nil
	})
	defer sub.Close()

	// Then the first snapshot reflects the current state
	first := <-sub.Snapshots()
	req.NoError(first.Err)
	req.Equal(int32(0), first.Value)

	// When the state changes and the topic is notified
	version.Store(7)
	feed.Notify("topic")

	// Then a fresh snapshot follows
	select {
	case snap := <-sub.Snapshots():
		req.Equal(int32(7), snap.Value)
	case <-time.After(time.Second):
		req.Fail("no snapshot after change")
	}
}

func TestWatch_Close_Releases_Listener(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	feed := NewFeed()

	sub := Watch(context.Background(), log, feed, "topic", func(ctx context.Context) (string, error) {
		return "ok", nil
	})
	<-sub.Snapshots()

	sub.Close()
	sub.Close()

	req.Equal(0, feed.ListenerCount("topic"))
	_, open := <-sub.Snapshots()
	req.False(open)
}

func TestWatch_Load_Error_Ends_Subscription(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	feed := NewFeed()

	sub := Watch(context.Background(), log, feed, "topic", func(ctx context.Context) (string, error) {
		return "", fmt.Errorf("db closed")
	})
	defer sub.Close()

	snap := <-sub.Snapshots()
	req.ErrorContains(snap.Err, "subscription failure")
	_, open := <-sub.Snapshots()
	req.False(open)
}
