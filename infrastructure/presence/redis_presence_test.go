package presence

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func setupPresence(t *testing.T) (*RedisPresence, *miniredis.Miniredis) {
	t.Helper()
	s := miniredis.RunT(t)
	store, err := NewRedisPresence(context.Background(), "redis://"+s.Addr(), 30*time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, s
}

func TestRedisPresence_Heartbeat_Expires(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	store, s := setupPresence(t)
	seen := time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return seen }

	// Given a heartbeat from Bob
	req.NoError(store.Heartbeat(ctx, "bob"))

	// Then Bob is online
	status, err := store.Status(ctx, "bob")
	req.NoError(err)
	req.True(status.Online)
	req.True(seen.Equal(status.LastSeen))

	// When the TTL lapses without another heartbeat
	s.FastForward(31 * time.Second)

	// Then Bob is offline but the last-seen time stays
	status, err = store.Status(ctx, "bob")
	req.NoError(err)
	req.False(status.Online)
	req.True(seen.Equal(status.LastSeen))
}

func TestRedisPresence_Disconnect(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	store, _ := setupPresence(t)

	req.NoError(store.Heartbeat(ctx, "alice"))
	req.NoError(store.Disconnect(ctx, "alice"))

	status, err := store.Status(ctx, "alice")
	req.NoError(err)
	req.False(status.Online)
	req.False(status.LastSeen.IsZero())
}

func TestRedisPresence_Unknown_Participant(t *testing.T) {
	req := require.New(t)
	store, _ := setupPresence(t)

	status, err := store.Status(context.Background(), "nobody")

	req.NoError(err)
	req.False(status.Online)
	req.True(status.LastSeen.IsZero())
}

func TestRedisPresence_Message_Notifications(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	store, _ := setupPresence(t)

	// Given no preference, notifications are enabled
	enabled, err := store.MessageNotificationsEnabled(ctx, "bob")
	req.NoError(err)
	req.True(enabled)

	// When Bob mutes message notifications
	req.NoError(store.SetMessageNotifications(ctx, "bob", false))
	enabled, err = store.MessageNotificationsEnabled(ctx, "bob")
	req.NoError(err)
	req.False(enabled)

	// When Bob turns them back on
	req.NoError(store.SetMessageNotifications(ctx, "bob", true))
	enabled, err = store.MessageNotificationsEnabled(ctx, "bob")
	req.NoError(err)
	req.True(enabled)
}

func TestRedisPresence_Unreachable(t *testing.T) {
	req := require.New(t)
	s := miniredis.RunT(t)
	addr := s.Addr()
	s.Close()

	_, err := NewRedisPresence(context.Background(), "redis://"+addr, time.Second)

	req.Error(err)
}
