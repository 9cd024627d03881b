package repositories

import (
	"alumni-chat/domain/chat"
	"alumni-chat/runtime"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

var (
	alice = chat.Profile{ID: "alice", Name: "Alice"}
	bob   = chat.Profile{ID: "bob", Name: "Bob"}
	carol = chat.Profile{ID: "carol", Name: "Carol"}
)

type fixture struct {
	db            *badger.DB
	feed          *runtime.Feed
	messages      *MessageRepository
	conversations *ConversationRepository
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	feed := runtime.NewFeed()
	messages, err := NewMessageRepository(db, log, feed)
	require.NoError(t, err)
	t.Cleanup(func() { _ = messages.Close() })

	return fixture{
		db:            db,
		feed:          feed,
		messages:      messages,
		conversations: NewConversationRepository(db, log, feed),
	}
}

func (f fixture) direct(t *testing.T, a, b chat.Profile) chat.Conversation {
	t.Helper()
	c, err := f.conversations.GetOrCreateDirect(context.Background(), a, b)
	require.NoError(t, err)
	return c
}

func text(conversationID, senderID, body string) chat.Message {
	return chat.Message{ConversationID: conversationID, SenderID: senderID, Kind: chat.KindText, Body: body}
}

// waitFor reads snapshots until one satisfies cond. Snapshots coalesce, so
// tests assert on the eventual state rather than on each intermediate one.
func waitFor[T any](t *testing.T, sub *runtime.Subscription[T], cond func(T) bool) T {
	t.Helper()
	timeout := time.After(2 * time.Second)
	for {
		select {
		case snap, ok := <-sub.Snapshots():
			require.True(t, ok, "subscription closed")
			require.NoError(t, snap.Err)
			if cond(snap.Value) {
				return snap.Value
			}
		case <-timeout:
			require.FailNow(t, "expected snapshot never arrived")
		}
	}
}
