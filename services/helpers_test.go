package services_test

import (
	"alumni-chat/contract"
	"alumni-chat/domain/event"
	"alumni-chat/infrastructure/search"
	"alumni-chat/moderation"
	"alumni-chat/repositories"
	"alumni-chat/runtime"
	"alumni-chat/services"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

// recordingPublisher keeps published events instead of fanning them out.
type recordingPublisher struct {
	mu     sync.Mutex
	events []event.DomainEvent
}

func (p *recordingPublisher) Publish(e event.DomainEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

func (p *recordingPublisher) recorded() []event.DomainEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]event.DomainEvent(nil), p.events...)
}

var _ contract.EventPublisher = (*recordingPublisher)(nil)

type stack struct {
	service       *services.ChatService
	messages      *repositories.MessageRepository
	conversations *repositories.ConversationRepository
	registry      *runtime.Registry
	index         *search.MessageIndex
	publisher     *recordingPublisher
}

func newStack(t *testing.T) stack {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	feed := runtime.NewFeed()
	messages, err := repositories.NewMessageRepository(db, log, feed)
	require.NoError(t, err)
	t.Cleanup(func() { _ = messages.Close() })
	conversations := repositories.NewConversationRepository(db, log, feed)

	writer, err := bluge.OpenWriter(bluge.InMemoryOnlyConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = writer.Close() })
	index := search.NewMessageIndex(writer, log)

	moderator, err := moderation.NewModerator([]string{"idiot"}, '*', log)
	require.NoError(t, err)

	registry := runtime.NewRegistry()
	publisher := &recordingPublisher{}
	return stack{
		service:       services.NewChatService(log, messages, conversations, moderator, publisher, index, registry),
		messages:      messages,
		conversations: conversations,
		registry:      registry,
		index:         index,
		publisher:     publisher,
	}
}

// nextEvent waits for a view event satisfying cond.
func nextEvent(t *testing.T, view *services.ConversationView, cond func(services.ViewEvent) bool) services.ViewEvent {
	t.Helper()
	timeout := time.After(2 * time.Second)
	for {
		select {
		case evt, ok := <-view.Events():
			require.True(t, ok, "view closed")
			require.NoError(t, evt.Err)
			if cond(evt) {
				return evt
			}
		case <-timeout:
			require.FailNow(t, "expected view event never arrived")
		}
	}
}
