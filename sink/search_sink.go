//go:generate go run go.uber.org/mock/mockgen -source=search_sink.go -destination=../mocks/mock_search_sink.go -package=mocks
package sink

import (
	"alumni-chat/domain/chat"
	"alumni-chat/domain/event"
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type MessageIndexer interface {
	Index(ctx context.Context, message chat.Message) error
	Remove(ctx context.Context, messageID uuid.UUID) error
}

// SearchSink keeps the full-text index in step with the message log.
type SearchSink struct {
	indexer MessageIndexer
	log     *slog.Logger
}

func NewSearchSink(indexer MessageIndexer, log *slog.Logger) SearchSink {
	return SearchSink{indexer: indexer, log: log}
}

func (s SearchSink) Consume(ctx context.Context, e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.MessageRecorded:
		return s.indexer.Index(ctx, evt.Message)
	case event.MessageEdited:
		return s.indexer.Index(ctx, evt.Message)
	case event.MessageDeleted:
		return s.indexer.Remove(ctx, evt.MessageID)
	default:
		s.log.Debug("Event not indexed", "conversation_id", evt.ConversationID())
		return nil
	}
}
