// Package search keeps a full-text index of message bodies so a participant
// can search across the conversations they belong to.
package search

import (
	"alumni-chat/domain/chat"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/abadojack/whatlanggo"
	"github.com/blugelabs/bluge"
	"github.com/google/uuid"
)

const (
	fieldID           = "_id"
	fieldConversation = "conversation_id"
	fieldSender       = "sender_id"
	fieldBody         = "body"
	fieldLang         = "lang"
	fieldSentAt       = "sent_at"
)

// Hit is one search result, newest relevance first.
type Hit struct {
	MessageID      uuid.UUID `json:"message_id"`
	ConversationID string    `json:"conversation_id"`
	SenderID       string    `json:"sender_id"`
	Body           string    `json:"body"`
	Lang           string    `json:"lang"`
	SentAt         time.Time `json:"sent_at"`
	Score          float64   `json:"score"`
}

type MessageIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewMessageIndex(writer *bluge.Writer, log *slog.Logger) *MessageIndex {
	return &MessageIndex{writer: writer, log: log}
}

// Index adds or replaces the document of a message. Only live text messages
// are searchable; anything else is removed from the index.
func (i *MessageIndex) Index(_ context.Context, message chat.Message) error {
	if message.Deleted || message.Kind != chat.KindText || strings.TrimSpace(message.Body) == "" {
		return i.writer.Delete(bluge.Identifier(message.ID.String()))
	}

	doc := bluge.NewDocument(message.ID.String()).
		AddField(bluge.NewKeywordField(fieldConversation, message.ConversationID).StoreValue()).
		AddField(bluge.NewKeywordField(fieldSender, message.SenderID).StoreValue()).
		AddField(bluge.NewTextField(fieldBody, message.Body).StoreValue()).
		AddField(bluge.NewKeywordField(fieldLang, detectLanguage(message.Body)).StoreValue()).
		AddField(bluge.NewDateTimeField(fieldSentAt, message.SentAt).StoreValue())

	if err := i.writer.Update(doc.ID(), doc); err != nil {
		return fmt.Errorf("index message %s: %w", message.ID, err)
	}
	return nil
}

func (i *MessageIndex) Remove(_ context.Context, messageID uuid.UUID) error {
	if err := i.writer.Delete(bluge.Identifier(messageID.String())); err != nil {
		return fmt.Errorf("remove message %s: %w", messageID, err)
	}
	return nil
}

// Search matches the query against message bodies, restricted to the given
// conversations. An empty query or conversation set yields no hits.
func (i *MessageIndex) Search(ctx context.Context, conversationIDs []string, query string, limit int) ([]Hit, error) {
	query = strings.TrimSpace(query)
	if query == "" || len(conversationIDs) == 0 || limit <= 0 {
		return []Hit{}, nil
	}

	scope := bluge.NewBooleanQuery().SetMinShould(1)
	for _, id := range conversationIDs {
		scope.AddShould(bluge.NewTermQuery(id).SetField(fieldConversation))
	}
	q := bluge.NewBooleanQuery().
		AddMust(bluge.NewMatchQuery(query).SetField(fieldBody)).
		AddMust(scope)

	reader, err := i.writer.Reader()
	if err != nil {
		return nil, fmt.Errorf("open index reader: %w", err)
	}
	defer func() { _ = reader.Close() }()

	matches, err := reader.Search(ctx, bluge.NewTopNSearch(limit, q))
	if err != nil {
		return nil, fmt.Errorf("search messages: %w", err)
	}

	hits := make([]Hit, 0, limit)
	match, err := matches.Next()
	for err == nil && match != nil {
		hit := Hit{Score: match.Score}
		visitErr := match.VisitStoredFields(func(field string, value []byte) bool {
			switch field {
			case fieldID:
				hit.MessageID, _ = uuid.Parse(string(value))
			case fieldConversation:
				hit.ConversationID = string(value)
			case fieldSender:
				hit.SenderID = string(value)
			case fieldBody:
				hit.Body = string(value)
			case fieldLang:
				hit.Lang = string(value)
			case fieldSentAt:
				hit.SentAt, _ = bluge.DecodeDateTime(value)
			}
			return true
		})
		if visitErr != nil {
			i.log.Warn("Skipping unreadable search hit", "error", visitErr)
		} else {
			hits = append(hits, hit)
		}
		match, err = matches.Next()
	}
	if err != nil {
		return nil, fmt.Errorf("iterate search hits: %w", err)
	}
	return hits, nil
}

func detectLanguage(text string) string {
	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return "und"
	}
	return info.Lang.Iso6391()
}
