//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"alumni-chat/domain/chat"
	"alumni-chat/errors"
	"alumni-chat/runtime"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const sequenceBandwidth = 128

type IMessageRepository interface {
	Append(ctx context.Context, message chat.Message) (chat.Message, error)
	Get(ctx context.Context, conversationID string, messageID uuid.UUID) (chat.Message, error)
	List(ctx context.Context, conversationID string) ([]chat.Message, error)
	History(ctx context.Context, conversationID string, cursor *string, limit int) ([]chat.Message, *string, error)
	Subscribe(ctx context.Context, conversationID string) *runtime.Subscription[[]chat.Message]
	MarkRead(ctx context.Context, conversationID string, messageID uuid.UUID)
	MarkDelivered(ctx context.Context, conversationID string, messageID uuid.UUID)
	Edit(ctx context.Context, conversationID string, messageID uuid.UUID, editorID, body string) (chat.Message, error)
	Delete(ctx context.Context, conversationID string, messageID uuid.UUID, requesterID string) (chat.Message, error)
}

// MessageRepository keeps the per-conversation message logs in BadgerDB.
type MessageRepository struct {
	db   *badger.DB
	log  *slog.Logger
	feed *runtime.Feed
	seq  *badger.Sequence
	now  func() time.Time
}

func NewMessageRepository(db *badger.DB, log *slog.Logger, feed *runtime.Feed) (*MessageRepository, error) {
	seq, err := db.GetSequence([]byte(sequenceKey), sequenceBandwidth)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrWriteFailure, err)
	}
	return &MessageRepository{
		db:   db,
		log:  log,
		feed: feed,
		seq:  seq,
		now:  func() time.Time { return time.Now().UTC() },
	}, nil
}

// Close returns the unused part of the leased sequence range.
func (r *MessageRepository) Close() error {
	return r.seq.Release()
}

// Append stores a new message at the end of its conversation log.
// The key is "msg:{conversation}:{timestamp_padded}:{seq_padded}" so a
// prefix scan yields timestamp order, and insertion order for equal
// timestamps. A zero SentAt is assigned from the clock, never earlier than
// the last timestamp assigned in the conversation. The id is always
// assigned here, any id on the input is ignored.
func (r *MessageRepository) Append(ctx context.Context, message chat.Message) (chat.Message, error) {
	message.ID = uuid.New()
	seq, err := r.seq.Next()
	if err != nil {
		return chat.Message{}, fmt.Errorf("%w: %v", errors.ErrWriteFailure, err)
	}
	message.Seq = seq
	message.Delivered, message.Read, message.Edited, message.Deleted = false, false, false, false
	message.ReadAt, message.EditedAt, message.DeletedAt = time.Time{}, time.Time{}, time.Time{}

	var stored chat.Message
	err = update(ctx, r.db, func(txn *badger.Txn) error {
		if _, err := txn.Get(conversationKey(message.ConversationID)); err != nil {
			if isNotFound(err) {
				return fmt.Errorf("%w: %s", errors.ErrConversationNotFound, message.ConversationID)
			}
			return err
		}
		last, err := readClock(txn, message.ConversationID)
		if err != nil {
			return err
		}
		m := message
		if m.SentAt.IsZero() {
			m.SentAt = r.now()
			if m.SentAt.Before(last) {
				m.SentAt = last
			}
		}
		m.SentAt = m.SentAt.UTC()
		if err := m.Validate(); err != nil {
			return err
		}
		b, err := EncodeMessage(m)
		if err != nil {
			return err
		}
		key := messageKey(m.ConversationID, m.SentAt, m.Seq)
		if err := txn.Set(key, b); err != nil {
			return err
		}
		if err := txn.Set(messageIDKey(m.ConversationID, m.ID.String()), key); err != nil {
			return err
		}
		if m.SentAt.After(last) {
			if err := txn.Set(clockKey(m.ConversationID), encodeClock(m.SentAt)); err != nil {
				return err
			}
		}
		stored = m
		return nil
	})
	if err != nil {
		return chat.Message{}, classify(err)
	}
	r.feed.Notify(messagesTopic(stored.ConversationID))
	r.log.Debug("Message appended", "conversation_id", stored.ConversationID, "message_id", stored.ID)
	return stored, nil
}

func (r *MessageRepository) Get(ctx context.Context, conversationID string, messageID uuid.UUID) (chat.Message, error) {
	var message chat.Message
	err := r.db.View(func(txn *badger.Txn) error {
		_, m, err := r.load(txn, conversationID, messageID)
		message = m
		return err
	})
	if err != nil {
		return chat.Message{}, classify(err)
	}
	return message, nil
}

func (r *MessageRepository) load(txn *badger.Txn, conversationID string, messageID uuid.UUID) ([]byte, chat.Message, error) {
	key, err := getValue(txn, messageIDKey(conversationID, messageID.String()))
	if isNotFound(err) {
		return nil, chat.Message{}, fmt.Errorf("%w: %s", errors.ErrMessageNotFound, messageID)
	}
	if err != nil {
		return nil, chat.Message{}, err
	}
	raw, err := getValue(txn, key)
	if isNotFound(err) {
		return nil, chat.Message{}, fmt.Errorf("%w: %s", errors.ErrMessageNotFound, messageID)
	}
	if err != nil {
		return nil, chat.Message{}, err
	}
	m, err := DecodeMessage(raw)
	return key, m, err
}

// List materializes the whole log in timestamp order. Records that fail to
// decode are logged and skipped.
func (r *MessageRepository) List(ctx context.Context, conversationID string) ([]chat.Message, error) {
	messages := make([]chat.Message, 0)
	prefix := messagePrefixFor(conversationID)
	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Prefix = prefix
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			if m, ok := r.decode(it.Item(), conversationID); ok {
				messages = append(messages, m)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrSubscriptionFailure, err)
	}
	return messages, nil
}

// History pages backwards from the newest message. The cursor is the key
// suffix of the oldest message of the previous page; each page is returned
// oldest first.
func (r *MessageRepository) History(ctx context.Context, conversationID string, cursor *string, limit int) ([]chat.Message, *string, error) {
	var messages []chat.Message
	var lastKey string
	prefix := messagePrefixFor(conversationID)
	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		options.Prefix = prefix
		it := txn.NewIterator(options)
		defer it.Close()

		var seekKey []byte
		switch cursor {
		case nil:
			seekKey = append(slices.Clone(prefix), 0xFF)
		default:
			seekKey = append(slices.Clone(prefix), []byte(*cursor)...)
		}
		it.Seek(seekKey)
		if cursor != nil && it.ValidForPrefix(prefix) && string(it.Item().Key()) == string(seekKey) {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			if limit > 0 && len(messages) == limit {
				break
			}
			item := it.Item()
			lastKey = string(item.Key()[len(prefix):])
			if m, ok := r.decode(item, conversationID); ok {
				messages = append(messages, m)
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", errors.ErrSubscriptionFailure, err)
	}
	slices.Reverse(messages)
	if lastKey == "" {
		return messages, nil, nil
	}
	return messages, &lastKey, nil
}

func (r *MessageRepository) decode(item *badger.Item, conversationID string) (chat.Message, bool) {
	var m chat.Message
	err := item.Value(func(val []byte) error {
		decoded, err := DecodeMessage(val)
		if err != nil {
			return err
		}
		m = decoded
		return nil
	})
	if err != nil {
		r.log.Warn("Skipping malformed message record", "key", string(item.KeyCopy(nil)), "error", err)
		return chat.Message{}, false
	}
	if m.ConversationID != conversationID {
		r.log.Warn("Skipping message filed under another conversation", "key", string(item.KeyCopy(nil)))
		return chat.Message{}, false
	}
	return m, true
}

// Subscribe emits the full log now and after every change to it.
func (r *MessageRepository) Subscribe(ctx context.Context, conversationID string) *runtime.Subscription[[]chat.Message] {
	return runtime.Watch(ctx, r.log, r.feed, messagesTopic(conversationID),
		func(ctx context.Context) ([]chat.Message, error) {
			return r.List(ctx, conversationID)
		})
}

// MarkRead is best effort: failures are logged, never returned.
func (r *MessageRepository) MarkRead(ctx context.Context, conversationID string, messageID uuid.UUID) {
	_, err := r.mutate(ctx, conversationID, messageID, func(m chat.Message) (chat.Message, bool, error) {
		if m.Read {
			return m, false, nil
		}
		m.Read = true
		m.ReadAt = r.now()
		m.Delivered = true
		return m, true, nil
	})
	if err != nil {
		r.log.Warn("Unable to mark message as read",
			"conversation_id", conversationID, "message_id", messageID, "error", err)
	}
}

// MarkDelivered is best effort: failures are logged, never returned.
func (r *MessageRepository) MarkDelivered(ctx context.Context, conversationID string, messageID uuid.UUID) {
	_, err := r.mutate(ctx, conversationID, messageID, func(m chat.Message) (chat.Message, bool, error) {
		if m.Delivered {
			return m, false, nil
		}
		m.Delivered = true
		return m, true, nil
	})
	if err != nil {
		r.log.Warn("Unable to mark message as delivered",
			"conversation_id", conversationID, "message_id", messageID, "error", err)
	}
}

func (r *MessageRepository) Edit(ctx context.Context, conversationID string, messageID uuid.UUID, editorID, body string) (chat.Message, error) {
	return r.mutate(ctx, conversationID, messageID, func(m chat.Message) (chat.Message, bool, error) {
		edited, err := m.Edit(editorID, body, r.now())
		return edited, err == nil, err
	})
}

// Delete tombstones the message; it stays in the log.
func (r *MessageRepository) Delete(ctx context.Context, conversationID string, messageID uuid.UUID, requesterID string) (chat.Message, error) {
	return r.mutate(ctx, conversationID, messageID, func(m chat.Message) (chat.Message, bool, error) {
		deleted, err := m.Tombstone(requesterID, r.now())
		return deleted, err == nil && !m.Deleted, err
	})
}

func (r *MessageRepository) mutate(ctx context.Context, conversationID string, messageID uuid.UUID,
	change func(m chat.Message) (chat.Message, bool, error)) (chat.Message, error) {
	var result chat.Message
	var changed bool
	err := update(ctx, r.db, func(txn *badger.Txn) error {
		changed = false
		key, m, err := r.load(txn, conversationID, messageID)
		if err != nil {
			return err
		}
		next, ok, err := change(m)
		if err != nil {
			return err
		}
		result = next
		if !ok {
			return nil
		}
		b, err := EncodeMessage(next)
		if err != nil {
			return err
		}
		changed = true
		return txn.Set(key, b)
	})
	if err != nil {
		return chat.Message{}, classify(err)
	}
	if changed {
		r.feed.Notify(messagesTopic(conversationID))
	}
	return result, nil
}
