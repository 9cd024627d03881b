//go:generate go run go.uber.org/mock/mockgen -source=conversation.go -destination=../mocks/mock_conversation_repository.go -package=mocks
package repositories

import (
	"alumni-chat/domain/chat"
	"alumni-chat/errors"
	"alumni-chat/runtime"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

type IConversationRepository interface {
	GetOrCreateDirect(ctx context.Context, a, b chat.Profile) (chat.Conversation, error)
	CreateGroup(ctx context.Context, cmd chat.CreateGroupCommand) (chat.Conversation, error)
	Get(ctx context.Context, conversationID string) (chat.Conversation, error)
	ListForParticipant(ctx context.Context, participantID string) ([]chat.Conversation, error)
	Subscribe(ctx context.Context, participantID string) *runtime.Subscription[[]chat.Conversation]
	SubscribeOne(ctx context.Context, conversationID string) *runtime.Subscription[chat.Conversation]
	RecordSentMessage(ctx context.Context, conversationID string, message chat.Message) error
	MarkConversationRead(ctx context.Context, conversationID, participantID string) error
	SetMembership(ctx context.Context, conversationID string, participant chat.Profile, action chat.MembershipAction) (chat.Conversation, error)
	UpdateProfile(ctx context.Context, conversationID string, participant chat.Profile) error
}

// ConversationRepository keeps one summary record per conversation plus a
// participant -> conversation index used by the list queries.
type ConversationRepository struct {
	db   *badger.DB
	log  *slog.Logger
	feed *runtime.Feed
	now  func() time.Time
}

func NewConversationRepository(db *badger.DB, log *slog.Logger, feed *runtime.Feed) *ConversationRepository {
	return &ConversationRepository{
		db:   db,
		log:  log,
		feed: feed,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// GetOrCreateDirect returns the pair's conversation, creating it on first
// use. Concurrent creations by both sides converge on the same record.
func (r *ConversationRepository) GetOrCreateDirect(ctx context.Context, a, b chat.Profile) (chat.Conversation, error) {
	if err := a.Validate(); err != nil {
		return chat.Conversation{}, err
	}
	if err := b.Validate(); err != nil {
		return chat.Conversation{}, err
	}
	if a.ID == b.ID {
		return chat.Conversation{}, fmt.Errorf("%w: cannot start a conversation with oneself", errors.ErrValidationFailure)
	}
	id := chat.DirectConversationID(a.ID, b.ID)
	pair := []string{a.ID, b.ID}
	slices.Sort(pair)

	var conversation chat.Conversation
	var created bool
	err := update(ctx, r.db, func(txn *badger.Txn) error {
		created = false
		raw, err := getValue(txn, conversationKey(id))
		switch {
		case err == nil:
			if conversation, err = DecodeConversation(raw); err != nil {
				return err
			}
			if !conversation.IsDirect() || !slices.Equal(conversation.ParticipantIDs, pair) {
				return fmt.Errorf("%w: %s belongs to another pair", errors.ErrNotParticipant, id)
			}
			return nil
		case !isNotFound(err):
			return err
		}
		conversation = chat.NewDirectConversation(a, b, r.now())
		created = true
		return r.insert(txn, conversation)
	})
	if err != nil {
		return chat.Conversation{}, classify(err)
	}
	if created {
		r.log.Info("Direct conversation created", "conversation_id", id)
		r.notify(conversation.ID, conversation.ParticipantIDs)
	}
	return conversation, nil
}

// CreateGroup creates a group or mentorship conversation under a fresh id.
func (r *ConversationRepository) CreateGroup(ctx context.Context, cmd chat.CreateGroupCommand) (chat.Conversation, error) {
	if err := cmd.Validate(); err != nil {
		return chat.Conversation{}, err
	}
	kind := cmd.Kind
	if kind == "" {
		kind = chat.KindGroup
	}
	conversation := chat.NewGroupConversation(uuid.NewString(), kind, cmd.Name, cmd.Image,
		cmd.Creator, cmd.Members, r.now())
	conversation.Description = cmd.Description

	err := update(ctx, r.db, func(txn *badger.Txn) error {
		return r.insert(txn, conversation)
	})
	if err != nil {
		return chat.Conversation{}, classify(err)
	}
	r.log.Info("Group conversation created", "conversation_id", conversation.ID,
		"kind", conversation.Kind, "members", conversation.MemberCount)
	r.notify(conversation.ID, conversation.ParticipantIDs)
	return conversation, nil
}

func (r *ConversationRepository) insert(txn *badger.Txn, c chat.Conversation) error {
	b, err := EncodeConversation(c)
	if err != nil {
		return err
	}
	if err := txn.Set(conversationKey(c.ID), b); err != nil {
		return err
	}
	for _, participantID := range c.ParticipantIDs {
		if err := txn.Set(memberKey(participantID, c.ID), []byte{}); err != nil {
			return err
		}
	}
	return nil
}

func (r *ConversationRepository) Get(ctx context.Context, conversationID string) (chat.Conversation, error) {
	var conversation chat.Conversation
	err := r.db.View(func(txn *badger.Txn) error {
		c, err := r.load(txn, conversationID)
		conversation = c
		return err
	})
	if err != nil {
		return chat.Conversation{}, classify(err)
	}
	return conversation, nil
}

func (r *ConversationRepository) load(txn *badger.Txn, conversationID string) (chat.Conversation, error) {
	raw, err := getValue(txn, conversationKey(conversationID))
	if isNotFound(err) {
		return chat.Conversation{}, fmt.Errorf("%w: %s", errors.ErrConversationNotFound, conversationID)
	}
	if err != nil {
		return chat.Conversation{}, err
	}
	return DecodeConversation(raw)
}

// ListForParticipant returns the participant's active conversations, most
// recent activity first. Malformed records are logged and skipped.
func (r *ConversationRepository) ListForParticipant(ctx context.Context, participantID string) ([]chat.Conversation, error) {
	conversations := make([]chat.Conversation, 0)
	prefix := memberPrefixFor(participantID)
	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Prefix = prefix
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		var ids []string
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			ids = append(ids, strings.TrimPrefix(string(it.Item().Key()), string(prefix)))
		}
		for _, id := range ids {
			if err := ctx.Err(); err != nil {
				return err
			}
			c, err := r.load(txn, id)
			if err != nil {
				r.log.Warn("Skipping unreadable conversation record", "conversation_id", id, "error", err)
				continue
			}
			if !c.Active || !c.HasParticipant(participantID) {
				continue
			}
			conversations = append(conversations, c)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrSubscriptionFailure, err)
	}
	slices.SortStableFunc(conversations, func(a, b chat.Conversation) int {
		if c := b.LastActivity().Compare(a.LastActivity()); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return conversations, nil
}

// Subscribe emits the participant's conversation list now and after every
// change to any conversation they belong to, or join or leave.
func (r *ConversationRepository) Subscribe(ctx context.Context, participantID string) *runtime.Subscription[[]chat.Conversation] {
	return runtime.Watch(ctx, r.log, r.feed, participantTopic(participantID),
		func(ctx context.Context) ([]chat.Conversation, error) {
			return r.ListForParticipant(ctx, participantID)
		})
}

// SubscribeOne follows a single conversation record.
func (r *ConversationRepository) SubscribeOne(ctx context.Context, conversationID string) *runtime.Subscription[chat.Conversation] {
	return runtime.Watch(ctx, r.log, r.feed, conversationTopic(conversationID),
		func(ctx context.Context) (chat.Conversation, error) {
			return r.Get(ctx, conversationID)
		})
}

// RecordSentMessage overwrites the last-message summary and increments the
// unread counter of every participant except the sender, atomically with
// respect to concurrent senders and readers.
func (r *ConversationRepository) RecordSentMessage(ctx context.Context, conversationID string, message chat.Message) error {
	_, err := r.modify(ctx, conversationID, func(c *chat.Conversation) (bool, error) {
		c.ApplyMessage(message, r.now())
		return true, nil
	})
	return err
}

// MarkConversationRead zeroes the participant's unread counter and stamps
// their last-seen time. Calling it twice leaves the counter at zero.
func (r *ConversationRepository) MarkConversationRead(ctx context.Context, conversationID, participantID string) error {
	_, err := r.modify(ctx, conversationID, func(c *chat.Conversation) (bool, error) {
		if !c.HasParticipant(participantID) {
			return false, fmt.Errorf("%w: %s", errors.ErrNotParticipant, participantID)
		}
		c.MarkRead(participantID, r.now())
		return true, nil
	})
	return err
}

// SetMembership adds or removes a member of a group or mentorship
// conversation. Direct rosters never change.
func (r *ConversationRepository) SetMembership(ctx context.Context, conversationID string,
	participant chat.Profile, action chat.MembershipAction) (chat.Conversation, error) {
	if err := participant.Validate(); err != nil {
		return chat.Conversation{}, err
	}
	return r.modify(ctx, conversationID, func(c *chat.Conversation) (bool, error) {
		if c.IsDirect() {
			return false, fmt.Errorf("%w: %s", errors.ErrNotGroupConversation, c.ID)
		}
		switch action {
		case chat.Join:
			return c.Join(participant, r.now()), nil
		case chat.Leave:
			return c.Leave(participant.ID, r.now()), nil
		default:
			return false, fmt.Errorf("%w: unknown membership action %q", errors.ErrValidationFailure, action)
		}
	})
}

// UpdateProfile refreshes a member's denormalized name and image.
func (r *ConversationRepository) UpdateProfile(ctx context.Context, conversationID string, participant chat.Profile) error {
	_, err := r.modify(ctx, conversationID, func(c *chat.Conversation) (bool, error) {
		if !c.HasParticipant(participant.ID) {
			return false, fmt.Errorf("%w: %s", errors.ErrNotParticipant, participant.ID)
		}
		return c.UpdateProfile(participant, r.now()), nil
	})
	return err
}

// modify is the read-modify-write cycle on one record. The membership index
// follows the roster and every participant before and after the change is
// notified.
func (r *ConversationRepository) modify(ctx context.Context, conversationID string,
	change func(c *chat.Conversation) (bool, error)) (chat.Conversation, error) {
	var result chat.Conversation
	var touched []string
	err := update(ctx, r.db, func(txn *badger.Txn) error {
		touched = nil
		c, err := r.load(txn, conversationID)
		if err != nil {
			return err
		}
		before := slices.Clone(c.ParticipantIDs)
		changed, err := change(&c)
		if err != nil {
			return err
		}
		result = c
		if !changed {
			return nil
		}
		b, err := EncodeConversation(c)
		if err != nil {
			return err
		}
		if err := txn.Set(conversationKey(c.ID), b); err != nil {
			return err
		}
		joined, left := lo.Difference(c.ParticipantIDs, before)
		for _, id := range joined {
			if err := txn.Set(memberKey(id, c.ID), []byte{}); err != nil {
				return err
			}
		}
		for _, id := range left {
			if err := txn.Delete(memberKey(id, c.ID)); err != nil {
				return err
			}
		}
		touched = lo.Union(before, c.ParticipantIDs)
		return nil
	})
	if err != nil {
		return chat.Conversation{}, classify(err)
	}
	if touched != nil {
		r.notify(conversationID, touched)
	}
	return result, nil
}

func (r *ConversationRepository) notify(conversationID string, participantIDs []string) {
	topics := make([]string, 0, len(participantIDs)+1)
	topics = append(topics, conversationTopic(conversationID))
	for _, id := range participantIDs {
		topics = append(topics, participantTopic(id))
	}
	r.feed.Notify(topics...)
}
