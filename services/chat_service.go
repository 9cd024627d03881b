package services

import (
	"alumni-chat/contract"
	"alumni-chat/domain/chat"
	"alumni-chat/domain/event"
	"alumni-chat/errors"
	"alumni-chat/infrastructure/search"
	"alumni-chat/repositories"
	"alumni-chat/runtime"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

const defaultSearchLimit = 20

type Moderator interface {
	Moderate(message chat.Message) chat.Message
}

type MessageSearcher interface {
	Search(ctx context.Context, conversationIDs []string, query string, limit int) ([]search.Hit, error)
}

// ChatService runs the use cases of the chat core on top of the two stores.
// Every operation acting on a conversation checks that the caller belongs to it.
type ChatService struct {
	log           *slog.Logger
	messages      repositories.IMessageRepository
	conversations repositories.IConversationRepository
	moderator     Moderator
	publisher     contract.EventPublisher
	searcher      MessageSearcher
	registry      *runtime.Registry
	now           func() time.Time
}

func NewChatService(log *slog.Logger,
	messages repositories.IMessageRepository,
	conversations repositories.IConversationRepository,
	moderator Moderator,
	publisher contract.EventPublisher,
	searcher MessageSearcher,
	registry *runtime.Registry) *ChatService {
	return &ChatService{
		log:           log,
		messages:      messages,
		conversations: conversations,
		moderator:     moderator,
		publisher:     publisher,
		searcher:      searcher,
		registry:      registry,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func (s *ChatService) StartDirect(ctx context.Context, self, peer chat.Profile) (chat.Conversation, error) {
	return s.conversations.GetOrCreateDirect(ctx, self, peer)
}

func (s *ChatService) CreateGroup(ctx context.Context, cmd chat.CreateGroupCommand) (chat.Conversation, error) {
	if err := cmd.Validate(); err != nil {
		return chat.Conversation{}, err
	}
	return s.conversations.CreateGroup(ctx, cmd)
}

// SetMembership lets a participant join or leave a group conversation.
func (s *ChatService) SetMembership(ctx context.Context, conversationID string,
	participant chat.Profile, action chat.MembershipAction) (chat.Conversation, error) {
	conversation, err := s.conversations.SetMembership(ctx, conversationID, participant, action)
	if err != nil {
		return chat.Conversation{}, err
	}
	s.publisher.Publish(event.MembershipChanged{
		Conversation:  conversationID,
		ParticipantID: participant.ID,
		Action:        action,
		At:            s.now(),
	})
	return conversation, nil
}

// Conversation returns the record if the viewer belongs to it.
func (s *ChatService) Conversation(ctx context.Context, conversationID, viewerID string) (chat.Conversation, error) {
	conversation, err := s.conversations.Get(ctx, conversationID)
	if err != nil {
		return chat.Conversation{}, err
	}
	if !conversation.HasParticipant(viewerID) {
		return chat.Conversation{}, fmt.Errorf("%w: %s in %s", errors.ErrNotParticipant, viewerID, conversationID)
	}
	return conversation, nil
}

// Conversations is a one-shot list snapshot, filtered like the live list.
func (s *ChatService) Conversations(ctx context.Context, viewerID, query string) ([]chat.Conversation, error) {
	conversations, err := s.conversations.ListForParticipant(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	return Filter(conversations, viewerID, query), nil
}

// SendMessage validates, moderates and appends the message, then updates
// the conversation summary and announces the message. Once the append
// succeeded the message is sent: a failing summary update is only logged.
func (s *ChatService) SendMessage(ctx context.Context, cmd chat.SendMessageCommand) (chat.Message, error) {
	if err := cmd.Validate(); err != nil {
		return chat.Message{}, err
	}
	conversation, err := s.Conversation(ctx, cmd.ConversationID, cmd.Sender.ID)
	if err != nil {
		return chat.Message{}, err
	}

	message := cmd.ToMessage()
	if message.ReplyToID != "" {
		if message.ReplyToText, err = s.quote(ctx, conversation.ID, message.ReplyToID); err != nil {
			return chat.Message{}, err
		}
	}
	message = s.moderator.Moderate(message)

	stored, err := s.messages.Append(ctx, message)
	if err != nil {
		return chat.Message{}, err
	}

	if err := s.conversations.RecordSentMessage(ctx, conversation.ID, stored); err != nil {
		s.log.Error("Conversation summary not updated",
			"conversation_id", conversation.ID, "message_id", stored.ID, "error", err)
	}
	s.refreshSenderProfile(ctx, conversation, cmd.Sender)

	recorded := event.MessageRecorded{
		Message:    stored,
		SenderName: stored.SenderName,
		Recipients: conversation.Recipients(stored.SenderID),
	}
	if !conversation.IsDirect() {
		recorded.Title = conversation.DisplayName(stored.SenderID)
	}
	s.publisher.Publish(recorded)
	return stored, nil
}

func (s *ChatService) quote(ctx context.Context, conversationID, replyToID string) (string, error) {
	id, err := uuid.Parse(replyToID)
	if err != nil {
		return "", fmt.Errorf("%w: reply_to_id %q is not a message id", errors.ErrValidationFailure, replyToID)
	}
	quoted, err := s.messages.Get(ctx, conversationID, id)
	if err != nil {
		return "", err
	}
	return chat.Truncate(quoted.DisplayText()), nil
}

// refreshSenderProfile keeps the denormalized name and avatar of the sender
// current. Best effort.
func (s *ChatService) refreshSenderProfile(ctx context.Context, conversation chat.Conversation, sender chat.Profile) {
	if sender.Name == "" && sender.Image == "" {
		return
	}
	if conversation.ParticipantNames[sender.ID] == sender.Name &&
		conversation.ParticipantImages[sender.ID] == sender.Image {
		return
	}
	if err := s.conversations.UpdateProfile(ctx, conversation.ID, sender); err != nil {
		s.log.Warn("Sender profile not refreshed", "conversation_id", conversation.ID, "error", err)
	}
}

func (s *ChatService) EditMessage(ctx context.Context, conversationID string,
	messageID uuid.UUID, editorID, body string) (chat.Message, error) {
	if _, err := s.Conversation(ctx, conversationID, editorID); err != nil {
		return chat.Message{}, err
	}
	moderated := s.moderator.Moderate(chat.Message{Kind: chat.KindText, Body: body})
	edited, err := s.messages.Edit(ctx, conversationID, messageID, editorID, moderated.Body)
	if err != nil {
		return chat.Message{}, err
	}
	s.publisher.Publish(event.MessageEdited{Message: edited})
	return edited, nil
}

func (s *ChatService) DeleteMessage(ctx context.Context, conversationID string,
	messageID uuid.UUID, requesterID string) (chat.Message, error) {
	if _, err := s.Conversation(ctx, conversationID, requesterID); err != nil {
		return chat.Message{}, err
	}
	deleted, err := s.messages.Delete(ctx, conversationID, messageID, requesterID)
	if err != nil {
		return chat.Message{}, err
	}
	s.publisher.Publish(event.MessageDeleted{
		Conversation: conversationID,
		MessageID:    deleted.ID,
		At:           deleted.DeletedAt,
	})
	return deleted, nil
}

func (s *ChatService) MarkConversationRead(ctx context.Context, conversationID, participantID string) error {
	return s.conversations.MarkConversationRead(ctx, conversationID, participantID)
}

// Messages is a one-shot snapshot of the log, ascending.
func (s *ChatService) Messages(ctx context.Context, conversationID, viewerID string) ([]chat.Message, error) {
	if _, err := s.Conversation(ctx, conversationID, viewerID); err != nil {
		return nil, err
	}
	return s.messages.List(ctx, conversationID)
}

// History pages backwards through the log from the cursor.
func (s *ChatService) History(ctx context.Context, conversationID, viewerID string,
	cursor *string, limit int) ([]chat.Message, *string, error) {
	if _, err := s.Conversation(ctx, conversationID, viewerID); err != nil {
		return nil, nil, err
	}
	return s.messages.History(ctx, conversationID, cursor, limit)
}

// Search looks for messages in every conversation of the viewer.
func (s *ChatService) Search(ctx context.Context, viewerID, query string, limit int) ([]search.Hit, error) {
	if strings.TrimSpace(query) == "" {
		return []search.Hit{}, nil
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	conversations, err := s.conversations.ListForParticipant(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	ids := lo.Map(conversations, func(c chat.Conversation, _ int) string { return c.ID })
	return s.searcher.Search(ctx, ids, query, limit)
}

