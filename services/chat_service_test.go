package services_test

import (
	"alumni-chat/domain/chat"
	"alumni-chat/domain/event"
	"alumni-chat/errors"
	"alumni-chat/mocks"
	"alumni-chat/moderation"
	"alumni-chat/runtime"
	"alumni-chat/services"
	"context"
	stderrors "errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	alice = chat.Profile{ID: "alice", Name: "Alice"}
	bob   = chat.Profile{ID: "bob", Name: "Bob"}
	carol = chat.Profile{ID: "carol", Name: "Carol"}
)

type mocked struct {
	messages      *mocks.MockIMessageRepository
	conversations *mocks.MockIConversationRepository
	publisher     *mocks.MockEventPublisher
	service       *services.ChatService
}

func newMocked(t *testing.T) mocked {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	moderator, err := moderation.NewModerator([]string{"idiot"}, '*', log)
	require.NoError(t, err)

	m := mocked{
		messages:      mocks.NewMockIMessageRepository(ctrl),
		conversations: mocks.NewMockIConversationRepository(ctrl),
		publisher:     mocks.NewMockEventPublisher(ctrl),
	}
	m.service = services.NewChatService(log, m.messages, m.conversations, moderator,
		m.publisher, nil, runtime.NewRegistry())
	return m
}

func directConversation() chat.Conversation {
	return chat.NewDirectConversation(alice, bob, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
}

func TestChatService_SendMessage(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	m := newMocked(t)
	conversation := directConversation()
	stored := chat.Message{}

	// Given a direct conversation between Alice and Bob
	m.conversations.EXPECT().Get(gomock.Any(), "alice_bob").Return(conversation, nil)

	// Then the moderated message is appended, recorded and announced
	m.messages.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, message chat.Message) (chat.Message, error) {
			req.Equal("you *****", message.Body)
			req.Equal("alice", message.SenderID)
			req.Equal("Alice", message.SenderName)
			req.Equal(chat.KindText, message.Kind)
			message.ID = uuid.New()
			message.SentAt = time.Now().UTC()
			stored = message
			return message, nil
		})
	m.conversations.EXPECT().RecordSentMessage(gomock.Any(), "alice_bob", gomock.Any()).Return(nil)
	m.publisher.EXPECT().Publish(gomock.Any()).Do(func(e event.DomainEvent) {
		recorded, ok := e.(event.MessageRecorded)
		req.True(ok)
		req.Equal([]string{"bob"}, recorded.Recipients)
		req.Equal("Alice", recorded.SenderName)
		req.Empty(recorded.Title)
	})

	// When Alice sends a message
	got, err := m.service.SendMessage(ctx, chat.SendMessageCommand{
		ConversationID: "alice_bob",
		Sender:         alice,
		Body:           "you idiot",
	})

	req.NoError(err)
	req.Equal(stored, got)
}

func TestChatService_SendMessage_Not_Participant(t *testing.T) {
	req := require.New(t)
	m := newMocked(t)

	m.conversations.EXPECT().Get(gomock.Any(), "alice_bob").Return(directConversation(), nil)

	_, err := m.service.SendMessage(context.Background(), chat.SendMessageCommand{
		ConversationID: "alice_bob",
		Sender:         carol,
		Body:           "let me in",
	})

	req.ErrorIs(err, errors.ErrNotParticipant)
}

func TestChatService_SendMessage_Invalid_Command(t *testing.T) {
	req := require.New(t)
	m := newMocked(t)

	_, err := m.service.SendMessage(context.Background(), chat.SendMessageCommand{Sender: alice, Body: "hi"})

	req.ErrorIs(err, errors.ErrValidationFailure)
}

func TestChatService_SendMessage_Summary_Failure_Is_Logged(t *testing.T) {
	req := require.New(t)
	m := newMocked(t)

	m.conversations.EXPECT().Get(gomock.Any(), "alice_bob").Return(directConversation(), nil)
	m.messages.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, message chat.Message) (chat.Message, error) {
			message.ID = uuid.New()
			return message, nil
		})
	m.conversations.EXPECT().RecordSentMessage(gomock.Any(), "alice_bob", gomock.Any()).
		Return(stderrors.New("disk full"))
	m.publisher.EXPECT().Publish(gomock.Any()).Times(1)

	message, err := m.service.SendMessage(context.Background(), chat.SendMessageCommand{
		ConversationID: "alice_bob",
		Sender:         alice,
		Body:           "hi",
	})

	req.NoError(err)
	req.NotEqual(uuid.Nil, message.ID)
}

func TestChatService_SendMessage_Append_Failure(t *testing.T) {
	req := require.New(t)
	m := newMocked(t)

	m.conversations.EXPECT().Get(gomock.Any(), "alice_bob").Return(directConversation(), nil)
	m.messages.EXPECT().Append(gomock.Any(), gomock.Any()).Return(chat.Message{}, errors.ErrWriteFailure)

	_, err := m.service.SendMessage(context.Background(), chat.SendMessageCommand{
		ConversationID: "alice_bob",
		Sender:         alice,
		Body:           "hi",
	})

	req.ErrorIs(err, errors.ErrWriteFailure)
}

func TestChatService_SendMessage_Reply(t *testing.T) {
	req := require.New(t)
	m := newMocked(t)
	quoted := chat.Message{ID: uuid.New(), ConversationID: "alice_bob", SenderID: "bob",
		Kind: chat.KindImage, Attachment: &chat.Attachment{URL: "https://cdn.example.com/a.png"}}

	m.conversations.EXPECT().Get(gomock.Any(), "alice_bob").Return(directConversation(), nil)
	m.messages.EXPECT().Get(gomock.Any(), "alice_bob", quoted.ID).Return(quoted, nil)
	m.messages.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, message chat.Message) (chat.Message, error) {
			req.Equal(quoted.ID.String(), message.ReplyToID)
			req.Equal(chat.PhotoText, message.ReplyToText)
			return message, nil
		})
	m.conversations.EXPECT().RecordSentMessage(gomock.Any(), "alice_bob", gomock.Any()).Return(nil)
	m.publisher.EXPECT().Publish(gomock.Any())

	_, err := m.service.SendMessage(context.Background(), chat.SendMessageCommand{
		ConversationID: "alice_bob",
		Sender:         alice,
		Body:           "nice picture",
		ReplyToID:      quoted.ID.String(),
	})
	req.NoError(err)
}

func TestChatService_SendMessage_Bad_Reply_Id(t *testing.T) {
	req := require.New(t)
	m := newMocked(t)
	m.conversations.EXPECT().Get(gomock.Any(), "alice_bob").Return(directConversation(), nil)

	_, err := m.service.SendMessage(context.Background(), chat.SendMessageCommand{
		ConversationID: "alice_bob",
		Sender:         alice,
		Body:           "hi",
		ReplyToID:      "not-a-uuid",
	})

	req.ErrorIs(err, errors.ErrValidationFailure)
}

func TestChatService_SendMessage_Refreshes_Sender_Profile(t *testing.T) {
	req := require.New(t)
	m := newMocked(t)
	renamed := chat.Profile{ID: "alice", Name: "Alice Nakato", Image: "https://cdn.example.com/alice.png"}

	m.conversations.EXPECT().Get(gomock.Any(), "alice_bob").Return(directConversation(), nil)
	m.messages.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, message chat.Message) (chat.Message, error) { return message, nil })
	m.conversations.EXPECT().RecordSentMessage(gomock.Any(), "alice_bob", gomock.Any()).Return(nil)
	m.conversations.EXPECT().UpdateProfile(gomock.Any(), "alice_bob", renamed).Return(nil)
	m.publisher.EXPECT().Publish(gomock.Any())

	_, err := m.service.SendMessage(context.Background(), chat.SendMessageCommand{
		ConversationID: "alice_bob",
		Sender:         renamed,
		Body:           "new name",
	})
	req.NoError(err)
}

func TestChatService_EditMessage(t *testing.T) {
	req := require.New(t)
	m := newMocked(t)
	id := uuid.New()
	edited := chat.Message{ID: id, ConversationID: "alice_bob", SenderID: "alice", Kind: chat.KindText,
		Body: "you *****", Edited: true}

	m.conversations.EXPECT().Get(gomock.Any(), "alice_bob").Return(directConversation(), nil)
	m.messages.EXPECT().Edit(gomock.Any(), "alice_bob", id, "alice", "you *****").Return(edited, nil)
	m.publisher.EXPECT().Publish(event.MessageEdited{Message: edited})

	got, err := m.service.EditMessage(context.Background(), "alice_bob", id, "alice", "you idiot")

	req.NoError(err)
	req.True(got.Edited)
}

func TestChatService_DeleteMessage(t *testing.T) {
	req := require.New(t)
	m := newMocked(t)
	id := uuid.New()
	at := time.Now().UTC()
	deleted := chat.Message{ID: id, ConversationID: "alice_bob", SenderID: "alice", Deleted: true, DeletedAt: at}

	m.conversations.EXPECT().Get(gomock.Any(), "alice_bob").Return(directConversation(), nil)
	m.messages.EXPECT().Delete(gomock.Any(), "alice_bob", id, "alice").Return(deleted, nil)
	m.publisher.EXPECT().Publish(event.MessageDeleted{Conversation: "alice_bob", MessageID: id, At: at})

	got, err := m.service.DeleteMessage(context.Background(), "alice_bob", id, "alice")

	req.NoError(err)
	req.Equal(chat.DeletedText, got.DisplayText())
}

func TestChatService_DeleteMessage_Forbidden(t *testing.T) {
	req := require.New(t)
	m := newMocked(t)
	id := uuid.New()

	m.conversations.EXPECT().Get(gomock.Any(), "alice_bob").Return(directConversation(), nil)
	m.messages.EXPECT().Delete(gomock.Any(), "alice_bob", id, "bob").Return(chat.Message{}, errors.ErrForbidden)

	_, err := m.service.DeleteMessage(context.Background(), "alice_bob", id, "bob")

	req.ErrorIs(err, errors.ErrForbidden)
}

func TestChatService_SetMembership_Publishes(t *testing.T) {
	req := require.New(t)
	m := newMocked(t)
	group := chat.NewGroupConversation("g1", chat.KindGroup, "Class of 2015", "", alice, []chat.Profile{bob, carol}, time.Now())

	m.conversations.EXPECT().SetMembership(gomock.Any(), "g1", carol, chat.Leave).Return(group, nil)
	m.publisher.EXPECT().Publish(gomock.Any()).Do(func(e event.DomainEvent) {
		changed, ok := e.(event.MembershipChanged)
		req.True(ok)
		req.Equal("carol", changed.ParticipantID)
		req.Equal(chat.Leave, changed.Action)
	})

	_, err := m.service.SetMembership(context.Background(), "g1", carol, chat.Leave)
	req.NoError(err)
}

func TestChatService_CreateGroup_Validation(t *testing.T) {
	req := require.New(t)
	m := newMocked(t)

	_, err := m.service.CreateGroup(context.Background(), chat.CreateGroupCommand{Creator: alice})

	req.ErrorIs(err, errors.ErrValidationFailure)
}
