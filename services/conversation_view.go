package services

import (
	"alumni-chat/domain/chat"
	"alumni-chat/runtime"
	"context"
	"sync"

	"github.com/google/uuid"
)

// ViewEvent carries one update of an open conversation: either a full
// message snapshot or a new version of the record. Err is set when a feed
// died; the view is over after that.
type ViewEvent struct {
	Messages     []chat.Message
	Conversation *chat.Conversation
	Err          error
}

// ConversationView is one participant looking at one conversation. While it
// is open the participant is registered as viewing, messages from others are
// marked delivered and read as they show up, and no push is sent to them.
type ConversationView struct {
	service        *ChatService
	viewer         chat.Profile
	conversationID string

	messages *runtime.Subscription[[]chat.Message]
	record   *runtime.Subscription[chat.Conversation]
	events   chan ViewEvent

	cancel    context.CancelFunc
	done      chan struct{}
	closeOnce sync.Once
}

// Enter opens the view: it checks membership, registers the viewer, starts
// following both feeds and only then resets their unread counter, so a
// message recorded in between still reaches the view.
func (s *ChatService) Enter(ctx context.Context, conversationID string, viewer chat.Profile) (*ConversationView, error) {
	if _, err := s.Conversation(ctx, conversationID, viewer.ID); err != nil {
		return nil, err
	}

	s.registry.Open(viewer.ID, conversationID)
	viewCtx, cancel := context.WithCancel(ctx)
	v := &ConversationView{
		service:        s,
		viewer:         viewer,
		conversationID: conversationID,
		messages:       s.messages.Subscribe(viewCtx, conversationID),
		record:         s.conversations.SubscribeOne(viewCtx, conversationID),
		events:         make(chan ViewEvent, 1),
		cancel:         cancel,
		done:           make(chan struct{}),
	}
	v.resetUnread(ctx)
	go v.run(viewCtx)
	return v, nil
}

func (v *ConversationView) Events() <-chan ViewEvent {
	return v.events
}

func (v *ConversationView) ConversationID() string {
	return v.conversationID
}

func (v *ConversationView) ViewerID() string {
	return v.viewer.ID
}

func (v *ConversationView) run(ctx context.Context) {
	defer close(v.done)
	defer close(v.events)

	messages, record := v.messages.Snapshots(), v.record.Snapshots()
	for {
		var evt ViewEvent
		select {
		case <-ctx.Done():
			return
		case snap, ok := <-messages:
			if !ok {
				return
			}
			if snap.Err != nil {
				evt.Err = snap.Err
				break
			}
			if v.acknowledge(ctx, snap.Value) {
				v.resetUnread(ctx)
			}
			evt.Messages = snap.Value
		case snap, ok := <-record:
			if !ok {
				return
			}
			if snap.Err != nil {
				evt.Err = snap.Err
				break
			}
			conversation := snap.Value
			// the counter can be bumped after the message snapshot was acknowledged
			if conversation.UnreadCount(v.viewer.ID) > 0 {
				v.resetUnread(ctx)
			}
			evt.Conversation = &conversation
		}

		select {
		case v.events <- evt:
		case <-ctx.Done():
			return
		}
		if evt.Err != nil {
			return
		}
	}
}

// acknowledge marks every message from others as delivered and read. It
// reports whether anything was still unread.
func (v *ConversationView) acknowledge(ctx context.Context, messages []chat.Message) bool {
	marked := false
	for _, m := range messages {
		if m.IsFrom(v.viewer.ID) || m.Read {
			continue
		}
		v.service.messages.MarkRead(ctx, v.conversationID, m.ID)
		marked = true
	}
	return marked
}

func (v *ConversationView) resetUnread(ctx context.Context) {
	if err := v.service.conversations.MarkConversationRead(ctx, v.conversationID, v.viewer.ID); err != nil {
		v.service.log.Warn("Unable to mark conversation as read",
			"conversation_id", v.conversationID, "participant_id", v.viewer.ID, "error", err)
	}
}

// Send posts a message as the viewer.
func (v *ConversationView) Send(ctx context.Context, cmd chat.SendMessageCommand) (chat.Message, error) {
	cmd.ConversationID = v.conversationID
	cmd.Sender = v.viewer
	return v.service.SendMessage(ctx, cmd)
}

func (v *ConversationView) Edit(ctx context.Context, messageID uuid.UUID, body string) (chat.Message, error) {
	return v.service.EditMessage(ctx, v.conversationID, messageID, v.viewer.ID, body)
}

func (v *ConversationView) Delete(ctx context.Context, messageID uuid.UUID) (chat.Message, error) {
	return v.service.DeleteMessage(ctx, v.conversationID, messageID, v.viewer.ID)
}

// Close stops both feeds, waits for them to be released and unregisters the
// viewer. Safe to call more than once.
func (v *ConversationView) Close() {
	v.closeOnce.Do(func() {
		v.cancel()
		v.messages.Close()
		v.record.Close()
		<-v.done
		v.service.registry.Close(v.viewer.ID, v.conversationID)
	})
}
