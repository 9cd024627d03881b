package services_test

import (
	"alumni-chat/domain/chat"
	"alumni-chat/domain/event"
	"alumni-chat/errors"
	"alumni-chat/services"
	"context"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func send(t *testing.T, s stack, conversationID string, sender chat.Profile, body string) chat.Message {
	t.Helper()
	message, err := s.service.SendMessage(context.Background(), chat.SendMessageCommand{
		ConversationID: conversationID,
		Sender:         sender,
		Body:           body,
	})
	require.NoError(t, err)
	return message
}

func TestAliceBobScenario(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	s := newStack(t)

	// Given Alice starts a conversation with Bob
	r, err := s.service.StartDirect(ctx, alice, bob)
	req.NoError(err)
	req.Equal(0, r.UnreadCount("alice"))
	req.Equal(0, r.UnreadCount("bob"))

	// When Alice says hi
	send(t, s, r.ID, alice, "hi")
	r, err = s.service.Conversation(ctx, r.ID, "alice")
	req.NoError(err)
	req.Equal(1, r.UnreadCount("bob"))
	req.Equal(0, r.UnreadCount("alice"))
	req.Equal("hi", r.LastMessage.Text)

	// When Bob reads and replies
	req.NoError(s.service.MarkConversationRead(ctx, r.ID, "bob"))
	r, err = s.service.Conversation(ctx, r.ID, "bob")
	req.NoError(err)
	req.Equal(0, r.UnreadCount("bob"))
	send(t, s, r.ID, bob, "hello")

	// Then
	r, err = s.service.Conversation(ctx, r.ID, "alice")
	req.NoError(err)
	req.Equal(1, r.UnreadCount("alice"))
	req.Equal(0, r.UnreadCount("bob"))
	req.Equal("hello", r.LastMessage.Text)
	req.Equal("bob", r.LastMessage.SenderID)

	messages, err := s.service.Messages(ctx, r.ID, "alice")
	req.NoError(err)
	req.Equal([]string{"hi", "hello"}, lo.Map(messages, func(m chat.Message, _ int) string { return m.Body }))

	// And both sends were announced to the other side
	recorded := lo.FilterMap(s.publisher.recorded(), func(e event.DomainEvent, _ int) (event.MessageRecorded, bool) {
		r, ok := e.(event.MessageRecorded)
		return r, ok
	})
	req.Len(recorded, 2)
	req.Equal([]string{"bob"}, recorded[0].Recipients)
	req.Equal([]string{"alice"}, recorded[1].Recipients)
}

func TestStartDirect_Is_Symmetric(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	s := newStack(t)

	first, err := s.service.StartDirect(ctx, alice, bob)
	req.NoError(err)
	second, err := s.service.StartDirect(ctx, bob, alice)
	req.NoError(err)

	req.Equal(first.ID, second.ID)
}

func TestConversationView_Enter_Marks_Read(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	s := newStack(t)
	r, err := s.service.StartDirect(ctx, alice, bob)
	req.NoError(err)

	// Given two unread messages from Alice
	send(t, s, r.ID, alice, "are you coming")
	send(t, s, r.ID, alice, "to the homecoming?")

	// When Bob opens the conversation
	view, err := s.service.Enter(ctx, r.ID, bob)
	req.NoError(err)
	defer view.Close()

	// Then Bob is registered as viewing
	req.True(s.registry.IsViewing("bob", r.ID))

	// And Bob's counter is reset while every message from Alice ends up delivered and read
	var resetSeen, readSeen bool
	nextEvent(t, view, func(evt services.ViewEvent) bool {
		if evt.Conversation != nil && evt.Conversation.UnreadCount("bob") == 0 {
			resetSeen = true
		}
		if len(evt.Messages) == 2 && lo.EveryBy(evt.Messages, func(m chat.Message) bool { return m.Read && m.Delivered }) {
			readSeen = true
			req.Equal("are you coming", evt.Messages[0].Body)
		}
		return resetSeen && readSeen
	})
}

func TestConversationView_Live_Messages_Stay_Read(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	s := newStack(t)
	r, err := s.service.StartDirect(ctx, alice, bob)
	req.NoError(err)

	view, err := s.service.Enter(ctx, r.ID, bob)
	req.NoError(err)
	defer view.Close()
	nextEvent(t, view, func(evt services.ViewEvent) bool { return evt.Messages != nil })

	// When Alice writes while Bob has the conversation open
	send(t, s, r.ID, alice, "still there?")

	// Then the message is read and Bob's counter goes back to zero
	nextEvent(t, view, func(evt services.ViewEvent) bool {
		return len(evt.Messages) == 1 && evt.Messages[0].Read
	})
	req.Eventually(func() bool {
		c, err := s.service.Conversation(ctx, r.ID, "bob")
		return err == nil && c.UnreadCount("bob") == 0 && c.LastMessage.Text == "still there?"
	}, 2*time.Second, 10*time.Millisecond)
}

func TestConversationView_Burst_Of_Messages_Leaves_Nothing_Unread(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	s := newStack(t)
	r, err := s.service.StartDirect(ctx, alice, bob)
	req.NoError(err)
	const burst = 30

	// Given Bob has the conversation open and his stream is consumed
	view, err := s.service.Enter(ctx, r.ID, bob)
	req.NoError(err)
	drained := make(chan struct{})
	go func() {
		for range view.Events() {
		}
		close(drained)
	}()
	defer func() {
		view.Close()
		<-drained
	}()

	// When Alice sends a burst of messages
	for i := 0; i < burst; i++ {
		send(t, s, r.ID, alice, "ping")
	}

	// Then Bob's counter settles back to zero and every message is read
	req.Eventually(func() bool {
		c, err := s.service.Conversation(ctx, r.ID, "bob")
		return err == nil && c.UnreadCount("bob") == 0
	}, 3*time.Second, 10*time.Millisecond)
	req.Eventually(func() bool {
		messages, err := s.service.Messages(ctx, r.ID, "bob")
		return err == nil && len(messages) == burst &&
			lo.EveryBy(messages, func(m chat.Message) bool { return m.Read })
	}, 3*time.Second, 10*time.Millisecond)

	// And the counter stays there once the feeds are quiet
	c, err := s.service.Conversation(ctx, r.ID, "bob")
	req.NoError(err)
	req.Equal(0, c.UnreadCount("bob"))
	req.Equal(0, c.UnreadCount("alice"))
}

func TestConversationView_Send_And_Close(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	s := newStack(t)
	r, err := s.service.StartDirect(ctx, alice, bob)
	req.NoError(err)

	view, err := s.service.Enter(ctx, r.ID, alice)
	req.NoError(err)

	// When Alice sends from the view
	sent, err := view.Send(ctx, chat.SendMessageCommand{Body: "hi"})
	req.NoError(err)
	req.Equal("alice", sent.SenderID)

	// Then the sent message shows up in the stream
	evt := nextEvent(t, view, func(evt services.ViewEvent) bool { return len(evt.Messages) == 1 })
	req.False(evt.Messages[0].Read)

	// When the view is closed twice
	view.Close()
	view.Close()

	// Then the viewer is not registered anymore and the event stream ended
	req.False(s.registry.IsViewing("alice", r.ID))
	drained := make(chan struct{})
	go func() {
		for range view.Events() {
		}
		close(drained)
	}()
	select {
	case <-drained:
	case <-time.After(time.Second):
		req.Fail("view events were not closed")
	}
}

func TestConversationView_Enter_Not_Participant(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	s := newStack(t)
	r, err := s.service.StartDirect(ctx, alice, bob)
	req.NoError(err)

	_, err = s.service.Enter(ctx, r.ID, carol)

	req.ErrorIs(err, errors.ErrNotParticipant)
	req.False(s.registry.IsViewing("carol", r.ID))
}

func TestConversationList_Live_Unread_And_Filter(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	s := newStack(t)
	withAlice, err := s.service.StartDirect(ctx, bob, alice)
	req.NoError(err)
	_, err = s.service.StartDirect(ctx, bob, carol)
	req.NoError(err)

	list := s.service.OpenList(ctx, "bob")
	defer list.Close()

	// When Alice writes to Bob
	send(t, s, withAlice.ID, alice, "Reunion photos are up")

	// Then Bob's list shows the unread message first
	timeout := time.After(2 * time.Second)
	var conversations []chat.Conversation
	for conversations == nil {
		select {
		case snap := <-list.Snapshots():
			req.NoError(snap.Err)
			if len(snap.Value) == 2 && snap.Value[0].UnreadCount("bob") == 1 {
				conversations = snap.Value
			}
		case <-timeout:
			req.FailNow("list never caught up")
		}
	}
	req.Equal(withAlice.ID, conversations[0].ID)

	// And filtering works on the peer name and on the preview
	req.Len(list.Filter(conversations, "ALICE"), 1)
	req.Len(list.Filter(conversations, "photos"), 1)
	req.Len(list.Filter(conversations, "carol"), 1)
	req.Len(list.Filter(conversations, ""), 2)
	req.Empty(list.Filter(conversations, "dave"))
}

func TestChatService_Search_Own_Conversations(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	s := newStack(t)
	mine, err := s.service.StartDirect(ctx, alice, bob)
	req.NoError(err)
	theirs, err := s.service.StartDirect(ctx, carol, bob)
	req.NoError(err)

	// Given indexed messages in two conversations
	req.NoError(s.index.Index(ctx, send(t, s, mine.ID, bob, "the gala starts at eight")))
	req.NoError(s.index.Index(ctx, send(t, s, theirs.ID, carol, "gala tickets are sold out")))

	// When Alice searches
	hits, err := s.service.Search(ctx, "alice", "gala", 0)

	// Then only the caller's conversation is found
	req.NoError(err)
	req.Len(hits, 1)
	req.Equal(mine.ID, hits[0].ConversationID)
}
