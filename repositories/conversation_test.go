package repositories

import (
	"alumni-chat/domain/chat"
	"alumni-chat/errors"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func TestConversationRepository_GetOrCreateDirect_Is_Symmetric(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newFixture(t)

	// When alice starts a conversation with bob, then bob with alice
	first, err := f.conversations.GetOrCreateDirect(ctx, alice, bob)
	req.NoError(err)
	second, err := f.conversations.GetOrCreateDirect(ctx, bob, alice)
	req.NoError(err)

	// Then both land on the same record
	req.Equal(chat.DirectConversationID("alice", "bob"), first.ID)
	req.Equal(first.ID, second.ID)
	req.True(first.CreatedAt.Equal(second.CreatedAt))
	req.Equal(0, second.UnreadCount("alice"))
	req.Equal(0, second.UnreadCount("bob"))

	_, err = f.conversations.GetOrCreateDirect(ctx, alice, alice)
	req.ErrorIs(err, errors.ErrValidationFailure)
	_, err = f.conversations.GetOrCreateDirect(ctx, alice, chat.Profile{ID: "evil:id"})
	req.ErrorIs(err, errors.ErrValidationFailure)
}

func TestConversationRepository_GetOrCreateDirect_Rejects_Ids_That_Could_Collide(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newFixture(t)
	x := chat.Profile{ID: "x", Name: "X"}

	// Given ids containing the separator, "x"+"y_z" and "x_y"+"z" would share "x_y_z"
	_, err := f.conversations.GetOrCreateDirect(ctx, x, chat.Profile{ID: "y_z", Name: "YZ"})
	req.ErrorIs(err, errors.ErrValidationFailure)
	_, err = f.conversations.GetOrCreateDirect(ctx, chat.Profile{ID: "x_y", Name: "XY"}, chat.Profile{ID: "z", Name: "Z"})
	req.ErrorIs(err, errors.ErrValidationFailure)

	// Then no record was written
	list, err := f.conversations.ListForParticipant(ctx, "x")
	req.NoError(err)
	req.Empty(list)
}

func TestConversationRepository_GetOrCreateDirect_Refuses_Record_Of_Another_Pair(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newFixture(t)
	id := chat.DirectConversationID("alice", "bob")

	// Given a record under alice and bob's id that belongs to alice and carol
	foreign := chat.NewDirectConversation(alice, carol, time.Now().UTC())
	foreign.ID = id
	raw, err := EncodeConversation(foreign)
	req.NoError(err)
	req.NoError(f.db.Update(func(txn *badger.Txn) error { return txn.Set(conversationKey(id), raw) }))

	// When bob opens the conversation with alice
	_, err = f.conversations.GetOrCreateDirect(ctx, bob, alice)

	// Then bob is not handed carol's conversation
	req.ErrorIs(err, errors.ErrNotParticipant)

	// Given a group record under the same id
	group := chat.NewGroupConversation(id, chat.KindGroup, "Class of 2019", "", alice, []chat.Profile{bob}, time.Now().UTC())
	raw, err = EncodeConversation(group)
	req.NoError(err)
	req.NoError(f.db.Update(func(txn *badger.Txn) error { return txn.Set(conversationKey(id), raw) }))

	// Then it is not mistaken for their direct conversation
	_, err = f.conversations.GetOrCreateDirect(ctx, alice, bob)
	req.ErrorIs(err, errors.ErrNotParticipant)
}

func TestConversationRepository_GetOrCreateDirect_Seeds_Last_Seen(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	// When alice opens a conversation with bob
	c := f.direct(t, alice, bob)

	// Then both sides carry a last-seen time from creation, also after a reload
	got, err := f.conversations.Get(context.Background(), c.ID)
	req.NoError(err)
	req.False(got.LastSeen["alice"].IsZero())
	req.False(got.LastSeen["bob"].IsZero())
	req.True(got.LastSeen["alice"].Equal(got.CreatedAt))
	req.True(got.LastSeen["bob"].Equal(got.CreatedAt))
}

func TestConversationRepository_GetOrCreateDirect_Concurrently(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newFixture(t)
	var wg sync.WaitGroup
	results := make([]chat.Conversation, 20)
	errs := make([]error, len(results))

	// When both sides race to open the conversation
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			a, b := alice, bob
			if i%2 == 1 {
				a, b = bob, alice
			}
			results[i], errs[i] = f.conversations.GetOrCreateDirect(ctx, a, b)
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		req.NoError(err)
	}

	// Then exactly one record exists
	for _, c := range results {
		req.Equal(results[0].ID, c.ID)
		req.True(results[0].CreatedAt.Equal(c.CreatedAt))
	}
	list, err := f.conversations.ListForParticipant(ctx, "alice")
	req.NoError(err)
	req.Len(list, 1)
}

func TestConversationRepository_RecordSentMessage(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newFixture(t)
	c := f.direct(t, alice, bob)

	// When alice sends one message and it is recorded
	m, err := f.messages.Append(ctx, text(c.ID, "alice", "hello"))
	req.NoError(err)
	req.NoError(f.conversations.RecordSentMessage(ctx, c.ID, m))

	// Then bob has one unread and alice none
	got, err := f.conversations.Get(ctx, c.ID)
	req.NoError(err)
	req.Equal(1, got.UnreadCount("bob"))
	req.Equal(0, got.UnreadCount("alice"))
	req.Equal("hello", got.LastMessage.Text)
	req.Equal("alice", got.LastMessage.SenderID)
	req.True(m.SentAt.Equal(got.LastMessage.At))

	err = f.conversations.RecordSentMessage(ctx, "missing", m)
	req.ErrorIs(err, errors.ErrConversationNotFound)
}

func TestConversationRepository_Concurrent_Senders_Lose_No_Increment(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newFixture(t)
	g, err := f.conversations.CreateGroup(ctx, chat.CreateGroupCommand{
		Creator: alice, Name: "Class of 2019", Members: []chat.Profile{bob, carol},
	})
	req.NoError(err)
	var wg sync.WaitGroup
	const perSender = 25
	errs := make(chan error, 2*perSender)

	// When alice and bob send concurrently
	for _, sender := range []string{"alice", "bob"} {
		for i := 0; i < perSender; i++ {
			wg.Add(1)
			go func(sender string) {
				defer wg.Done()
				m := text(g.ID, sender, "ping")
				m.SentAt = time.Now().UTC()
				errs <- f.conversations.RecordSentMessage(ctx, g.ID, m)
			}(sender)
		}
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		req.NoError(err)
	}

	// Then every increment landed
	got, err := f.conversations.Get(ctx, g.ID)
	req.NoError(err)
	req.Equal(perSender, got.UnreadCount("alice"))
	req.Equal(perSender, got.UnreadCount("bob"))
	req.Equal(2*perSender, got.UnreadCount("carol"))
}

func TestConversationRepository_Read_Races_With_Senders(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newFixture(t)
	g, err := f.conversations.CreateGroup(ctx, chat.CreateGroupCommand{
		Creator: alice, Name: "Class of 2019", Members: []chat.Profile{bob, carol},
	})
	req.NoError(err)
	const perSender, reads = 25, 25
	var wg sync.WaitGroup
	errs := make(chan error, 2*perSender+reads)

	// When alice and bob send while carol marks the conversation read over and over
	for _, sender := range []string{"alice", "bob"} {
		for i := 0; i < perSender; i++ {
			wg.Add(1)
			go func(sender string) {
				defer wg.Done()
				m := text(g.ID, sender, "ping")
				m.SentAt = time.Now().UTC()
				errs <- f.conversations.RecordSentMessage(ctx, g.ID, m)
			}(sender)
		}
	}
	for i := 0; i < reads; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- f.conversations.MarkConversationRead(ctx, g.ID, "carol")
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		req.NoError(err)
	}

	// Then the readers' resets never swallowed another participant's increments
	got, err := f.conversations.Get(ctx, g.ID)
	req.NoError(err)
	req.Equal(perSender, got.UnreadCount("alice"))
	req.Equal(perSender, got.UnreadCount("bob"))
	req.GreaterOrEqual(got.UnreadCount("carol"), 0)
	req.LessOrEqual(got.UnreadCount("carol"), 2*perSender)

	// When carol reads once more after the senders are done
	req.NoError(f.conversations.MarkConversationRead(ctx, g.ID, "carol"))

	// Then only carol's counter is cleared
	got, err = f.conversations.Get(ctx, g.ID)
	req.NoError(err)
	req.Equal(0, got.UnreadCount("carol"))
	req.Equal(perSender, got.UnreadCount("alice"))
	req.Equal(perSender, got.UnreadCount("bob"))
}

func TestConversationRepository_MarkConversationRead(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newFixture(t)
	c := f.direct(t, alice, bob)
	for i := 0; i < 3; i++ {
		req.NoError(f.conversations.RecordSentMessage(ctx, c.ID, chat.Message{
			ConversationID: c.ID, SenderID: "alice", Kind: chat.KindText, Body: "hey", SentAt: time.Now().UTC(),
		}))
	}

	// When bob reads the conversation twice
	req.NoError(f.conversations.MarkConversationRead(ctx, c.ID, "bob"))
	req.NoError(f.conversations.MarkConversationRead(ctx, c.ID, "bob"))

	// Then bob's counter stays at zero and alice's is untouched
	got, err := f.conversations.Get(ctx, c.ID)
	req.NoError(err)
	req.Equal(0, got.UnreadCount("bob"))
	req.Equal(0, got.UnreadCount("alice"))
	req.False(got.LastSeen["bob"].IsZero())

	err = f.conversations.MarkConversationRead(ctx, c.ID, "carol")
	req.ErrorIs(err, errors.ErrNotParticipant)
}

func TestConversationRepository_SetMembership(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newFixture(t)
	direct := f.direct(t, alice, bob)
	group, err := f.conversations.CreateGroup(ctx, chat.CreateGroupCommand{
		Creator: alice, Kind: chat.KindMentorship, Name: "Mentoring circle",
	})
	req.NoError(err)
	req.Equal(1, group.MemberCount)

	// When someone tries to join a direct conversation
	_, err = f.conversations.SetMembership(ctx, direct.ID, carol, chat.Join)
	req.ErrorIs(err, errors.ErrNotGroupConversation)

	// When carol joins the group twice
	joined, err := f.conversations.SetMembership(ctx, group.ID, carol, chat.Join)
	req.NoError(err)
	joined, err = f.conversations.SetMembership(ctx, group.ID, carol, chat.Join)
	req.NoError(err)

	// Then carol is a member once and sees the group in the list
	req.Equal(2, joined.MemberCount)
	list, err := f.conversations.ListForParticipant(ctx, "carol")
	req.NoError(err)
	req.Len(list, 1)
	req.Equal(group.ID, list[0].ID)

	// When carol leaves
	left, err := f.conversations.SetMembership(ctx, group.ID, carol, chat.Leave)
	req.NoError(err)

	// Then the group disappears from carol's list
	req.Equal(1, left.MemberCount)
	list, err = f.conversations.ListForParticipant(ctx, "carol")
	req.NoError(err)
	req.Empty(list)
}

func TestConversationRepository_ListForParticipant_Newest_First(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newFixture(t)
	withBob := f.direct(t, alice, bob)
	withCarol := f.direct(t, alice, carol)
	at := time.Now().UTC()

	req.NoError(f.conversations.RecordSentMessage(ctx, withCarol.ID, chat.Message{
		ConversationID: withCarol.ID, SenderID: "carol", Kind: chat.KindText, Body: "old", SentAt: at.Add(-time.Hour),
	}))
	req.NoError(f.conversations.RecordSentMessage(ctx, withBob.ID, chat.Message{
		ConversationID: withBob.ID, SenderID: "bob", Kind: chat.KindText, Body: "new", SentAt: at,
	}))

	list, err := f.conversations.ListForParticipant(ctx, "alice")
	req.NoError(err)
	req.Len(list, 2)
	req.Equal(withBob.ID, list[0].ID)
	req.Equal(withCarol.ID, list[1].ID)
}

func TestConversationRepository_ListForParticipant_Skips_Malformed_Records(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newFixture(t)
	f.direct(t, alice, bob)

	// Given a corrupted record indexed for alice
	err := f.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(conversationKey("broken"), []byte{0x0A, 0xFF}); err != nil {
			return err
		}
		return txn.Set(memberKey("alice", "broken"), []byte{})
	})
	req.NoError(err)

	list, err := f.conversations.ListForParticipant(ctx, "alice")
	req.NoError(err)
	req.Len(list, 1)
}

func TestConversationRepository_Subscribe_Follows_Unread_Counts(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newFixture(t)
	c := f.direct(t, alice, bob)

	sub := f.conversations.Subscribe(ctx, "bob")
	defer sub.Close()
	waitFor(t, sub, func(cs []chat.Conversation) bool { return len(cs) == 1 })

	// When alice sends
	m, err := f.messages.Append(ctx, text(c.ID, "alice", "are you coming?"))
	req.NoError(err)
	req.NoError(f.conversations.RecordSentMessage(ctx, c.ID, m))

	// Then bob's list shows one unread
	waitFor(t, sub, func(cs []chat.Conversation) bool { return cs[0].UnreadCount("bob") == 1 })

	// When bob reads
	req.NoError(f.conversations.MarkConversationRead(ctx, c.ID, "bob"))

	// Then it drops back to zero
	latest := waitFor(t, sub, func(cs []chat.Conversation) bool { return cs[0].UnreadCount("bob") == 0 })
	req.Equal("are you coming?", latest[0].LastMessageDisplayText())
}

func TestConversationRepository_SubscribeOne_Reports_Missing_Record(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	sub := f.conversations.SubscribeOne(context.Background(), "missing")
	defer sub.Close()

	snap := <-sub.Snapshots()
	req.ErrorIs(snap.Err, errors.ErrSubscriptionFailure)
}

func TestConversationRepository_UpdateProfile(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newFixture(t)
	c := f.direct(t, alice, bob)

	req.NoError(f.conversations.UpdateProfile(ctx, c.ID, chat.Profile{ID: "bob", Name: "Robert"}))
	got, err := f.conversations.Get(ctx, c.ID)
	req.NoError(err)
	req.Equal("Robert", got.DisplayName("alice"))

	err = f.conversations.UpdateProfile(ctx, c.ID, carol)
	req.ErrorIs(err, errors.ErrNotParticipant)
}
