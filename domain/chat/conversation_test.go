package chat

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var (
	alice = Profile{ID: "alice", Name: "Alice", Image: "https://cdn.example.org/alice.png"}
	bob   = Profile{ID: "bob", Name: "Bob"}
	carol = Profile{ID: "carol", Name: "Carol"}
)

func textMessage(conversationID, senderID, body string, at time.Time) Message {
	return Message{
		ID:             uuid.New(),
		ConversationID: conversationID,
		SenderID:       senderID,
		Kind:           KindText,
		Body:           body,
		SentAt:         at,
	}
}

func TestDirectConversationID_IsSymmetric(t *testing.T) {
	req := require.New(t)
	req.Equal(DirectConversationID("alice", "bob"), DirectConversationID("bob", "alice"))
	req.Equal("alice_bob", DirectConversationID("bob", "alice"))
	req.NotEqual(DirectConversationID("alice", "bob"), DirectConversationID("alice", "carol"))
}

func TestNewDirectConversation(t *testing.T) {
	req := require.New(t)
	now := time.Now().UTC()

	// When bob starts the conversation with alice
	c := NewDirectConversation(bob, alice, now)

	// Then the record is the same one alice would have created
	req.Equal("alice_bob", c.ID)
	req.Equal([]string{"alice", "bob"}, c.ParticipantIDs)
	req.Equal(2, c.MemberCount)
	req.True(c.Active)
	req.Equal(0, c.UnreadCount("alice"))
	req.Equal(0, c.UnreadCount("bob"))
	req.Equal("Alice", c.DisplayName("bob"))
	req.Equal("Bob", c.DisplayName("alice"))
	req.Equal(alice.Image, c.DisplayImage("bob"))
	req.Equal(NoMessagesYet, c.LastMessageDisplayText())
	req.True(c.LastSeen["alice"].Equal(now))
	req.True(c.LastSeen["bob"].Equal(now))
}

func TestNewGroupConversation_Seeds_Last_Seen_For_Every_Member(t *testing.T) {
	req := require.New(t)
	now := time.Now().UTC()

	// When alice creates a group listing bob twice
	c := NewGroupConversation("g1", KindGroup, "Class of 2019", "", alice, []Profile{bob, carol, bob}, now)

	// Then each distinct member has a last-seen time
	req.Equal([]string{"alice", "bob", "carol"}, c.ParticipantIDs)
	req.Len(c.LastSeen, 3)
	for _, id := range c.ParticipantIDs {
		req.True(c.LastSeen[id].Equal(now), id)
	}
}

func TestConversation_ApplyMessage(t *testing.T) {
	req := require.New(t)
	now := time.Now().UTC()
	c := NewGroupConversation("g1", KindGroup, "Class of 2019", "", alice, []Profile{bob, carol}, now)

	// When alice sends twice and bob once
	c.ApplyMessage(textMessage(c.ID, "alice", "hello", now), now)
	c.ApplyMessage(textMessage(c.ID, "alice", "anyone?", now.Add(time.Second)), now)
	c.ApplyMessage(textMessage(c.ID, "bob", "hi", now.Add(2*time.Second)), now)

	// Then every counter except the sender's own moved
	req.Equal(1, c.UnreadCount("alice"))
	req.Equal(2, c.UnreadCount("bob"))
	req.Equal(3, c.UnreadCount("carol"))
	req.Equal("hi", c.LastMessage.Text)
	req.Equal("bob", c.LastMessage.SenderID)
	req.True(c.LastMessage.At.Equal(now.Add(2 * time.Second)))
}

func TestConversation_MarkRead_IsIdempotent(t *testing.T) {
	req := require.New(t)
	now := time.Now().UTC()
	c := NewDirectConversation(alice, bob, now)
	c.ApplyMessage(textMessage(c.ID, "alice", "hello", now), now)
	c.ApplyMessage(textMessage(c.ID, "alice", "there", now), now)

	c.MarkRead("bob", now.Add(time.Minute))
	first := c.UnreadCount("bob")
	c.MarkRead("bob", now.Add(2*time.Minute))

	req.Equal(0, first)
	req.Equal(0, c.UnreadCount("bob"))
	req.True(c.LastSeen["bob"].Equal(now.Add(2 * time.Minute)))
	req.Equal(0, c.UnreadCount("alice"))
}

func TestConversation_JoinAndLeave(t *testing.T) {
	req := require.New(t)
	now := time.Now().UTC()
	c := NewGroupConversation("g1", KindMentorship, "Mentoring", "", alice, nil, now)
	req.Equal(1, c.MemberCount)

	req.True(c.Join(bob, now))
	req.False(c.Join(bob, now))
	req.Equal(2, c.MemberCount)
	req.True(c.HasParticipant("bob"))

	c.ApplyMessage(textMessage(c.ID, "alice", "welcome", now), now)
	req.Equal(1, c.UnreadCount("bob"))

	req.True(c.Leave("bob", now))
	req.False(c.Leave("bob", now))
	req.Equal(1, c.MemberCount)
	req.NotContains(c.UnreadCounts, "bob")
	req.NotContains(c.ParticipantNames, "bob")
}

func TestNewGroupConversation_CollapsesDuplicates(t *testing.T) {
	req := require.New(t)
	c := NewGroupConversation("g1", KindGroup, "", "", alice, []Profile{alice, bob, bob}, time.Now())
	req.Equal([]string{"alice", "bob"}, c.ParticipantIDs)
	req.Equal(2, c.MemberCount)
	req.Equal(DefaultGroupName, c.DisplayName("alice"))
}

func TestConversation_DisplayName_UnknownOther(t *testing.T) {
	req := require.New(t)
	c := NewDirectConversation(alice, Profile{ID: "ghost"}, time.Now())
	req.Equal(UnknownUser, c.DisplayName("alice"))
}

func TestConversation_MatchesQuery(t *testing.T) {
	req := require.New(t)
	now := time.Now()
	c := NewDirectConversation(alice, bob, now)
	c.ApplyMessage(textMessage(c.ID, "alice", "Reunion on Friday", now), now)

	req.True(c.MatchesQuery("alice", "BOB"))
	req.True(c.MatchesQuery("alice", "friday"))
	req.True(c.MatchesQuery("alice", "  "))
	req.False(c.MatchesQuery("alice", "alice"))
	req.True(c.MatchesQuery("bob", "ali"))
}
