package chat

import (
	"slices"
	"time"

	"github.com/samber/lo"
)

type ConversationKind string

const (
	KindDirect     ConversationKind = "direct"
	KindGroup      ConversationKind = "group"
	KindMentorship ConversationKind = "mentorship"
)

// LastMessage is the denormalized summary of the most recent send.
type LastMessage struct {
	Text     string      `json:"text"`
	SenderID string      `json:"sender_id,omitempty"`
	Kind     MessageKind `json:"kind,omitempty"`
	At       time.Time   `json:"at,omitempty"`
}

// Conversation is the per-conversation summary record shared by every
// participant. Unread counters and last-seen times are keyed by participant.
type Conversation struct {
	ID                string               `json:"id"`
	Kind              ConversationKind     `json:"kind"`
	Name              string               `json:"name,omitempty"`
	Image             string               `json:"image,omitempty"`
	Description       string               `json:"description,omitempty"`
	CreatedBy         string               `json:"created_by,omitempty"`
	ParticipantIDs    []string             `json:"participant_ids"`
	ParticipantNames  map[string]string    `json:"participant_names"`
	ParticipantImages map[string]string    `json:"participant_images,omitempty"`
	LastMessage       LastMessage          `json:"last_message"`
	UnreadCounts      map[string]int       `json:"unread_counts"`
	LastSeen          map[string]time.Time `json:"last_seen"`
	MemberCount       int                  `json:"member_count"`
	Active            bool                 `json:"active"`
	CreatedAt         time.Time            `json:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at"`
}

// NewDirectConversation builds the record for the pair, keyed by the
// symmetric id so either side creates the same conversation.
func NewDirectConversation(a, b Profile, now time.Time) Conversation {
	ids := []string{a.ID, b.ID}
	slices.Sort(ids)
	c := emptyConversation(DirectConversationID(a.ID, b.ID), KindDirect, now)
	c.CreatedBy = a.ID
	c.ParticipantIDs = ids
	c.addProfile(a)
	c.addProfile(b)
	c.LastSeen[a.ID] = now
	c.LastSeen[b.ID] = now
	c.MemberCount = len(c.ParticipantIDs)
	return c
}

// NewGroupConversation builds a group or mentorship record. The creator is
// always a member and duplicate members are collapsed.
func NewGroupConversation(id string, kind ConversationKind, name, image string,
	creator Profile, members []Profile, now time.Time) Conversation {
	c := emptyConversation(id, kind, now)
	c.Name = name
	c.Image = image
	c.CreatedBy = creator.ID
	profiles := lo.UniqBy(append([]Profile{creator}, members...), func(p Profile) string { return p.ID })
	for _, p := range profiles {
		c.ParticipantIDs = append(c.ParticipantIDs, p.ID)
		c.addProfile(p)
		c.LastSeen[p.ID] = now
	}
	c.MemberCount = len(c.ParticipantIDs)
	return c
}

func emptyConversation(id string, kind ConversationKind, now time.Time) Conversation {
	return Conversation{
		ID:                id,
		Kind:              kind,
		ParticipantNames:  make(map[string]string),
		ParticipantImages: make(map[string]string),
		UnreadCounts:      make(map[string]int),
		LastSeen:          make(map[string]time.Time),
		Active:            true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func (c *Conversation) ensureMaps() {
	if c.ParticipantNames == nil {
		c.ParticipantNames = make(map[string]string)
	}
	if c.ParticipantImages == nil {
		c.ParticipantImages = make(map[string]string)
	}
	if c.UnreadCounts == nil {
		c.UnreadCounts = make(map[string]int)
	}
	if c.LastSeen == nil {
		c.LastSeen = make(map[string]time.Time)
	}
}

func (c *Conversation) addProfile(p Profile) {
	c.ensureMaps()
	c.ParticipantNames[p.ID] = p.DisplayName()
	if p.Image != "" {
		c.ParticipantImages[p.ID] = p.Image
	}
	c.UnreadCounts[p.ID] = 0
}

func (c Conversation) IsDirect() bool {
	return c.Kind == KindDirect
}

func (c Conversation) HasParticipant(participantID string) bool {
	return slices.Contains(c.ParticipantIDs, participantID)
}

// OtherParticipant is only meaningful for direct conversations.
func (c Conversation) OtherParticipant(viewerID string) (string, bool) {
	if !c.IsDirect() {
		return "", false
	}
	return lo.Find(c.ParticipantIDs, func(id string) bool { return id != viewerID })
}

// LastActivity orders the conversation list: the last message time, or the
// creation time for a conversation nobody has written in yet.
func (c Conversation) LastActivity() time.Time {
	if c.LastMessage.At.IsZero() {
		return c.CreatedAt
	}
	return c.LastMessage.At
}

// UnreadCount is zero for a participant the record does not know yet.
func (c Conversation) UnreadCount(participantID string) int {
	return c.UnreadCounts[participantID]
}

// Recipients are all participants except the sender.
func (c Conversation) Recipients(senderID string) []string {
	return lo.Without(c.ParticipantIDs, senderID)
}

// ApplyMessage overwrites the last-message summary and increments the
// unread counter of every participant other than the sender. The
// sender's own counter is left untouched.
func (c *Conversation) ApplyMessage(m Message, now time.Time) {
	c.ensureMaps()
	c.LastMessage = LastMessage{
		Text:     m.DisplayText(),
		SenderID: m.SenderID,
		Kind:     m.Kind,
		At:       m.SentAt,
	}
	for _, id := range c.Recipients(m.SenderID) {
		c.UnreadCounts[id]++
	}
	c.UpdatedAt = now
}

// MarkRead resets the participant's counter and stamps their last-seen time.
func (c *Conversation) MarkRead(participantID string, now time.Time) {
	c.ensureMaps()
	c.UnreadCounts[participantID] = 0
	c.LastSeen[participantID] = now
	c.UpdatedAt = now
}

// Join returns false when the participant is already a member.
func (c *Conversation) Join(p Profile, now time.Time) bool {
	c.ensureMaps()
	if c.HasParticipant(p.ID) {
		return false
	}
	c.ParticipantIDs = append(c.ParticipantIDs, p.ID)
	c.addProfile(p)
	c.LastSeen[p.ID] = now
	c.MemberCount = len(c.ParticipantIDs)
	c.UpdatedAt = now
	return true
}

// Leave returns false when the participant was not a member.
func (c *Conversation) Leave(participantID string, now time.Time) bool {
	c.ensureMaps()
	if !c.HasParticipant(participantID) {
		return false
	}
	c.ParticipantIDs = lo.Without(c.ParticipantIDs, participantID)
	delete(c.ParticipantNames, participantID)
	delete(c.ParticipantImages, participantID)
	delete(c.UnreadCounts, participantID)
	delete(c.LastSeen, participantID)
	c.MemberCount = len(c.ParticipantIDs)
	c.UpdatedAt = now
	return true
}

// UpdateProfile refreshes the denormalized name and image of a member.
func (c *Conversation) UpdateProfile(p Profile, now time.Time) bool {
	c.ensureMaps()
	if !c.HasParticipant(p.ID) {
		return false
	}
	c.ParticipantNames[p.ID] = p.DisplayName()
	if p.Image == "" {
		delete(c.ParticipantImages, p.ID)
	} else {
		c.ParticipantImages[p.ID] = p.Image
	}
	c.UpdatedAt = now
	return true
}
