package event

import (
	"alumni-chat/domain/chat"
	"time"

	"github.com/google/uuid"
)

// DomainEvent is a fact about a conversation, fanned out to side-effect sinks
// after the store has accepted the write.
type DomainEvent interface {
	ConversationID() string
}

// MessageRecorded is emitted once a message is appended and the
// conversation summary reflects it.
type MessageRecorded struct {
	Message    chat.Message
	SenderName string
	Title      string
	Recipients []string
}

func (m MessageRecorded) ConversationID() string { return m.Message.ConversationID }

type MessageEdited struct {
	Message chat.Message
}

func (m MessageEdited) ConversationID() string { return m.Message.ConversationID }

type MessageDeleted struct {
	Conversation string
	MessageID    uuid.UUID
	At           time.Time
}

func (m MessageDeleted) ConversationID() string { return m.Conversation }

type MembershipChanged struct {
	Conversation  string
	ParticipantID string
	Action        chat.MembershipAction
	At            time.Time
}

func (m MembershipChanged) ConversationID() string { return m.Conversation }
