package chat

import (
	"time"

	"github.com/google/uuid"
)

type MessageKind string

const (
	KindText     MessageKind = "text"
	KindImage    MessageKind = "image"
	KindFile     MessageKind = "file"
	KindLocation MessageKind = "location"
	KindSystem   MessageKind = "system"
)

const (
	DeletedText  = "Message deleted"
	PhotoText    = "📷 Photo"
	FileText     = "📎 File"
	filePrefix   = "📎 "
	LocationText = "📍 Location"
)

type Attachment struct {
	URL       string `json:"url" validate:"required,url"`
	Name      string `json:"name,omitempty" validate:"max=255"`
	MimeType  string `json:"mime_type,omitempty"`
	SizeBytes int64  `json:"size_bytes,omitempty" validate:"gte=0"`
}

type Coordinates struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

// Message is one entry of a conversation's append-only log. Only the
// read/delivered flags, the edit fields and the tombstone ever change.
type Message struct {
	ID             uuid.UUID    `json:"id"`
	ConversationID string       `json:"conversation_id" validate:"required"`
	SenderID       string       `json:"sender_id" validate:"required"`
	SenderName     string       `json:"sender_name,omitempty"`
	Kind           MessageKind  `json:"kind" validate:"required,oneof=text image file location system"`
	Body           string       `json:"body,omitempty" validate:"max=4096"`
	Attachment     *Attachment  `json:"attachment,omitempty"`
	Location       *Coordinates `json:"location,omitempty"`
	ReplyToID      string       `json:"reply_to_id,omitempty"`
	ReplyToText    string       `json:"reply_to_text,omitempty"`
	SentAt         time.Time    `json:"sent_at"`
	Seq            uint64       `json:"seq"`
	Delivered      bool         `json:"delivered"`
	Read           bool         `json:"read"`
	ReadAt         time.Time    `json:"read_at,omitempty"`
	Edited         bool         `json:"edited"`
	EditedAt       time.Time    `json:"edited_at,omitempty"`
	Deleted        bool         `json:"deleted"`
	DeletedAt      time.Time    `json:"deleted_at,omitempty"`
}

// DisplayText renders the message for lists and previews. A deleted
// message shows the tombstone whatever its kind or edit history.
func (m Message) DisplayText() string {
	if m.Deleted {
		return DeletedText
	}
	switch m.Kind {
	case KindImage:
		return PhotoText
	case KindFile:
		if m.Attachment != nil && m.Attachment.Name != "" {
			return filePrefix + m.Attachment.Name
		}
		return FileText
	case KindLocation:
		return LocationText
	default:
		return m.Body
	}
}

func (m Message) IsFrom(participantID string) bool {
	return m.SenderID == participantID
}

// Before orders by timestamp then by insertion sequence.
func (m Message) Before(other Message) bool {
	if m.SentAt.Equal(other.SentAt) {
		return m.Seq < other.Seq
	}
	return m.SentAt.Before(other.SentAt)
}

// Edit replaces the body of a text message sent by editorID.
func (m Message) Edit(editorID, body string, at time.Time) (Message, error) {
	if !m.IsFrom(editorID) {
		return m, errForbidden("only the sender can edit a message")
	}
	if m.Deleted {
		return m, errInvalid("deleted messages cannot be edited")
	}
	if m.Kind != KindText {
		return m, errInvalid("only text messages can be edited")
	}
	m.Body = body
	m.Edited = true
	m.EditedAt = at
	return m, m.Validate()
}

// Tombstone soft-deletes the message. Deleting twice keeps the first DeletedAt.
func (m Message) Tombstone(requesterID string, at time.Time) (Message, error) {
	if !m.IsFrom(requesterID) {
		return m, errForbidden("only the sender can delete a message")
	}
	if m.Deleted {
		return m, nil
	}
	m.Deleted = true
	m.DeletedAt = at
	return m, nil
}
