package chat

import "time"

type MembershipAction string

const (
	Join  MembershipAction = "join"
	Leave MembershipAction = "leave"
)

// SendMessageCommand carries what a client supplies for a new message.
// A zero SentAt lets the store assign the time.
type SendMessageCommand struct {
	ConversationID string       `json:"conversation_id" validate:"required"`
	Sender         Profile      `json:"sender"`
	Kind           MessageKind  `json:"kind" validate:"omitempty,oneof=text image file location"`
	Body           string       `json:"body"`
	Attachment     *Attachment  `json:"attachment,omitempty"`
	Location       *Coordinates `json:"location,omitempty"`
	ReplyToID      string       `json:"reply_to_id,omitempty"`
	SentAt         time.Time    `json:"sent_at,omitempty"`
}

type CreateGroupCommand struct {
	Creator     Profile          `json:"creator"`
	Kind        ConversationKind `json:"kind" validate:"omitempty,oneof=group mentorship"`
	Name        string           `json:"name" validate:"required,max=120"`
	Image       string           `json:"image,omitempty" validate:"omitempty,url"`
	Description string           `json:"description,omitempty" validate:"max=1000"`
	Members     []Profile        `json:"members" validate:"dive"`
}

// ToMessage builds the message to append, defaulting to a text message.
func (c SendMessageCommand) ToMessage() Message {
	kind := c.Kind
	if kind == "" {
		kind = KindText
	}
	return Message{
		ConversationID: c.ConversationID,
		SenderID:       c.Sender.ID,
		SenderName:     c.Sender.DisplayName(),
		Kind:           kind,
		Body:           c.Body,
		Attachment:     c.Attachment,
		Location:       c.Location,
		ReplyToID:      c.ReplyToID,
		SentAt:         c.SentAt,
	}
}

func (c SendMessageCommand) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errInvalid(err.Error())
	}
	return nil
}

func (c CreateGroupCommand) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errInvalid(err.Error())
	}
	return nil
}
