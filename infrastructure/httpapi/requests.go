package httpapi

import (
	"alumni-chat/auth"
	"alumni-chat/domain/chat"
	"alumni-chat/errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type directRequest struct {
	PeerID    string `json:"peer_id"`
	PeerName  string `json:"peer_name"`
	PeerImage string `json:"peer_image"`
	SelfName  string `json:"self_name"`
	SelfImage string `json:"self_image"`
}

type groupRequest struct {
	Name        string                `json:"name"`
	Image       string                `json:"image"`
	Description string                `json:"description"`
	Kind        chat.ConversationKind `json:"kind"`
	Members     []chat.Profile        `json:"members"`
	SelfName    string                `json:"self_name"`
	SelfImage   string                `json:"self_image"`
}

type membershipRequest struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

type sendRequest struct {
	Kind       chat.MessageKind  `json:"kind"`
	Body       string            `json:"body"`
	Attachment *chat.Attachment  `json:"attachment,omitempty"`
	Location   *chat.Coordinates `json:"location,omitempty"`
	ReplyToID  string            `json:"reply_to_id,omitempty"`
	SenderName string            `json:"sender_name,omitempty"`
}

type editRequest struct {
	Body string `json:"body"`
}

type notificationPreferenceRequest struct {
	MessagesEnabled *bool `json:"messages_enabled"`
}

type messagesResponse struct {
	Messages   []chat.Message `json:"messages"`
	NextCursor *string        `json:"next_cursor,omitempty"`
}

type presenceResponse struct {
	ParticipantID string     `json:"participant_id"`
	Online        bool       `json:"online"`
	LastSeen      *time.Time `json:"last_seen,omitempty"`
	Text          string     `json:"text"`
}

func parseBody(c *fiber.Ctx, out any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.BodyParser(out); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrValidationFailure, err)
	}
	return nil
}

// self builds the caller profile from the token, letting the request refine
// the display fields.
func self(c *fiber.Ctx, name, image string) (chat.Profile, error) {
	claims, err := auth.Claims(c)
	if err != nil {
		return chat.Profile{}, err
	}
	return profileFromClaims(claims, name, image), nil
}

func profileFromClaims(claims *auth.CustomClaims, name, image string) chat.Profile {
	if name == "" {
		name = claims.Name
	}
	return chat.Profile{ID: claims.UserID, Name: name, Image: image}
}

func messageID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("mid"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid message id", errors.ErrValidationFailure)
	}
	return id, nil
}

func queryLimit(c *fiber.Ctx) (int, error) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, fmt.Errorf("%w: invalid limit %q", errors.ErrValidationFailure, raw)
	}
	return limit, nil
}
