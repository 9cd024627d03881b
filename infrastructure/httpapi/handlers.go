package httpapi

import (
	"alumni-chat/auth"
	"alumni-chat/domain/chat"
	"alumni-chat/errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

func (s *Server) startDirect(c *fiber.Ctx) error {
	var body directRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}
	me, err := self(c, body.SelfName, body.SelfImage)
	if err != nil {
		return err
	}
	peer := chat.Profile{ID: body.PeerID, Name: body.PeerName, Image: body.PeerImage}
	conversation, err := s.service.StartDirect(c.UserContext(), me, peer)
	if err != nil {
		return err
	}
	return c.JSON(conversation)
}

func (s *Server) createGroup(c *fiber.Ctx) error {
	var body groupRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}
	me, err := self(c, body.SelfName, body.SelfImage)
	if err != nil {
		return err
	}
	conversation, err := s.service.CreateGroup(c.UserContext(), chat.CreateGroupCommand{
		Creator:     me,
		Kind:        body.Kind,
		Name:        body.Name,
		Image:       body.Image,
		Description: body.Description,
		Members:     body.Members,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(conversation)
}

func (s *Server) listConversations(c *fiber.Ctx) error {
	participantID, err := auth.ParticipantID(c)
	if err != nil {
		return err
	}
	conversations, err := s.service.Conversations(c.UserContext(), participantID, c.Query("q"))
	if err != nil {
		return err
	}
	return c.JSON(conversations)
}

func (s *Server) getConversation(c *fiber.Ctx) error {
	participantID, err := auth.ParticipantID(c)
	if err != nil {
		return err
	}
	conversation, err := s.service.Conversation(c.UserContext(), c.Params("id"), participantID)
	if err != nil {
		return err
	}
	return c.JSON(conversation)
}

func (s *Server) join(c *fiber.Ctx) error {
	return s.membership(c, chat.Join)
}

func (s *Server) leave(c *fiber.Ctx) error {
	return s.membership(c, chat.Leave)
}

func (s *Server) membership(c *fiber.Ctx, action chat.MembershipAction) error {
	var body membershipRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}
	me, err := self(c, body.Name, body.Image)
	if err != nil {
		return err
	}
	conversation, err := s.service.SetMembership(c.UserContext(), c.Params("id"), me, action)
	if err != nil {
		return err
	}
	return c.JSON(conversation)
}

func (s *Server) markRead(c *fiber.Ctx) error {
	conversationID := c.Params("id")
	participantID, err := auth.ParticipantID(c)
	if err != nil {
		return err
	}
	if _, err := s.service.Conversation(c.UserContext(), conversationID, participantID); err != nil {
		return err
	}
	if err := s.service.MarkConversationRead(c.UserContext(), conversationID, participantID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// listMessages returns the whole log, or one page of it when a cursor or a
// limit is given.
func (s *Server) listMessages(c *fiber.Ctx) error {
	conversationID := c.Params("id")
	participantID, err := auth.ParticipantID(c)
	if err != nil {
		return err
	}
	limit, err := queryLimit(c)
	if err != nil {
		return err
	}
	cursor := c.Query("cursor")
	if cursor == "" && limit == 0 {
		messages, err := s.service.Messages(c.UserContext(), conversationID, participantID)
		if err != nil {
			return err
		}
		return c.JSON(messagesResponse{Messages: messages})
	}

	var from *string
	if cursor != "" {
		from = &cursor
	}
	messages, next, err := s.service.History(c.UserContext(), conversationID, participantID, from, limit)
	if err != nil {
		return err
	}
	return c.JSON(messagesResponse{Messages: messages, NextCursor: next})
}

func (s *Server) sendMessage(c *fiber.Ctx) error {
	var body sendRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}
	me, err := self(c, body.SenderName, "")
	if err != nil {
		return err
	}
	message, err := s.service.SendMessage(c.UserContext(), chat.SendMessageCommand{
		ConversationID: c.Params("id"),
		Sender:         me,
		Kind:           body.Kind,
		Body:           body.Body,
		Attachment:     body.Attachment,
		Location:       body.Location,
		ReplyToID:      body.ReplyToID,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(message)
}

func (s *Server) editMessage(c *fiber.Ctx) error {
	id, err := messageID(c)
	if err != nil {
		return err
	}
	participantID, err := auth.ParticipantID(c)
	if err != nil {
		return err
	}
	var body editRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}
	message, err := s.service.EditMessage(c.UserContext(), c.Params("id"), id, participantID, body.Body)
	if err != nil {
		return err
	}
	return c.JSON(message)
}

func (s *Server) deleteMessage(c *fiber.Ctx) error {
	id, err := messageID(c)
	if err != nil {
		return err
	}
	participantID, err := auth.ParticipantID(c)
	if err != nil {
		return err
	}
	message, err := s.service.DeleteMessage(c.UserContext(), c.Params("id"), id, participantID)
	if err != nil {
		return err
	}
	return c.JSON(message)
}

func (s *Server) search(c *fiber.Ctx) error {
	limit, err := queryLimit(c)
	if err != nil {
		return err
	}
	participantID, err := auth.ParticipantID(c)
	if err != nil {
		return err
	}
	hits, err := s.service.Search(c.UserContext(), participantID, c.Query("q"), limit)
	if err != nil {
		return err
	}
	return c.JSON(hits)
}

func (s *Server) heartbeat(c *fiber.Ctx) error {
	participantID, err := auth.ParticipantID(c)
	if err != nil {
		return err
	}
	if err := s.presence.Heartbeat(c.UserContext(), participantID); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrWriteFailure, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) presenceStatus(c *fiber.Ctx) error {
	presence, err := s.presence.Status(c.UserContext(), c.Params("id"))
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrSubscriptionFailure, err)
	}
	response := presenceResponse{
		ParticipantID: presence.ParticipantID,
		Online:        presence.Online,
		Text:          presence.Text(s.now()),
	}
	if !presence.LastSeen.IsZero() {
		response.LastSeen = &presence.LastSeen
	}
	return c.JSON(response)
}

func (s *Server) notificationPreference(c *fiber.Ctx) error {
	var body notificationPreferenceRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}
	if body.MessagesEnabled == nil {
		return fmt.Errorf("%w: messages_enabled is required", errors.ErrValidationFailure)
	}
	participantID, err := auth.ParticipantID(c)
	if err != nil {
		return err
	}
	if err := s.presence.SetMessageNotifications(c.UserContext(), participantID, *body.MessagesEnabled); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrWriteFailure, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
