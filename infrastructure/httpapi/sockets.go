package httpapi

import (
	"alumni-chat/auth"
	"alumni-chat/domain/chat"
	"alumni-chat/errors"
	"alumni-chat/services"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const disconnectTimeout = 2 * time.Second

// clientFrame is anything a client may send on either socket.
type clientFrame struct {
	Type       string            `json:"type"`
	Query      string            `json:"query,omitempty"`
	MessageID  string            `json:"message_id,omitempty"`
	Kind       chat.MessageKind  `json:"kind,omitempty"`
	Body       string            `json:"body,omitempty"`
	Attachment *chat.Attachment  `json:"attachment,omitempty"`
	Location   *chat.Coordinates `json:"location,omitempty"`
	ReplyToID  string            `json:"reply_to_id,omitempty"`
}

func errorFrame(err error) fiber.Map {
	return fiber.Map{"type": "error", "status": errors.MapToHTTPStatus(err), "error": err.Error()}
}

func socketClaims(conn *websocket.Conn) (*auth.CustomClaims, bool) {
	claims, ok := conn.Locals(auth.LocalsClaims).(*auth.CustomClaims)
	return claims, ok
}

// listSocket streams the caller's conversation list. A {"type":"query"}
// frame changes the filter applied to every snapshot.
func (s *Server) listSocket(conn *websocket.Conn) {
	claims, ok := socketClaims(conn)
	if !ok {
		_ = conn.WriteJSON(errorFrame(errors.ErrInvalidToken))
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.touch(ctx, claims.UserID)
	defer s.disconnect(claims.UserID)

	list := s.service.OpenList(ctx, claims.UserID)
	defer list.Close()

	queries := make(chan string)
	replies := make(chan fiber.Map)
	stop := s.startReader(ctx, cancel, conn, replies, func(f clientFrame) fiber.Map {
		switch f.Type {
		case "query":
			select {
			case queries <- f.Query:
			case <-ctx.Done():
			}
			return nil
		case "ping":
			s.touch(ctx, claims.UserID)
			return fiber.Map{"type": "pong"}
		default:
			return errorFrame(fmt.Errorf("%w: unknown frame type %q", errors.ErrValidationFailure, f.Type))
		}
	})
	defer stop()

	query := conn.Query("q")
	var latest []chat.Conversation
	for {
		var out fiber.Map
		select {
		case <-ctx.Done():
			return
		case reply := <-replies:
			out = reply
		case query = <-queries:
			if latest == nil {
				continue
			}
			out = fiber.Map{"type": "conversations", "conversations": list.Filter(latest, query)}
		case snapshot, open := <-list.Snapshots():
			if !open {
				return
			}
			if snapshot.Err != nil {
				_ = conn.WriteJSON(errorFrame(snapshot.Err))
				return
			}
			latest = snapshot.Value
			out = fiber.Map{"type": "conversations", "conversations": list.Filter(latest, query)}
		}
		if err := conn.WriteJSON(out); err != nil {
			s.log.Debug("List socket write failed", "participant_id", claims.UserID, "error", err)
			return
		}
	}
}

// viewSocket enters one conversation for the lifetime of the connection.
func (s *Server) viewSocket(conn *websocket.Conn) {
	claims, ok := socketClaims(conn)
	if !ok {
		_ = conn.WriteJSON(errorFrame(errors.ErrInvalidToken))
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	viewer := profileFromClaims(claims, conn.Query("name"), conn.Query("image"))
	view, err := s.service.Enter(ctx, conn.Params("id"), viewer)
	if err != nil {
		_ = conn.WriteJSON(errorFrame(err))
		return
	}
	defer view.Close()
	s.touch(ctx, viewer.ID)

	replies := make(chan fiber.Map)
	stop := s.startReader(ctx, cancel, conn, replies, func(f clientFrame) fiber.Map {
		return s.handleViewFrame(ctx, view, f)
	})
	defer stop()

	for {
		var out fiber.Map
		select {
		case <-ctx.Done():
			return
		case reply := <-replies:
			out = reply
		case evt, open := <-view.Events():
			if !open {
				return
			}
			switch {
			case evt.Err != nil:
				_ = conn.WriteJSON(errorFrame(evt.Err))
				return
			case evt.Conversation != nil:
				out = fiber.Map{"type": "conversation", "conversation": evt.Conversation}
			default:
				out = fiber.Map{"type": "messages", "messages": evt.Messages}
			}
		}
		if err := conn.WriteJSON(out); err != nil {
			s.log.Debug("View socket write failed", "conversation_id", view.ConversationID(), "error", err)
			return
		}
	}
}

func (s *Server) handleViewFrame(ctx context.Context, view *services.ConversationView, f clientFrame) fiber.Map {
	switch f.Type {
	case "send":
		message, err := view.Send(ctx, chat.SendMessageCommand{
			Kind:       f.Kind,
			Body:       f.Body,
			Attachment: f.Attachment,
			Location:   f.Location,
			ReplyToID:  f.ReplyToID,
		})
		return messageFrame(message, err)
	case "edit", "delete":
		id, err := uuid.Parse(f.MessageID)
		if err != nil {
			return errorFrame(fmt.Errorf("%w: invalid message id", errors.ErrValidationFailure))
		}
		var message chat.Message
		if f.Type == "edit" {
			message, err = view.Edit(ctx, id, f.Body)
		} else {
			message, err = view.Delete(ctx, id)
		}
		return messageFrame(message, err)
	case "ping":
		s.touch(ctx, view.ViewerID())
		return fiber.Map{"type": "pong"}
	default:
		return errorFrame(fmt.Errorf("%w: unknown frame type %q", errors.ErrValidationFailure, f.Type))
	}
}

func messageFrame(message chat.Message, err error) fiber.Map {
	if err != nil {
		return errorFrame(err)
	}
	return fiber.Map{"type": "message", "message": message}
}

// startReader runs readFrames in the background. The returned stop closes
// the connection and waits for the reader, so conn is never read after the
// handler returns.
func (s *Server) startReader(ctx context.Context, cancel context.CancelFunc, conn *websocket.Conn,
	replies chan<- fiber.Map, handle func(clientFrame) fiber.Map) func() {
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.readFrames(ctx, cancel, conn, replies, handle)
	}()
	return func() {
		cancel()
		_ = conn.Close()
		<-done
	}
}

// readFrames is the only reader of conn. It cancels the connection context
// once the client goes away.
func (s *Server) readFrames(ctx context.Context, cancel context.CancelFunc, conn *websocket.Conn,
	replies chan<- fiber.Map, handle func(clientFrame) fiber.Map) {
	defer cancel()
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var f clientFrame
		reply := errorFrame(fmt.Errorf("%w: malformed frame", errors.ErrValidationFailure))
		if json.Unmarshal(raw, &f) == nil {
			reply = handle(f)
		}
		if reply == nil {
			continue
		}
		select {
		case replies <- reply:
		case <-ctx.Done():
			return
		}
	}
}

func (s *Server) touch(ctx context.Context, participantID string) {
	if err := s.presence.Heartbeat(ctx, participantID); err != nil {
		s.log.Warn("Presence heartbeat failed", "participant_id", participantID, "error", err)
	}
}

func (s *Server) disconnect(participantID string) {
	ctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
	defer cancel()
	if err := s.presence.Disconnect(ctx, participantID); err != nil {
		s.log.Warn("Presence disconnect failed", "participant_id", participantID, "error", err)
	}
}
