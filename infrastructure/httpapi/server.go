// Package httpapi exposes the chat core over HTTP and WebSocket. Every route
// is authenticated; the caller is always the participant named by the token.
package httpapi

import (
	"alumni-chat/auth"
	"alumni-chat/domain/chat"
	"alumni-chat/errors"
	"alumni-chat/services"
	"context"
	stderrors "errors"
	"log/slog"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

type PresenceStore interface {
	Heartbeat(ctx context.Context, participantID string) error
	Disconnect(ctx context.Context, participantID string) error
	Status(ctx context.Context, participantID string) (chat.Presence, error)
	SetMessageNotifications(ctx context.Context, participantID string, enabled bool) error
}

type Server struct {
	app      *fiber.App
	log      *slog.Logger
	service  *services.ChatService
	presence PresenceStore
	now      func() time.Time
}

func NewServer(log *slog.Logger, service *services.ChatService, presence PresenceStore,
	issuer *auth.TokenIssuer, bodyLimit int) *Server {
	s := &Server{
		log:      log,
		service:  service,
		presence: presence,
		now:      func() time.Time { return time.Now().UTC() },
	}
	s.app = fiber.New(fiber.Config{
		AppName:               "alumni-chat",
		BodyLimit:             bodyLimit,
		DisableStartupMessage: true,
		ErrorHandler:          s.handleError,
	})
	s.routes(auth.FiberMiddleware(issuer, log))
	return s
}

func (s *Server) routes(authenticated fiber.Handler) {
	s.app.Use(authenticated)

	conversations := s.app.Group("/conversations")
	conversations.Post("/direct", s.startDirect)
	conversations.Post("/group", s.createGroup)
	conversations.Get("/", s.listConversations)
	conversations.Get("/:id", s.getConversation)
	conversations.Post("/:id/members", s.join)
	conversations.Delete("/:id/members", s.leave)
	conversations.Post("/:id/read", s.markRead)
	conversations.Get("/:id/messages", s.listMessages)
	conversations.Post("/:id/messages", s.sendMessage)
	conversations.Patch("/:id/messages/:mid", s.editMessage)
	conversations.Delete("/:id/messages/:mid", s.deleteMessage)

	s.app.Get("/search", s.search)
	s.app.Post("/presence/heartbeat", s.heartbeat)
	s.app.Get("/presence/:id", s.presenceStatus)
	s.app.Put("/preferences/notifications", s.notificationPreference)

	ws := s.app.Group("/ws", requireUpgrade)
	ws.Get("/conversations", websocket.New(s.listSocket))
	ws.Get("/conversations/:id", websocket.New(s.viewSocket))
}

func requireUpgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	return c.Next()
}

// App gives tests and main access to the underlying fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Listen(address string) error {
	s.log.Info("Starting HTTP server", "address", address)
	return s.app.Listen(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

// handleError maps domain sentinels to status codes and always answers JSON.
func (s *Server) handleError(c *fiber.Ctx, err error) error {
	code := errors.MapToHTTPStatus(err)
	var fiberErr *fiber.Error
	if stderrors.As(err, &fiberErr) {
		code = fiberErr.Code
	}
	if code >= fiber.StatusInternalServerError {
		s.log.Error("Request failed", "method", c.Method(), "path", c.Path(), "status", code, "error", err)
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
