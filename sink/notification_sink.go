//go:generate go run go.uber.org/mock/mockgen -source=notification_sink.go -destination=../mocks/mock_notification_sink.go -package=mocks
package sink

import (
	"alumni-chat/domain/chat"
	"alumni-chat/domain/event"
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

const (
	notificationBodyLength = 100
	fallbackBody           = "You have a new message"
	fallbackSender         = "Alumni"
)

// Notification is what a push channel needs to alert one recipient.
type Notification struct {
	RecipientID    string
	ConversationID string
	MessageID      uuid.UUID
	SenderID       string
	SenderName     string
	Title          string
	Body           string
}

type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

type NotificationPreferences interface {
	MessageNotificationsEnabled(ctx context.Context, participantID string) (bool, error)
}

type ViewRegistry interface {
	IsViewing(participantID, conversationID string) bool
}

// NotificationSink turns recorded messages into push notifications. A
// recipient is skipped while they have the conversation open or when they
// turned message notifications off.
type NotificationSink struct {
	log         *slog.Logger
	registry    ViewRegistry
	notifier    Notifier
	preferences NotificationPreferences
}

func NewNotificationSink(log *slog.Logger, registry ViewRegistry,
	notifier Notifier, preferences NotificationPreferences) *NotificationSink {
	return &NotificationSink{log: log, registry: registry, notifier: notifier, preferences: preferences}
}

func (s *NotificationSink) Consume(ctx context.Context, e event.DomainEvent) error {
	evt, ok := e.(event.MessageRecorded)
	if !ok {
		return nil
	}

	var errs []error
	for _, recipient := range evt.Recipients {
		if s.registry.IsViewing(recipient, evt.ConversationID()) {
			s.log.Debug("Recipient is viewing the conversation, no push",
				"conversation_id", evt.ConversationID(), "recipient_id", recipient)
			continue
		}
		enabled, err := s.preferences.MessageNotificationsEnabled(ctx, recipient)
		if err != nil {
			s.log.Warn("Notification preference unavailable, using default",
				"recipient_id", recipient, "error", err)
			enabled = true
		}
		if !enabled {
			s.log.Debug("Message notifications disabled", "recipient_id", recipient)
			continue
		}
		if err := s.notifier.Notify(ctx, buildNotification(evt, recipient)); err != nil {
			errs = append(errs, fmt.Errorf("notify %s: %w", recipient, err))
		}
	}
	return stderrors.Join(errs...)
}

func buildNotification(evt event.MessageRecorded, recipient string) Notification {
	sender := strings.TrimSpace(evt.SenderName)
	if sender == "" {
		sender = fallbackSender
	}
	title := "New Message from " + sender
	if evt.Title != "" {
		title += " in " + evt.Title
	}
	return Notification{
		RecipientID:    recipient,
		ConversationID: evt.ConversationID(),
		MessageID:      evt.Message.ID,
		SenderID:       evt.Message.SenderID,
		SenderName:     sender,
		Title:          title,
		Body:           notificationBody(evt.Message),
	}
}

func notificationBody(m chat.Message) string {
	if m.Kind != chat.KindText || strings.TrimSpace(m.Body) == "" {
		return fallbackBody
	}
	runes := []rune(m.Body)
	if len(runes) > notificationBodyLength {
		return string(runes[:notificationBodyLength])
	}
	return m.Body
}

// LogNotifier writes notifications to the log. It stands in for a push
// provider.
type LogNotifier struct {
	log *slog.Logger
}

func NewLogNotifier(log *slog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(_ context.Context, notification Notification) error {
	n.log.Info("Push notification",
		"recipient_id", notification.RecipientID,
		"conversation_id", notification.ConversationID,
		"message_id", notification.MessageID,
		"title", notification.Title,
		"body", notification.Body)
	return nil
}
