package services

import (
	"alumni-chat/domain/chat"
	"alumni-chat/runtime"
	"context"

	"github.com/samber/lo"
)

// ConversationList follows the conversations of one participant. Every
// snapshot is the full list, most recent activity first, with live unread
// counts.
type ConversationList struct {
	viewerID string
	sub      *runtime.Subscription[[]chat.Conversation]
}

func (s *ChatService) OpenList(ctx context.Context, viewerID string) *ConversationList {
	return &ConversationList{
		viewerID: viewerID,
		sub:      s.conversations.Subscribe(ctx, viewerID),
	}
}

func (l *ConversationList) Snapshots() <-chan runtime.Snapshot[[]chat.Conversation] {
	return l.sub.Snapshots()
}

// Filter narrows a snapshot locally, without touching the store.
func (l *ConversationList) Filter(conversations []chat.Conversation, query string) []chat.Conversation {
	return Filter(conversations, l.viewerID, query)
}

func (l *ConversationList) Close() {
	l.sub.Close()
}

// Filter keeps the conversations whose display name or last message preview
// contains the query, ignoring case. Order is preserved.
func Filter(conversations []chat.Conversation, viewerID, query string) []chat.Conversation {
	return lo.Filter(conversations, func(c chat.Conversation, _ int) bool {
		return c.MatchesQuery(viewerID, query)
	})
}
