package chat

import (
	"fmt"
	"strings"
	"time"
)

const (
	NoMessagesYet   = "No messages yet"
	previewMaxRunes = 50
	previewCutRunes = 47
	ellipsis        = "..."
	dateLayout      = "Jan 02, 2006"
	clockLayout     = "3:04 PM"
)

// DisplayName is the other participant's name for direct conversations and
// the group name otherwise.
func (c Conversation) DisplayName(viewerID string) string {
	if c.IsDirect() {
		other, ok := c.OtherParticipant(viewerID)
		if !ok {
			return UnknownUser
		}
		name, ok := c.ParticipantNames[other]
		if !ok || strings.TrimSpace(name) == "" {
			return UnknownUser
		}
		return name
	}
	if strings.TrimSpace(c.Name) == "" {
		return DefaultGroupName
	}
	return c.Name
}

func (c Conversation) DisplayImage(viewerID string) string {
	if c.IsDirect() {
		if other, ok := c.OtherParticipant(viewerID); ok {
			return c.ParticipantImages[other]
		}
		return ""
	}
	return c.Image
}

// LastMessageDisplayText renders the preview line of the conversation list.
func (c Conversation) LastMessageDisplayText() string {
	if c.LastMessage.Text == "" {
		return NoMessagesYet
	}
	switch c.LastMessage.Kind {
	case KindImage:
		return PhotoText
	case KindFile:
		return FileText
	case KindLocation:
		return LocationText
	}
	return Truncate(c.LastMessage.Text)
}

// Truncate shortens text longer than the preview width, counting runes.
func Truncate(text string) string {
	runes := []rune(text)
	if len(runes) <= previewMaxRunes {
		return text
	}
	return string(runes[:previewCutRunes]) + ellipsis
}

// MatchesQuery is a case-insensitive substring match on what the viewer
// sees: the display name and the last-message preview.
func (c Conversation) MatchesQuery(viewerID, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.DisplayName(viewerID)), q) ||
		strings.Contains(strings.ToLower(c.LastMessageDisplayText()), q)
}

// TimeAgo renders the compact relative time used in message bubbles.
func TimeAgo(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "Just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d/time.Minute))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d/time.Hour))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd", int(d/(24*time.Hour)))
	default:
		return t.Format(dateLayout)
	}
}

// ListTime renders the timestamp column of the conversation list.
func ListTime(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "Now"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d/time.Minute))
	case d < 24*time.Hour:
		return t.Format(clockLayout)
	case d < 7*24*time.Hour:
		return t.Format("Mon")
	default:
		return t.Format("Jan 02")
	}
}

// LastSeenText renders an offline participant's last activity.
func LastSeenText(t, now time.Time) string {
	if t.IsZero() {
		return "Last seen a while ago"
	}
	d := now.Sub(t)
	switch {
	case d < 5*time.Minute:
		return "Last seen recently"
	case d < time.Hour:
		return fmt.Sprintf("Last seen %d minutes ago", int(d/time.Minute))
	case d < 24*time.Hour:
		return fmt.Sprintf("Last seen %d hours ago", int(d/time.Hour))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("Last seen %d days ago", int(d/(24*time.Hour)))
	default:
		return "Last seen a while ago"
	}
}
