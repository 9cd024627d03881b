package chat

import "time"

type Presence struct {
	ParticipantID string    `json:"participant_id"`
	Online        bool      `json:"online"`
	LastSeen      time.Time `json:"last_seen,omitempty"`
}

func (p Presence) Text(now time.Time) string {
	if p.Online {
		return "Online"
	}
	return LastSeenText(p.LastSeen, now)
}
