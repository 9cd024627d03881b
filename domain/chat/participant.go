package chat

import (
	"sort"
	"strings"
)

const (
	UnknownUser      = "Unknown User"
	DefaultGroupName = "Group Chat"
	idSeparator      = "_"
)

// Profile is the denormalized identity of a participant as shown to others.
type Profile struct {
	ID    string `json:"id" validate:"required,excludesall=:_"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

func (p Profile) Validate() error {
	if err := validate.Struct(p); err != nil {
		return errInvalid(err.Error())
	}
	return nil
}

// DisplayName falls back to UnknownUser when no name is known.
func (p Profile) DisplayName() string {
	if strings.TrimSpace(p.Name) == "" {
		return UnknownUser
	}
	return p.Name
}

// DirectConversationID is symmetric: both orderings of the pair give the same
// id. Participant ids never contain the separator, so distinct pairs never
// share an id.
func DirectConversationID(a, b string) string {
	ids := []string{a, b}
	sort.Strings(ids)
	return strings.Join(ids, idSeparator)
}
