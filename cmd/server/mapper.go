package main

import (
	"alumni-chat/repositories"
	"fmt"
	"strings"

	"github.com/mama165/sdk-go/database"
)

// ConversationMapper renders conversation and message records in the debug
// inspector.
func ConversationMapper(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)
	switch {
	case strings.HasPrefix(key, "conv:"):
		conversation, err := repositories.DecodeConversation(val)
		if err != nil {
			row.Detail = "Error: decode failed"
			return row
		}
		row.Type = strings.ToUpper(string(conversation.Kind))
		row.Detail = fmt.Sprintf("%d members | %s", conversation.MemberCount, conversation.LastMessageDisplayText())
	case strings.HasPrefix(key, "msg:"):
		message, err := repositories.DecodeMessage(val)
		if err != nil {
			row.Detail = "Error: decode failed"
			return row
		}
		row.Type = strings.ToUpper(string(message.Kind))
		row.Detail = fmt.Sprintf("%s: %s", message.SenderID, message.DisplayText())
	}
	return row
}
