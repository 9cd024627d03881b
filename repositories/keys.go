package repositories

import (
	"fmt"
	"time"
)

// Key layout:
//
//	conv:{conversation}                          conversation record
//	member:{participant}:{conversation}          membership index
//	msg:{conversation}:{sent_at %019d}:{seq %020d}  message record
//	msgid:{conversation}:{message}               message id -> message key
//	clock:{conversation}                         last assigned timestamp
const (
	conversationPrefix = "conv:"
	memberPrefix       = "member:"
	messagePrefix      = "msg:"
	messageIDPrefix    = "msgid:"
	clockPrefix        = "clock:"
	sequenceKey        = "seq:messages"
)

func conversationKey(conversationID string) []byte {
	return []byte(conversationPrefix + conversationID)
}

func memberPrefixFor(participantID string) []byte {
	return []byte(memberPrefix + participantID + ":")
}

func memberKey(participantID, conversationID string) []byte {
	return []byte(memberPrefix + participantID + ":" + conversationID)
}

func messagePrefixFor(conversationID string) []byte {
	return []byte(messagePrefix + conversationID + ":")
}

// messageKey sorts lexicographically by timestamp, then by insertion sequence.
func messageKey(conversationID string, sentAt time.Time, seq uint64) []byte {
	return []byte(fmt.Sprintf("%s%s:%019d:%020d", messagePrefix, conversationID, sentAt.UnixNano(), seq))
}

func messageIDKey(conversationID, messageID string) []byte {
	return []byte(messageIDPrefix + conversationID + ":" + messageID)
}

func clockKey(conversationID string) []byte {
	return []byte(clockPrefix + conversationID)
}

// Topics of the change feed.
func messagesTopic(conversationID string) string     { return "messages:" + conversationID }
func conversationTopic(conversationID string) string { return "conversation:" + conversationID }
func participantTopic(participantID string) string   { return "participant:" + participantID }
