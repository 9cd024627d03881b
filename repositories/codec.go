//go:generate protoc -I .. --go_out=.. --go_opt=paths=source_relative ../proto/storage/storage.proto
package repositories

import (
	"alumni-chat/domain/chat"
	"alumni-chat/errors"
	pb "alumni-chat/proto/storage"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// EncodeMessage serializes a message record.
func EncodeMessage(m chat.Message) ([]byte, error) {
	b, err := proto.Marshal(toDiskMessage(m))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrWriteFailure, err)
	}
	return b, nil
}

// DecodeMessage parses and validates a message record. Any malformed or
// invalid record yields ErrValidationFailure.
func DecodeMessage(b []byte) (chat.Message, error) {
	var record pb.Message
	if err := proto.Unmarshal(b, &record); err != nil {
		return chat.Message{}, fmt.Errorf("%w: malformed message record: %v", errors.ErrValidationFailure, err)
	}
	m, err := fromDiskMessage(&record)
	if err != nil {
		return chat.Message{}, fmt.Errorf("%w: malformed message record: %v", errors.ErrValidationFailure, err)
	}
	if err := m.Validate(); err != nil {
		return chat.Message{}, err
	}
	return m, nil
}

func toDiskMessage(m chat.Message) *pb.Message {
	record := &pb.Message{
		Id:             m.ID.String(),
		ConversationId: m.ConversationID,
		SenderId:       m.SenderID,
		SenderName:     m.SenderName,
		Kind:           string(m.Kind),
		Body:           m.Body,
		ReplyToId:      m.ReplyToID,
		ReplyToText:    m.ReplyToText,
		SentAt:         toTimestamp(m.SentAt),
		Seq:            m.Seq,
		Delivered:      m.Delivered,
		Read:           m.Read,
		ReadAt:         toTimestamp(m.ReadAt),
		Edited:         m.Edited,
		EditedAt:       toTimestamp(m.EditedAt),
		Deleted:        m.Deleted,
		DeletedAt:      toTimestamp(m.DeletedAt),
	}
	if a := m.Attachment; a != nil {
		record.Attachment = &pb.Attachment{Url: a.URL, Name: a.Name, MimeType: a.MimeType, SizeBytes: a.SizeBytes}
	}
	if l := m.Location; l != nil {
		record.Location = &pb.Location{Latitude: l.Latitude, Longitude: l.Longitude}
	}
	return record
}

func fromDiskMessage(record *pb.Message) (chat.Message, error) {
	id, err := uuid.Parse(record.GetId())
	if err != nil {
		return chat.Message{}, err
	}
	m := chat.Message{
		ID:             id,
		ConversationID: record.GetConversationId(),
		SenderID:       record.GetSenderId(),
		SenderName:     record.GetSenderName(),
		Kind:           chat.MessageKind(record.GetKind()),
		Body:           record.GetBody(),
		ReplyToID:      record.GetReplyToId(),
		ReplyToText:    record.GetReplyToText(),
		Seq:            record.GetSeq(),
		Delivered:      record.GetDelivered(),
		Read:           record.GetRead(),
		Edited:         record.GetEdited(),
		Deleted:        record.GetDeleted(),
	}
	if a := record.GetAttachment(); a != nil {
		m.Attachment = &chat.Attachment{URL: a.GetUrl(), Name: a.GetName(), MimeType: a.GetMimeType(), SizeBytes: a.GetSizeBytes()}
	}
	if l := record.GetLocation(); l != nil {
		m.Location = &chat.Coordinates{Latitude: l.GetLatitude(), Longitude: l.GetLongitude()}
	}
	if m.SentAt, err = fromTimestamp(record.GetSentAt()); err != nil {
		return chat.Message{}, err
	}
	if m.ReadAt, err = fromTimestamp(record.GetReadAt()); err != nil {
		return chat.Message{}, err
	}
	if m.EditedAt, err = fromTimestamp(record.GetEditedAt()); err != nil {
		return chat.Message{}, err
	}
	if m.DeletedAt, err = fromTimestamp(record.GetDeletedAt()); err != nil {
		return chat.Message{}, err
	}
	return m, nil
}

// EncodeConversation serializes a conversation record. Per-participant state
// is stored as one member entry per participant, in roster order.
func EncodeConversation(c chat.Conversation) ([]byte, error) {
	b, err := proto.Marshal(toDiskConversation(c))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrWriteFailure, err)
	}
	return b, nil
}

// DecodeConversation parses a conversation record. Maps are always non-nil.
func DecodeConversation(b []byte) (chat.Conversation, error) {
	var record pb.Conversation
	if err := proto.Unmarshal(b, &record); err != nil {
		return chat.Conversation{}, fmt.Errorf("%w: malformed conversation record: %v", errors.ErrValidationFailure, err)
	}
	c, err := fromDiskConversation(&record)
	if err != nil {
		return chat.Conversation{}, fmt.Errorf("%w: malformed conversation record: %v", errors.ErrValidationFailure, err)
	}
	if c.ID == "" || c.Kind == "" {
		return chat.Conversation{}, fmt.Errorf("%w: conversation record without id or kind", errors.ErrValidationFailure)
	}
	return c, nil
}

func toDiskConversation(c chat.Conversation) *pb.Conversation {
	return &pb.Conversation{
		Id:          c.ID,
		Kind:        string(c.Kind),
		Name:        c.Name,
		Image:       c.Image,
		Description: c.Description,
		CreatedBy:   c.CreatedBy,
		Members: lo.Map(c.ParticipantIDs, func(id string, _ int) *pb.Member {
			return &pb.Member{
				Id:          id,
				Name:        c.ParticipantNames[id],
				Image:       c.ParticipantImages[id],
				UnreadCount: int64(max(c.UnreadCounts[id], 0)),
				LastSeen:    toTimestamp(c.LastSeen[id]),
			}
		}),
		LastMessage: &pb.LastMessage{
			Text:     c.LastMessage.Text,
			SenderId: c.LastMessage.SenderID,
			Kind:     string(c.LastMessage.Kind),
			At:       toTimestamp(c.LastMessage.At),
		},
		MemberCount: int64(c.MemberCount),
		Active:      c.Active,
		CreatedAt:   toTimestamp(c.CreatedAt),
		UpdatedAt:   toTimestamp(c.UpdatedAt),
	}
}

func fromDiskConversation(record *pb.Conversation) (chat.Conversation, error) {
	c := chat.Conversation{
		ID:                record.GetId(),
		Kind:              chat.ConversationKind(record.GetKind()),
		Name:              record.GetName(),
		Image:             record.GetImage(),
		Description:       record.GetDescription(),
		CreatedBy:         record.GetCreatedBy(),
		ParticipantNames:  make(map[string]string),
		ParticipantImages: make(map[string]string),
		UnreadCounts:      make(map[string]int),
		LastSeen:          make(map[string]time.Time),
		MemberCount:       int(record.GetMemberCount()),
		Active:            record.GetActive(),
	}
	for _, member := range record.GetMembers() {
		id := member.GetId()
		if id == "" {
			return chat.Conversation{}, fmt.Errorf("member entry without id")
		}
		c.ParticipantIDs = append(c.ParticipantIDs, id)
		c.ParticipantNames[id] = member.GetName()
		if member.GetImage() != "" {
			c.ParticipantImages[id] = member.GetImage()
		}
		c.UnreadCounts[id] = int(member.GetUnreadCount())
		seen, err := fromTimestamp(member.GetLastSeen())
		if err != nil {
			return chat.Conversation{}, err
		}
		if !seen.IsZero() {
			c.LastSeen[id] = seen
		}
	}

	last := record.GetLastMessage()
	at, err := fromTimestamp(last.GetAt())
	if err != nil {
		return chat.Conversation{}, err
	}
	c.LastMessage = chat.LastMessage{
		Text:     last.GetText(),
		SenderID: last.GetSenderId(),
		Kind:     chat.MessageKind(last.GetKind()),
		At:       at,
	}
	if c.CreatedAt, err = fromTimestamp(record.GetCreatedAt()); err != nil {
		return chat.Conversation{}, err
	}
	if c.UpdatedAt, err = fromTimestamp(record.GetUpdatedAt()); err != nil {
		return chat.Conversation{}, err
	}
	return c, nil
}

// A zero time is stored as an absent timestamp.
func toTimestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func fromTimestamp(ts *timestamppb.Timestamp) (time.Time, error) {
	if ts == nil {
		return time.Time{}, nil
	}
	if err := ts.CheckValid(); err != nil {
		return time.Time{}, err
	}
	return ts.AsTime(), nil
}
