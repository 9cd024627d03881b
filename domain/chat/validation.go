package chat

import (
	"alumni-chat/domain/mimetypes"
	"alumni-chat/errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// Message timestamps are keyed by their Unix nanoseconds, which only cover
// [1970, 2262) as a non-negative int64.
var (
	minSentAt = time.Unix(0, 0).UTC()
	maxSentAt = time.Date(2262, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// Validate checks a message before it is written and after it is read back.
func (m Message) Validate() error {
	if m.ID == uuid.Nil {
		return errInvalid("message id is missing")
	}
	if m.SentAt.IsZero() {
		return errInvalid("message timestamp is missing")
	}
	if m.SentAt.Before(minSentAt) || !m.SentAt.Before(maxSentAt) {
		return errInvalid(fmt.Sprintf("message timestamp %s is out of range", m.SentAt.Format(time.RFC3339)))
	}
	if err := validate.Struct(m); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrValidationFailure, err)
	}
	switch m.Kind {
	case KindText, KindSystem:
		if strings.TrimSpace(m.Body) == "" {
			return errInvalid("text message has an empty body")
		}
	case KindImage, KindFile:
		if m.Attachment == nil {
			return errInvalid(fmt.Sprintf("%s message has no attachment", m.Kind))
		}
		return validateAttachment(m.Kind, *m.Attachment)
	case KindLocation:
		if m.Location == nil {
			return errInvalid("location message has no coordinates")
		}
	}
	return nil
}

func validateAttachment(kind MessageKind, a Attachment) error {
	if a.MimeType == "" {
		if kind == KindImage {
			return errInvalid("image attachment has no content type")
		}
		return nil
	}
	mt, ok := mimetypes.Resolve(a.MimeType)
	if !ok {
		return errInvalid(fmt.Sprintf("unsupported content type %q", a.MimeType))
	}
	if kind == KindImage && !mt.IsImage() {
		return errInvalid(fmt.Sprintf("content type %q is not an image", a.MimeType))
	}
	return nil
}

func errInvalid(reason string) error {
	return fmt.Errorf("%w: %s", errors.ErrValidationFailure, reason)
}

func errForbidden(reason string) error {
	return fmt.Errorf("%w: %s", errors.ErrForbidden, reason)
}
