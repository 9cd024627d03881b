package repositories

import (
	"alumni-chat/errors"
	"context"
	"encoding/binary"
	stderrors "errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const maxConflictRetries = 64

// update runs fn in a read-write transaction and replays it, after a short
// jittered pause, when badger reports a conflict with a concurrent writer.
// fn must not carry state between attempts.
func update(ctx context.Context, db *badger.DB, fn func(txn *badger.Txn) error) error {
	var err error
	for attempt := 0; attempt <= maxConflictRetries; attempt++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		err = db.Update(fn)
		if !stderrors.Is(err, badger.ErrConflict) {
			return err
		}
		time.Sleep(time.Duration(rand.IntN(attempt+1)+1) * 100 * time.Microsecond)
	}
	return err
}

// classify keeps domain errors as they are and turns anything else into a
// write failure.
func classify(err error) error {
	if err == nil {
		return nil
	}
	for _, known := range []error{
		errors.ErrValidationFailure,
		errors.ErrConversationNotFound,
		errors.ErrMessageNotFound,
		errors.ErrNotParticipant,
		errors.ErrNotGroupConversation,
		errors.ErrForbidden,
		errors.ErrWriteFailure,
	} {
		if stderrors.Is(err, known) {
			return err
		}
	}
	return fmt.Errorf("%w: %v", errors.ErrWriteFailure, err)
}

func getValue(txn *badger.Txn, key []byte) ([]byte, error) {
	item, err := txn.Get(key)
	if err != nil {
		return nil, err
	}
	return item.ValueCopy(nil)
}

func isNotFound(err error) bool {
	return stderrors.Is(err, badger.ErrKeyNotFound)
}

func encodeClock(t time.Time) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(t.UnixNano()))
	return b
}

func readClock(txn *badger.Txn, conversationID string) (time.Time, error) {
	b, err := getValue(txn, clockKey(conversationID))
	if isNotFound(err) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}
	if len(b) != 8 {
		return time.Time{}, nil
	}
	return time.Unix(0, int64(binary.BigEndian.Uint64(b))).UTC(), nil
}
