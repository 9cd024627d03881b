// Package presence stores ephemeral per-participant state in redis: the
// online flag kept alive by heartbeats, the last-seen time and the message
// notification preference.
package presence

import (
	"alumni-chat/domain/chat"
	"context"
	stderrors "errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	onlinePrefix   = "presence:online:"
	lastSeenPrefix = "presence:last_seen:"
	mutedKey       = "preferences:messages_muted"
)

type RedisPresence struct {
	client *redis.Client
	ttl    time.Duration
	now    func() time.Time
}

// NewRedisPresence builds a store from a redis:// URL and checks the
// connection.
func NewRedisPresence(ctx context.Context, redisURL string, ttl time.Duration) (*RedisPresence, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return NewRedisPresenceWithClient(client, ttl), nil
}

func NewRedisPresenceWithClient(client *redis.Client, ttl time.Duration) *RedisPresence {
	return &RedisPresence{client: client, ttl: ttl, now: func() time.Time { return time.Now().UTC() }}
}

// Heartbeat marks the participant online for one TTL and refreshes their
// last-seen time.
func (p *RedisPresence) Heartbeat(ctx context.Context, participantID string) error {
	now := p.now()
	_, err := p.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, onlinePrefix+participantID, "1", p.ttl)
		pipe.Set(ctx, lastSeenPrefix+participantID, now.UnixMilli(), 0)
		return nil
	})
	if err != nil {
		return fmt.Errorf("heartbeat %s: %w", participantID, err)
	}
	return nil
}

// Disconnect clears the online flag right away instead of waiting for the
// TTL to lapse.
func (p *RedisPresence) Disconnect(ctx context.Context, participantID string) error {
	now := p.now()
	_, err := p.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, onlinePrefix+participantID)
		pipe.Set(ctx, lastSeenPrefix+participantID, now.UnixMilli(), 0)
		return nil
	})
	if err != nil {
		return fmt.Errorf("disconnect %s: %w", participantID, err)
	}
	return nil
}

func (p *RedisPresence) Status(ctx context.Context, participantID string) (chat.Presence, error) {
	status := chat.Presence{ParticipantID: participantID}

	online, err := p.client.Exists(ctx, onlinePrefix+participantID).Result()
	if err != nil {
		return status, fmt.Errorf("presence of %s: %w", participantID, err)
	}
	status.Online = online > 0

	raw, err := p.client.Get(ctx, lastSeenPrefix+participantID).Result()
	if stderrors.Is(err, redis.Nil) {
		return status, nil
	}
	if err != nil {
		return status, fmt.Errorf("last seen of %s: %w", participantID, err)
	}
	millis, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return status, fmt.Errorf("last seen of %s: %w", participantID, err)
	}
	status.LastSeen = time.UnixMilli(millis).UTC()
	return status, nil
}

// SetMessageNotifications records whether the participant wants a push for
// new messages. Enabled is the default.
func (p *RedisPresence) SetMessageNotifications(ctx context.Context, participantID string, enabled bool) error {
	var err error
	if enabled {
		err = p.client.SRem(ctx, mutedKey, participantID).Err()
	} else {
		err = p.client.SAdd(ctx, mutedKey, participantID).Err()
	}
	if err != nil {
		return fmt.Errorf("notification preference of %s: %w", participantID, err)
	}
	return nil
}

func (p *RedisPresence) MessageNotificationsEnabled(ctx context.Context, participantID string) (bool, error) {
	muted, err := p.client.SIsMember(ctx, mutedKey, participantID).Result()
	if err != nil {
		return true, fmt.Errorf("notification preference of %s: %w", participantID, err)
	}
	return !muted, nil
}

func (p *RedisPresence) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

func (p *RedisPresence) Close() error {
	return p.client.Close()
}
