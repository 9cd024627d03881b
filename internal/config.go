package internal

import (
	"alumni-chat/errors"
	"fmt"
	"strings"
	"time"
)

type Config struct {
	LogLevel string `env:"LOG_LEVEL,default=INFO"`

	BadgerFilepath string        `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath  string        `env:"BLUGE_FILEPATH,required=true"`
	RedisURL       string        `env:"REDIS_URL,required=true"`
	PresenceTTL    time.Duration `env:"PRESENCE_TTL,default=45s"`

	JWTSecret         string        `env:"JWT_SECRET,required=true"`
	JWTIssuer         string        `env:"JWT_ISSUER,default=alumni-chat"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,default=24h"`

	Host      string `env:"HOST,default=0.0.0.0"`
	HTTPPort  int    `env:"HTTP_PORT,required=true"`
	GRPCPort  int    `env:"GRPC_PORT,required=true"`
	DebugPort int    `env:"DEBUG_PORT,default=8081"`
	BodyLimit int    `env:"BODY_LIMIT,default=1048576"`

	BufferSize      int           `env:"BUFFER_SIZE,required=true"`
	SinkTimeout     time.Duration `env:"SINK_TIMEOUT,required=true"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,required=true"`
	ProbeInterval   time.Duration `env:"PROBE_INTERVAL,default=10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`

	MetricInterval       time.Duration `env:"METRIC_INTERVAL,default=30s"`
	LowCapacityThreshold int           `env:"LOW_CAPACITY_THRESHOLD,default=16"`

	CharReplacement string `env:"CHARACTER_REPLACEMENT,required=true"`
	CensoredWords   string `env:"CENSORED_WORDS"`
}

// ExtraCensoredWords splits CENSORED_WORDS, a comma separated list added to
// the embedded dictionaries.
func (c Config) ExtraCensoredWords() []string {
	var words []string
	for _, w := range strings.Split(c.CensoredWords, ",") {
		if w = strings.TrimSpace(w); w != "" {
			words = append(words, w)
		}
	}
	return words
}

func (c Config) HTTPAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.HTTPPort)
}

func (c Config) GRPCAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.GRPCPort)
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf("%w: CHARACTER_REPLACEMENT got %q", errors.ErrInvalidCharacter, str)
	}
	return r[0], nil
}
