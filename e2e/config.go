// Package e2e drives a running server over gRPC and HTTP. Every suite is
// skipped unless SERVER_HTTP_ADDR and SERVER_GRPC_ADDR are set.
package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HTTPAddr string `envconfig:"SERVER_HTTP_ADDR"`
	GRPCAddr string `envconfig:"SERVER_GRPC_ADDR"`
	// JWT_SECRET must match the server so the suite can mint participant tokens
	JWTSecret string `envconfig:"JWT_SECRET"`
	JWTIssuer string `envconfig:"JWT_ISSUER" default:"alumni-chat"`
	// E2E_DEBUG_JSON dumps gRPC request and response bodies as JSON
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
