// Command token issues a participant token signed with the server secret,
// for local testing of the HTTP and WebSocket API.
package main

import (
	"alumni-chat/auth"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Netflix/go-env"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
)

type config struct {
	JWTSecret         string        `env:"JWT_SECRET,required=true"`
	JWTIssuer         string        `env:"JWT_ISSUER,default=alumni-chat"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,default=24h"`
}

func main() {
	userID := flag.String("user", "", "Participant id put in the token")
	name := flag.String("name", "", "Display name put in the token")
	roles := flag.String("roles", "", "Comma separated roles")
	flag.Parse()

	_ = godotenv.Load()
	var cfg config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		fail("config error: %v", err)
	}
	issuer, err := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTIssuer, cfg.AuthTokenDuration)
	if err != nil {
		fail("%v", err)
	}

	request := auth.IssueRequest{UserID: *userID, Name: *name}
	if *roles != "" {
		request.Roles = strings.Split(*roles, ",")
	}
	token, err := issuer.GenerateToken(request)
	if err != nil {
		fail("%v", err)
	}
	color.Fprintf(os.Stderr, "<green>Token for %s valid %s</>\n", *userID, cfg.AuthTokenDuration)
	fmt.Println(token)
}

func fail(format string, args ...any) {
	color.Fprintf(os.Stderr, "<red>"+format+"</>\n", args...)
	os.Exit(1)
}
