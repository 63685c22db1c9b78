package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/codingconcepts/env"
	"github.com/joho/godotenv"
	"github.com/pkg/browser"

	"github.com/opls-parking/gateway"
	"github.com/opls-parking/gateway/internal/cookies"
	"github.com/opls-parking/gateway/internal/dispatch"
	"github.com/opls-parking/gateway/internal/opls"
	"github.com/opls-parking/gateway/internal/tokens"
)

type Config struct {
	GatewayUrl string `env:"GATEWAY_URL" default:"http://localhost:5000"`

	Opls opls.Config
}

// dashboardPath picks the most privileged dashboard the account's claims
// grant access to.
func dashboardPath(claims []string) string {
	for _, claim := range claims {
		if claim == gateway.ClaimAdmin {
			return "/dashboard/admin"
		}
	}
	for _, claim := range claims {
		if claim == gateway.ClaimEmployee {
			return "/dashboard/employee"
		}
	}
	return "/dashboard/customer"
}

func main() {
	// Initialize config from environment vars
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("error loading .env file: %v", err)
	}
	config := Config{}
	if err := env.Set(&config); err != nil {
		log.Fatalf("error parsing config: %v", err)
	}
	if err := env.Set(&config.Opls); err != nil {
		log.Fatalf("error parsing config: %v", err)
	}

	if len(os.Args) < 3 {
		fmt.Printf("usage: login <username> <password>\n")
		os.Exit(1)
	}
	username := os.Args[1]
	password := os.Args[2]

	// Run a password grant against the backend, keeping the credentials in an
	// in-memory jar for the lifetime of the process
	jar := cookies.NewJar()
	grants := tokens.NewClient(config.Opls.BackendUrl, config.Opls.ClientId, config.Opls.ClientSecret)
	authenticator := tokens.NewAuthenticator(grants, jar)

	token, err := authenticator.Login(context.Background(), username, password)
	if err != nil {
		log.Fatalf("login failed: %v", err)
	}
	expiresAt := time.UnixMilli(token.ExpiresOn)
	fmt.Printf("logged in as %s; token expires at %s\n", username, expiresAt.Format(time.RFC1123))

	// Look up the account's claims so we can land on the right dashboard
	client := opls.NewClient(dispatch.New(config.Opls.BackendUrl, authenticator))
	claims, err := client.ProbeAccount(context.Background())
	if err != nil {
		log.Fatalf("failed to look up account: %v", err)
	}
	fmt.Printf("claims: %v\n", claims)

	url := config.GatewayUrl + dashboardPath(claims)
	fmt.Printf("Opening web browser: %s\n", url)
	browser.OpenURL(url)
}
