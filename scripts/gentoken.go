//go:build ignore

// Mints an HS256 token for local testing:
//
//	go run scripts/gentoken.go -sub <user id> [-email a@b.c] [-ttl 24h]
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go-resume-backend/config"
	"go-resume-backend/pkg/auth"
)

func main() {
	sub := flag.String("sub", "", "user id (must exist in users)")
	email := flag.String("email", "", "email claim")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	if *sub == "" || cfg.JWTSecret == "" {
		fmt.Println("Error: -sub and JWT_SECRET are required")
		os.Exit(1)
	}

	token, err := auth.IssueToken(cfg.JWTSecret, *sub, *email, *ttl)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
