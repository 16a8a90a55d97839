package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/sistema-nomina/nomina-backend-go/internal/config"
	"github.com/sistema-nomina/nomina-backend-go/internal/pkg/jwt"
)

// tokengen mints an access token against the configured JWT secret, for
// local development and API smoke tests. Production tokens come from the
// identity service.
func main() {
	userID := flag.String("user", "dev-user", "user_id claim")
	email := flag.String("email", "dev@localhost", "email claim")
	role := flag.String("role", string(jwt.RoleHR), "role claim (admin, hr, employee)")
	flag.Parse()

	switch jwt.Role(*role) {
	case jwt.RoleAdmin, jwt.RoleHR, jwt.RoleEmployee:
	default:
		log.Fatalf("unknown role %q", *role)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	token, expiresAt, err := jwtService.GenerateAccessToken(*userID, *email, jwt.Role(*role))
	if err != nil {
		log.Fatal("Error generating token: ", err)
	}

	fmt.Println(token)
	fmt.Println("expires_at:", expiresAt)
}
