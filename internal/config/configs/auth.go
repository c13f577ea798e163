package configs

import "time"

// Auth configures bearer token issuance for the account endpoints.
type Auth struct {
	// JWTSecret signs issued HS256 tokens.
	JWTSecret string `env:"JWT_SECRET"`
	// TokenTTL bounds how long an issued token stays valid.
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	// Issuer is placed in the token iss claim.
	Issuer string `env:"ISSUER" envDefault:"fundflow"`
}
