package auth

import "time"

// Config holds authentication configuration.
type Config struct {
	JWT JWTConfig
}

// JWTConfig configures token signing and lifetimes.
type JWTConfig struct {
	SecretKey       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	Issuer          string
}

// DefaultConfig returns the default authentication configuration.
func DefaultConfig() Config {
	return Config{
		JWT: JWTConfig{
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 7 * 24 * time.Hour,
			Issuer:          "plantel",
		},
	}
}
