package cmd

import "fmt"

// Config carries everything the application reads from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// JWTSecret is the token signing key, optionally prefixed with "base64:"
	// or "hex:". Must decode to at least 32 bytes or startup fails.
	JWTSecret   string
	JWTIssuer   string
	JWTTTLHours int
	BcryptCost  int
}

// DSN builds the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
