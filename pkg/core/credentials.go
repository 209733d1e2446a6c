package core

import "fmt"

// Credentials holds API authentication credentials.
// They are immutable for the lifetime of a client instance.
type Credentials struct {
	// APIKey is the public API key identifier.
	APIKey string `json:"api_key"`
	// SecretKey is the private key used for signing requests.
	// It must never be logged or embedded in request bodies.
	SecretKey string `json:"secret_key"`
}

// String renders the credentials with the API key masked and the secret
// omitted entirely, so a Credentials value is safe to log.
func (c Credentials) String() string {
	return fmt.Sprintf("Credentials{Key:%s}", maskKey(c.APIKey))
}

func maskKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "****" + key[len(key)-4:]
}
