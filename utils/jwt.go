package utils

import (
	"log"
	"os"
)

// DemoUserID is the fallback identity when demo mode is on and no token is
// presented. Matches the seeded demo dataset.
const DemoUserID = "demo_emotional_wellbeing"

var JWTSecretKey string

// InitJWT loads the signing key. The key is only required when demo mode is
// off; in demo mode unauthenticated requests run as the demo user.
func InitJWT() {
	if os.Getenv("GO_ENV") == "test" && os.Getenv("JWT_SECRET_KEY") == "" {
		os.Setenv("JWT_SECRET_KEY", "test_secret_key")
	}

	JWTSecretKey = os.Getenv("JWT_SECRET_KEY")
	if JWTSecretKey == "" && !GetEnvAsBool("DEMO_MODE_ENABLED", false) {
		log.Fatal("JWT Secret Key not set and demo mode disabled")
	}
}
