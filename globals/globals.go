package globals

import (
	"context"
	"os"
)

var (
	JwtSecret = []byte(jwtSecretFromEnv())
)

func jwtSecretFromEnv() string {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return s
	}
	return "fairway_dev_secret"
}

// Context keys
type ContextKey string

const UserIDKey ContextKey = "userId"

var Ctx = context.Background()
