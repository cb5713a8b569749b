package globals

import (
	"context"
	"os"
)

var JwtSecret = []byte(envOr("JWT_SECRET", "dev-only-secret"))

// Context keys
type ContextKey string

const UserIDKey ContextKey = "userId"
const IsAdminKey ContextKey = "isAdmin"

var Ctx = context.Background()

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
