package util

import (
	"encoding/base64"

	"github.com/google/uuid"
)

// ShortUUID generates a short UUID with 22 symbols
func ShortUUID() string {
	u := uuid.New()
	return base64.RawURLEncoding.EncodeToString(u[:]) // 22 symbols
}

// RequestID returns the incoming id when it looks sane, or a fresh short UUID
func RequestID(incoming string) string {
	if incoming != "" && len(incoming) <= 64 {
		return incoming
	}
	return ShortUUID()
}
