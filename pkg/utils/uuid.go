package utils

import "github.com/google/uuid"

// GenerateID returns a new random UUID string, used as the primary key for
// every record this service creates.
func GenerateID() string {
	return uuid.New().String()
}

// IsUUID checks if the string is a valid UUID
func IsUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
