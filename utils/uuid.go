package utils

import (
	"github.com/google/uuid"
)

// NewRequestID returns a unique id for correlating log lines of one request
func NewRequestID() string {
	return uuid.New().String()
}
