package helpers

import "github.com/google/uuid"

// NewRunID returns a unique id used to correlate the log lines of one run
func NewRunID() string {
	return uuid.New().String()
}
