package utils

import "github.com/google/uuid"

// UUIDGenerator issues X-Trace-ID values for requests that arrive without
// one. Version 7 ids sort by creation time, which keeps log lines of
// consecutive requests adjacent.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new trace id.
func (g *UUIDGenerator) Generate() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}

	return uuid.NewString()
}
