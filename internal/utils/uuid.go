package utils

import "github.com/google/uuid"

// RunIDGenerator issues the identifier attached to the logs of one stamp run.
type RunIDGenerator struct {
}

func NewRunIDGenerator() *RunIDGenerator {
	return &RunIDGenerator{}
}

// Generate returns a time-ordered v7 id, or a random v4 id if the clock
// source fails.
func (g *RunIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
