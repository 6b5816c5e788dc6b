package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered unique identifiers for new notes and
// trace ids. V7 UUIDs sort by creation time which keeps freshly created
// notes adjacent in the primary key index.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
