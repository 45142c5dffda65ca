package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NameGenerator produces unique organization names of the form
// "<prefix>-<8 hex chars>".
type NameGenerator struct {
	prefix string
}

func NewNameGenerator(prefix string) *NameGenerator {
	return &NameGenerator{prefix: prefix}
}

// Generate returns a fresh name. The suffix comes from the random tail of a
// UUIDv7 so that names created in the same millisecond still differ.
func (g *NameGenerator) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}

	raw := strings.ReplaceAll(id.String(), "-", "")
	return g.prefix + "-" + raw[len(raw)-8:]
}
