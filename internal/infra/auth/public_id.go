package auth

import (
	"crypto/rand"
	"encoding/hex"

	"roster/internal/domain/service"

	"github.com/pkg/errors"
)

// publicIDBytes is the entropy behind every public identifier. 10 random
// bytes hex-encode to 20 characters.
const publicIDBytes = 10

// hexIDGenerator implements PublicIDGenerator on crypto/rand.
type hexIDGenerator struct{}

// NewPublicIDGenerator is the constructor for hexIDGenerator.
func NewPublicIDGenerator() service.PublicIDGenerator {
	return &hexIDGenerator{}
}

// NewPublicID returns a fresh hex-encoded identifier.
func (g *hexIDGenerator) NewPublicID() (string, error) {
	buf := make([]byte, publicIDBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes for public id")
	}

	return hex.EncodeToString(buf), nil
}
