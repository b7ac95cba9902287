package service

// PublicIDGenerator produces externally visible account identifiers from a
// cryptographically strong random source.
type PublicIDGenerator interface {
	// NewPublicID returns a fresh identifier with at least 10 bytes of entropy,
	// hex encoded.
	NewPublicID() (string, error)
}
