package checksum

import (
	"crypto/sha256"
	"encoding/hex"
)

// Calculator computes content digests, used by watch mode to tell real
// output changes apart from filesystem events that left the composed
// result byte-identical. Composition is deterministic, so a raw digest
// is the correct identity; no normalization is needed.
type Calculator interface {
	// Calculate computes a digest of the content.
	Calculate(content []byte) string
}

// SHA256 implements Calculator using SHA-256.
// SHA256 is a zero-size type and is safe for concurrent use by multiple
// goroutines.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
func New() SHA256 {
	return SHA256{}
}

// Calculate computes the hex-encoded SHA-256 digest of content.
func (c SHA256) Calculate(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// Verify SHA256 implements the interface at compile time
var _ Calculator = SHA256{}
