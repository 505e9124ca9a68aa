package crypto

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"oroid/internal/domain"
)

// Fingerprint returns a short BLAKE2b digest of a public key for
// display and logging.
func Fingerprint(pub domain.Ed25519Public) domain.Fingerprint {
	sum := blake2b.Sum256(pub.Slice())
	return domain.Fingerprint(hex.EncodeToString(sum[:8]))
}
