package linkproof

import (
	"time"

	"oroid/internal/crypto"
	"oroid/internal/domain"
)

// domainTag separates link-proof signatures from any other protocol that
// might sign similar-looking byte strings with the same keys.
const domainTag = "oroid/link-proof/v1"

// Canonical returns the two DIDs in canonical (lexicographic) order.
// Proof validity is order-independent; storage order is not.
func Canonical(a, b domain.DID) (domain.DID, domain.DID) {
	if b < a {
		return b, a
	}
	return a, b
}

// Payload builds the canonical signing bytes binding both DIDs, the
// signing timestamp and the domain-separation tag. Both parties sign the
// identical payload. Null separators keep the encoding unambiguous.
func Payload(didA, didB domain.DID, signedAt time.Time) []byte {
	ts := signedAt.UTC().Format(time.RFC3339Nano)
	b := make([]byte, 0, len(domainTag)+len(didA)+len(didB)+len(ts)+3)
	b = append(b, domainTag...)
	b = append(b, 0)
	b = append(b, didA...)
	b = append(b, 0)
	b = append(b, didB...)
	b = append(b, 0)
	b = append(b, ts...)
	return b
}

// Sign produces both signatures over the canonical payload. didA and didB
// must already be in canonical order, with privA and privB matching them
// positionally.
func Sign(
	didA, didB domain.DID,
	privA, privB domain.Ed25519Private,
	signedAt time.Time,
) (sigA, sigB []byte) {
	payload := Payload(didA, didB, signedAt)
	return crypto.SignEd25519(privA, payload), crypto.SignEd25519(privB, payload)
}

// Verify reports whether both of the proof's signatures verify against the
// given public keys over the payload rebuilt from the proof's own fields.
func Verify(p domain.LinkProof, pubA, pubB domain.Ed25519Public) bool {
	payload := Payload(p.DIDA, p.DIDB, p.SignedAt)
	return crypto.VerifyEd25519(pubA, payload, p.SignatureA) &&
		crypto.VerifyEd25519(pubB, payload, p.SignatureB)
}
