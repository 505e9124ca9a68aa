package types

import "time"

// LinkProof is the immutable, bidirectional artifact evidencing that two
// nodes consented to share a cluster.
//
// DIDA and DIDB are stored in canonical (lexicographic) order so that
// equality and deduplication are well-defined. Both signatures cover the
// identical canonical payload built from the two DIDs, SignedAt, and a
// domain-separation tag; the payload is reproducible from these fields
// alone, so a persisted proof can always be re-verified.
type LinkProof struct {
	DIDA       DID       `json:"did_a"`
	DIDB       DID       `json:"did_b"`
	SignedAt   time.Time `json:"signed_at"`
	SignatureA []byte    `json:"signature_a"`
	SignatureB []byte    `json:"signature_b"`
	ClusterID  ClusterID `json:"cluster_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// Clone returns an independent copy of the proof.
func (p LinkProof) Clone() LinkProof {
	out := p
	out.SignatureA = append([]byte(nil), p.SignatureA...)
	out.SignatureB = append([]byte(nil), p.SignatureB...)
	return out
}
