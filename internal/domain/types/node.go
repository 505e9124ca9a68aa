package types

import "time"

// DIDNode is one node identity: its DID, public key and lifecycle state.
//
// The private key is deliberately not a field. It is returned to the caller
// exactly once at creation and supplied per-operation afterwards, so no
// store or serializer can ever persist it.
type DIDNode struct {
	DID              DID           `json:"did"`
	PublicKey        Ed25519Public `json:"public_key"`
	Label            string        `json:"label"`
	Status           NodeStatus    `json:"status"`
	ClusterID        ClusterID     `json:"cluster_id,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	RevokedAt        *time.Time    `json:"revoked_at,omitempty"`
	RevocationReason string        `json:"revocation_reason,omitempty"`
}

// IsActive reports whether the node may sign and be linked.
func (n DIDNode) IsActive() bool { return n.Status == StatusActive }

// Clone returns an independent copy of the node.
func (n DIDNode) Clone() DIDNode {
	out := n
	if n.RevokedAt != nil {
		at := *n.RevokedAt
		out.RevokedAt = &at
	}
	return out
}
