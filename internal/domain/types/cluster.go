package types

import "time"

// IdentityCluster is the set of DIDs asserted, via link proofs, to belong
// to the same real-world identity.
//
// MemberDIDs is authoritative for membership; DIDNode.ClusterID is only a
// cached back-reference. Members are kept in insertion order and are never
// removed — a revoked node stays listed so its proofs remain auditable.
type IdentityCluster struct {
	ClusterID  ClusterID `json:"cluster_id"`
	Label      string    `json:"label,omitempty"`
	MemberDIDs []DID     `json:"member_dids"`
	CreatedAt  time.Time `json:"created_at"`
}

// Contains reports whether did is a member of the cluster.
func (c IdentityCluster) Contains(did DID) bool {
	for _, m := range c.MemberDIDs {
		if m == did {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of the cluster.
func (c IdentityCluster) Clone() IdentityCluster {
	out := c
	out.MemberDIDs = append([]DID(nil), c.MemberDIDs...)
	return out
}
