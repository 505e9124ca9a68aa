package types

// DID is a decentralized identifier naming one node identity,
// e.g. "did:oro:4mJp...".
type DID string

// String returns the string form of the DID.
func (d DID) String() string { return string(d) }

// ClusterID uniquely identifies an IdentityCluster.
type ClusterID string

// String returns the string form of the cluster identifier.
func (id ClusterID) String() string { return string(id) }

// Fingerprint is a short identifier for public keys presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// NodeStatus is the lifecycle state of a DIDNode.
type NodeStatus string

const (
	// StatusActive marks a node that may sign and be linked.
	StatusActive NodeStatus = "active"
	// StatusRevoked marks a node that has been terminally invalidated.
	StatusRevoked NodeStatus = "revoked"
)

// String returns the string form of the status.
func (s NodeStatus) String() string { return string(s) }
