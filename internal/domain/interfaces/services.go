package interfaces

import domaintypes "oroid/internal/domain/types"

// DIDService creates, links, revokes and resolves node identities.
type DIDService interface {
	// CreateDID generates a keypair and persists a new active node. The
	// private key is returned exactly once and never stored by the service.
	CreateDID(label string) (domaintypes.DIDNode, domaintypes.Ed25519Private, error)

	// LinkDIDs executes the bidirectional link protocol between two active
	// nodes, merging their clusters as needed, and appends the proof.
	LinkDIDs(
		didA domaintypes.DID,
		privA domaintypes.Ed25519Private,
		didB domaintypes.DID,
		privB domaintypes.Ed25519Private,
	) (domaintypes.LinkProof, error)

	// RevokeDID terminally invalidates one node. Revoking an already
	// revoked node is a no-op returning the stored node.
	RevokeDID(did domaintypes.DID, reason string) (domaintypes.DIDNode, error)

	// ResolveIdentity returns the cluster a DID belongs to, or nil if the
	// node was never linked.
	ResolveIdentity(did domaintypes.DID) (*domaintypes.IdentityCluster, error)

	ListNodes() ([]domaintypes.DIDNode, error)
	ListClusters() ([]domaintypes.IdentityCluster, error)
	ListProofs() ([]domaintypes.LinkProof, error)
}
