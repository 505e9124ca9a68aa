package interfaces

import domaintypes "oroid/internal/domain/types"

// DIDStore persists nodes, clusters and link proofs.
//
// Get methods signal absence with domain.ErrDIDNotFound and
// domain.ErrClusterNotFound so callers can rely on the store's error
// contract instead of re-checking existence. The store holds no
// cross-entity invariants; the manager is the sole enforcer.
type DIDStore interface {
	SaveNode(node domaintypes.DIDNode) error
	GetNode(did domaintypes.DID) (domaintypes.DIDNode, error)
	ListNodes() ([]domaintypes.DIDNode, error)

	SaveCluster(cluster domaintypes.IdentityCluster) error
	GetCluster(id domaintypes.ClusterID) (domaintypes.IdentityCluster, error)
	ListClusters() ([]domaintypes.IdentityCluster, error)
	DeleteCluster(id domaintypes.ClusterID) error

	// Proofs are append-only: there is no update or delete.
	SaveProof(proof domaintypes.LinkProof) error
	ListProofs() ([]domaintypes.LinkProof, error)
}

// KeyStore holds private keys for locally-operated DIDs, encrypted at rest.
// It exists for the CLI's benefit only; the core manager never reads it.
type KeyStore interface {
	SaveKey(passphrase string, did domaintypes.DID, priv domaintypes.Ed25519Private) error
	LoadKey(passphrase string, did domaintypes.DID) (domaintypes.Ed25519Private, error)
	ListKeys(passphrase string) ([]domaintypes.DID, error)
}
