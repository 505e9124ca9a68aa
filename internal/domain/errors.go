package domain

import "errors"

// Typed failure conditions surfaced by the manager and stores. All are
// per-call and recoverable; callers distinguish them with errors.Is.
var (
	// ErrDIDExists is returned when creation collides with an existing DID.
	ErrDIDExists = errors.New("did already exists")

	// ErrDIDNotFound is returned when an operation references an unknown DID.
	ErrDIDNotFound = errors.New("did not found")

	// ErrDIDRevoked is returned when a link is attempted against a revoked node.
	ErrDIDRevoked = errors.New("did is revoked")

	// ErrClusterNotFound is returned when a cluster reference cannot be
	// resolved. A node pointing at a missing cluster signals a store bug,
	// not routine control flow.
	ErrClusterNotFound = errors.New("cluster not found")

	// ErrLinkProofInvalid is returned when signature verification fails
	// during linking: wrong key, tampered payload, or DID mismatch.
	ErrLinkProofInvalid = errors.New("invalid link proof")

	// ErrKeyNotFound is returned when the keyring holds no private key for
	// the requested DID.
	ErrKeyNotFound = errors.New("private key not found")
)
