package domain

import (
	interfaces "oroid/internal/domain/interfaces"
	types "oroid/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	DID             = types.DID
	ClusterID       = types.ClusterID
	Fingerprint     = types.Fingerprint
	NodeStatus      = types.NodeStatus
	DIDNode         = types.DIDNode
	IdentityCluster = types.IdentityCluster
	LinkProof       = types.LinkProof
	Ed25519Public   = types.Ed25519Public
	Ed25519Private  = types.Ed25519Private
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	DIDService = interfaces.DIDService
	DIDStore   = interfaces.DIDStore
	KeyStore   = interfaces.KeyStore
)

// Node lifecycle states.
const (
	StatusActive  = types.StatusActive
	StatusRevoked = types.StatusRevoked
)
