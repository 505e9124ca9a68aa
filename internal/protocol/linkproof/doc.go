// Package linkproof implements the bidirectional link-proof protocol.
//
// A link proof demonstrates that the operators of two DIDs both consented
// to share an identity cluster: each side signs the identical canonical
// payload, which binds both DIDs, a timestamp, and a domain-separation tag
// that prevents cross-protocol replay. The package is pure protocol math;
// persistence and cluster bookkeeping live in the manager service.
package linkproof
