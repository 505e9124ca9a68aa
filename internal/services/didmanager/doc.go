// Package didmanager implements the identity orchestration service.
//
// The manager composes the crypto primitives, the link-proof protocol and
// a DIDStore into the operations consumers call: create, link, revoke,
// resolve, list. It is the sole enforcer of cross-entity invariants:
//
//   - a DID is unique; creation checks for collisions
//   - linking requires both private keys and verifies both signatures
//     against the stored public keys before persisting anything
//   - cluster merge is deterministic (lexicographically smaller cluster
//     id survives)
//   - revocation is terminal, idempotent, and confined to a single node;
//     revoked nodes remain cluster members for auditability
//
// Mutations are serialized per manager; the stores only guard their own
// data structures.
package didmanager
