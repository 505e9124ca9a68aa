// Package store provides the DIDStore implementations.
//
// It contains concrete implementations of the domain storage interface:
//   - MemoryStore, the in-memory reference implementation
//   - FileStore, a JSON snapshot on disk with the same error contract
//
// All methods are concurrency-safe via internal locking. The stores hold
// no cross-entity invariants; the manager service is the sole enforcer.
package store
