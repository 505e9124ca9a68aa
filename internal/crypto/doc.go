// Package crypto exposes the minimal primitives used by oroid.
//
// Contents
//
//   - Ed25519 key generation, signing and verification (GenerateEd25519,
//     SignEd25519, VerifyEd25519)
//   - Canonical DID derivation from a public key (DeriveDID, VerifyDID)
//   - Short public-key fingerprints for display/logging (Fingerprint)
//
// # Notes
//
// All functions take and return the fixed-size array types defined in
// internal/domain to avoid accidental reallocations. VerifyEd25519 treats
// malformed input as a failed verification rather than an error.
package crypto
