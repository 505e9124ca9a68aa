// Package keyring stores private keys for locally-operated DIDs.
//
// Keys live in a single file encrypted with a key derived from the user's
// passphrase via scrypt and sealed with ChaCha20-Poly1305. The identity
// core never reads the keyring; only the CLI uses it, to hold the keys it
// gets back from create and to supply them to link.
package keyring
