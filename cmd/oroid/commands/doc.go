// Package commands defines the oroid CLI and wires dependencies for subcommands.
//
// Commands
//
//   - create   Create a DID with a fresh Ed25519 keypair
//   - link     Prove two local DIDs share a controller
//   - revoke   Terminally invalidate a DID
//   - resolve  Show the identity cluster behind a DID
//   - list     List all known DIDs
//   - proofs   List recorded link proofs
//
// # Implementation
//
// The root command builds the dependency graph (file store, keyring, audit
// log, manager) before any subcommand runs, so handlers share one app
// context rooted at the --home directory.
package commands
