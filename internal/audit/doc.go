// Package audit provides an append-only operation log.
//
// The manager records every successful create, link, and revoke so that
// the trust graph's history can be reconstructed and inspected without
// replaying store snapshots.
package audit
