package crypto

import (
	"fmt"
	"strings"

	"github.com/mr-tron/base58"

	"oroid/internal/domain"
)

// DefaultMethod is the DID method used for locally-created nodes.
const DefaultMethod = "oro"

// DeriveDID builds the canonical DID string for a public key:
// did:<method>:<base58(public_key)>. Pure function; the same key always
// yields the same DID.
func DeriveDID(method string, pub domain.Ed25519Public) domain.DID {
	if method == "" {
		method = DefaultMethod
	}
	return domain.DID("did:" + method + ":" + base58.Encode(pub.Slice()))
}

// VerifyDID reports whether did is the canonical DID for pub under its own
// method.
func VerifyDID(did domain.DID, pub domain.Ed25519Public) bool {
	method, err := Method(did)
	if err != nil {
		return false
	}
	return DeriveDID(method, pub) == did
}

// Method extracts the method segment of a DID.
func Method(did domain.DID) (string, error) {
	parts := strings.SplitN(string(did), ":", 3)
	if len(parts) != 3 || parts[0] != "did" || parts[1] == "" || parts[2] == "" {
		return "", fmt.Errorf("malformed did %q", did)
	}
	return parts[1], nil
}
