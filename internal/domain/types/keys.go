package types

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// Ed25519Public is an Ed25519 signing public key.
type Ed25519Public [32]byte

// Slice returns the key as a []byte.
func (p Ed25519Public) Slice() []byte { return p[:] }

// MarshalJSON encodes the key as a base64 string.
func (p Ed25519Public) MarshalJSON() ([]byte, error) {
	return json.Marshal(base64.StdEncoding.EncodeToString(p[:]))
}

// UnmarshalJSON decodes the key from a base64 string.
func (p *Ed25519Public) UnmarshalJSON(b []byte) error {
	raw, err := decodeKeyJSON(b, len(p))
	if err != nil {
		return err
	}
	copy(p[:], raw)
	return nil
}

// Ed25519Private is an Ed25519 signing private key.
type Ed25519Private [64]byte

// Slice returns the key as a []byte.
func (k Ed25519Private) Slice() []byte { return k[:] }

// MarshalJSON encodes the key as a base64 string.
func (k Ed25519Private) MarshalJSON() ([]byte, error) {
	return json.Marshal(base64.StdEncoding.EncodeToString(k[:]))
}

// UnmarshalJSON decodes the key from a base64 string.
func (k *Ed25519Private) UnmarshalJSON(b []byte) error {
	raw, err := decodeKeyJSON(b, len(k))
	if err != nil {
		return err
	}
	copy(k[:], raw)
	return nil
}

// MustEd25519Public converts b to a public key, panicking on bad length.
func MustEd25519Public(b []byte) Ed25519Public {
	if len(b) != 32 {
		panic(fmt.Errorf("Ed25519 public: want 32 bytes, got %d", len(b)))
	}
	var out Ed25519Public
	copy(out[:], b)
	return out
}

// MustEd25519Private converts b to a private key, panicking on bad length.
func MustEd25519Private(b []byte) Ed25519Private {
	if len(b) != 64 {
		panic(fmt.Errorf("Ed25519 private: want 64 bytes, got %d", len(b)))
	}
	var out Ed25519Private
	copy(out[:], b)
	return out
}

func decodeKeyJSON(b []byte, want int) ([]byte, error) {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, err
	}
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if len(raw) != want {
		return nil, fmt.Errorf("key: want %d bytes, got %d", want, len(raw))
	}
	return raw, nil
}
