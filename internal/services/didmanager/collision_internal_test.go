package didmanager

import (
	"errors"
	"testing"

	"oroid/internal/crypto"
	"oroid/internal/domain"
	"oroid/internal/store"
)

// A forced keygen collision must surface ErrDIDExists rather than silently
// overwriting the existing node.
func TestCreateDID_Collision(t *testing.T) {
	priv, pub, err := crypto.GenerateEd25519()
	if err != nil {
		t.Fatalf("GenerateEd25519: %v", err)
	}

	m := New(store.NewMemoryStore())
	m.keygen = func() (domain.Ed25519Private, domain.Ed25519Public, error) {
		return priv, pub, nil
	}

	if _, _, err := m.CreateDID("first"); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, _, err := m.CreateDID("second"); !errors.Is(err, domain.ErrDIDExists) {
		t.Fatalf("want ErrDIDExists, got %v", err)
	}

	nodes, err := m.ListNodes()
	if err != nil {
		t.Fatalf("ListNodes: %v", err)
	}
	if len(nodes) != 1 || nodes[0].Label != "first" {
		t.Fatalf("collision mutated store: %+v", nodes)
	}
}
