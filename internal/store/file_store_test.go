package store_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"oroid/internal/domain"
	"oroid/internal/store"
)

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "identity_store.json")

	s, err := store.NewFileStore(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := s.SaveNode(node("did:oro:a", "laptop")); err != nil {
		t.Fatalf("save node: %v", err)
	}
	cluster := domain.IdentityCluster{
		ClusterID:  "c1",
		Label:      "laptop",
		MemberDIDs: []domain.DID{"did:oro:a", "did:oro:b"},
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.SaveCluster(cluster); err != nil {
		t.Fatalf("save cluster: %v", err)
	}
	if err := s.SaveProof(domain.LinkProof{
		DIDA:       "did:oro:a",
		DIDB:       "did:oro:b",
		SignedAt:   time.Now().UTC(),
		SignatureA: []byte{1},
		SignatureB: []byte{2},
		ClusterID:  "c1",
		CreatedAt:  time.Now().UTC(),
	}); err != nil {
		t.Fatalf("save proof: %v", err)
	}

	// Reopen from disk and check everything survived.
	reopened, err := store.NewFileStore(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	n, err := reopened.GetNode("did:oro:a")
	if err != nil {
		t.Fatalf("get node: %v", err)
	}
	if n.Label != "laptop" || n.Status != domain.StatusActive {
		t.Fatalf("node did not round-trip: %+v", n)
	}
	c, err := reopened.GetCluster("c1")
	if err != nil {
		t.Fatalf("get cluster: %v", err)
	}
	if len(c.MemberDIDs) != 2 || !c.Contains("did:oro:b") {
		t.Fatalf("cluster did not round-trip: %+v", c)
	}
	proofs, err := reopened.ListProofs()
	if err != nil {
		t.Fatalf("list proofs: %v", err)
	}
	if len(proofs) != 1 || proofs[0].ClusterID != "c1" {
		t.Fatalf("proofs did not round-trip: %+v", proofs)
	}
}

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "identity_store.json")
	s, err := store.NewFileStore(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	nodes, err := s.ListNodes()
	if err != nil {
		t.Fatalf("list nodes: %v", err)
	}
	if len(nodes) != 0 {
		t.Fatalf("want empty store, got %d nodes", len(nodes))
	}
}

func TestFileStore_DeleteClusterPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "identity_store.json")
	s, err := store.NewFileStore(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := s.SaveCluster(domain.IdentityCluster{
		ClusterID:  "c1",
		MemberDIDs: []domain.DID{"did:oro:a"},
		CreatedAt:  time.Now().UTC(),
	}); err != nil {
		t.Fatalf("save cluster: %v", err)
	}
	if err := s.DeleteCluster("c1"); err != nil {
		t.Fatalf("delete cluster: %v", err)
	}

	reopened, err := store.NewFileStore(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	if _, err := reopened.GetCluster("c1"); !errors.Is(err, domain.ErrClusterNotFound) {
		t.Fatalf("want ErrClusterNotFound after reopen, got %v", err)
	}
}

func TestFileStore_SnapshotHasNoPrivateMaterial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "identity_store.json")
	s, err := store.NewFileStore(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := s.SaveNode(node("did:oro:a", "laptop")); err != nil {
		t.Fatalf("save node: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	if strings.Contains(string(raw), "private") {
		t.Fatal("snapshot mentions private key material")
	}
}
