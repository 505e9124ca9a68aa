package didmanager_test

import (
	"errors"
	"testing"

	"oroid/internal/domain"
	"oroid/internal/protocol/linkproof"
)

func TestLinkDIDs_NewCluster(t *testing.T) {
	m := newManager(t)
	a, privA := createNode(t, m, "laptop")
	b, privB := createNode(t, m, "phone")

	proof, err := m.LinkDIDs(a.DID, privA, b.DID, privB)
	if err != nil {
		t.Fatalf("LinkDIDs: %v", err)
	}

	wantA, wantB := linkproof.Canonical(a.DID, b.DID)
	if proof.DIDA != wantA || proof.DIDB != wantB {
		t.Fatalf("proof not in canonical order: %s, %s", proof.DIDA, proof.DIDB)
	}

	clusters, err := m.ListClusters()
	if err != nil {
		t.Fatalf("ListClusters: %v", err)
	}
	if len(clusters) != 1 {
		t.Fatalf("want 1 cluster, got %d", len(clusters))
	}
	cluster := clusters[0]
	if cluster.ClusterID != proof.ClusterID {
		t.Fatal("proof cluster id does not match stored cluster")
	}
	if len(cluster.MemberDIDs) != 2 || !cluster.Contains(a.DID) || !cluster.Contains(b.DID) {
		t.Fatalf("bad membership: %v", cluster.MemberDIDs)
	}

	// Both nodes' back-references point at the cluster.
	nodes, err := m.ListNodes()
	if err != nil {
		t.Fatalf("ListNodes: %v", err)
	}
	for _, n := range nodes {
		if n.ClusterID != cluster.ClusterID {
			t.Fatalf("node %s has cluster %q, want %q", n.DID, n.ClusterID, cluster.ClusterID)
		}
	}
}

func TestLinkDIDs_WrongKeyRejectedAtomically(t *testing.T) {
	m := newManager(t)
	a, privA := createNode(t, m, "a")
	b, _ := createNode(t, m, "b")
	_, privC := createNode(t, m, "c")

	// privC does not match b's stored public key.
	if _, err := m.LinkDIDs(a.DID, privA, b.DID, privC); !errors.Is(err, domain.ErrLinkProofInvalid) {
		t.Fatalf("want ErrLinkProofInvalid, got %v", err)
	}

	// No partial state: no cluster, no proof, no back-reference.
	clusters, err := m.ListClusters()
	if err != nil {
		t.Fatalf("ListClusters: %v", err)
	}
	if len(clusters) != 0 {
		t.Fatalf("failed link created %d cluster(s)", len(clusters))
	}
	proofs, err := m.ListProofs()
	if err != nil {
		t.Fatalf("ListProofs: %v", err)
	}
	if len(proofs) != 0 {
		t.Fatalf("failed link persisted %d proof(s)", len(proofs))
	}
	nodes, err := m.ListNodes()
	if err != nil {
		t.Fatalf("ListNodes: %v", err)
	}
	for _, n := range nodes {
		if n.ClusterID != "" {
			t.Fatalf("failed link mutated cluster_id on %s", n.DID)
		}
	}
}

func TestLinkDIDs_UnknownAndSelf(t *testing.T) {
	m := newManager(t)
	a, privA := createNode(t, m, "a")

	if _, err := m.LinkDIDs(a.DID, privA, "did:oro:absent", privA); !errors.Is(err, domain.ErrDIDNotFound) {
		t.Fatalf("want ErrDIDNotFound, got %v", err)
	}
	if _, err := m.LinkDIDs(a.DID, privA, a.DID, privA); !errors.Is(err, domain.ErrLinkProofInvalid) {
		t.Fatalf("self-link: want ErrLinkProofInvalid, got %v", err)
	}
}

func TestLinkDIDs_RevokedNodeRejected(t *testing.T) {
	m := newManager(t)
	a, privA := createNode(t, m, "a")
	b, privB := createNode(t, m, "b")

	if _, err := m.RevokeDID(a.DID, "compromised"); err != nil {
		t.Fatalf("RevokeDID: %v", err)
	}

	// Signatures would be valid; status alone must reject the link.
	if _, err := m.LinkDIDs(a.DID, privA, b.DID, privB); !errors.Is(err, domain.ErrDIDRevoked) {
		t.Fatalf("want ErrDIDRevoked, got %v", err)
	}
	if _, err := m.LinkDIDs(b.DID, privB, a.DID, privA); !errors.Is(err, domain.ErrDIDRevoked) {
		t.Fatalf("reversed args: want ErrDIDRevoked, got %v", err)
	}
}

func TestLinkDIDs_Idempotent(t *testing.T) {
	m := newManager(t)
	a, privA := createNode(t, m, "a")
	b, privB := createNode(t, m, "b")

	first, err := m.LinkDIDs(a.DID, privA, b.DID, privB)
	if err != nil {
		t.Fatalf("first link: %v", err)
	}
	second, err := m.LinkDIDs(b.DID, privB, a.DID, privA)
	if err != nil {
		t.Fatalf("second link: %v", err)
	}
	if second.ClusterID != first.ClusterID {
		t.Fatal("re-link moved nodes to a different cluster")
	}

	// Fresh evidence is appended, membership is unchanged.
	proofs, err := m.ListProofs()
	if err != nil {
		t.Fatalf("ListProofs: %v", err)
	}
	if len(proofs) != 2 {
		t.Fatalf("want 2 proofs, got %d", len(proofs))
	}
	clusters, err := m.ListClusters()
	if err != nil {
		t.Fatalf("ListClusters: %v", err)
	}
	if len(clusters) != 1 || len(clusters[0].MemberDIDs) != 2 {
		t.Fatalf("membership changed on re-link: %+v", clusters)
	}
}

func TestLinkDIDs_JoinExistingCluster(t *testing.T) {
	m := newManager(t)
	a, privA := createNode(t, m, "a")
	b, privB := createNode(t, m, "b")
	c, privC := createNode(t, m, "c")

	first, err := m.LinkDIDs(a.DID, privA, b.DID, privB)
	if err != nil {
		t.Fatalf("link a-b: %v", err)
	}
	second, err := m.LinkDIDs(c.DID, privC, a.DID, privA)
	if err != nil {
		t.Fatalf("link c-a: %v", err)
	}
	if second.ClusterID != first.ClusterID {
		t.Fatal("joining node created a new cluster")
	}

	cluster, err := m.ResolveIdentity(c.DID)
	if err != nil {
		t.Fatalf("ResolveIdentity(c): %v", err)
	}
	if len(cluster.MemberDIDs) != 3 {
		t.Fatalf("want 3 members, got %v", cluster.MemberDIDs)
	}
}

func TestLinkDIDs_MergeClusters(t *testing.T) {
	m := newManager(t)
	a, privA := createNode(t, m, "a")
	b, privB := createNode(t, m, "b")
	c, privC := createNode(t, m, "c")
	d, privD := createNode(t, m, "d")

	p1, err := m.LinkDIDs(a.DID, privA, b.DID, privB)
	if err != nil {
		t.Fatalf("link a-b: %v", err)
	}
	p2, err := m.LinkDIDs(c.DID, privC, d.DID, privD)
	if err != nil {
		t.Fatalf("link c-d: %v", err)
	}
	if p1.ClusterID == p2.ClusterID {
		t.Fatal("setup: expected two distinct clusters")
	}

	merged, err := m.LinkDIDs(b.DID, privB, c.DID, privC)
	if err != nil {
		t.Fatalf("merge link b-c: %v", err)
	}

	// Deterministic survivor: the lexicographically smaller cluster id.
	want := p1.ClusterID
	if p2.ClusterID < want {
		want = p2.ClusterID
	}
	if merged.ClusterID != want {
		t.Fatalf("want survivor %s, got %s", want, merged.ClusterID)
	}

	clusters, err := m.ListClusters()
	if err != nil {
		t.Fatalf("ListClusters: %v", err)
	}
	if len(clusters) != 1 {
		t.Fatalf("absorbed cluster not deleted: %d clusters", len(clusters))
	}
	cluster := clusters[0]
	if len(cluster.MemberDIDs) != 4 {
		t.Fatalf("want members {a,b,c,d}, got %v", cluster.MemberDIDs)
	}
	for _, did := range []domain.DID{a.DID, b.DID, c.DID, d.DID} {
		if !cluster.Contains(did) {
			t.Fatalf("member %s missing after merge", did)
		}
		node := getNode(t, m, did)
		if node.ClusterID != merged.ClusterID {
			t.Fatalf("node %s points at %q, want %q", did, node.ClusterID, merged.ClusterID)
		}
	}
}

func getNode(t *testing.T, m interface {
	ListNodes() ([]domain.DIDNode, error)
}, did domain.DID) domain.DIDNode {
	t.Helper()
	nodes, err := m.ListNodes()
	if err != nil {
		t.Fatalf("ListNodes: %v", err)
	}
	for _, n := range nodes {
		if n.DID == did {
			return n
		}
	}
	t.Fatalf("node %s not found", did)
	return domain.DIDNode{}
}
