package didmanager

import (
	"fmt"

	"oroid/internal/audit"
	"oroid/internal/domain"
	"oroid/internal/protocol/linkproof"
)

// LinkDIDs executes the bidirectional link protocol between two active
// nodes. Both private keys are required: possession of both is what
// authenticates the caller as controlling both nodes, and neither key is
// retained beyond this call.
//
// Cluster bookkeeping is a union over clusters keyed by DID, with the
// twist that the union only happens on cryptographic proof of consent.
// Both signatures are verified against the stored public keys before any
// store mutation, so a failed link leaves no partial state.
func (m *Manager) LinkDIDs(
	didA domain.DID,
	privA domain.Ed25519Private,
	didB domain.DID,
	privB domain.Ed25519Private,
) (domain.LinkProof, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if didA == didB {
		return domain.LinkProof{}, fmt.Errorf("%w: cannot link %s to itself", domain.ErrLinkProofInvalid, didA)
	}

	nodeA, err := m.store.GetNode(didA)
	if err != nil {
		return domain.LinkProof{}, err
	}
	nodeB, err := m.store.GetNode(didB)
	if err != nil {
		return domain.LinkProof{}, err
	}
	if !nodeA.IsActive() {
		return domain.LinkProof{}, fmt.Errorf("%w: %s", domain.ErrDIDRevoked, didA)
	}
	if !nodeB.IsActive() {
		return domain.LinkProof{}, fmt.Errorf("%w: %s", domain.ErrDIDRevoked, didB)
	}

	// Canonical order makes proof equality well-defined; keep keys and
	// nodes aligned with their DIDs after the swap.
	if first, _ := linkproof.Canonical(didA, didB); first != didA {
		didA, didB = didB, didA
		privA, privB = privB, privA
		nodeA, nodeB = nodeB, nodeA
	}

	proof := domain.LinkProof{
		DIDA:     didA,
		DIDB:     didB,
		SignedAt: m.now().UTC(),
	}
	proof.SignatureA, proof.SignatureB = linkproof.Sign(didA, didB, privA, privB, proof.SignedAt)

	// Verification against the STORED public keys is what catches a caller
	// holding the wrong private key. Nothing is persisted before this.
	if !linkproof.Verify(proof, nodeA.PublicKey, nodeB.PublicKey) {
		return domain.LinkProof{}, fmt.Errorf("%w: signature does not match stored key", domain.ErrLinkProofInvalid)
	}

	clusterID, err := m.uniteLocked(nodeA, nodeB)
	if err != nil {
		return domain.LinkProof{}, err
	}
	proof.ClusterID = clusterID
	proof.CreatedAt = m.now().UTC()

	if err := m.store.SaveProof(proof); err != nil {
		return domain.LinkProof{}, err
	}

	m.logger.Debug("linked dids", "did_a", didA, "did_b", didB, "cluster", clusterID)
	m.record(audit.Event{
		At:        proof.CreatedAt,
		Op:        audit.OpLink,
		DIDs:      []domain.DID{didA, didB},
		ClusterID: clusterID,
	})
	return proof, nil
}

// uniteLocked places both nodes in one cluster and returns its id.
// Four cases: neither linked, one linked, both in the same cluster
// (idempotent), or two distinct clusters (merge).
func (m *Manager) uniteLocked(nodeA, nodeB domain.DIDNode) (domain.ClusterID, error) {
	switch {
	case nodeA.ClusterID == "" && nodeB.ClusterID == "":
		return m.createClusterLocked(nodeA, nodeB)

	case nodeA.ClusterID != "" && nodeB.ClusterID == "":
		return nodeA.ClusterID, m.joinClusterLocked(nodeA.ClusterID, nodeB)

	case nodeA.ClusterID == "" && nodeB.ClusterID != "":
		return nodeB.ClusterID, m.joinClusterLocked(nodeB.ClusterID, nodeA)

	case nodeA.ClusterID == nodeB.ClusterID:
		// Already one identity; the fresh proof is still recorded as
		// new evidence, membership is untouched.
		return nodeA.ClusterID, nil

	default:
		return m.mergeClustersLocked(nodeA.ClusterID, nodeB.ClusterID)
	}
}

func (m *Manager) createClusterLocked(nodeA, nodeB domain.DIDNode) (domain.ClusterID, error) {
	label := nodeA.Label
	if label == "" {
		label = nodeB.Label
	}
	cluster := domain.IdentityCluster{
		ClusterID:  m.newClusterID(),
		Label:      label,
		MemberDIDs: []domain.DID{nodeA.DID, nodeB.DID},
		CreatedAt:  m.now().UTC(),
	}
	if err := m.store.SaveCluster(cluster); err != nil {
		return "", err
	}
	for _, node := range []domain.DIDNode{nodeA, nodeB} {
		node.ClusterID = cluster.ClusterID
		if err := m.store.SaveNode(node); err != nil {
			return "", err
		}
	}
	return cluster.ClusterID, nil
}

func (m *Manager) joinClusterLocked(id domain.ClusterID, node domain.DIDNode) error {
	cluster, err := m.store.GetCluster(id)
	if err != nil {
		return fmt.Errorf("node %s references missing cluster: %w", node.DID, err)
	}
	if !cluster.Contains(node.DID) {
		cluster.MemberDIDs = append(cluster.MemberDIDs, node.DID)
		if err := m.store.SaveCluster(cluster); err != nil {
			return err
		}
	}
	node.ClusterID = id
	return m.store.SaveNode(node)
}

// mergeClustersLocked unions two clusters. The survivor is chosen by the
// lexicographically smaller cluster id so the outcome is reproducible
// regardless of argument order.
func (m *Manager) mergeClustersLocked(a, b domain.ClusterID) (domain.ClusterID, error) {
	survivorID, absorbedID := a, b
	if b < a {
		survivorID, absorbedID = b, a
	}

	survivor, err := m.store.GetCluster(survivorID)
	if err != nil {
		return "", err
	}
	absorbed, err := m.store.GetCluster(absorbedID)
	if err != nil {
		return "", err
	}

	for _, did := range absorbed.MemberDIDs {
		if !survivor.Contains(did) {
			survivor.MemberDIDs = append(survivor.MemberDIDs, did)
		}
		node, err := m.store.GetNode(did)
		if err != nil {
			return "", err
		}
		node.ClusterID = survivorID
		if err := m.store.SaveNode(node); err != nil {
			return "", err
		}
	}
	if err := m.store.SaveCluster(survivor); err != nil {
		return "", err
	}
	if err := m.store.DeleteCluster(absorbedID); err != nil {
		return "", err
	}
	return survivorID, nil
}
