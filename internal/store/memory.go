package store

import (
	"fmt"
	"sync"

	"oroid/internal/domain"
)

// MemoryStore is the reference DIDStore: plain keyed maps guarded by a
// read-write lock. List order is insertion order for deterministic output.
type MemoryStore struct {
	mu           sync.RWMutex
	nodes        map[domain.DID]domain.DIDNode
	nodeOrder    []domain.DID
	clusters     map[domain.ClusterID]domain.IdentityCluster
	clusterOrder []domain.ClusterID
	proofs       []domain.LinkProof
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nodes:    make(map[domain.DID]domain.DIDNode),
		clusters: make(map[domain.ClusterID]domain.IdentityCluster),
	}
}

// SaveNode inserts or replaces a node.
func (s *MemoryStore) SaveNode(node domain.DIDNode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.nodes[node.DID]; !ok {
		s.nodeOrder = append(s.nodeOrder, node.DID)
	}
	s.nodes[node.DID] = node.Clone()
	return nil
}

// GetNode returns the node for did, or domain.ErrDIDNotFound.
func (s *MemoryStore) GetNode(did domain.DID) (domain.DIDNode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	node, ok := s.nodes[did]
	if !ok {
		return domain.DIDNode{}, fmt.Errorf("%w: %s", domain.ErrDIDNotFound, did)
	}
	return node.Clone(), nil
}

// ListNodes returns all nodes in insertion order.
func (s *MemoryStore) ListNodes() ([]domain.DIDNode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.DIDNode, 0, len(s.nodeOrder))
	for _, did := range s.nodeOrder {
		out = append(out, s.nodes[did].Clone())
	}
	return out, nil
}

// SaveCluster inserts or replaces a cluster.
func (s *MemoryStore) SaveCluster(cluster domain.IdentityCluster) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clusters[cluster.ClusterID]; !ok {
		s.clusterOrder = append(s.clusterOrder, cluster.ClusterID)
	}
	s.clusters[cluster.ClusterID] = cluster.Clone()
	return nil
}

// GetCluster returns the cluster for id, or domain.ErrClusterNotFound.
func (s *MemoryStore) GetCluster(id domain.ClusterID) (domain.IdentityCluster, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cluster, ok := s.clusters[id]
	if !ok {
		return domain.IdentityCluster{}, fmt.Errorf("%w: %s", domain.ErrClusterNotFound, id)
	}
	return cluster.Clone(), nil
}

// ListClusters returns all clusters in insertion order.
func (s *MemoryStore) ListClusters() ([]domain.IdentityCluster, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.IdentityCluster, 0, len(s.clusterOrder))
	for _, id := range s.clusterOrder {
		out = append(out, s.clusters[id].Clone())
	}
	return out, nil
}

// DeleteCluster removes a cluster record, or returns
// domain.ErrClusterNotFound if absent.
func (s *MemoryStore) DeleteCluster(id domain.ClusterID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clusters[id]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrClusterNotFound, id)
	}
	delete(s.clusters, id)
	for i, existing := range s.clusterOrder {
		if existing == id {
			s.clusterOrder = append(s.clusterOrder[:i], s.clusterOrder[i+1:]...)
			break
		}
	}
	return nil
}

// SaveProof appends a link proof. Proofs are never updated or deleted.
func (s *MemoryStore) SaveProof(proof domain.LinkProof) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.proofs = append(s.proofs, proof.Clone())
	return nil
}

// ListProofs returns all proofs in append order.
func (s *MemoryStore) ListProofs() ([]domain.LinkProof, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.LinkProof, 0, len(s.proofs))
	for _, p := range s.proofs {
		out = append(out, p.Clone())
	}
	return out, nil
}

// Compile-time assertion that MemoryStore implements domain.DIDStore.
var _ domain.DIDStore = (*MemoryStore)(nil)
