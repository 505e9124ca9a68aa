package store

import (
	"sync"

	"oroid/internal/domain"
)

// snapshot is the on-disk layout of the store: three plain collections.
// Private keys never appear here; DIDNode has no private-key field.
type snapshot struct {
	Nodes    []domain.DIDNode         `json:"nodes"`
	Clusters []domain.IdentityCluster `json:"clusters"`
	Proofs   []domain.LinkProof       `json:"proofs"`
}

// FileStore is a DIDStore persisted as a single JSON snapshot. State is
// held in an embedded MemoryStore; every mutation rewrites the snapshot
// atomically, so the file is consistent after any crash.
type FileStore struct {
	mu   sync.Mutex
	mem  *MemoryStore
	path string
}

// NewFileStore loads (or initializes) the snapshot at path.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{mem: NewMemoryStore(), path: path}

	var snap snapshot
	if err := readJSON(path, &snap); err != nil {
		return nil, err
	}
	for _, n := range snap.Nodes {
		if err := s.mem.SaveNode(n); err != nil {
			return nil, err
		}
	}
	for _, c := range snap.Clusters {
		if err := s.mem.SaveCluster(c); err != nil {
			return nil, err
		}
	}
	for _, p := range snap.Proofs {
		if err := s.mem.SaveProof(p); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *FileStore) persistLocked() error {
	nodes, err := s.mem.ListNodes()
	if err != nil {
		return err
	}
	clusters, err := s.mem.ListClusters()
	if err != nil {
		return err
	}
	proofs, err := s.mem.ListProofs()
	if err != nil {
		return err
	}
	return writeJSON(s.path, snapshot{Nodes: nodes, Clusters: clusters, Proofs: proofs}, 0o600)
}

// SaveNode inserts or replaces a node and persists the snapshot.
func (s *FileStore) SaveNode(node domain.DIDNode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.mem.SaveNode(node); err != nil {
		return err
	}
	return s.persistLocked()
}

// GetNode returns the node for did, or domain.ErrDIDNotFound.
func (s *FileStore) GetNode(did domain.DID) (domain.DIDNode, error) {
	return s.mem.GetNode(did)
}

// ListNodes returns all nodes in insertion order.
func (s *FileStore) ListNodes() ([]domain.DIDNode, error) {
	return s.mem.ListNodes()
}

// SaveCluster inserts or replaces a cluster and persists the snapshot.
func (s *FileStore) SaveCluster(cluster domain.IdentityCluster) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.mem.SaveCluster(cluster); err != nil {
		return err
	}
	return s.persistLocked()
}

// GetCluster returns the cluster for id, or domain.ErrClusterNotFound.
func (s *FileStore) GetCluster(id domain.ClusterID) (domain.IdentityCluster, error) {
	return s.mem.GetCluster(id)
}

// ListClusters returns all clusters in insertion order.
func (s *FileStore) ListClusters() ([]domain.IdentityCluster, error) {
	return s.mem.ListClusters()
}

// DeleteCluster removes a cluster record and persists the snapshot.
func (s *FileStore) DeleteCluster(id domain.ClusterID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.mem.DeleteCluster(id); err != nil {
		return err
	}
	return s.persistLocked()
}

// SaveProof appends a link proof and persists the snapshot.
func (s *FileStore) SaveProof(proof domain.LinkProof) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.mem.SaveProof(proof); err != nil {
		return err
	}
	return s.persistLocked()
}

// ListProofs returns all proofs in append order.
func (s *FileStore) ListProofs() ([]domain.LinkProof, error) {
	return s.mem.ListProofs()
}

// Compile-time assertion that FileStore implements domain.DIDStore.
var _ domain.DIDStore = (*FileStore)(nil)
