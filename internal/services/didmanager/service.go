package didmanager

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"oroid/internal/audit"
	"oroid/internal/crypto"
	"oroid/internal/domain"
)

// Manager is the orchestration service over a DIDStore. It owns all
// cross-entity invariants: the store itself enforces none.
//
// Mutating operations are serialized by an exclusive lock so that
// concurrent link/merge calls cannot both believe they own the surviving
// cluster. Reads go straight to the store, which guards itself.
type Manager struct {
	mu           sync.Mutex
	store        domain.DIDStore
	method       string
	logger       *slog.Logger
	recorder     audit.Recorder
	now          func() time.Time
	newClusterID func() domain.ClusterID
	keygen       func() (domain.Ed25519Private, domain.Ed25519Public, error)
}

// Option configures a Manager.
type Option func(*Manager)

// WithMethod sets the DID method for newly created nodes.
func WithMethod(method string) Option {
	return func(m *Manager) { m.method = method }
}

// WithLogger sets the logger for operation tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithAuditRecorder wires an append-only operation log. Recording is
// best-effort: a failing recorder is logged, never surfaced to callers.
func WithAuditRecorder(r audit.Recorder) Option {
	return func(m *Manager) { m.recorder = r }
}

// WithClock overrides the time source, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// New returns a Manager over store.
func New(store domain.DIDStore, opts ...Option) *Manager {
	m := &Manager{
		store:        store,
		method:       crypto.DefaultMethod,
		logger:       slog.Default(),
		now:          time.Now,
		newClusterID: func() domain.ClusterID { return domain.ClusterID(uuid.NewString()) },
		keygen:       crypto.GenerateEd25519,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// CreateDID generates a fresh keypair, derives the DID and persists a new
// active node. The private key is returned to the caller exactly once;
// the store never sees it.
func (m *Manager) CreateDID(label string) (domain.DIDNode, domain.Ed25519Private, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	priv, pub, err := m.keygen()
	if err != nil {
		return domain.DIDNode{}, domain.Ed25519Private{}, err
	}
	did := crypto.DeriveDID(m.method, pub)

	// Collision probability is negligible but checked, not assumed away.
	if _, err := m.store.GetNode(did); err == nil {
		return domain.DIDNode{}, domain.Ed25519Private{}, fmt.Errorf("%w: %s", domain.ErrDIDExists, did)
	} else if !errors.Is(err, domain.ErrDIDNotFound) {
		return domain.DIDNode{}, domain.Ed25519Private{}, err
	}

	node := domain.DIDNode{
		DID:       did,
		PublicKey: pub,
		Label:     label,
		Status:    domain.StatusActive,
		CreatedAt: m.now().UTC(),
	}
	if err := m.store.SaveNode(node); err != nil {
		return domain.DIDNode{}, domain.Ed25519Private{}, err
	}

	m.logger.Debug("created did", "did", did, "label", label)
	m.record(audit.Event{At: node.CreatedAt, Op: audit.OpCreate, DIDs: []domain.DID{did}, Detail: label})
	return node, priv, nil
}

// RevokeDID terminally invalidates one node. Revocation never touches the
// node's cluster membership or any other node: blast radius is exactly one
// key. Re-revoking is a no-op returning the stored node, so retries are safe.
func (m *Manager) RevokeDID(did domain.DID, reason string) (domain.DIDNode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	node, err := m.store.GetNode(did)
	if err != nil {
		return domain.DIDNode{}, err
	}
	if node.Status == domain.StatusRevoked {
		return node, nil
	}

	at := m.now().UTC()
	node.Status = domain.StatusRevoked
	node.RevokedAt = &at
	node.RevocationReason = reason
	if err := m.store.SaveNode(node); err != nil {
		return domain.DIDNode{}, err
	}

	m.logger.Info("revoked did", "did", did, "reason", reason)
	m.record(audit.Event{At: at, Op: audit.OpRevoke, DIDs: []domain.DID{did}, Detail: reason})
	return node, nil
}

// ResolveIdentity returns the cluster did belongs to, or nil if the node
// was never linked. A dangling cluster reference surfaces as
// domain.ErrClusterNotFound: that is a store-consistency bug, not routine
// control flow.
func (m *Manager) ResolveIdentity(did domain.DID) (*domain.IdentityCluster, error) {
	node, err := m.store.GetNode(did)
	if err != nil {
		return nil, err
	}
	if node.ClusterID == "" {
		return nil, nil
	}
	cluster, err := m.store.GetCluster(node.ClusterID)
	if err != nil {
		return nil, fmt.Errorf("node %s references missing cluster: %w", did, err)
	}
	return &cluster, nil
}

// ListNodes enumerates all nodes in insertion order.
func (m *Manager) ListNodes() ([]domain.DIDNode, error) { return m.store.ListNodes() }

// ListClusters enumerates all clusters in insertion order.
func (m *Manager) ListClusters() ([]domain.IdentityCluster, error) { return m.store.ListClusters() }

// ListProofs enumerates all link proofs in append order.
func (m *Manager) ListProofs() ([]domain.LinkProof, error) { return m.store.ListProofs() }

func (m *Manager) record(e audit.Event) {
	if m.recorder == nil {
		return
	}
	if err := m.recorder.Record(e); err != nil {
		m.logger.Warn("audit record failed", "op", e.Op, "err", err)
	}
}

// Compile-time assertion that Manager implements domain.DIDService.
var _ domain.DIDService = (*Manager)(nil)
