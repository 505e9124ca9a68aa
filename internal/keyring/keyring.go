package keyring

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"oroid/internal/domain"
)

const keyringFilename = "keyring.enc"

// FileKeyring holds the private keys of locally-operated DIDs in a single
// passphrase-encrypted file. The core manager never touches it; it exists
// so the CLI can supply private keys to link operations.
type FileKeyring struct {
	dir string
	mu  sync.Mutex
}

// NewFileKeyring returns a FileKeyring rooted at dir.
func NewFileKeyring(dir string) *FileKeyring {
	return &FileKeyring{dir: dir}
}

// SaveKey adds or replaces the private key for did.
func (k *FileKeyring) SaveKey(passphrase string, did domain.DID, priv domain.Ed25519Private) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	keys, err := k.loadLocked(passphrase)
	if err != nil {
		return err
	}
	keys[did] = priv

	raw, err := json.Marshal(keys)
	if err != nil {
		return err
	}
	N, r, p := scryptParamsDefault()
	ct, err := encrypt(passphrase, raw, N, r, p)
	if err != nil {
		return err
	}
	return os.WriteFile(k.path(), ct, 0o600)
}

// LoadKey returns the private key for did, or domain.ErrKeyNotFound.
func (k *FileKeyring) LoadKey(passphrase string, did domain.DID) (domain.Ed25519Private, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	keys, err := k.loadLocked(passphrase)
	if err != nil {
		return domain.Ed25519Private{}, err
	}
	priv, ok := keys[did]
	if !ok {
		return domain.Ed25519Private{}, fmt.Errorf("%w: %s", domain.ErrKeyNotFound, did)
	}
	return priv, nil
}

// ListKeys returns the DIDs with locally-held keys, sorted for determinism.
func (k *FileKeyring) ListKeys(passphrase string) ([]domain.DID, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	keys, err := k.loadLocked(passphrase)
	if err != nil {
		return nil, err
	}
	out := make([]domain.DID, 0, len(keys))
	for did := range keys {
		out = append(out, did)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

func (k *FileKeyring) path() string { return filepath.Join(k.dir, keyringFilename) }

// loadLocked decrypts the keyring file; a missing file is an empty keyring.
func (k *FileKeyring) loadLocked(passphrase string) (map[domain.DID]domain.Ed25519Private, error) {
	keys := make(map[domain.DID]domain.Ed25519Private)

	b, err := os.ReadFile(k.path())
	if os.IsNotExist(err) {
		return keys, nil
	}
	if err != nil {
		return nil, err
	}
	raw, err := decrypt(passphrase, b)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &keys); err != nil {
		return nil, err
	}
	return keys, nil
}

// Compile-time assertion that FileKeyring implements domain.KeyStore.
var _ domain.KeyStore = (*FileKeyring)(nil)
