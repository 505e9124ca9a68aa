package audit

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"oroid/internal/domain"
)

// Operation names recorded in the log.
const (
	OpCreate = "create"
	OpLink   = "link"
	OpRevoke = "revoke"
)

// Event is one mutating manager operation.
type Event struct {
	At        time.Time        `json:"at"`
	Op        string           `json:"op"`
	DIDs      []domain.DID     `json:"dids"`
	ClusterID domain.ClusterID `json:"cluster_id,omitempty"`
	Detail    string           `json:"detail,omitempty"`
}

// Recorder receives events from the manager. Implementations must be safe
// for concurrent use.
type Recorder interface {
	Record(e Event) error
}

// JSONLRecorder appends events to a JSONL file, one JSON object per line.
// The file only grows; it is the operator-facing trail of every mutation.
type JSONLRecorder struct {
	path string
	mu   sync.Mutex
	f    *os.File
}

// NewJSONLRecorder creates or opens the JSONL file at path, creating the
// parent directory if needed.
func NewJSONLRecorder(path string) (*JSONLRecorder, error) {
	if path == "" {
		return nil, os.ErrInvalid
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, err
	}
	return &JSONLRecorder{path: path, f: f}, nil
}

// Record appends one event line.
func (r *JSONLRecorder) Record(e Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = r.f.Write(data)
	return err
}

// Events reads the whole log back. Lines that fail to parse are skipped;
// a partially-written trailing line must not hide the rest of the trail.
func (r *JSONLRecorder) Events() ([]Event, error) {
	r.mu.Lock()
	_ = r.f.Sync()
	r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var out []Event
	for _, line := range bytes.Split(data, []byte{'\n'}) {
		if len(line) == 0 {
			continue
		}
		var e Event
		if err := json.Unmarshal(line, &e); err != nil {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// Close closes the underlying file.
func (r *JSONLRecorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.f == nil {
		return nil
	}
	err := r.f.Close()
	r.f = nil
	return err
}

// Compile-time assertion that JSONLRecorder implements Recorder.
var _ Recorder = (*JSONLRecorder)(nil)
