package dispatch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bartekus/skillstub/internal/skill"
)

// Record is the persisted result of a single dispatch.
// Matches <state-dir>/skills/<skill>.json.
type Record struct {
	Skill      string `json:"skill"`
	Status     string `json:"status"`
	Halted     bool   `json:"halted,omitempty"`
	DurationMS int64  `json:"duration_ms"`
	Note       string `json:"note,omitempty"`
}

// LastRun is the summary of the most recent exec invocation.
// Matches <state-dir>/last-run.json.
type LastRun struct {
	RunID  string   `json:"run_id"`
	Status string   `json:"status"` // "pass" or "fail"
	Skills []string `json:"skills"` // ordered list of skills dispatched
	Failed []string `json:"failed"` // skills that returned FAILURE or ERROR
}

// NewRecord builds a Record from a dispatch outcome.
func NewRecord(desc skill.Descriptor, status skill.Status) Record {
	return Record{
		Skill:      desc.Name,
		Status:     status.String(),
		DurationMS: desc.Duration.Milliseconds(),
	}
}

// StateStore reads and writes dispatch state under a base directory.
type StateStore struct {
	baseDir string
}

// NewStateStore creates a store at the given base directory
// (e.g. .skillstub/run).
func NewStateStore(baseDir string) *StateStore {
	return &StateStore{baseDir: baseDir}
}

func (s *StateStore) lastRunPath() string {
	return filepath.Join(s.baseDir, "last-run.json")
}

// ReadLastRun loads the last run summary. A missing file is a clean
// state: nil, nil.
func (s *StateStore) ReadLastRun() (*LastRun, error) {
	var last LastRun
	ok, err := s.readJSON(s.lastRunPath(), &last)
	if err != nil || !ok {
		return nil, err
	}
	return &last, nil
}

// ReadRecord loads the persisted record for one skill; nil, nil when
// the skill has never been dispatched.
func (s *StateStore) ReadRecord(skillName string) (*Record, error) {
	var rec Record
	ok, err := s.readJSON(filepath.Join(s.baseDir, "skills", skillName+".json"), &rec)
	if err != nil || !ok {
		return nil, err
	}
	return &rec, nil
}

// WriteLastRun saves the run summary.
func (s *StateStore) WriteLastRun(last LastRun) error {
	return s.writeJSON(s.lastRunPath(), last)
}

// WriteRecord saves a single dispatch record.
func (s *StateStore) WriteRecord(rec Record) error {
	return s.writeJSON(filepath.Join(s.baseDir, "skills", rec.Skill+".json"), rec)
}

// Reset clears the state directory.
func (s *StateStore) Reset() error {
	return os.RemoveAll(s.baseDir)
}

func (s *StateStore) readJSON(path string, v any) (bool, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if err := json.NewDecoder(f).Decode(v); err != nil {
		return false, fmt.Errorf("decoding %s: %w", path, err)
	}
	return true, nil
}

func (s *StateStore) writeJSON(path string, v any) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		cerr := f.Close()
		if err == nil {
			err = cerr
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
