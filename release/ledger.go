package release

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	json "github.com/goccy/go-json"

	"github.com/erraggy/oaspublisher/internal/fileutil"
	"github.com/erraggy/oaspublisher/oaserrors"
)

// LedgerFileName is the name of the ledger file inside a release folder.
const LedgerFileName = "releases.json"

// Ledger is the persisted release history of one release folder.
//
// Versions lists every version ever recorded and Published the versions that
// were promoted, both in insertion order without duplicates. Latest is the most
// recently published version and is omitted from the file until something is
// published.
type Ledger struct {
	Latest    string   `json:"latest,omitempty"`
	Versions  []string `json:"versions"`
	Published []string `json:"published"`
}

// LedgerPath returns the ledger path inside folder.
func LedgerPath(folder string) string {
	return filepath.Join(folder, LedgerFileName)
}

// ReadLedger loads the ledger of folder. A missing ledger (or folder) yields an
// empty ledger; a ledger that cannot be decoded is a *oaserrors.ParseError.
func ReadLedger(folder string) (*Ledger, error) {
	path := LedgerPath(folder)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Ledger{Versions: []string{}, Published: []string{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("release: failed to read ledger: %w", err)
	}

	var l Ledger
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, &oaserrors.ParseError{Path: path, Message: "invalid release ledger", Cause: err}
	}
	l.normalize()
	return &l, nil
}

// Write persists the ledger into folder as indented JSON, creating the folder
// when needed. The file is replaced atomically.
func (l *Ledger) Write(folder string) error {
	l.normalize()
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return fmt.Errorf("release: failed to encode ledger: %w", err)
	}
	data = append(data, '\n')
	if err := fileutil.WriteFileAtomic(LedgerPath(folder), data, fileutil.ReadableByAll); err != nil {
		return fmt.Errorf("release: failed to write ledger: %w", err)
	}
	return nil
}

// HasVersion reports whether version was ever recorded.
func (l *Ledger) HasVersion(version string) bool {
	return slices.Contains(l.Versions, version)
}

// IsPublished reports whether version was published.
func (l *Ledger) IsPublished(version string) bool {
	return slices.Contains(l.Published, version)
}

// AddVersion appends version to Versions. Returns false when already present.
func (l *Ledger) AddVersion(version string) bool {
	if l.HasVersion(version) {
		return false
	}
	l.Versions = append(l.Versions, version)
	return true
}

// MarkPublished appends version to Published (and to Versions when missing)
// and points Latest at it. Returns false when version was already published,
// in which case the ledger is left untouched.
func (l *Ledger) MarkPublished(version string) bool {
	if l.IsPublished(version) {
		return false
	}
	l.AddVersion(version)
	l.Published = append(l.Published, version)
	l.Latest = version
	return true
}

// normalize guarantees both lists encode as arrays and drops duplicates a hand
// edited file may contain.
func (l *Ledger) normalize() {
	l.Versions = dedupe(l.Versions)
	l.Published = dedupe(l.Published)
}

func dedupe(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
