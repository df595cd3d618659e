package release

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/erraggy/oaspublisher/internal/fileutil"
	"github.com/erraggy/oaspublisher/oaserrors"
	"github.com/erraggy/oaspublisher/parser"
)

// Outcome describes what a release operation did.
type Outcome string

const (
	// OutcomeCreated means a new snapshot was written
	OutcomeCreated Outcome = "created"
	// OutcomeUpdated means an unpublished snapshot was overwritten
	OutcomeUpdated Outcome = "updated"
	// OutcomeUnchanged means the snapshot already matched the document
	OutcomeUnchanged Outcome = "unchanged"
	// OutcomePublished means the version was promoted to published
	OutcomePublished Outcome = "published"
	// OutcomeAlreadyPublished means the version was published before; nothing changed
	OutcomeAlreadyPublished Outcome = "already-published"
)

// Printer renders a document to its canonical text. It must be deterministic.
type Printer func(doc *parser.Document, format parser.SourceFormat) ([]byte, error)

// Publisher records and publishes versions of one reconciled document.
//
// Publisher does not lock the release folder; callers must not run two
// operations against the same folder concurrently.
type Publisher struct {
	doc     *parser.Document
	format  parser.SourceFormat
	printer Printer
	logger  parser.Logger
}

// Option is a function that configures a Publisher
type Option func(*Publisher) error

// WithLogger sets the structured logger.
func WithLogger(l parser.Logger) Option {
	return func(p *Publisher) error {
		p.logger = l
		return nil
	}
}

// WithFormat selects the snapshot format. Default: YAML.
func WithFormat(format parser.SourceFormat) Option {
	return func(p *Publisher) error {
		switch format {
		case parser.SourceFormatYAML, parser.SourceFormatJSON:
			p.format = format
			return nil
		default:
			return &oaserrors.ConfigError{Option: "format", Value: format, Message: "must be yaml or json"}
		}
	}
}

// WithPrinter replaces the document printer. Default: parser.Marshal.
func WithPrinter(printer Printer) Option {
	return func(p *Publisher) error {
		if printer == nil {
			return &oaserrors.ConfigError{Option: "printer", Message: "printer cannot be nil"}
		}
		p.printer = printer
		return nil
	}
}

// New creates a Publisher for doc. The document version (info.version) names
// the snapshot; RecordVersion and Publish reject versions that are empty or
// not a plain file name, WriteReconciliation accepts any version.
func New(doc *parser.Document, opts ...Option) (*Publisher, error) {
	if doc == nil {
		return nil, &oaserrors.ConfigError{Option: "document", Message: "document is required"}
	}
	p := &Publisher{
		doc:     doc,
		format:  parser.SourceFormatYAML,
		printer: parser.Marshal,
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	p.logger = parser.LoggerOrNop(p.logger).With("title", doc.Title(), "version", doc.Version())
	return p, nil
}

// Version returns the document version handled by the publisher.
func (p *Publisher) Version() string {
	return p.doc.Version()
}

// SnapshotPath returns the snapshot path of the document version in folder.
func (p *Publisher) SnapshotPath(folder string) string {
	return filepath.Join(folder, p.Version()+p.format.Extension())
}

func (p *Publisher) render(format parser.SourceFormat) ([]byte, error) {
	data, err := p.printer(p.doc, format)
	if err != nil {
		return nil, fmt.Errorf("release: failed to render document: %w", err)
	}
	return data, nil
}

// readSnapshot returns the recorded snapshot, or nil when none exists.
func (p *Publisher) readSnapshot(folder string) ([]byte, error) {
	data, err := os.ReadFile(p.SnapshotPath(folder))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("release: failed to read snapshot: %w", err)
	}
	return data, nil
}

// RecordVersion writes the document's snapshot into folder and adds its
// version to the ledger.
//
// An identical snapshot is left alone. A differing snapshot is overwritten
// while the version is unpublished; once published it is immutable and an
// *oaserrors.AlreadyPublishedError is returned with the file untouched. The
// snapshot is written before the ledger.
func (p *Publisher) RecordVersion(folder string) (Outcome, error) {
	if err := validateFolder(folder); err != nil {
		return "", err
	}
	version := p.Version()
	if err := validateVersion(version); err != nil {
		return "", err
	}

	data, err := p.render(p.format)
	if err != nil {
		return "", err
	}
	ledger, err := ReadLedger(folder)
	if err != nil {
		return "", err
	}
	existing, err := p.readSnapshot(folder)
	if err != nil {
		return "", err
	}

	var outcome Outcome
	switch {
	case existing == nil:
		p.logger.Info("API is new, saving")
		outcome = OutcomeCreated
	case bytes.Equal(existing, data):
		p.logger.Info("API has not changed")
		outcome = OutcomeUnchanged
	case ledger.IsPublished(version):
		p.logger.Error("API has been published and cannot change", "snapshot", p.SnapshotPath(folder))
		return "", &oaserrors.AlreadyPublishedError{Version: version}
	default:
		p.logger.Info("API has changed, updating")
		outcome = OutcomeUpdated
	}

	if outcome != OutcomeUnchanged {
		if err := fileutil.WriteFileAtomic(p.SnapshotPath(folder), data, fileutil.ReadableByAll); err != nil {
			return "", fmt.Errorf("release: failed to write snapshot: %w", err)
		}
	}

	if ledger.AddVersion(version) {
		p.logger.Info("API version does not exist in ledger, updating", "ledger", LedgerPath(folder))
		if err := ledger.Write(folder); err != nil {
			return "", err
		}
	}
	return outcome, nil
}

// Publish promotes the recorded snapshot of the document version.
//
// The rendered document must match the snapshot byte for byte: a missing or
// differing snapshot yields an *oaserrors.NotUpToDateError, unless the version
// is already published, in which case a differing document yields an
// *oaserrors.AlreadyPublishedError. Publishing an already published, unchanged
// version is a no-op.
func (p *Publisher) Publish(folder string) (Outcome, error) {
	if err := validateFolder(folder); err != nil {
		return "", err
	}
	version := p.Version()
	if err := validateVersion(version); err != nil {
		return "", err
	}

	data, err := p.render(p.format)
	if err != nil {
		return "", err
	}
	ledger, err := ReadLedger(folder)
	if err != nil {
		return "", err
	}
	existing, err := p.readSnapshot(folder)
	if err != nil {
		return "", err
	}

	switch {
	case existing == nil:
		p.logger.Error("there is no API file on disk at all", "snapshot", p.SnapshotPath(folder))
		return "", &oaserrors.NotUpToDateError{Version: version, Missing: true}
	case !bytes.Equal(existing, data) && ledger.IsPublished(version):
		p.logger.Error("API has been published and cannot change", "snapshot", p.SnapshotPath(folder))
		return "", &oaserrors.AlreadyPublishedError{Version: version}
	case !bytes.Equal(existing, data):
		p.logger.Error("API file on disk is different from the currently reconciled file", "snapshot", p.SnapshotPath(folder))
		return "", &oaserrors.NotUpToDateError{Version: version}
	}

	if !ledger.MarkPublished(version) {
		p.logger.Info("API is already published")
		return OutcomeAlreadyPublished, nil
	}
	if err := ledger.Write(folder); err != nil {
		return "", err
	}
	p.logger.Info("API published", "latest", ledger.Latest)
	return OutcomePublished, nil
}

// WriteReconciliation exports the document to path. The format follows the
// path's extension (.json, .yaml, .yml) and falls back to the publisher format.
func (p *Publisher) WriteReconciliation(path string) error {
	if path == "" {
		return &oaserrors.ConfigError{Option: "reconciled-api", Message: "output path is required"}
	}
	format := p.format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		format = parser.SourceFormatJSON
	case ".yaml", ".yml":
		format = parser.SourceFormatYAML
	}

	data, err := p.render(format)
	if err != nil {
		return err
	}
	if err := fileutil.WriteFileAtomic(path, data, fileutil.ReadableByAll); err != nil {
		return fmt.Errorf("release: failed to write reconciled document: %w", err)
	}
	p.logger.Info("written reconciled file", "path", path)
	return nil
}

func validateFolder(folder string) error {
	if strings.TrimSpace(folder) == "" {
		return &oaserrors.ConfigError{Option: "release-folder", Message: "release folder is required"}
	}
	return nil
}

// validateVersion rejects versions that cannot be used as a snapshot file name.
func validateVersion(version string) error {
	switch {
	case strings.TrimSpace(version) == "":
		return &oaserrors.ConfigError{Option: "info.version", Message: "document has no version"}
	case strings.ContainsAny(version, `/\`) || strings.Contains(version, ".."):
		return &oaserrors.ConfigError{Option: "info.version", Value: version, Message: "version cannot contain path separators or '..'"}
	}
	return nil
}
