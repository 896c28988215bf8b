package obographs

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/c360studio/ontograph/ontology"
)

// Loader parses obographs JSON and assembles the result into an immutable
// ontology index in one step.
type Loader struct {
	parser *Parser
	logger *slog.Logger
}

// NewLoader creates a loader. A nil logger falls back to slog.Default().
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{parser: NewParser(logger), logger: logger}
}

// LoadFromPath loads an ontology from an obographs JSON file.
func (l *Loader) LoadFromPath(path string) (*ontology.Ontology, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("obographs: open %s: %w", path, err)
	}
	defer f.Close()

	o, err := l.LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("obographs: load %s: %w", path, err)
	}
	return o, nil
}

// LoadFromReader loads an ontology from obographs JSON.
func (l *Loader) LoadFromReader(r io.Reader) (*ontology.Ontology, error) {
	data, err := l.parser.Parse(r)
	if err != nil {
		return nil, err
	}

	o, err := ontology.Build(data)
	if err != nil {
		return nil, err
	}

	l.logger.Debug("loaded ontology",
		slog.Int("terms", o.Len()),
		slog.Int("edges", len(data.Edges)))
	return o, nil
}

// ParseData parses obographs JSON into the neutral data tuple without
// building the index, for callers that post-process terms or edges.
func (l *Loader) ParseData(r io.Reader) (ontology.Data, error) {
	return l.parser.Parse(r)
}
