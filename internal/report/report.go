// Package report exports a finished trace as JSON, YAML, a single-file HTML
// replay or a styled terminal listing.
package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mabhi256/dsaviz/internal/algo"
	"github.com/mabhi256/dsaviz/internal/edgecase"
	"github.com/mabhi256/dsaviz/internal/trace"
)

var ErrUnknownFormat = errors.New("unknown output format")

type Format string

const (
	FormatCLI  Format = "cli"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatHTML Format = "html"
)

func Formats() []string {
	return []string{string(FormatCLI), string(FormatJSON), string(FormatYAML), string(FormatHTML)}
}

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCLI, FormatJSON, FormatYAML, FormatHTML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w %q (valid: %s)", ErrUnknownFormat, s, strings.Join(Formats(), ", "))
	}
}

// Extension is the file suffix written for f.
func (f Format) Extension() string {
	if f == FormatCLI {
		return ".txt"
	}
	return "." + string(f)
}

// Export is the serialized form shared by the JSON, YAML and HTML outputs.
type Export struct {
	RunID      string          `json:"runId" yaml:"runId"`
	Name       string          `json:"name" yaml:"name"`
	Category   algo.Category   `json:"category" yaml:"category"`
	Complexity algo.Complexity `json:"complexity" yaml:"complexity"`
	EdgeCase   string          `json:"edgeCase" yaml:"edgeCase"`
	Advice     string          `json:"advice,omitempty" yaml:"advice,omitempty"`

	trace.Document `yaml:",inline"`
}

type Report struct {
	RunID     string
	Algorithm algo.Algorithm
	Trace     *trace.Trace
	EdgeCase  edgecase.Class
}

// New pairs a trace with the algorithm that produced it.
func New(a algo.Algorithm, t *trace.Trace) *Report {
	return &Report{
		RunID:     uuid.NewString(),
		Algorithm: a,
		Trace:     t,
		EdgeCase:  edgecase.Classify(t.Input()),
	}
}

func (r *Report) Export() Export {
	return Export{
		RunID:      r.RunID,
		Name:       r.Algorithm.Name,
		Category:   r.Algorithm.Category,
		Complexity: r.Algorithm.Complexity,
		EdgeCase:   r.EdgeCase.String(),
		Advice:     r.EdgeCase.Advice(),
		Document:   r.Trace.Document(),
	}
}

// Write renders r in format f.
func (r *Report) Write(w io.Writer, f Format) error {
	switch f {
	case FormatCLI:
		return r.WriteCLI(w)
	case FormatJSON:
		return r.WriteJSON(w)
	case FormatYAML:
		return r.WriteYAML(w)
	case FormatHTML:
		return r.WriteHTML(w)
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, f)
	}
}

// WriteFile renders r into path, or into a timestamped default path when
// path is empty, and returns the absolute path written.
func (r *Report) WriteFile(path string, f Format) (string, error) {
	if path == "" {
		path = DefaultOutputPath(r.Algorithm.ID, f)
	}

	absPath, err := GetOutputPath(path, f)
	if err != nil {
		return "", err
	}

	file, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", absPath, err)
	}
	defer file.Close()

	if err := r.Write(file, f); err != nil {
		return "", err
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", absPath, err)
	}
	return absPath, nil
}

// GetOutputPath returns an absolute path with the format's extension,
// creating parent directories if needed.
func GetOutputPath(path string, f Format) (string, error) {
	if !strings.HasSuffix(strings.ToLower(path), f.Extension()) {
		path += f.Extension()
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path for %s: %w", path, err)
	}

	dir := filepath.Dir(absPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return absPath, nil
}

func DefaultOutputPath(algorithmID string, f Format) string {
	timestamp := time.Now().Format("20060102_150405")
	return fmt.Sprintf("%s-trace-%s%s", algorithmID, timestamp, f.Extension())
}
