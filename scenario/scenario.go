package scenario

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/escaperoute/absorb"
	"github.com/katalvlaran/escaperoute/matrix"
	"github.com/katalvlaran/escaperoute/rescue"
	"github.com/katalvlaran/escaperoute/timegraph"
)

// Format identifies the encoding of a scenario file.
type Format string

const (
	// FormatYAML is YAML 1.2 as understood by gopkg.in/yaml.v3.
	FormatYAML Format = "yaml"

	// FormatJSON is JSON, optionally with comments and trailing commas.
	FormatJSON Format = "json"
)

var (
	// ErrUnknownFormat indicates a file extension with no known decoder.
	ErrUnknownFormat = errors.New("scenario: unknown file format")

	// ErrMissingMatrix indicates a scenario without its matrix.
	ErrMissingMatrix = errors.New("scenario: matrix is missing")

	// ErrTimeLimitRange indicates a time limit outside [0, rescue.MaxTimeLimit].
	ErrTimeLimitRange = errors.New("scenario: time limit out of range")
)

// Escape is a rescue problem: transition times plus a time budget.
type Escape struct {
	Name      string  `yaml:"name" json:"name"`
	Times     [][]int `yaml:"times" json:"times"`
	TimeLimit int     `yaml:"time_limit" json:"time_limit"`
}

// Chain is an absorbing Markov chain given by observed transition counts.
type Chain struct {
	Name   string  `yaml:"name" json:"name"`
	Counts [][]int `yaml:"counts" json:"counts"`
}

// FormatOf picks the format from the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json", ".jsonc":
		return FormatJSON, nil
	}

	return "", fmt.Errorf("%q: %w", filepath.Ext(path), ErrUnknownFormat)
}

// NameFromPath strips the directory and extension from path, so
// "testdata/refund.yaml" becomes "refund".
func NameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// decode unmarshals data into v, rejecting unknown fields. An empty
// document leaves v untouched.
func decode(data []byte, f Format, v any) error {
	switch f {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("parsing yaml: %w", err)
		}
	case FormatJSON:
		stripped := bytes.TrimSpace(jsonc.ToJSON(data))
		if len(stripped) == 0 {
			return nil
		}
		dec := json.NewDecoder(bytes.NewReader(stripped))
		dec.DisallowUnknownFields()
		if err := dec.Decode(v); err != nil {
			return fmt.Errorf("parsing json: %w", err)
		}
	default:
		return fmt.Errorf("%q: %w", string(f), ErrUnknownFormat)
	}

	return nil
}

// ParseEscape decodes and validates an escape scenario.
func ParseEscape(data []byte, f Format) (*Escape, error) {
	var e Escape
	if err := decode(data, f, &e); err != nil {
		return nil, err
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}

	return &e, nil
}

// ParseChain decodes and validates a chain scenario.
func ParseChain(data []byte, f Format) (*Chain, error) {
	var c Chain
	if err := decode(data, f, &c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// ReadEscape reads an escape scenario from path. A missing name defaults to
// NameFromPath(path).
func ReadEscape(path string) (*Escape, error) {
	data, f, err := read(path)
	if err != nil {
		return nil, err
	}
	e, err := ParseEscape(data, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if e.Name == "" {
		e.Name = NameFromPath(path)
	}

	return e, nil
}

// ReadChain reads a chain scenario from path. A missing name defaults to
// NameFromPath(path).
func ReadChain(path string) (*Chain, error) {
	data, f, err := read(path)
	if err != nil {
		return nil, err
	}
	c, err := ParseChain(data, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if c.Name == "" {
		c.Name = NameFromPath(path)
	}

	return c, nil
}

func read(path string) ([]byte, Format, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("reading %s: %w", path, err)
	}

	return data, f, nil
}

// Validate checks that the matrix is present and forms a valid graph and
// that the time limit lies in [0, rescue.MaxTimeLimit].
func (e *Escape) Validate() error {
	if len(e.Times) == 0 {
		return ErrMissingMatrix
	}
	if e.TimeLimit < 0 || e.TimeLimit > rescue.MaxTimeLimit {
		return fmt.Errorf("time_limit %d not in [0,%d]: %w", e.TimeLimit, rescue.MaxTimeLimit, ErrTimeLimitRange)
	}
	if _, err := timegraph.New(e.Times); err != nil {
		return err
	}

	return nil
}

// Graph builds the timegraph.Graph of e.
func (e *Escape) Graph() (*timegraph.Graph, error) {
	return timegraph.New(e.Times)
}

// Validate checks that the counts are present, square and small enough.
// Sign and absorbing-state checks are left to absorb.Probabilities.
func (c *Chain) Validate() error {
	if len(c.Counts) == 0 {
		return ErrMissingMatrix
	}
	if len(c.Counts) > absorb.MaxStates {
		return fmt.Errorf("scenario: %d states, max %d: %w", len(c.Counts), absorb.MaxStates, absorb.ErrTooManyStates)
	}
	if _, err := matrix.NewSquare(c.Counts); err != nil {
		return fmt.Errorf("scenario: %w", err)
	}

	return nil
}
