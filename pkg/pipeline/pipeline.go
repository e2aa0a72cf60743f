// Package pipeline runs the load → layout → render pipeline shared by the
// CLI and the HTTP API.
//
// # Stages
//
//  1. Load: decode and validate a JSON, YAML or TOML document
//  2. Layout: order, level and position steps, then route connectors
//  3. Render: produce one artifact per requested output format
//
// Artifacts are cached by the content hash of the canonical document, so
// re-rendering an unchanged file skips layout entirely.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Input:       data,
//	    InputFormat: io.FormatYAML,
//	    Formats:     []string{pipeline.FormatText},
//	})
//	fmt.Println(string(result.Artifacts[pipeline.FormatText]))
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/flowbox/pkg/cache"
	"github.com/matzehuels/flowbox/pkg/errors"
	flowio "github.com/matzehuels/flowbox/pkg/io"
	"github.com/matzehuels/flowbox/pkg/workflow"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
)

// DefaultFormat is rendered when no format is requested.
const DefaultFormat = FormatText

// DefaultTTL is how long rendered artifacts stay cached.
const DefaultTTL = 7 * 24 * time.Hour

// DefaultMaxCells bounds the text canvas of server-side renders.
const DefaultMaxCells = 4_000_000

// ValidFormats lists the supported output formats in display order.
var ValidFormats = []string{FormatText, FormatJSON, FormatDOT, FormatSVG}

// Options configures one pipeline run.
type Options struct {
	// Input is the raw workflow document.
	Input []byte
	// InputFormat is the syntax of Input.
	InputFormat flowio.Format
	// Formats lists the artifacts to produce. Defaults to [DefaultFormat].
	Formats []string
	// Detailed adds descriptions and kinds to DOT and SVG node labels.
	Detailed bool
	// Refresh ignores cached artifacts, rendering and caching them anew.
	Refresh bool
	// MaxCells rejects documents whose canvas would exceed this many cells.
	// Zero means no limit.
	MaxCells int

	// Logger overrides the runner's logger for this run.
	Logger *log.Logger

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Workflow is the loaded workflow. It is laid out unless every artifact
	// came from the cache.
	Workflow *workflow.Workflow

	// DocumentHash is the content hash of the canonical document.
	DocumentHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	StepCount  int
	EdgeCount  int
	LoadTime   time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo reports which artifacts came from the cache.
type CacheInfo struct {
	// RenderHit is true when every artifact was cached.
	RenderHit bool
	// Hits lists the formats served from the cache.
	Hits []string
}

// ValidateFormat checks that format is a supported output format.
func ValidateFormat(format string) error {
	if !slices.Contains(ValidFormats, format) {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", format, strings.Join(ValidFormats, ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are supported.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks the options and fills in defaults. It is
// idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.InputFormat == "" {
		o.InputFormat = flowio.FormatJSON
	}
	format, err := flowio.ParseFormat(string(o.InputFormat))
	if err != nil {
		return err
	}
	o.InputFormat = format
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if o.MaxCells < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "max cells must not be negative: %d", o.MaxCells)
	}
	o.Formats = slices.Compact(o.Formats)
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// checkCanvas enforces MaxCells on a laid-out canvas.
func (o *Options) checkCanvas(width, height int) error {
	if o.MaxCells == 0 {
		return nil
	}
	if cells := int64(width) * int64(height); cells > int64(o.MaxCells) {
		return errors.New(errors.ErrCodeInvalidDocument,
			"diagram too large: %dx%d canvas is %d cells (limit %d)", width, height, cells, o.MaxCells)
	}
	return nil
}

// ArtifactKeyOpts returns cache key options for one output format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
		// Only graph outputs depend on Detailed.
		Detailed: o.Detailed && (format == FormatDOT || format == FormatSVG),
	}
}
