package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Category decides which evaluation policy applies to a test case
type Category int

const (
	// Standard is a round-trip test compared against a .expected fixture
	Standard Category = iota
	// CheckerAccept must be accepted by the executable (exit 0)
	CheckerAccept
	// CheckerReject must be rejected by the executable (non-zero exit)
	CheckerReject
	// Excluded is never executed
	Excluded
)

func (c Category) String() string {
	switch c {
	case Standard:
		return "standard"
	case CheckerAccept:
		return "checker-accept"
	case CheckerReject:
		return "checker-reject"
	case Excluded:
		return "excluded"
	default:
		return "unknown"
	}
}

// MarshalText encodes the category by name in stored results
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a category name
func (c *Category) UnmarshalText(text []byte) error {
	for _, candidate := range []Category{Standard, CheckerAccept, CheckerReject, Excluded} {
		if candidate.String() == string(text) {
			*c = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown test category %q", string(text))
}

// UsesChecker reports whether the executable runs with --json-checker for this category
func (c Category) UsesChecker() bool {
	return c == CheckerAccept || c == CheckerReject
}

// Corpus identifies the discovery set a test input came from
type Corpus int

const (
	// Primary is INPUT_DIR/*.json
	Primary Corpus = iota
	// Checker is INPUT_DIR/jsonchecker/*.json
	Checker
)

func (c Corpus) String() string {
	if c == Checker {
		return "jsonchecker"
	}
	return "primary"
}

// TestCase represents a single input file to run through the executable
type TestCase struct {
	Path     string   // Path to the .json input
	Corpus   Corpus   // Discovery set
	Category Category // Assigned once by the classifier
}

// Name returns the basename of the input file
func (t TestCase) Name() string {
	return filepath.Base(t.Path)
}

// BasePath returns the input path without its extension
func (t TestCase) BasePath() string {
	return strings.TrimSuffix(t.Path, filepath.Ext(t.Path))
}

// Companion file extensions of a round-trip test
const (
	ExpectedExt      = ".expected"
	ActualExt        = ".actual"
	ActualRewriteExt = ".actual-rewrite"
	ProcessOutputExt = ".process-output"
)

// SiblingPath returns the companion file path with the given extension (".expected", ".actual", ...)
func (t TestCase) SiblingPath(ext string) string {
	return t.BasePath() + ext
}

// WriterMode names one output-rendering code path of the executable
type WriterMode string

const (
	StyledWriter            WriterMode = "StyledWriter"
	StyledStreamWriter      WriterMode = "StyledStreamWriter"
	BuiltStyledStreamWriter WriterMode = "BuiltStyledStreamWriter"
)

// DefaultWriterModes is the order in which writer modes are exercised
var DefaultWriterModes = []WriterMode{
	StyledWriter,
	StyledStreamWriter,
	BuiltStyledStreamWriter,
}

// TestCommand is the command line for one test case under one writer mode
type TestCommand struct {
	Args            []string // Args[0] is the program to execute
	UsesMemoryCheck bool
}

func (c TestCommand) String() string {
	return strings.Join(c.Args, " ")
}
