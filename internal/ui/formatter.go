package ui

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"

	"jsontest/internal/discovery"
	"jsontest/internal/domain"
)

// Formatter prints discovered test cases
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a new Formatter
func NewFormatter(out io.Writer) *Formatter {
	return &Formatter{out: out}
}

// PrintTestList prints the test cases as a tree grouped by corpus.
// failedPaths is optional; if set, cases in this set are marked with [F] (from last run).
func (f *Formatter) PrintTestList(root string, cases []domain.TestCase, failedPaths map[string]struct{}) {
	missing := make(map[string]struct{})
	for _, tc := range discovery.MissingFixtures(cases) {
		missing[tc.Path] = struct{}{}
	}

	groups := map[domain.Corpus][]domain.TestCase{}
	for _, tc := range cases {
		groups[tc.Corpus] = append(groups[tc.Corpus], tc)
	}

	color.New(color.FgGreen).Fprintf(f.out, "Found %d test file(s) in %s:\n", len(cases), root)
	corpora := []domain.Corpus{domain.Primary, domain.Checker}
	for _, corpus := range corpora {
		group := groups[corpus]
		if len(group) == 0 {
			continue
		}

		headerColor.Fprintf(f.out, "%s (%d)\n", corpus, len(group))
		for i, tc := range group {
			prefix := "├── "
			if i == len(group)-1 {
				prefix = "└── "
			}

			relPath, err := filepath.Rel(root, tc.Path)
			if err != nil {
				relPath = tc.Path
			}

			line := fmt.Sprintf("%s%s %s", prefix, relPath, categoryLabel(tc.Category))
			if _, ok := failedPaths[tc.Path]; ok {
				line += " " + color.RedString("[F]")
			}
			if _, ok := missing[tc.Path]; ok {
				line += " " + color.RedString("(missing %s)", domain.ExpectedExt)
			}
			if tc.Category == domain.Excluded {
				if reason, ok := discovery.IsExcluded(tc.Name()); ok {
					line += " " + color.HiBlackString("- %s", reason)
				}
			}
			fmt.Fprintln(f.out, line)
		}
	}
}

func categoryLabel(category domain.Category) string {
	label := "[" + category.String() + "]"
	switch category {
	case domain.Excluded:
		return color.YellowString(label)
	case domain.CheckerReject:
		return color.MagentaString(label)
	case domain.CheckerAccept:
		return color.BlueString(label)
	default:
		return color.CyanString(label)
	}
}
