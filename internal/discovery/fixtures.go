package discovery

import (
	"errors"
	"io/fs"
	"os"

	"jsontest/internal/domain"
)

// MissingFixtures returns the round-trip cases whose .expected fixture does not exist
func MissingFixtures(cases []domain.TestCase) []domain.TestCase {
	var missing []domain.TestCase
	for _, tc := range cases {
		if tc.Category != domain.Standard {
			continue
		}
		if _, err := os.Stat(tc.SiblingPath(domain.ExpectedExt)); errors.Is(err, fs.ErrNotExist) {
			missing = append(missing, tc)
		}
	}
	return missing
}
