package discovery

import (
	"path/filepath"
	"strings"

	"jsontest/internal/domain"
)

// expectFailurePrefix marks inputs the executable must reject
const expectFailurePrefix = "fail"

// Classify assigns the evaluation category of an input file
func Classify(path string, corpus domain.Corpus) domain.Category {
	name := filepath.Base(path)

	if corpus == domain.Checker {
		if _, excluded := IsExcluded(name); excluded {
			return domain.Excluded
		}
	}

	if strings.HasPrefix(name, expectFailurePrefix) {
		return domain.CheckerReject
	}
	if corpus == domain.Checker {
		return domain.CheckerAccept
	}
	return domain.Standard
}
