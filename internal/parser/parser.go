package parser

import "jsontest/internal/domain"

// Parser extracts diagnostics from captured executable output
type Parser interface {
	ParseMemcheckErrors(result domain.ExecutionResult) (errors int, found bool)
}
