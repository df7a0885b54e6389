package execution

import "jsontest/internal/domain"

const (
	checkerFlag = "--json-checker"
	writerFlag  = "--json-writer"
)

// BuildCommand builds the command line of one test case:
// [memcheck...] EXE [--json-checker] --json-writer MODE INPUT
func BuildCommand(executable string, memcheck []string, tc domain.TestCase, mode domain.WriterMode) domain.TestCommand {
	args := make([]string, 0, len(memcheck)+5)
	args = append(args, memcheck...)
	args = append(args, executable)
	if tc.Category.UsesChecker() {
		args = append(args, checkerFlag)
	}
	args = append(args, writerFlag, string(mode), tc.Path)

	return domain.TestCommand{
		Args:            args,
		UsesMemoryCheck: len(memcheck) > 0,
	}
}
