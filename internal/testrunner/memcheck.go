package testrunner

import (
	"github.com/danmuck/devtools/internal/tools"
	"github.com/rs/zerolog/log"
)

const DefaultMemcheckTool = "valgrind"

// ProbeMemcheck reports whether tool answers `--help` with exit code 0 and
// non-empty stdout. Any failure means the tool is unavailable.
func ProbeMemcheck(runner tools.CommandRunner, tool string) bool {
	if tool == "" {
		return false
	}
	stdout, _, code, err := runner.Run(tool, "--help")
	if err != nil || code != 0 || len(stdout) == 0 {
		log.Debug().Str("tool", tool).Int32("code", code).Err(err).Msg("memcheck probe failed")
		return false
	}
	log.Debug().Str("tool", tool).Msg("memcheck tool available")
	return true
}

func memcheckArgs(path string) []string {
	return []string{"--leak-check=full", "--error-exitcode=1", path}
}
