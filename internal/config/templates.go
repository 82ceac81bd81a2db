package config

import (
	"fmt"
	"os"
)

func Template() string {
	return template
}

func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(template), 0o644)
}

const template = `[randstrings]
iterations = 16
length = 16
source = "/dev/urandom"
max_attempts = 1024

[runtests]
dir = "tests/bin"
memcheck = false
memcheck_tool = "valgrind"
`
