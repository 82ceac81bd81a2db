package testrunner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

const DefaultDir = "tests/bin"

var lstat = os.Lstat

// Discover returns the executable regular files directly inside dir, in the
// order the operating system lists them. Every returned path contains a
// separator so it is never resolved through $PATH.
func Discover(dir string) ([]string, error) {
	d, err := os.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("open test dir: %w", err)
	}
	defer d.Close()

	entries, err := d.ReadDir(-1)
	if err != nil {
		return nil, fmt.Errorf("list test dir: %w", err)
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		path := testPath(dir, entry.Name())
		info, err := lstat(path)
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug().Str("path", path).Msg("skip entry removed during discovery")
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		if !info.Mode().IsRegular() {
			log.Debug().Str("path", path).Str("mode", info.Mode().String()).Msg("skip non-regular entry")
			continue
		}
		if !isExecutable(path, info) {
			log.Debug().Str("path", path).Msg("skip non-executable file")
			continue
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// testPath joins dir and name, keeping a leading ./ that Join would clean
// away when dir is the working directory.
func testPath(dir, name string) string {
	path := filepath.Join(dir, name)
	if !strings.ContainsRune(path, filepath.Separator) {
		path = "." + string(filepath.Separator) + path
	}
	return path
}
