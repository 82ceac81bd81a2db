//go:build !unix

package testrunner

import "io/fs"

func isExecutable(_ string, info fs.FileInfo) bool {
	return info.Mode().Perm()&0o111 != 0
}
