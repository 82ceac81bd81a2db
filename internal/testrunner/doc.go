// Package testrunner discovers executable test binaries in a directory and
// runs them one at a time, tallying exit codes.
//
// A test passes when its process exits 0. The runner's own outcome never
// depends on how many tests failed; only listing or spawn failures abort a
// run.
package testrunner
