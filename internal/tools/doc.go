// Package tools provides the process-spawning helpers shared by the
// developer tools.
//
// Ownership boundary:
// - captured command execution (capability probes)
//
// - attached command execution (test binaries inherit stdio)
package tools
