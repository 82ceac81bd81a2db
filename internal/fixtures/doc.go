// Package fixtures generates unique uppercase strings for embedding in
// source code as test data.
//
// Strings are drawn from an entropy source byte by byte, each byte mapped
// into A-Z with b%26. Generation retries until a string is new to the run,
// bounded by a per-string attempt limit.
package fixtures
