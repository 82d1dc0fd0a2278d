// Package internal holds the per-goroutine reactor registry backing the
// package-level facade.
package internal
