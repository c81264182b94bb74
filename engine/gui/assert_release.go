//go:build !checks

package gui

// No-op version when the "checks" build tag is not set; misuse degrades to
// best-effort behavior instead of crashing.

func assertUsage(cond bool, msg string) {}
