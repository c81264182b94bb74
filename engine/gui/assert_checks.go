//go:build checks

package gui

// Built with the "checks" tag, caller programming errors panic instead of
// being silently tolerated.

func assertUsage(cond bool, msg string) {
	if !cond {
		panic("gui: " + msg)
	}
}
