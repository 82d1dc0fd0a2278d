//go:build wasm

package internal

var reactor any

// Current returns the single global reactor, or nil. Wasm has one
// goroutine of interest, so no keying is needed.
func Current() any {
	return reactor
}

// Set registers the global reactor.
func Set(r any) {
	reactor = r
}
