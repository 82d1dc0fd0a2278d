//go:build !wasm

package internal

import (
	"sync"

	"github.com/petermattis/goid"
)

var reactors sync.Map

// Current returns the reactor registered for the calling goroutine, or nil.
func Current() any {
	if r, ok := reactors.Load(goid.Get()); ok {
		return r
	}

	return nil
}

// Set registers the calling goroutine's reactor.
func Set(r any) {
	reactors.Store(goid.Get(), r)
}
