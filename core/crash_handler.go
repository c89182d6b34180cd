package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// Finalizer restores the terminal on crash, tcell.Screen satisfies it
type Finalizer interface {
	Fini()
}

type finalizerBox struct {
	f Finalizer
}

var crashTerminal atomic.Pointer[finalizerBox]

// RegisterCrashTerminal sets the screen restored by HandleCrash, nil clears it
func RegisterCrashTerminal(f Finalizer) {
	if f == nil {
		crashTerminal.Store(nil)
		return
	}
	crashTerminal.Store(&finalizerBox{f: f})
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if box := crashTerminal.Load(); box != nil {
		box.f.Fini()
	}

	os.Stdout.Sync()
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
