package core

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"sync"
)

var (
	crashMu    sync.Mutex
	crashReset func()
	crashOut   io.Writer = os.Stderr
	crashExit            = os.Exit
)

// SetCrashReset registers the display teardown run before a crash report
// The terminal backend passes screen.Fini; nil clears the hook
func SetCrashReset(fn func()) {
	crashMu.Lock()
	crashReset = fn
	crashMu.Unlock()
}

// HandleCrash restores the display, reports r with its stack, and exits
// Call from a deferred recover; a nil r is ignored
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	reset := crashReset
	crashReset = nil
	crashMu.Unlock()
	if reset != nil {
		reset()
	}

	stack := debug.Stack()
	log.Printf("crash: %v\n%s", r, stack)

	os.Stdout.Sync()
	fmt.Fprintf(crashOut, "\r\n\x1b[31mtileroom crashed: %v\x1b[0m\r\n%s\r\n", r, stack)
	crashExit(1)
}

// Go starts fn on a goroutine whose panics go through HandleCrash
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
