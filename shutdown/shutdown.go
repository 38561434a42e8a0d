// Package shutdown cancels in-flight work on SIGINT/SIGTERM and runs cleanup
// hooks, such as removing a partially written document.
package shutdown

import (
	"container/heap"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/flanksource/commons/logger"
)

const (
	PriorityOutput   = 0
	PriorityDefault  = 100
	PriorityCritical = 400
)

type Hook struct {
	label    string
	priority int
	fn       func()
	index    int
}

type hookHeap []*Hook

func (h hookHeap) Len() int           { return len(h) }
func (h hookHeap) Less(i, j int) bool { return h[i].priority < h[j].priority }
func (h hookHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *hookHeap) Push(x any) {
	item := x.(*Hook)
	item.index = len(*h)
	*h = append(*h, item)
}

func (h *hookHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[0 : n-1]
	return item
}

var (
	hooks    hookHeap
	hooksMux sync.Mutex
)

// AddHook registers a hook with default priority and returns a function that
// unregisters it.
func AddHook(label string, fn func()) (remove func()) {
	return AddHookWithPriority(label, PriorityDefault, fn)
}

// AddHookWithPriority registers a hook; lower priorities run first.
func AddHookWithPriority(label string, priority int, fn func()) (remove func()) {
	hooksMux.Lock()
	defer hooksMux.Unlock()

	hook := &Hook{label: label, priority: priority, fn: fn}
	heap.Push(&hooks, hook)
	return func() {
		hooksMux.Lock()
		defer hooksMux.Unlock()
		if hook.index >= 0 && hook.index < len(hooks) && hooks[hook.index] == hook {
			heap.Remove(&hooks, hook.index)
		}
	}
}

// Pending returns the number of registered hooks.
func Pending() int {
	hooksMux.Lock()
	defer hooksMux.Unlock()
	return len(hooks)
}

// Shutdown executes all registered hooks in priority order
func Shutdown() {
	hooksMux.Lock()
	defer hooksMux.Unlock()

	if len(hooks) == 0 {
		return
	}

	logger.Debugf("Executing %d shutdown hooks", len(hooks))
	for hooks.Len() > 0 {
		hook := heap.Pop(&hooks).(*Hook)
		logger.Debugf("Executing shutdown hook: %s (priority=%d)", hook.label, hook.priority)

		func() {
			defer func() {
				if r := recover(); r != nil {
					logger.Errorf("Panic in shutdown hook %s: %v", hook.label, r)
				}
			}()
			hook.fn()
		}()
	}
}

// Context returns a context that is cancelled on the first interrupt, after
// the hooks have run. A second interrupt exits immediately. Call stop to
// release the signal handler.
func Context(parent context.Context, stderr io.Writer) (ctx context.Context, stop func()) {
	ctx, cancel := context.WithCancel(parent)
	sigChan := make(chan os.Signal, 2)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		select {
		case sig := <-sigChan:
			fmt.Fprintf(stderr, "\nReceived %s, cancelling (press Ctrl+C again to force exit)\n", sig)
			go func() {
				select {
				case <-sigChan:
					fmt.Fprintf(stderr, "Force exit\n")
					os.Exit(130)
				case <-done:
				}
			}()
			Shutdown()
			cancel()
		case <-done:
		}
	}()

	var once sync.Once
	return ctx, func() {
		once.Do(func() {
			signal.Stop(sigChan)
			close(done)
			cancel()
		})
	}
}
