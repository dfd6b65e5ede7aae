package core

import (
	"fmt"
	"sync"
)

// Errors is a goroutine-safe list of human-readable failure messages.
// The zero value is ready to use.
type Errors struct {
	mu   sync.Mutex
	msgs []string
}

// Add appends msg.
func (e *Errors) Add(msg string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.msgs = append(e.msgs, msg)
}

// Addf appends a formatted message.
func (e *Errors) Addf(format string, args ...any) {
	e.Add(fmt.Sprintf(format, args...))
}

// List returns a copy of the messages in insertion order.
func (e *Errors) List() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.msgs...)
}

// Len returns the number of recorded messages.
func (e *Errors) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.msgs)
}
