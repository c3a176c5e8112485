package application

import (
	"sync"

	"github.com/oksasatya/digitalhub/internal/domain/entity"
)

type identifiable interface {
	EntityID() entity.ID
}

// SliceState is a point-in-time copy of a slice.
type SliceState[T any] struct {
	Items   []T    `json:"items"`
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}

// collection owns one ordered entity list and its request status.
// Loading is true while any fetch or create is outstanding.
type collection[T identifiable] struct {
	mu       sync.Mutex
	items    []T
	inflight int
	err      string
}

// begin marks a fetch or create as outstanding.
func (c *collection[T]) begin(clearErr bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inflight++
	if clearErr {
		c.err = ""
	}
}

// settle ends an outstanding fetch or create. apply, when set, reconciles the
// result into items; a non-empty errMsg records a rejection.
func (c *collection[T]) settle(apply func([]T) []T, errMsg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inflight > 0 {
		c.inflight--
	}
	if apply != nil {
		c.items = apply(c.items)
	}
	if errMsg != "" {
		c.err = errMsg
	}
}

// reconcile applies a result that does not take part in the loading flag.
func (c *collection[T]) reconcile(apply func([]T) []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = apply(c.items)
}

func (c *collection[T]) fail(errMsg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = errMsg
}

func (c *collection[T]) clearError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = ""
}

func (c *collection[T]) find(id entity.ID) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, it := range c.items {
		if it.EntityID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

func (c *collection[T]) snapshot() SliceState[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]T, len(c.items))
	copy(items, c.items)
	return SliceState[T]{Items: items, Loading: c.inflight > 0, Error: c.err}
}

func replaceAll[T any](next []T) func([]T) []T {
	return func([]T) []T {
		out := make([]T, len(next))
		copy(out, next)
		return out
	}
}

func appendItem[T any](item T) func([]T) []T {
	return func(items []T) []T { return append(items, item) }
}

func prependItem[T any](item T) func([]T) []T {
	return func(items []T) []T {
		out := make([]T, 0, len(items)+1)
		out = append(out, item)
		return append(out, items...)
	}
}

// replaceByID swaps the item sharing item's id; no-op when absent.
func replaceByID[T identifiable](item T) func([]T) []T {
	return func(items []T) []T {
		for i := range items {
			if items[i].EntityID() == item.EntityID() {
				items[i] = item
				break
			}
		}
		return items
	}
}

// removeByID drops every item with id; no-op when absent.
func removeByID[T identifiable](id entity.ID) func([]T) []T {
	return func(items []T) []T {
		out := items[:0]
		for _, it := range items {
			if it.EntityID() != id {
				out = append(out, it)
			}
		}
		return out
	}
}
