// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package hooks provides typed extension points: ordered chains of filters
// that observe or modify a value before it is used.
package hooks

import (
	"context"
	"sync"

	"github.com/MKhiriev/store-last-login/models"
)

// Args is the context handed to every filter together with the value.
type Args struct {
	UserID  int64
	Instant models.Instant
}

// Filter receives the current value and returns the value passed to the next
// filter of the chain.
type Filter[T any] func(ctx context.Context, value T, args Args) T

// Chain is an ordered list of filters for one extension point.
// The zero value is an empty chain ready for use.
type Chain[T any] struct {
	mu      sync.RWMutex
	filters []Filter[T]
}

// Add appends f to the chain. Filters run in registration order.
func (c *Chain[T]) Add(f Filter[T]) {
	if f == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.filters = append(c.filters, f)
}

// Apply runs every filter in order, feeding each the previous result, and
// returns the final value. An empty chain returns value unchanged.
func (c *Chain[T]) Apply(ctx context.Context, value T, args Args) T {
	c.mu.RLock()
	filters := c.filters
	c.mu.RUnlock()

	for _, f := range filters {
		value = f(ctx, value, args)
	}
	return value
}

// Len returns the number of registered filters.
func (c *Chain[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.filters)
}

// Registry groups the extension points of the last login display.
type Registry struct {
	// DateFormat filters the date pattern before a "date" stamp is rendered.
	DateFormat Chain[string]

	// TimeFormat filters the time pattern before a "time" stamp is rendered.
	TimeFormat Chain[string]

	// ProfileFormatKind selects the stamp kind shown on the profile screen.
	ProfileFormatKind Chain[models.FormatKind]

	// ProfileDisplay filters the final text of the profile row.
	ProfileDisplay Chain[string]

	// ColumnDisplay filters the final HTML of a listing cell.
	ColumnDisplay Chain[string]
}

// NewRegistry returns a registry with every chain empty.
func NewRegistry() *Registry {
	return &Registry{}
}
