// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package common

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// MemoizingCache is a thread-safe map computing the value of each key at
// most once. Concurrent requests for the same missing key are collapsed
// into a single computation whose result is shared by all waiting callers.
// Results are retained for the lifetime of the cache; they are never evicted
// and are expected to stay valid for their key forever. Failed computations
// are not retained, so a later request for the same key computes again.
//
// The distinct keys of a cache must render distinctly via the %v format verb,
// which holds for all value types (integers, arrays, structs of those) keys
// are made of in this code base.
type MemoizingCache[K comparable, V any] struct {
	mu       sync.RWMutex
	data     map[K]V
	inFlight singleflight.Group
}

// NewMemoizingCache creates an empty cache instance.
func NewMemoizingCache[K comparable, V any]() *MemoizingCache[K, V] {
	return &MemoizingCache[K, V]{data: map[K]V{}}
}

// GetMemoized returns the value retained for the key, if present. It never
// triggers a computation.
func (c *MemoizingCache[K, V]) GetMemoized(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	value, exists := c.data[key]
	return value, exists
}

// GetOrCompute returns the value retained for the key or, if the key is not
// present, the result of the given compute function. The computed value is
// retained on success. Callers racing on the same key share one computation;
// should two computations of a key overlap anyway, the first retained result
// wins and the other is discarded.
func (c *MemoizingCache[K, V]) GetOrCompute(key K, compute func() (V, error)) (V, error) {
	c.mu.RLock()
	value, exists := c.data[key]
	c.mu.RUnlock()
	if exists {
		return value, nil
	}

	result, err, _ := c.inFlight.Do(fmt.Sprintf("%v", key), func() (any, error) {
		// re-check - the key may have been inserted while waiting for the flight
		c.mu.RLock()
		value, exists := c.data[key]
		c.mu.RUnlock()
		if exists {
			return value, nil
		}

		value, err := compute()
		if err != nil {
			return value, err
		}

		c.mu.Lock()
		if winner, exists := c.data[key]; exists {
			value = winner
		} else {
			c.data[key] = value
		}
		c.mu.Unlock()
		return value, nil
	})
	if err != nil {
		var empty V
		return empty, err
	}
	return result.(V), nil
}

// Size returns the number of retained entries.
func (c *MemoizingCache[K, V]) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}

// Clear drops all retained entries.
func (c *MemoizingCache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = map[K]V{}
}
