// Package cachetest provides an in-memory RedisCache for service tests.
package cachetest

import (
	"context"
	"encoding/json"
	"estate/shared/cache"
	"fmt"
	"strings"
	"sync"
)

var _ cache.RedisCache = (*Memory)(nil)

// Memory is a RedisCache backed by a map. Only trailing-asterisk patterns are
// supported by Clear.
type Memory struct {
	mu     sync.Mutex
	values map[string][]byte
	held   *Hold
}

// Hold parks the next Save whose key starts with a prefix until Release is called.
type Hold struct {
	prefix   string
	started  chan string
	release  chan struct{}
	finished chan struct{}
}

func NewMemory() *Memory {
	return &Memory{values: map[string][]byte{}}
}

// HoldNextSave arms a Hold for the next Save under prefix.
func (m *Memory) HoldNextSave(prefix string) *Hold {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.held = &Hold{
		prefix:   prefix,
		started:  make(chan string, 1),
		release:  make(chan struct{}),
		finished: make(chan struct{}),
	}

	return m.held
}

// Started returns the key of the parked Save once it begins.
func (h *Hold) Started() string { return <-h.started }

// Release lets the parked Save store its value and waits until it has.
func (h *Hold) Release() {
	close(h.release)
	<-h.finished
}

// Has reports whether key is stored.
func (m *Memory) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.values[key]

	return ok
}

func (m *Memory) Save(_ context.Context, key string, value any, _ int) error {
	payload, err := encode(value)
	if err != nil {
		return err
	}

	m.mu.Lock()
	hold := m.held
	if hold != nil && strings.HasPrefix(key, hold.prefix) {
		m.held = nil
	} else {
		hold = nil
	}
	m.mu.Unlock()

	if hold != nil {
		hold.started <- key
		<-hold.release

		defer close(hold.finished)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = payload

	return nil
}

func (m *Memory) Get(_ context.Context, key string, value any) error {
	m.mu.Lock()
	payload, ok := m.values[key]
	m.mu.Unlock()

	if !ok {
		return fmt.Errorf("getting cache value: %w", cache.Nil)
	}

	if target, ok := value.(*string); ok {
		*target = string(payload)

		return nil
	}

	return json.Unmarshal(payload, value)
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)

	return nil
}

func (m *Memory) Clear(_ context.Context, pattern string) error {
	prefix := strings.TrimSuffix(pattern, "*")

	m.mu.Lock()
	defer m.mu.Unlock()

	for key := range m.values {
		if strings.HasPrefix(key, prefix) {
			delete(m.values, key)
		}
	}

	return nil
}

func encode(value any) ([]byte, error) {
	if s, ok := value.(string); ok {
		return []byte(s), nil
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encoding cache value: %w", err)
	}

	return payload, nil
}
