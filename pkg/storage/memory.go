package storage

import (
	"fmt"
	"sync"
)

// MemoryArea is an in-process Area. A positive quota caps the total size
// of keys plus values, the way browsers cap an origin's storage.
type MemoryArea struct {
	mu    sync.Mutex
	items map[string]string
	quota int
	used  int
}

// NewMemoryArea creates an empty area. quota <= 0 means unlimited.
func NewMemoryArea(quota int) *MemoryArea {
	return &MemoryArea{items: make(map[string]string), quota: quota}
}

func (a *MemoryArea) GetItem(key string) (string, bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	v, ok := a.items[key]
	return v, ok, nil
}

func (a *MemoryArea) SetItem(key, value string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	used := a.used + len(key) + len(value)
	if old, ok := a.items[key]; ok {
		used -= len(key) + len(old)
	}
	if a.quota > 0 && used > a.quota {
		return fmt.Errorf("quota exceeded: %d of %d bytes", used, a.quota)
	}
	a.items[key] = value
	a.used = used
	return nil
}

// Len returns the number of stored keys.
func (a *MemoryArea) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.items)
}

// MemoryAreas provides a pair of MemoryArea. A nil field makes that area
// unavailable.
type MemoryAreas struct {
	Local   *MemoryArea
	Session *MemoryArea
}

// NewMemoryAreas returns a provider with two unlimited areas.
func NewMemoryAreas() *MemoryAreas {
	return &MemoryAreas{Local: NewMemoryArea(0), Session: NewMemoryArea(0)}
}

func (m *MemoryAreas) Area(session bool) (Area, error) {
	a, name := m.Local, "local storage"
	if session {
		a, name = m.Session, "session storage"
	}
	if a == nil {
		return nil, fmt.Errorf("%s is not available", name)
	}
	return a, nil
}
