package drafts

import (
	"container/list"
	"context"
	"slices"
	"sync"
)

// DefaultMemoryCapacity bounds a MemoryStore created with a non-positive capacity.
const DefaultMemoryCapacity = 1024

type memoryEntry struct {
	id   string
	data []byte
}

// MemoryStore is an in-process Store that keeps the most recently used drafts
// and evicts the least recently used one once capacity is reached.
type MemoryStore struct {
	mu       sync.Mutex
	capacity int
	items    map[string]*list.Element
	order    *list.List
}

func NewMemoryStore(capacity int) *MemoryStore {
	if capacity <= 0 {
		capacity = DefaultMemoryCapacity
	}
	return &MemoryStore{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		order:    list.New(),
	}
}

func (s *MemoryStore) Put(_ context.Context, id string, data []byte) error {
	if err := checkPut(id, data); err != nil {
		return err
	}
	data = slices.Clone(data)

	s.mu.Lock()
	defer s.mu.Unlock()

	if elem, ok := s.items[id]; ok {
		elem.Value.(*memoryEntry).data = data
		s.order.MoveToFront(elem)
		return nil
	}

	s.items[id] = s.order.PushFront(&memoryEntry{id: id, data: data})
	if s.order.Len() > s.capacity {
		oldest := s.order.Back()
		s.order.Remove(oldest)
		delete(s.items, oldest.Value.(*memoryEntry).id)
	}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) ([]byte, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	elem, ok := s.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	s.order.MoveToFront(elem)
	return slices.Clone(elem.Value.(*memoryEntry).data), nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if elem, ok := s.items[id]; ok {
		s.order.Remove(elem)
		delete(s.items, id)
	}
	return nil
}

func (s *MemoryStore) Ping(context.Context) error { return nil }

// Len returns the number of stored drafts.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order.Len()
}
