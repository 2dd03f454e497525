package mock

import (
	"sort"
	"strings"
	"sync"
)

// KVStore mocks publisher.KVStore.
type KVStore struct {
	data    map[string][]byte
	updates int
	m       sync.Mutex

	// UpdateErr is returned from every UpdateKey call when set.
	UpdateErr error
}

// NewKVStore creates new KVStore instance with given data.
func NewKVStore(data map[string][]byte) *KVStore {
	return &KVStore{
		data: data,
	}
}

// ReadKey returns data saved for given key.
func (s *KVStore) ReadKey(key []byte) ([]byte, error) {
	s.m.Lock()
	defer s.m.Unlock()

	if s.data == nil {
		return nil, nil
	}

	return s.data[string(key)], nil
}

// UpdateKey stores given data under given key.
func (s *KVStore) UpdateKey(key []byte, data []byte) error {
	s.m.Lock()
	defer s.m.Unlock()

	if s.UpdateErr != nil {
		return s.UpdateErr
	}

	s.updates++
	if s.data == nil {
		s.data = make(map[string][]byte)
	}
	s.data[string(key)] = data

	return nil
}

// ForEachKey calls fn for every key with given prefix, in key order.
func (s *KVStore) ForEachKey(prefix []byte, fn func(key []byte, data []byte) error) error {
	s.m.Lock()
	defer s.m.Unlock()

	for _, k := range s.keys(string(prefix)) {
		if err := fn([]byte(k), s.data[k]); err != nil {
			return err
		}
	}

	return nil
}

// DeletePrefix removes all keys with given prefix.
func (s *KVStore) DeletePrefix(prefix []byte) error {
	s.m.Lock()
	defer s.m.Unlock()

	for _, k := range s.keys(string(prefix)) {
		delete(s.data, k)
	}

	return nil
}

// Keys returns all stored keys, sorted.
func (s *KVStore) Keys() []string {
	s.m.Lock()
	defer s.m.Unlock()

	return s.keys("")
}

func (s *KVStore) keys(prefix string) []string {
	var keys []string
	for k := range s.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	return keys
}

// Updates returns update call count.
func (s *KVStore) Updates() int {
	s.m.Lock()
	defer s.m.Unlock()

	return s.updates
}
