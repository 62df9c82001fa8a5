package storage

import "errors"

// ErrWriteFailed is returned by Memory when FailWrites is set.
var ErrWriteFailed = errors.New("storage: write failed")

// Memory is a map-backed KV for tests. Setting FailWrites makes every Set
// fail, to exercise storage-failure paths.
type Memory struct {
	m          map[string]string
	FailWrites bool
}

func NewMemory() *Memory { return &Memory{m: map[string]string{}} }

func (s *Memory) Get(key string) (string, bool, error) {
	v, ok := s.m[key]
	return v, ok, nil
}

func (s *Memory) Set(key, value string) error {
	if s.FailWrites {
		return ErrWriteFailed
	}
	s.m[key] = value
	return nil
}
