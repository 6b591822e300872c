package lrudict

import "errors"

// Sentinel errors for container operations.
var (
	// ErrInvalidCapacity is returned by New and Resize when the requested
	// capacity is less than one.
	ErrInvalidCapacity = errors.New("capacity must be at least 1")

	// ErrKeyNotFound is returned by Get, Peek, Delete and Pop when the key
	// is absent.
	ErrKeyNotFound = errors.New("key not found")

	// ErrEmpty is returned by LRU and MRU when the container holds no
	// entries.
	ErrEmpty = errors.New("empty store")
)
