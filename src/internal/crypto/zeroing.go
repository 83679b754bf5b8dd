// Package crypto provides the cryptographic core for vault operations.
// This file contains memory zeroing utilities for secure cleanup of
// sensitive data (passwords, derived keys, plaintext buffers).

package crypto

import "crypto/subtle"

// SecureZero overwrites a byte slice with zeros to prevent sensitive data
// from persisting in memory.
//
// Due to Go's garbage collector and possible compiler optimizations this
// cannot guarantee complete erasure, but it significantly reduces the
// window during which key material is recoverable from RAM.
// subtle.ConstantTimeCopy prevents the compiler from optimizing the
// zeroing away.
func SecureZero(b []byte) {
	if len(b) == 0 {
		return
	}
	zeros := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zeros)
}

// SecureZeroMultiple zeros multiple byte slices in a single call.
func SecureZeroMultiple(slices ...[]byte) {
	for _, s := range slices {
		SecureZero(s)
	}
}

// KeyMaterial wraps sensitive key or password data with automatic
// zeroing on Close, matching spec.md §9's "container that zeroes its
// storage on drop" design note.
type KeyMaterial struct {
	data   []byte
	closed bool
}

// NewKeyMaterial creates a KeyMaterial owning a private copy of data.
func NewKeyMaterial(data []byte) *KeyMaterial {
	if data == nil {
		return &KeyMaterial{}
	}
	copied := make([]byte, len(data))
	copy(copied, data)
	return &KeyMaterial{data: copied}
}

// Bytes returns the underlying data, or nil once closed.
func (km *KeyMaterial) Bytes() []byte {
	if km.closed {
		return nil
	}
	return km.data
}

// Close zeros the data and marks the material closed. Idempotent.
func (km *KeyMaterial) Close() {
	if km.closed || km.data == nil {
		return
	}
	SecureZero(km.data)
	km.data = nil
	km.closed = true
}
