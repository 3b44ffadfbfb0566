/******************************************************************************
 * Copyright (c) 2025-2026 Astra Flight Systems Inc.                          *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package jsonbind

import (
	"fmt"
)

// Obj is a field descriptor: it binds one query key and expected value
// kind to a destination slot owned by the caller. Updated is set only
// after a successful extraction into that destination.
type Obj struct {
	Key     string
	Kind    Kind
	Updated bool

	// Destination storage. IntVal is used for KindNumber, StrVal and
	// StrMax for KindString. StrMax counts the terminator, so the
	// longest value that fits is StrMax-1 bytes.
	IntVal *int32
	StrVal *string
	StrMax int
}

// NewIntObj builds a descriptor that binds a JSON number to a signed
// 32-bit destination.
func NewIntObj(key string, dest *int32) (Obj, error) {
	if len(key) > MaxKeyLen {
		return Obj{}, fmt.Errorf("key %s: %w", key, ErrKeyTooLong)
	}
	if dest == nil {
		return Obj{}, fmt.Errorf("key %s: %w", key, ErrNilDest)
	}
	return Obj{Key: key, Kind: KindNumber, IntVal: dest}, nil
}

// NewStrObj builds a descriptor that binds a JSON string to a bounded
// string destination. max is the destination capacity in bytes,
// terminator included.
func NewStrObj(key string, dest *string, max int) (Obj, error) {
	if len(key) > MaxKeyLen {
		return Obj{}, fmt.Errorf("key %s: %w", key, ErrKeyTooLong)
	}
	if dest == nil {
		return Obj{}, fmt.Errorf("key %s: %w", key, ErrNilDest)
	}
	if max <= 0 {
		return Obj{}, fmt.Errorf("key %s: invalid capacity %d", key, max)
	}
	return Obj{Key: key, Kind: KindString, StrVal: dest, StrMax: max}, nil
}

// NewInfoObj builds a descriptor for an object or array sub-document.
// These kinds are informational; extraction logs the raw sub-document
// and never writes a destination.
func NewInfoObj(key string, kind Kind) (Obj, error) {
	if len(key) > MaxKeyLen {
		return Obj{}, fmt.Errorf("key %s: %w", key, ErrKeyTooLong)
	}
	if kind != KindObject && kind != KindArray {
		return Obj{}, fmt.Errorf("key %s: kind %s is not informational", key, kind)
	}
	return Obj{Key: key, Kind: kind}, nil
}
