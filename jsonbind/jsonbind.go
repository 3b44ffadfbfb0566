/******************************************************************************
 * Copyright (c) 2025-2026 Astra Flight Systems Inc.                          *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package jsonbind extracts typed values out of a validated JSON buffer
// into caller owned storage, driven by an array of field descriptors.
// It also provides the open-read-validate-callback pipeline that turns a
// JSON file on disk into an in-memory buffer ready for extraction.
//
// The package does not parse JSON syntax itself; key search and document
// validation are delegated to gjson. Query keys use '.' as an object
// separator, so the key "config.APP_NAME" matches the nested document
// {"config": {"APP_NAME": ...}}.
package jsonbind

import (
	"errors"

	"github.com/tidwall/gjson"

	"github.com/AstraFW/AstraFW/common/interfaces"
)

const (
	// MaxKeyLen is the maximum query key length accepted by the
	// descriptor constructors.
	MaxKeyLen = 64

	// MaxNumberLen bounds the numeric text accepted for a number value.
	MaxNumberLen = 19

	// MaxIngestChar is a default ingestion buffer size for callers
	// without a tighter file limit of their own.
	MaxIngestChar = 16384
)

// Event IDs
const (
	EIDExtract         = 1001
	EIDOverflowErr     = 1002
	EIDParseErr        = 1003
	EIDSubDocument     = 1004
	EIDUnsupportedErr  = 1005
	EIDNotFound        = 1006
	EIDTypeMismatchErr = 1007
	EIDFileOpenErr     = 1010
	EIDFileReadErr     = 1011
	EIDValidateErr     = 1012
	EIDInternalErr     = 1013
)

var (
	ErrKeyTooLong = errors.New("query key exceeds maximum length")
	ErrNilDest    = errors.New("destination is nil")
)

// Kind identifies the JSON value kind a descriptor expects.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindString
	KindNumber
	KindTrue
	KindFalse
	KindNull
	KindObject
	KindArray
)

var kindStr = [...]string{
	"Invalid",
	"String",
	"Number",
	"True",
	"False",
	"Null",
	"Object",
	"Array",
}

// String returns a readable name for the kind. Out of range values map
// to "Invalid".
func (k Kind) String() string {
	if k > KindArray {
		k = KindInvalid
	}
	return kindStr[k]
}

// kindOf maps a gjson search result to the binder's Kind.
func kindOf(res gjson.Result) Kind {
	switch res.Type {
	case gjson.String:
		return KindString
	case gjson.Number:
		return KindNumber
	case gjson.True:
		return KindTrue
	case gjson.False:
		return KindFalse
	case gjson.Null:
		return KindNull
	case gjson.JSON:
		if len(res.Raw) > 0 && res.Raw[0] == '[' {
			return KindArray
		}
		return KindObject
	default:
		return KindInvalid
	}
}

// Binder runs descriptor driven extraction and file ingestion. A single
// Binder is safe to share across tables as long as one task drives all
// calls; nothing in this package locks.
type Binder struct {
	logger interfaces.Logger
}

// New returns a Binder instance
func New(options ...func(*Binder) error) (*Binder, error) {
	b := &Binder{}

	for _, option := range options {
		err := option(b)
		if err != nil {
			return nil, err
		}
	}

	if b.logger == nil {
		return nil, errors.New("logger is required")
	}

	return b, nil
}

func WithLogger(logger interfaces.Logger) func(*Binder) error {
	return func(b *Binder) error {
		if logger == nil {
			return errors.New("logger is nil")
		}
		b.logger = logger
		return nil
	}
}
