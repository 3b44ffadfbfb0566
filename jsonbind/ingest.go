/******************************************************************************
 * Copyright (c) 2025-2026 Astra Flight Systems Inc.                          *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package jsonbind

import (
	"io"
	"os"

	"github.com/tidwall/gjson"
)

// LoadFunc is the plain ingestion callback. It receives the number of
// bytes read into the caller's buffer and is expected to close over the
// buffer itself.
type LoadFunc func(jsonLen int) bool

// LoadFuncAlt is the reentrant ingestion callback. It additionally
// receives the opaque user data passed to ProcessFileAlt, for callers
// that do not own global buffer state.
type LoadFuncAlt func(jsonLen int, userData any) bool

// ProcessFile opens filename, reads up to len(buf) bytes into buf,
// validates the bytes as a JSON document and invokes loadJSON with the
// byte count. Every gate failure is reported once to the event sink and
// the pipeline returns false. There is no retry; a caller that wants one
// invokes ProcessFile again.
//
// A read shorter than the file is not itself an error; validation
// catches a truncated document.
func (b *Binder) ProcessFile(filename string, buf []byte, loadJSON LoadFunc) bool {
	return b.processFile(filename, buf, loadJSON, nil, nil)
}

// ProcessFileAlt behaves like ProcessFile but invokes the alternate
// callback shape with userData, for reentrant callers.
func (b *Binder) ProcessFileAlt(filename string, buf []byte, loadJSON LoadFuncAlt, userData any) bool {
	return b.processFile(filename, buf, nil, loadJSON, userData)
}

// processFile runs the pipeline. Exactly one of loadJSON and loadJSONAlt
// is live per call; a call where both are nil is a wiring mistake and is
// reported as an internal error instead of being executed.
func (b *Binder) processFile(filename string, buf []byte,
	loadJSON LoadFunc, loadJSONAlt LoadFuncAlt, userData any) bool {

	file, err := os.Open(filename)
	if err != nil {
		b.logger.Errorf(EIDFileOpenErr, "Error opening file %s: %s", filename, err.Error())
		return false
	}
	defer func() {
		_ = file.Close()
	}()

	n, err := io.ReadFull(file, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		b.logger.Errorf(EIDFileReadErr, "Error reading file %s: %s", filename, err.Error())
		return false
	}

	if !gjson.ValidBytes(buf[:n]) {
		b.logger.Errorf(EIDValidateErr, "Error validating file %s: document is not well-formed JSON", filename)
		return false
	}

	switch {
	case loadJSON != nil:
		return loadJSON(n)
	case loadJSONAlt != nil:
		return loadJSONAlt(n, userData)
	default:
		b.logger.Fatalf(EIDInternalErr,
			"ProcessFile invoked without a callback for file %s, len %d. Code structural error that requires a developer",
			filename, n)
		return false
	}
}
