/******************************************************************************
 * Copyright (c) 2025-2026 Astra Flight Systems Inc.                          *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package jsonbind

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// TestProcessFileSuccess verifies the pipeline hands the callback the exact
// byte count and that extraction works inside the callback
func TestProcessFileSuccess(t *testing.T) {
	b := newTestBinder(t)

	doc := `{"id": 42, "name": "alpha"}`
	path := writeTestFile(t, "doc.json", doc)

	buf := make([]byte, 256)
	var id int32
	called := false

	ok := b.ProcessFile(path, buf, func(jsonLen int) bool {
		called = true
		require.Equal(t, len(doc), jsonLen)
		obj, err := NewIntObj("id", &id)
		require.NoError(t, err)
		return b.Extract(&obj, buf[:jsonLen])
	})

	require.True(t, ok)
	require.True(t, called)
	require.Equal(t, int32(42), id)
}

// TestProcessFileOpenError verifies a missing file stops the pipeline
// before the callback
func TestProcessFileOpenError(t *testing.T) {
	b := newTestBinder(t)

	buf := make([]byte, 64)
	called := false

	ok := b.ProcessFile(filepath.Join(t.TempDir(), "no-such.json"), buf, func(int) bool {
		called = true
		return true
	})
	require.False(t, ok)
	require.False(t, called)
}

// TestProcessFileInvalidJSON verifies a malformed document stops the
// pipeline before the callback
func TestProcessFileInvalidJSON(t *testing.T) {
	b := newTestBinder(t)

	path := writeTestFile(t, "bad.json", `{"id": 42,`)
	buf := make([]byte, 64)
	called := false

	ok := b.ProcessFile(path, buf, func(int) bool {
		called = true
		return true
	})
	require.False(t, ok)
	require.False(t, called)
}

// TestProcessFileTruncated verifies a buffer smaller than the file yields
// a truncated document that fails validation
func TestProcessFileTruncated(t *testing.T) {
	b := newTestBinder(t)

	path := writeTestFile(t, "big.json", `{"key": "a long enough value"}`)
	buf := make([]byte, 10)

	ok := b.ProcessFile(path, buf, func(int) bool {
		t.Fatal("callback must not run on a truncated document")
		return true
	})
	require.False(t, ok)
}

// TestProcessFileCallbackFailure verifies a false from the callback
// propagates out of the pipeline
func TestProcessFileCallbackFailure(t *testing.T) {
	b := newTestBinder(t)

	path := writeTestFile(t, "doc.json", `{}`)
	buf := make([]byte, 64)

	ok := b.ProcessFile(path, buf, func(int) bool { return false })
	require.False(t, ok)
}

// TestProcessFileAlt verifies the reentrant form passes user data through
// untouched
func TestProcessFileAlt(t *testing.T) {
	b := newTestBinder(t)

	path := writeTestFile(t, "doc.json", `{"n": 1}`)
	buf := make([]byte, 64)

	type state struct{ hits int }
	st := &state{}

	ok := b.ProcessFileAlt(path, buf, func(jsonLen int, userData any) bool {
		got, isState := userData.(*state)
		require.True(t, isState)
		got.hits++
		return true
	}, st)

	require.True(t, ok)
	require.Equal(t, 1, st.hits)
}
