/******************************************************************************
 * Copyright (c) 2025-2026 Astra Flight Systems Inc.                          *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package fileutil

import (
	"bufio"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AstraFW/AstraFW/common/evlog"
)

// chdir is a stand-in for t.Chdir, which needs Go 1.24+
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

// TestVerifyFilenameStr covers the length and character rules
func TestVerifyFilenameStr(t *testing.T) {
	u := New(evlog.Null())

	accept := []string{
		"table.json",
		"/data/astra/tbl_01.json",
		"a-b.c+d=e",
		strings.Repeat("x", MaxPathLen),
	}
	for _, name := range accept {
		require.True(t, u.VerifyFilenameStr(name), name)
	}

	reject := []string{
		"",
		strings.Repeat("x", MaxPathLen+1),
		"bad name.json",
		"tbl*.json",
		"tbl?.json",
		"tbl%.json",
	}
	for _, name := range reject {
		require.False(t, u.VerifyFilenameStr(name), name)
	}
}

// TestVerifyFileForRead verifies read verification opens real files only
func TestVerifyFileForRead(t *testing.T) {
	chdir(t, t.TempDir())
	u := New(evlog.Null())

	require.NoError(t, os.WriteFile("present.json", []byte(`{}`), 0644))

	require.True(t, u.VerifyFileForRead("present.json"))
	require.False(t, u.VerifyFileForRead("absent.json"))
	require.False(t, u.VerifyFileForRead("bad|name"))
}

// TestVerifyDirForWrite verifies the parent directory check
func TestVerifyDirForWrite(t *testing.T) {
	chdir(t, t.TempDir())
	u := New(evlog.Null())

	require.NoError(t, os.Mkdir("out", 0755))

	require.True(t, u.VerifyDirForWrite("dump.json"))
	require.True(t, u.VerifyDirForWrite("out/dump.json"))
	require.False(t, u.VerifyDirForWrite("missing/dump.json"))
	require.False(t, u.VerifyDirForWrite(""))
}

// TestGetFileState classifies paths
func TestGetFileState(t *testing.T) {
	chdir(t, t.TempDir())
	u := New(evlog.Null())

	require.NoError(t, os.WriteFile("f.json", []byte(`{}`), 0644))
	require.NoError(t, os.Mkdir("d", 0755))

	require.Equal(t, FileExists, u.GetFileState("f.json"))
	require.Equal(t, FileIsDir, u.GetFileState("d"))
	require.Equal(t, FileNonexistent, u.GetFileState("g.json"))
	require.Equal(t, FilenameInvalid, u.GetFileState("bad name"))
}

// TestAppendPathSep covers the separator and bound rules
func TestAppendPathSep(t *testing.T) {
	got, ok := AppendPathSep("dir", 8)
	require.True(t, ok)
	require.Equal(t, "dir/", got)

	got, ok = AppendPathSep("dir/", 8)
	require.True(t, ok)
	require.Equal(t, "dir/", got)

	_, ok = AppendPathSep("", 8)
	require.False(t, ok)

	// Exactly at the bound there is no room for the separator
	_, ok = AppendPathSep("abcd", 4)
	require.False(t, ok)
}

// TestReadLine covers terminated, unterminated and oversized lines
func TestReadLine(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("one\ntwo"))

	line, ok := ReadLine(r, 16)
	require.True(t, ok)
	require.Equal(t, "one\n", line)

	// Final line without a terminator
	line, ok = ReadLine(r, 16)
	require.False(t, ok)
	require.Equal(t, "two", line)

	// A line longer than max stops short of the terminator
	r = bufio.NewReader(strings.NewReader("abcdefgh\n"))
	line, ok = ReadLine(r, 4)
	require.False(t, ok)
	require.Equal(t, "abc", line)
}

// TestFileStateString covers the diagnostic labels
func TestFileStateString(t *testing.T) {
	require.Equal(t, "File Exists", FileExists.String())
	require.Equal(t, "Undefined", FileState(99).String())
}
