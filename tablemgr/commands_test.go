/******************************************************************************
 * Copyright (c) 2025-2026 Astra Flight Systems Inc.                          *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package tablemgr

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// chdir is a stand-in for t.Chdir, which needs Go 1.24+
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

// TestLoadTableCmdFunc verifies a JSON load command payload is decoded,
// its file verified and routed to the registered table
func TestLoadTableCmdFunc(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile("tbl.json", []byte(`{}`), 0644))

	m := newTestMgr(t)
	ft := &fakeTable{loadResult: true}
	id := m.Register(ft)

	payload, err := json.Marshal(LoadTableCmd{ID: id, LoadType: LoadUpdate, Filename: "tbl.json"})
	require.NoError(t, err)

	require.True(t, m.LoadTableCmdFunc(payload))
	require.Equal(t, 1, ft.loadCalls)
	require.Equal(t, LoadUpdate, ft.lastMode)
	require.Equal(t, "tbl.json", ft.lastFile)
}

// TestLoadTableCmdFuncRejects verifies bad payloads and unreadable files
// never reach the table object
func TestLoadTableCmdFuncRejects(t *testing.T) {
	chdir(t, t.TempDir())

	m := newTestMgr(t)
	ft := &fakeTable{loadResult: true}
	id := m.Register(ft)

	// Malformed JSON payload
	require.False(t, m.LoadTableCmdFunc([]byte(`{"id":`)))

	// Nonexistent file
	payload, err := json.Marshal(LoadTableCmd{ID: id, LoadType: LoadReplace, Filename: "absent.json"})
	require.NoError(t, err)
	require.False(t, m.LoadTableCmdFunc(payload))

	// Filename with a rejected character
	payload, err = json.Marshal(LoadTableCmd{ID: id, LoadType: LoadReplace, Filename: "tbl?.json"})
	require.NoError(t, err)
	require.False(t, m.LoadTableCmdFunc(payload))

	require.Equal(t, 0, ft.loadCalls)
}

// TestDumpTableCmdFunc verifies a dump command routes through directory
// verification to the table object
func TestDumpTableCmdFunc(t *testing.T) {
	chdir(t, t.TempDir())

	m := newTestMgr(t)
	ft := &fakeTable{dumpResult: true}
	id := m.Register(ft)

	payload, err := json.Marshal(DumpTableCmd{ID: id, DumpType: 1, Filename: "dump.json"})
	require.NoError(t, err)

	require.True(t, m.DumpTableCmdFunc(payload))
	require.Equal(t, 1, ft.dumpCalls)
	require.Equal(t, uint8(1), ft.lastMode)

	// A destination under a missing directory is rejected before dispatch
	payload, err = json.Marshal(DumpTableCmd{ID: id, DumpType: 0, Filename: "missing/dump.json"})
	require.NoError(t, err)
	require.False(t, m.DumpTableCmdFunc(payload))
	require.Equal(t, 1, ft.dumpCalls)
}
