/******************************************************************************
 * Copyright (c) 2025-2026 Astra Flight Systems Inc.                          *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package tablemgr

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AstraFW/AstraFW/common/evlog"
)

// fakeTable implements interfaces.Table and records what the registry
// asked it to do.
type fakeTable struct {
	loadResult bool
	dumpResult bool

	loadCalls int
	dumpCalls int
	lastMode  uint8
	lastFile  string
}

func (f *fakeTable) LoadTable(mode uint8, filename string) bool {
	f.loadCalls++
	f.lastMode = mode
	f.lastFile = filename
	return f.loadResult
}

func (f *fakeTable) DumpTable(mode uint8, filename string) bool {
	f.dumpCalls++
	f.lastMode = mode
	f.lastFile = filename
	return f.dumpResult
}

func newTestMgr(t *testing.T, options ...func(*TblMgr) error) *TblMgr {
	t.Helper()
	options = append(options, WithLogger(evlog.Null()))
	m, err := New(options...)
	require.NoError(t, err)
	return m
}

// TestRegisterSequentialIDs verifies identifiers run 1..N in registration
// order and a full registry returns the undefined identifier
func TestRegisterSequentialIDs(t *testing.T) {
	m := newTestMgr(t, WithCapacity(3))

	for want := uint8(1); want <= 3; want++ {
		id := m.Register(&fakeTable{})
		require.Equal(t, want, id)
	}

	require.Equal(t, IDUndefined, m.Register(&fakeTable{}))

	// The failed registration must not disturb existing entries
	tbl, ok := m.Status(3)
	require.True(t, ok)
	require.Equal(t, uint8(3), tbl.ID)
	require.Equal(t, ActionRegister, tbl.LastAction)
	require.True(t, tbl.LastStatus)
}

// TestCapacityBounds verifies the capacity option's accepted range
func TestCapacityBounds(t *testing.T) {
	_, err := New(WithLogger(evlog.Null()), WithCapacity(0))
	require.Error(t, err)

	_, err = New(WithLogger(evlog.Null()), WithCapacity(255))
	require.Error(t, err)

	m := newTestMgr(t)
	require.Equal(t, DefaultCapacity, m.Capacity())
}

// TestLoadUnknownID verifies load and dump reject unregistered identifiers
// without touching any entry
func TestLoadUnknownID(t *testing.T) {
	m := newTestMgr(t)
	ft := &fakeTable{loadResult: true}
	id := m.Register(ft)

	require.False(t, m.LoadTable(IDUndefined, LoadReplace, "a.json"))
	require.False(t, m.LoadTable(99, LoadReplace, "a.json"))
	require.False(t, m.DumpTable(99, 0, "a.json"))
	require.Equal(t, 0, ft.loadCalls)

	tbl, ok := m.Status(id)
	require.True(t, ok)
	require.Equal(t, ActionRegister, tbl.LastAction)

	_, ok = m.LastStatus()
	require.False(t, ok)
}

// TestLoadDumpRouting verifies mode and filename reach the table object
// and the outcome is recorded in the entry
func TestLoadDumpRouting(t *testing.T) {
	m := newTestMgr(t)
	ft := &fakeTable{loadResult: true, dumpResult: true}
	id := m.Register(ft)

	require.True(t, m.LoadTable(id, LoadUpdate, "in.json"))
	require.Equal(t, 1, ft.loadCalls)
	require.Equal(t, LoadUpdate, ft.lastMode)
	require.Equal(t, "in.json", ft.lastFile)

	tbl, ok := m.Status(id)
	require.True(t, ok)
	require.Equal(t, ActionLoad, tbl.LastAction)
	require.True(t, tbl.LastStatus)
	require.True(t, tbl.Loaded)
	require.Equal(t, "in.json", tbl.Filename)

	require.True(t, m.DumpTable(id, 0, "out.json"))
	require.Equal(t, 1, ft.dumpCalls)

	tbl, ok = m.Status(id)
	require.True(t, ok)
	require.Equal(t, ActionDump, tbl.LastAction)
	require.True(t, tbl.LastStatus)
	require.Equal(t, "out.json", tbl.Filename)

	// A dump, successful or not, never changes loaded state
	require.True(t, tbl.Loaded)
	ft.dumpResult = false
	require.False(t, m.DumpTable(id, 0, "out.json"))
	tbl, _ = m.Status(id)
	require.True(t, tbl.Loaded)
	require.False(t, tbl.LastStatus)
}

// TestLoadFailureRecorded verifies a failed load clears the loaded flag
func TestLoadFailureRecorded(t *testing.T) {
	m := newTestMgr(t)
	ft := &fakeTable{loadResult: true}
	id := m.Register(ft)

	require.True(t, m.LoadTable(id, LoadReplace, "in.json"))

	ft.loadResult = false
	require.False(t, m.LoadTable(id, LoadReplace, "bad.json"))

	tbl, _ := m.Status(id)
	require.False(t, tbl.Loaded)
	require.False(t, tbl.LastStatus)
	require.Equal(t, "bad.json", tbl.Filename)
}

// TestRegisterWithDefault verifies registration and the initial load are
// independent outcomes
func TestRegisterWithDefault(t *testing.T) {
	m := newTestMgr(t)

	good := &fakeTable{loadResult: true}
	id := m.RegisterWithDefault(good, "default.json")
	require.Equal(t, uint8(1), id)
	require.Equal(t, 1, good.loadCalls)
	require.Equal(t, LoadReplace, good.lastMode)

	tbl, _ := m.Status(id)
	require.True(t, tbl.Loaded)
	require.Equal(t, ActionLoad, tbl.LastAction)

	// A failed default load leaves the table registered but not loaded
	bad := &fakeTable{loadResult: false}
	id = m.RegisterWithDefault(bad, "default.json")
	require.Equal(t, uint8(2), id)

	tbl, ok := m.Status(id)
	require.True(t, ok)
	require.False(t, tbl.Loaded)
	require.False(t, tbl.LastStatus)
}

// TestLastStatus verifies the most recent action is tracked across entries
func TestLastStatus(t *testing.T) {
	m := newTestMgr(t)
	id1 := m.Register(&fakeTable{loadResult: true})
	id2 := m.Register(&fakeTable{dumpResult: true})

	_, ok := m.LastStatus()
	require.False(t, ok)

	m.LoadTable(id1, LoadReplace, "a.json")
	tbl, ok := m.LastStatus()
	require.True(t, ok)
	require.Equal(t, id1, tbl.ID)
	require.Equal(t, ActionLoad, tbl.LastAction)

	m.DumpTable(id2, 0, "b.json")
	tbl, ok = m.LastStatus()
	require.True(t, ok)
	require.Equal(t, id2, tbl.ID)
	require.Equal(t, ActionDump, tbl.LastAction)
}

// TestResetStatus verifies reset clears bookkeeping but keeps
// registrations, identifiers and loaded state intact
func TestResetStatus(t *testing.T) {
	m := newTestMgr(t)
	ft := &fakeTable{loadResult: true}
	id := m.Register(ft)
	require.True(t, m.LoadTable(id, LoadReplace, "a.json"))

	m.ResetStatus()

	tbl, ok := m.Status(id)
	require.True(t, ok)
	require.Equal(t, id, tbl.ID)
	require.Equal(t, ActionUndefined, tbl.LastAction)
	require.False(t, tbl.LastStatus)
	require.True(t, tbl.Loaded)

	_, ok = m.LastStatus()
	require.False(t, ok)

	// The binding survives: the entry still routes to the same table
	require.True(t, m.LoadTable(id, LoadUpdate, "a.json"))
	require.Equal(t, 2, ft.loadCalls)
}

// TestActionString covers the action and mode labels used in telemetry
func TestActionString(t *testing.T) {
	require.Equal(t, "Register", ActionRegister.String())
	require.Equal(t, "Load", ActionLoad.String())
	require.Equal(t, "Dump", ActionDump.String())
	require.Equal(t, "Undefined", Action(200).String())

	require.Equal(t, "Replace", LoadModeStr(LoadReplace))
	require.Equal(t, "Update", LoadModeStr(LoadUpdate))
	require.Equal(t, "Undefined", LoadModeStr(7))
}
