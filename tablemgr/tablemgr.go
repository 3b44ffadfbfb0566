/******************************************************************************
 * Copyright (c) 2025-2026 Astra Flight Systems Inc.                          *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package tablemgr maintains a bounded registry of an application's
// tables and routes load and dump requests to the table objects that
// registered them. It does not dictate a table format; it only records
// identifiers, last actions and outcomes.
package tablemgr

import (
	"errors"

	"github.com/AstraFW/AstraFW/common/interfaces"
)

const (
	// DefaultCapacity is the registry size used when no capacity option
	// is supplied, matching the framework's per application table limit.
	DefaultCapacity = 5

	// IDUndefined is never assigned to a table. Register returns it when
	// the registry is full.
	IDUndefined uint8 = 0
)

// Load modes. The registry threads the mode through to the table
// object; whole table replace vs sparse update semantics belong to the
// table, and a format that allows sparse definitions decides for itself
// how replace behaves when not every element is defined.
const (
	LoadReplace uint8 = 0
	LoadUpdate  uint8 = 1
)

// Event IDs
const (
	EIDRegExceededMax = 1200
	EIDLoadIDErr      = 1201
	EIDDumpIDErr      = 1202
	EIDLoadCmdErr     = 1203
	EIDDumpCmdErr     = 1204
	EIDLoadSuccess    = 1205
	EIDDumpSuccess    = 1206
)

// Action records the last operation performed on a table entry.
type Action uint8

const (
	ActionUndefined Action = iota
	ActionRegister
	ActionLoad
	ActionDump
)

var actionStr = [...]string{
	"Undefined",
	"Register",
	"Load",
	"Dump",
}

func (a Action) String() string {
	if a > ActionDump {
		a = ActionUndefined
	}
	return actionStr[a]
}

// LoadModeStr describes a load mode byte.
func LoadModeStr(mode uint8) string {
	switch mode {
	case LoadReplace:
		return "Replace"
	case LoadUpdate:
		return "Update"
	default:
		return "Undefined"
	}
}

// Tbl is one registration entry. Identifiers are assigned in
// registration order starting at 1 and are never reused within a
// process lifetime.
type Tbl struct {
	ID         uint8
	LastAction Action
	LastStatus bool
	Loaded     bool
	Filename   string

	table interfaces.Table
}

// TblMgr is the table registry. Its capacity is fixed at construction;
// registration beyond capacity is rejected, not grown. A single task is
// assumed to drive all registration, load and dump calls.
type TblMgr struct {
	logger       interfaces.Logger
	capacity     int
	tbls         []Tbl
	lastActionID uint8
}

// New returns a TblMgr instance
func New(options ...func(*TblMgr) error) (*TblMgr, error) {
	m := &TblMgr{capacity: DefaultCapacity}

	for _, option := range options {
		err := option(m)
		if err != nil {
			return nil, err
		}
	}

	if m.logger == nil {
		return nil, errors.New("logger is required")
	}

	m.tbls = make([]Tbl, 0, m.capacity)
	return m, nil
}

func WithLogger(logger interfaces.Logger) func(*TblMgr) error {
	return func(m *TblMgr) error {
		if logger == nil {
			return errors.New("logger is nil")
		}
		m.logger = logger
		return nil
	}
}

// WithCapacity overrides the registry capacity
func WithCapacity(capacity int) func(*TblMgr) error {
	return func(m *TblMgr) error {
		if capacity < 1 || capacity > 254 {
			return errors.New("capacity must be between 1 and 254")
		}
		m.capacity = capacity
		return nil
	}
}

// Capacity returns the registry's fixed capacity.
func (m *TblMgr) Capacity() int {
	return m.capacity
}

// Register adds a table to the registry without loading a default file.
// It returns the identifier assigned to the table, or IDUndefined if no
// identifiers are left. A full registry is a caller checked condition,
// not a panic.
func (m *TblMgr) Register(table interfaces.Table) uint8 {

	if len(m.tbls) >= m.capacity {
		m.logger.Errorf(EIDRegExceededMax,
			"Table registration exceeded maximum table count %d", m.capacity)
		return IDUndefined
	}

	id := uint8(len(m.tbls) + 1)
	m.tbls = append(m.tbls, Tbl{
		ID:         id,
		LastAction: ActionRegister,
		LastStatus: true,
		table:      table,
	})

	return id
}

// RegisterWithDefault registers a table and immediately loads the
// default file with replace mode. Registration and the initial load are
// independent outcomes: a failed load does not unregister the table, it
// is only recorded in the entry's status.
func (m *TblMgr) RegisterWithDefault(table interfaces.Table, filename string) uint8 {

	id := m.Register(table)
	if id != IDUndefined {
		m.LoadTable(id, LoadReplace, filename)
	}

	return id
}

// LoadTable resolves id and invokes the table's load handler, recording
// the action, its outcome and the loaded state in the entry.
func (m *TblMgr) LoadTable(id uint8, mode uint8, filename string) bool {

	tbl := m.entry(id)
	if tbl == nil {
		m.logger.Errorf(EIDLoadIDErr, "Invalid table load ID %d. Registered table IDs are 1..%d",
			id, len(m.tbls))
		return false
	}

	result := tbl.table.LoadTable(mode, filename)

	tbl.LastAction = ActionLoad
	tbl.LastStatus = result
	tbl.Loaded = result
	tbl.Filename = filename
	m.lastActionID = id

	if result {
		m.logger.Infof(EIDLoadSuccess, "Table %d %s load successful for file %s",
			id, LoadModeStr(mode), filename)
	}

	return result
}

// DumpTable resolves id and invokes the table's dump handler. A dump
// never changes the entry's loaded state.
func (m *TblMgr) DumpTable(id uint8, mode uint8, filename string) bool {

	tbl := m.entry(id)
	if tbl == nil {
		m.logger.Errorf(EIDDumpIDErr, "Invalid table dump ID %d. Registered table IDs are 1..%d",
			id, len(m.tbls))
		return false
	}

	result := tbl.table.DumpTable(mode, filename)

	tbl.LastAction = ActionDump
	tbl.LastStatus = result
	tbl.Filename = filename
	m.lastActionID = id

	if result {
		m.logger.Infof(EIDDumpSuccess, "Table %d dump successful for file %s", id, filename)
	}

	return result
}

// Status returns a copy of the entry for id.
func (m *TblMgr) Status(id uint8) (Tbl, bool) {
	tbl := m.entry(id)
	if tbl == nil {
		return Tbl{}, false
	}
	return *tbl, true
}

// LastStatus returns a copy of the entry the most recent load or dump
// acted upon. It reports false if no action has ever been dispatched.
func (m *TblMgr) LastStatus() (Tbl, bool) {
	if m.lastActionID == IDUndefined {
		return Tbl{}, false
	}
	return m.Status(m.lastActionID)
}

// ResetStatus clears the action bookkeeping for every entry without
// touching identifiers, table bindings or loaded state. Used to clear
// stale diagnostic state without losing registrations.
func (m *TblMgr) ResetStatus() {
	for i := range m.tbls {
		m.tbls[i].LastAction = ActionUndefined
		m.tbls[i].LastStatus = false
	}
	m.lastActionID = IDUndefined
}

// entry translates a 1-based table identifier to its registry slot.
// This is the one place identifiers and slice indexes meet.
func (m *TblMgr) entry(id uint8) *Tbl {
	if id == IDUndefined || int(id) > len(m.tbls) {
		return nil
	}
	return &m.tbls[id-1]
}
