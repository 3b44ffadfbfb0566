/******************************************************************************
 * Copyright (c) 2025-2026 Astra Flight Systems Inc.                          *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package cmdmgr dispatches commands that have already been framed and
// checksummed by the host's transport layer. Commands are routed by
// function code to handlers registered by the application's objects;
// the payload is passed through opaquely.
package cmdmgr

import (
	"errors"

	"github.com/AstraFW/AstraFW/common/interfaces"
)

// DefaultFuncCodes is the function code table size used when no option
// is supplied.
const DefaultFuncCodes = 32

// Event IDs
const (
	EIDRegInvalidFuncCode      = 1300
	EIDDispatchUnusedFuncCode  = 1301
	EIDDispatchInvalidLen      = 1302
	EIDDispatchInvalidFuncCode = 1303
)

// CmdFunc handles one command's payload and reports success. Handlers
// are expected to send their own failure events.
type CmdFunc func(payload []byte) bool

// cmd is one function code slot.
type cmd struct {
	fn         CmdFunc
	maxDataLen int
}

// CmdMgr is the bounded function code dispatch table with valid and
// invalid command counters.
type CmdMgr struct {
	logger        interfaces.Logger
	cmds          []cmd
	validCmdCnt   uint16
	invalidCmdCnt uint16
}

// New returns a CmdMgr instance
func New(options ...func(*CmdMgr) error) (*CmdMgr, error) {
	m := &CmdMgr{}

	for _, option := range options {
		err := option(m)
		if err != nil {
			return nil, err
		}
	}

	if m.logger == nil {
		return nil, errors.New("logger is required")
	}

	if m.cmds == nil {
		m.cmds = make([]cmd, DefaultFuncCodes)
	}

	return m, nil
}

func WithLogger(logger interfaces.Logger) func(*CmdMgr) error {
	return func(m *CmdMgr) error {
		if logger == nil {
			return errors.New("logger is nil")
		}
		m.logger = logger
		return nil
	}
}

// WithFuncCodes sets the function code table size
func WithFuncCodes(total int) func(*CmdMgr) error {
	return func(m *CmdMgr) error {
		if total < 1 {
			return errors.New("function code total must be at least 1")
		}
		m.cmds = make([]cmd, total)
		return nil
	}
}

// RegisterFunc binds a handler to a function code. maxDataLen bounds the
// payload length accepted at dispatch time; zero means no payload is
// expected.
func (m *CmdMgr) RegisterFunc(funcCode uint16, fn CmdFunc, maxDataLen int) bool {

	if int(funcCode) >= len(m.cmds) {
		m.logger.Errorf(EIDRegInvalidFuncCode,
			"Attempt to register function code %d that is greater than max %d",
			funcCode, len(m.cmds)-1)
		return false
	}

	m.cmds[funcCode] = cmd{fn: fn, maxDataLen: maxDataLen}
	return true
}

// Dispatch routes a payload to the handler registered for funcCode.
// Unused codes and oversized payloads are counted and rejected.
func (m *CmdMgr) Dispatch(funcCode uint16, payload []byte) bool {

	if int(funcCode) >= len(m.cmds) {
		m.invalidCmdCnt++
		m.logger.Errorf(EIDDispatchInvalidFuncCode,
			"Invalid function code %d received. Max code is %d", funcCode, len(m.cmds)-1)
		return false
	}

	c := &m.cmds[funcCode]
	if c.fn == nil {
		m.invalidCmdCnt++
		m.logger.Errorf(EIDDispatchUnusedFuncCode,
			"Unused function code %d received", funcCode)
		return false
	}

	if len(payload) > c.maxDataLen {
		m.invalidCmdCnt++
		m.logger.Errorf(EIDDispatchInvalidLen,
			"Invalid payload length %d for function code %d. Maximum is %d",
			len(payload), funcCode, c.maxDataLen)
		return false
	}

	if c.fn(payload) {
		m.validCmdCnt++
		return true
	}

	m.invalidCmdCnt++
	return false
}

// ValidCount returns how many commands dispatched successfully.
func (m *CmdMgr) ValidCount() uint16 {
	return m.validCmdCnt
}

// InvalidCount returns how many commands were rejected or failed.
func (m *CmdMgr) InvalidCount() uint16 {
	return m.invalidCmdCnt
}

// ResetStatus clears the command counters. Handler bindings are kept.
func (m *CmdMgr) ResetStatus() {
	m.validCmdCnt = 0
	m.invalidCmdCnt = 0
}
