/******************************************************************************
 * Copyright (c) 2025-2026 Astra Flight Systems Inc.                          *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package inittbl loads an application's initialization configuration
// from a JSON file. The schema is not declared in the file; it is built
// from the application's compile time parameter enumeration, one field
// descriptor per parameter, and every parameter must be present and well
// typed or construction fails. Configuration is immutable after load.
package inittbl

import (
	"errors"
	"fmt"

	"github.com/AstraFW/AstraFW/common/interfaces"
	"github.com/AstraFW/AstraFW/jsonbind"
)

const (
	// MaxConfigItems caps how many parameters an enumeration may define.
	MaxConfigItems = 32

	// MaxConfigStrLen is the storage capacity for a string parameter. A
	// parameter such as a filename may carry a tighter limit of its own.
	MaxConfigStrLen = 64

	// MaxJSONFileChar caps the configuration file size.
	MaxJSONFileChar = 8192

	// ConfigObjPrefix is prepended to every parameter name to form its
	// JSON query key, so parameters live under one "config" object.
	ConfigObjPrefix = "config."

	// Parameter type strings returned by the enumeration's GetType.
	TypeInt = "int"
	TypeStr = "str"
)

// Event IDs
const (
	EIDConfigDefErr = 1100
	EIDCfgParam     = 1101
	EIDCfgParamErr  = 1102
	EIDLoadJSON     = 1103
	EIDLoadJSONErr  = 1104
)

var (
	ErrCapacityExceeded = errors.New("parameter count exceeds maximum")
	ErrBadParamType     = errors.New("invalid configuration parameter type")
	ErrLoadFailed       = errors.New("configuration file processing failed")
)

// CfgEnum is the enumeration contract supplied by the owning
// application. Parameter identifiers run from Start+1 up to but not
// including End; Start itself (conventionally 0) is reserved and never
// looked up.
type CfgEnum struct {
	Start   int
	End     int
	GetName func(param int) string
	GetType func(param int) string
}

// cfgValue holds one parameter's typed storage. The matching descriptor
// destinations point into these fields, so the slice is allocated once
// at construction and never grows.
type cfgValue struct {
	intVal int32
	strVal string
}

// IniTbl is the loaded configuration table. Construct with New; the
// accessors assume construction validated every parameter once and
// treat any accessor-time mismatch as a caller defect worth an event,
// not an error worth propagating.
type IniTbl struct {
	logger  interfaces.Logger
	binder  *jsonbind.Binder
	cfgEnum CfgEnum
	objs    []jsonbind.Obj
	vals    []cfgValue
	buf     []byte
	jsonLen int
}

// New reads, validates and processes the JSON configuration file. A nil
// error means every parameter in the enumeration was extracted; any
// other outcome leaves no usable table behind and the caller must treat
// it as fatal to the owning subsystem.
func New(filename string, cfgEnum CfgEnum, logger interfaces.Logger) (*IniTbl, error) {
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	binder, err := jsonbind.New(jsonbind.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	t := &IniTbl{
		logger:  logger,
		binder:  binder,
		cfgEnum: cfgEnum,
	}

	if err = t.buildObjArray(); err != nil {
		return nil, err
	}

	t.buf = make([]byte, MaxJSONFileChar)
	if !binder.ProcessFileAlt(filename, t.buf, loadJSONData, t) {
		return nil, fmt.Errorf("file %s: %w", filename, ErrLoadFailed)
	}

	return t, nil
}

// buildObjArray creates one field descriptor per enumerated parameter,
// bound to the parameter's typed storage slot.
func (t *IniTbl) buildObjArray() error {

	count := t.cfgEnum.End - t.cfgEnum.Start - 1
	if count < 0 {
		count = 0
	}

	if count > MaxConfigItems {
		t.logger.Errorf(EIDConfigDefErr,
			"Configuration definition error: %d parameters exceeds the maximum of %d",
			count, MaxConfigItems)
		return fmt.Errorf("%d parameters: %w", count, ErrCapacityExceeded)
	}

	t.vals = make([]cfgValue, count)
	t.objs = make([]jsonbind.Obj, count)

	for i := range t.objs {
		param := t.cfgEnum.Start + 1 + i
		name := t.cfgEnum.GetName(param)
		key := ConfigObjPrefix + name

		var obj jsonbind.Obj
		var err error

		switch typ := t.cfgEnum.GetType(param); typ {
		case TypeInt:
			obj, err = jsonbind.NewIntObj(key, &t.vals[i].intVal)
		case TypeStr:
			obj, err = jsonbind.NewStrObj(key, &t.vals[i].strVal, MaxConfigStrLen)
		default:
			t.logger.Errorf(EIDCfgParamErr, "Invalid configuration parameter type %s", typ)
			return fmt.Errorf("parameter %s type %s: %w", name, typ, ErrBadParamType)
		}
		if err != nil {
			t.logger.Errorf(EIDCfgParamErr, "Error building descriptor for parameter %s: %s", name, err.Error())
			return err
		}

		t.objs[i] = obj
	}

	return nil
}

// loadJSONData is the ingestion callback. Every parameter must extract;
// a partial count is a construction failure.
func loadJSONData(jsonLen int, userData any) bool {

	t := userData.(*IniTbl)
	t.jsonLen = jsonLen

	cnt := t.binder.ExtractArray(t.objs, t.buf[:t.jsonLen])

	if cnt != len(t.objs) {
		t.logger.Errorf(EIDLoadJSONErr,
			"Error processing JSON initialization file. %d of %d parameters processed",
			cnt, len(t.objs))
		return false
	}

	t.logger.Infof(EIDLoadJSON,
		"JSON initialization file successfully processed with %d parameters", cnt)
	return true
}

// GetInt returns the integer value of a parameter. If the parameter is
// out of range, was never loaded, or is not an integer, an event is sent
// and zero is returned; construction already validated the table so any
// of those indicate a caller defect.
func (t *IniTbl) GetInt(param int) int32 {
	i, ok := t.validParam(param, jsonbind.KindNumber)
	if !ok {
		return 0
	}
	return t.vals[i].intVal
}

// GetStr returns the string value of a parameter, or an empty string
// with an event on any mismatch.
func (t *IniTbl) GetStr(param int) string {
	i, ok := t.validParam(param, jsonbind.KindString)
	if !ok {
		return ""
	}
	return t.vals[i].strVal
}

// ParamCount returns how many parameters the table holds.
func (t *IniTbl) ParamCount() int {
	return len(t.objs)
}

// validParam translates a parameter identifier to its slot index and
// verifies the slot was loaded with the requested kind. This is the one
// place identifiers and slot indexes meet.
func (t *IniTbl) validParam(param int, kind jsonbind.Kind) (int, bool) {

	i := param - t.cfgEnum.Start - 1
	if i < 0 || i >= len(t.objs) {
		t.logger.Errorf(EIDCfgParamErr,
			"Attempt to retrieve invalid parameter %d that is not in valid range: %d < param < %d",
			param, t.cfgEnum.Start, t.cfgEnum.End)
		return 0, false
	}

	obj := &t.objs[i]
	t.logger.Debugf(EIDCfgParam, "validParam %d: key %s, requested type %s, loaded type %s",
		param, obj.Key, kind, obj.Kind)

	if !obj.Updated {
		t.logger.Errorf(EIDCfgParamErr, "Attempt to retrieve uninitialized parameter %d", param)
		return 0, false
	}

	if obj.Kind != kind {
		t.logger.Errorf(EIDCfgParamErr,
			"Attempt to retrieve parameter of type %s that was loaded as type %s",
			kind, obj.Kind)
		return 0, false
	}

	return i, true
}
