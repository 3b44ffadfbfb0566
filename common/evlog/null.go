/******************************************************************************
 * Copyright (c) 2025-2026 Astra Flight Systems Inc.                          *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package evlog

import (
	"github.com/AstraFW/AstraFW/common/interfaces"
)

var _ interfaces.Logger = (*nullLogger)(nil)

type nullLogger struct{}

// Null returns a logger that discards everything, for testing
func Null() interfaces.Logger {
	return &nullLogger{}
}

func (n *nullLogger) Debug(uint32, string, interfaces.Fields)   {}
func (n *nullLogger) Info(uint32, string, interfaces.Fields)    {}
func (n *nullLogger) Warning(uint32, string, interfaces.Fields) {}
func (n *nullLogger) Error(uint32, string, interfaces.Fields)   {}
func (n *nullLogger) Fatal(uint32, string, interfaces.Fields)   {}
func (n *nullLogger) Debugf(uint32, string, ...any)             {}
func (n *nullLogger) Infof(uint32, string, ...any)              {}
func (n *nullLogger) Warningf(uint32, string, ...any)           {}
func (n *nullLogger) Errorf(uint32, string, ...any)             {}
func (n *nullLogger) Fatalf(uint32, string, ...any)             {}
