/******************************************************************************
 * Copyright (c) 2025-2026 Astra Flight Systems Inc.                          *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package global

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/AstraFW/AstraFW/common/evlog"
	"github.com/AstraFW/AstraFW/common/interfaces"
	"github.com/AstraFW/AstraFW/inittbl"
)

const Description = "AstraFW table utility"
const LongDescription = "astra-tbl validates, loads and dumps AstraFW JSON table files"
const Version = "0.4.1"

// Command function codes used when wiring the registry's command
// handlers into a dispatcher. Codes 0 and 1 follow the host convention
// of noop and reset.
const (
	FuncCodeNoop      uint16 = 0
	FuncCodeReset     uint16 = 1
	FuncCodeLoadTable uint16 = 2
	FuncCodeDumpTable uint16 = 3
)

// Application configuration parameters, used with inittbl. The zero
// value is reserved.
const (
	cfgStart = iota
	CfgAppName
	CfgLogFile
	CfgLogRetainDays
	CfgDbFile
	CfgBucket
	cfgEnd
)

var cfgParams = map[int]struct {
	name string
	typ  string
}{
	CfgAppName:       {"APP_NAME", inittbl.TypeStr},
	CfgLogFile:       {"LOG_FILE", inittbl.TypeStr},
	CfgLogRetainDays: {"LOG_RETAIN_DAYS", inittbl.TypeInt},
	CfgDbFile:        {"DB_FILE", inittbl.TypeStr},
	CfgBucket:        {"BUCKET", inittbl.TypeStr},
}

// AppCfgEnum returns the enumeration contract for the utility's own
// configuration file.
func AppCfgEnum() inittbl.CfgEnum {
	return inittbl.CfgEnum{
		Start: cfgStart,
		End:   cfgEnd,
		GetName: func(param int) string {
			return cfgParams[param].name
		},
		GetType: func(param int) string {
			return cfgParams[param].typ
		},
	}
}

// CfgParamNames lists the parameter identifiers in order, for display.
func CfgParamNames() []int {
	return []int{CfgAppName, CfgLogFile, CfgLogRetainDays, CfgDbFile, CfgBucket}
}

// CfgParamName returns the display name of a parameter.
func CfgParamName(param int) string {
	return cfgParams[param].name
}

// CfgParamType returns the type string of a parameter.
func CfgParamType(param int) string {
	return cfgParams[param].typ
}

// LoadEnv loads environment variables from ~/.astra-tbl if it exists.
func LoadEnv() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return
	}
	_ = godotenv.Load(filepath.Join(homeDir, ".astra-tbl"))
}

// Logger builds the event logger from the environment. ASTRA_LOG_FILE
// selects a log file, ASTRA_DEBUG enables debug events; with neither set
// events go to stdout.
func Logger() (interfaces.Logger, error) {
	return evlog.New(
		evlog.WithPrefix("astra-tbl"),
		evlog.WithLogFile(os.Getenv("ASTRA_LOG_FILE")),
		evlog.WithDebug(os.Getenv("ASTRA_DEBUG") != ""),
	)
}
