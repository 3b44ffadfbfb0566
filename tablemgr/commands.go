/******************************************************************************
 * Copyright (c) 2025-2026 Astra Flight Systems Inc.                          *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package tablemgr

import (
	"encoding/json"

	"github.com/AstraFW/AstraFW/fileutil"
)

// MaxCmdPayloadLen bounds the JSON command payloads accepted by the
// command handlers, sized for an id, a mode byte and a full length path.
const MaxCmdPayloadLen = 256

// LoadTableCmd is the load command payload delivered by the host's
// command transport after framing and checksum validation. The table
// identifier is the one assigned at registration.
type LoadTableCmd struct {
	ID       uint8  `json:"id"`
	LoadType uint8  `json:"loadType"`
	Filename string `json:"filename"`
}

// DumpTableCmd is the dump command payload. DumpType is a user defined
// qualifier passed through to the table object.
type DumpTableCmd struct {
	ID       uint8  `json:"id"`
	DumpType uint8  `json:"dumpType"`
	Filename string `json:"filename"`
}

// LoadTableCmdFunc complies with the cmdmgr handler signature so the
// registry's load command can be registered under a function code. The
// filename is verified for read before the table object sees it.
func (m *TblMgr) LoadTableCmdFunc(payload []byte) bool {

	var cmd LoadTableCmd
	if err := json.Unmarshal(payload, &cmd); err != nil {
		m.logger.Errorf(EIDLoadCmdErr, "Error decoding table load command: %s", err.Error())
		return false
	}

	if !fileutil.New(m.logger).VerifyFileForRead(cmd.Filename) {
		return false
	}

	return m.LoadTable(cmd.ID, cmd.LoadType, cmd.Filename)
}

// DumpTableCmdFunc complies with the cmdmgr handler signature for the
// registry's dump command. The destination directory is verified before
// the table object sees it.
func (m *TblMgr) DumpTableCmdFunc(payload []byte) bool {

	var cmd DumpTableCmd
	if err := json.Unmarshal(payload, &cmd); err != nil {
		m.logger.Errorf(EIDDumpCmdErr, "Error decoding table dump command: %s", err.Error())
		return false
	}

	if !fileutil.New(m.logger).VerifyDirForWrite(cmd.Filename) {
		return false
	}

	return m.DumpTable(cmd.ID, cmd.DumpType, cmd.Filename)
}
