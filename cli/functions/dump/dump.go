/******************************************************************************
 * Copyright (c) 2025-2026 Astra Flight Systems Inc.                          *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package dump

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AstraFW/AstraFW/cli/global"
	"github.com/AstraFW/AstraFW/cmdmgr"
	"github.com/AstraFW/AstraFW/tablemgr"
	"github.com/AstraFW/AstraFW/tables/kvstore"
)

var dbPath string
var bucket string
var compact bool

func Register() *cobra.Command {
	c := &cobra.Command{
		Use:   "dump <file>",
		Short: "dump a table database to a JSON file",
		Long:  "register a key/value table, then route a dump command through the table registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(args[0])
		},
	}
	c.Flags().StringVar(&dbPath, "db", "astra-tbl.db", "table database file")
	c.Flags().StringVar(&bucket, "bucket", "Table", "bucket name")
	c.Flags().BoolVar(&compact, "compact", false, "write compact JSON instead of indented")
	return c
}

func execute(filename string) error {

	logger, err := global.Logger()
	if err != nil {
		return err
	}

	store, err := kvstore.New(dbPath, kvstore.WithLogger(logger), kvstore.WithBucket(bucket))
	if err != nil {
		return err
	}

	tblMgr, err := tablemgr.New(tablemgr.WithLogger(logger))
	if err != nil {
		return err
	}

	id := tblMgr.Register(store)
	if id == tablemgr.IDUndefined {
		return fmt.Errorf("table registration failed")
	}

	cmdMgr, err := cmdmgr.New(cmdmgr.WithLogger(logger))
	if err != nil {
		return err
	}
	cmdMgr.RegisterFunc(global.FuncCodeDumpTable, tblMgr.DumpTableCmdFunc, tablemgr.MaxCmdPayloadLen)

	mode := kvstore.DumpPretty
	if compact {
		mode = kvstore.DumpCompact
	}

	payload, err := json.Marshal(tablemgr.DumpTableCmd{ID: id, DumpType: mode, Filename: filename})
	if err != nil {
		return err
	}

	if !cmdMgr.Dispatch(global.FuncCodeDumpTable, payload) {
		return fmt.Errorf("table dump failed for %s", filename)
	}

	fmt.Printf("table %d dumped to %s\n", id, filename)
	return nil
}
