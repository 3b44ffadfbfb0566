/******************************************************************************
 * Copyright (c) 2025-2026 Astra Flight Systems Inc.                          *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package load

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
var update bool

func Register() *cobra.Command {
	c := &cobra.Command{
		Use:   "load <file>",
		Short: "load a JSON table file into a table database",
		Long:  "register a key/value table, then route a load command through the table registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(args[0])
		},
	}
	c.Flags().StringVar(&dbPath, "db", "astra-tbl.db", "table database file")
	c.Flags().StringVar(&bucket, "bucket", "Table", "bucket name")
	c.Flags().BoolVar(&update, "update", false, "update entries instead of replacing the table")
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
	cmdMgr.RegisterFunc(global.FuncCodeLoadTable, tblMgr.LoadTableCmdFunc, tablemgr.MaxCmdPayloadLen)

	mode := tablemgr.LoadReplace
	if update {
		mode = tablemgr.LoadUpdate
	}

	payload, err := json.Marshal(tablemgr.LoadTableCmd{ID: id, LoadType: mode, Filename: filename})
	if err != nil {
		return err
	}

	if !cmdMgr.Dispatch(global.FuncCodeLoadTable, payload) {
		return fmt.Errorf("table load failed for %s", filename)
	}

	status, _ := tblMgr.Status(id)
	fmt.Printf("table %d (%s) %s load of %s: loaded=%v\n",
		id, store.Name(), tablemgr.LoadModeStr(mode), filename, status.Loaded)
	return nil
}
