/******************************************************************************
 * Copyright (c) 2025-2026 Astra Flight Systems Inc.                          *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package status

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AstraFW/AstraFW/cli/global"
	"github.com/AstraFW/AstraFW/tables/kvstore"
)

var dbPath string
var bucket string

func Register() *cobra.Command {

	c := &cobra.Command{
		Use:   "status",
		Short: "display the state of a table database",
		Long:  "open a table database and display its bucket entry count",
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute()
		},
	}

	c.Flags().StringVar(&dbPath, "db", "astra-tbl.db", "table database file")
	c.Flags().StringVar(&bucket, "bucket", "Table", "bucket name")
	return c
}

func execute() error {

	logger, err := global.Logger()
	if err != nil {
		return err
	}

	store, err := kvstore.New(dbPath, kvstore.WithLogger(logger), kvstore.WithBucket(bucket))
	if err != nil {
		return err
	}

	count, ok := store.Count()
	if !ok {
		return fmt.Errorf("no table found in %s bucket %s", dbPath, bucket)
	}

	fmt.Printf("database %s bucket %s: %d entries\n", dbPath, bucket, count)
	return nil
}
