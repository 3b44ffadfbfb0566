/******************************************************************************
 * Copyright (c) 2025-2026 Astra Flight Systems Inc.                          *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package validate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AstraFW/AstraFW/cli/global"
	"github.com/AstraFW/AstraFW/jsonbind"
)

func Register() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "validate a JSON table file",
		Long:  "read a JSON table file and check that it is a well-formed document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(args[0])
		},
	}
}

func execute(filename string) error {

	logger, err := global.Logger()
	if err != nil {
		return err
	}

	binder, err := jsonbind.New(jsonbind.WithLogger(logger))
	if err != nil {
		return err
	}

	buf := make([]byte, jsonbind.MaxIngestChar)

	var byteCount int
	ok := binder.ProcessFile(filename, buf, func(jsonLen int) bool {
		byteCount = jsonLen
		return true
	})
	if !ok {
		return fmt.Errorf("%s failed validation", filename)
	}

	fmt.Printf("%s is a well-formed JSON document (%d bytes)\n", filename, byteCount)
	return nil
}
