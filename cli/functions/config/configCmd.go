/******************************************************************************
 * Copyright (c) 2025-2026 Astra Flight Systems Inc.                          *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AstraFW/AstraFW/cli/global"
	"github.com/AstraFW/AstraFW/inittbl"
)

func Register() *cobra.Command {
	return &cobra.Command{
		Use:   "config <file>",
		Short: "load and display an application configuration file",
		Long:  "process a JSON initialization file against the astra-tbl configuration schema and display every parameter",
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

	tbl, err := inittbl.New(filename, global.AppCfgEnum(), logger)
	if err != nil {
		return fmt.Errorf("configuration load failed: %w", err)
	}

	fmt.Printf("%s: %d parameters\n", filename, tbl.ParamCount())
	for _, param := range global.CfgParamNames() {
		name := global.CfgParamName(param)
		switch global.CfgParamType(param) {
		case inittbl.TypeInt:
			fmt.Printf("  %-16s = %d\n", name, tbl.GetInt(param))
		case inittbl.TypeStr:
			fmt.Printf("  %-16s = %s\n", name, tbl.GetStr(param))
		}
	}
	return nil
}
