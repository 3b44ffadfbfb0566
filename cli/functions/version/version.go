/******************************************************************************
 * Copyright (c) 2025-2026 Astra Flight Systems Inc.                          *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AstraFW/AstraFW/cli/global"
)

func Register() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "display the version",
		Long:  "display the astra-tbl version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("%s %s\n", global.Description, global.Version)
			return nil
		},
	}
}
