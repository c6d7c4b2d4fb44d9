package main

import (
	"github.com/spf13/cobra"
)

var errorCmd = &cobra.Command{
	Use:   "error <program> <code>",
	Short: "Resolve a custom program error code",
	Long: `Resolve a custom program error code, given in decimal or 0x prefixed hex,
against the program's error table.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := lookupProgram(args[0])
		if err != nil {
			return err
		}

		code, err := parseErrorCode(args[1])
		if err != nil {
			return err
		}

		printf(cmd, "%s\n", p.errors.Lookup(code).Error())
		return nil
	},
}
