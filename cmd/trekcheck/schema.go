package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trekcheck/trekcheck/svc/combination"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "schema [request|verdict|vehicle]",
		Short:     "Print the JSON Schema of a document",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: combination.SchemaNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := combination.SchemaRequest
			if len(args) == 1 {
				name = args[0]
			}
			data, err := combination.Schema(name)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
}
