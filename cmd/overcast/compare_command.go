package main

import (
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"
)

func newCompareCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <title1> <title2>",
		Short: "Print the common cast of two titles as JSON",
		Example: `  overcast compare "Inception" "The Dark Knight"
  overcast compare "Breaking Bad" "Malcolm in the Middle"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cm, err := ctx.comparisonManager()
			if err != nil {
				return err
			}
			result := cm.Compare(cmd.Context(), args[0], args[1])

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(result); err != nil {
				return err
			}
			if result.Failed() {
				return errors.New(result.ErrorMessage)
			}
			return nil
		},
	}
}
