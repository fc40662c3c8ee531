package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"contactplot/internal/store"
)

// verify <manifest.json>: re-digest the artifacts a run saved.
func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <manifest.json>",
		Short: "Check saved artifacts against their run manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mismatches, err := store.Verify(args[0])
			if err != nil {
				return err
			}
			for _, m := range mismatches {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", m.Name, m.Reason)
			}
			if len(mismatches) > 0 {
				return fmt.Errorf("%d artifact(s) do not match %s", len(mismatches), args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}
