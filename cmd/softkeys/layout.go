package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pawndev/softkeys/pkg/softkeys"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Inspect keyboard layouts",
}

var layoutCheckCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Report rows whose width differs from the first row",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		layout := softkeys.DefaultLayout()
		name := "default"
		if len(args) == 1 {
			var err error
			layout, err = softkeys.LoadLayout(args[0])
			if err != nil {
				return err
			}
			name = args[0]
		}

		out := cmd.OutOrStdout()
		mismatches := layout.Check()
		fmt.Fprintf(out, "%s: %d rows, width %g\n", name, layout.RowCount(), layout.Width())
		for _, m := range mismatches {
			fmt.Fprintln(out, "  "+m.String())
		}
		if len(mismatches) > 0 {
			return fmt.Errorf("%d row(s) out of alignment", len(mismatches))
		}
		return nil
	},
}

func init() {
	layoutCmd.AddCommand(layoutCheckCmd)
	rootCmd.AddCommand(layoutCmd)
}
