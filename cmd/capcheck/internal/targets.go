package internal

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goplus/capcheck/cfg"
)

var targetsMatching string

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List the known target triples",
	Args:  cobra.NoArgs,
	RunE:  runTargets,
}

func init() {
	targetsCmd.Flags().StringVar(&targetsMatching, "matching", "", "Only list targets a cfg predicate holds for")
	rootCmd.AddCommand(targetsCmd)
}

func runTargets(cmd *cobra.Command, args []string) error {
	var expr *cfg.Expression
	if targetsMatching != "" {
		e, err := cfg.Parse(targetsMatching)
		if err != nil {
			return err
		}
		expr = e
	}
	out := cmd.OutOrStdout()
	for _, triple := range cfg.Targets() {
		if expr != nil {
			t, _ := cfg.LookupTarget(triple)
			if !expr.Matches(t) {
				continue
			}
		}
		fmt.Fprintln(out, triple)
	}
	return nil
}
