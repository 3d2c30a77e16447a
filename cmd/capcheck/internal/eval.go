package internal

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goplus/capcheck/cfg"
	"github.com/goplus/capcheck/internal/env"
)

var evalTarget string

var evalCmd = &cobra.Command{
	Use:   "eval <predicate>",
	Short: "Evaluate a cfg predicate for a target",
	Long: `Eval prints true or false depending on whether the predicate holds for the
target, e.g.

	capcheck eval 'cfg(all(unix, target_pointer_width = "64"))' -t aarch64-apple-darwin`,
	Args: cobra.ExactArgs(1),
	RunE: runEval,
}

func init() {
	evalCmd.Flags().StringVarP(&evalTarget, "target", "t", "", "Target triple (default $TARGET, then the host)")
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	target := evalTarget
	if target == "" {
		target = env.Target()
	}
	if target == "" {
		host, ok := cfg.HostTriple()
		if !ok {
			return fmt.Errorf("no target given and the host is not a known target")
		}
		target = host
	}
	ok, err := cfg.Evaluate(args[0], target)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), ok)
	return nil
}
