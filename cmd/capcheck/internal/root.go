package internal

import (
	"context"
	"log"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	clog "github.com/goplus/capcheck/internal/log"
)

var rootVerbose bool

var rootCmd = &cobra.Command{
	Use:   "capcheck",
	Short: "capcheck enables flags for the capabilities of a compiler",
	Long: `capcheck reads the capability section of a project manifest, identifies the
compiler toolchain and target, and prints one build directive per capability
the toolchain supports.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Log decisions to stderr")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		log.Fatal(err)
	}
}

// newLogger returns a logger writing to the command's stderr, so that
// stdout only carries directives.
func newLogger(cmd *cobra.Command) *zap.Logger {
	return clog.New(zapcore.AddSync(cmd.ErrOrStderr()), rootVerbose)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
