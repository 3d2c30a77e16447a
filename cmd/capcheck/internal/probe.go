package internal

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goplus/capcheck/internal/env"
	"github.com/goplus/capcheck/toolchain"
)

var probeCompiler string

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Show the toolchain a compiler belongs to",
	Args:  cobra.NoArgs,
	RunE:  runProbe,
}

func init() {
	probeCmd.Flags().StringVar(&probeCompiler, "compiler", "", "Compiler to probe (default $RUSTC, $CARGO_BUILD_RUSTC, rustc)")
	rootCmd.AddCommand(probeCmd)
}

type probeInfo struct {
	Compiler   string `yaml:"compiler"`
	Version    string `yaml:"version"`
	Channel    string `yaml:"channel"`
	Prerelease bool   `yaml:"prerelease"`
	Host       string `yaml:"host,omitempty"`
}

func runProbe(cmd *cobra.Command, args []string) error {
	compiler := probeCompiler
	if compiler == "" {
		compiler = env.Compiler()
	}
	tc, err := toolchain.NewProber(compiler).Probe(commandContext(cmd))
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	err = enc.Encode(probeInfo{
		Compiler:   compiler,
		Version:    tc.Version().String(),
		Channel:    string(tc.Channel()),
		Prerelease: tc.Prerelease(),
		Host:       tc.Host(),
	})
	if err != nil {
		return err
	}
	return enc.Close()
}
