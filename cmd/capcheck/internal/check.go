package internal

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goplus/capcheck/cfg"
	"github.com/goplus/capcheck/internal/engine"
	"github.com/goplus/capcheck/internal/env"
	"github.com/goplus/capcheck/manifest"
	"github.com/goplus/capcheck/toolchain"
	"github.com/goplus/capcheck/x/cargo"
	"github.com/goplus/capcheck/x/cmake"
	"github.com/goplus/capcheck/x/gotags"
)

var (
	checkManifest  string
	checkSection   string
	checkTarget    string
	checkCompiler  string
	checkToolchain string
	checkFormat    string
	checkPrefix    string
	checkCfg       bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Print directives for the supported capabilities",
	Long: `Check reads the manifest, identifies the toolchain and target and prints one
directive per enabled capability. It is meant to run from a build script:
the target, compiler and manifest directory default to the values cargo
passes in the environment.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	flags := checkCmd.Flags()
	flags.StringVarP(&checkManifest, "manifest", "m", "", "Manifest file (default $CARGO_MANIFEST_DIR/Cargo.toml)")
	flags.StringVar(&checkSection, "section", "", "Dotted path of the capability section")
	flags.StringVarP(&checkTarget, "target", "t", "", "Target triple (default $TARGET, then the toolchain host)")
	flags.StringVar(&checkCompiler, "compiler", "", "Compiler to probe (default $RUSTC, $CARGO_BUILD_RUSTC, rustc)")
	flags.StringVar(&checkToolchain, "toolchain", "", "Use this release instead of probing, e.g. 1.80.0-nightly")
	flags.StringVarP(&checkFormat, "format", "f", "cargo", "Directive format: cargo, cmake or gotags")
	flags.StringVar(&checkPrefix, "prefix", "", "Prefix of emitted flag names")
	flags.BoolVar(&checkCfg, "check-cfg", false, "Also declare every flag the manifest can emit")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	defer logger.Sync()

	path := checkManifest
	if path == "" {
		p, err := env.ManifestPath()
		if err != nil {
			return err
		}
		path = p
	}
	m, err := manifest.ReadFile(path, nil, manifest.Options{Section: checkSection})
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	e := engine.NewEngine(engine.WithLogger(logger))

	compiler := checkCompiler
	if compiler == "" {
		compiler = env.Compiler()
	}
	tc, err := e.Toolchain(commandContext(cmd), checkToolchain, toolchain.NewProber(compiler))
	if err != nil {
		return err
	}

	target := resolveTarget(checkTarget, tc, logger)
	res, err := e.Exec(&engine.Task{Manifest: m, Target: target, Toolchain: tc})
	if err != nil {
		return err
	}
	if len(res.Applicable) == 0 {
		logger.Warn("manifest declares no capability for target", zap.String("target", target), zap.String("manifest", path))
	}
	return emit(cmd.OutOrStdout(), checkFormat, res, m, path)
}

// resolveTarget picks the target triple: the flag, then $TARGET, then the
// host reported by the toolchain, then the host this binary runs on.
func resolveTarget(flag string, tc *toolchain.Descriptor, logger *zap.Logger) string {
	if flag != "" {
		return flag
	}
	if t := env.Target(); t != "" {
		return t
	}
	target := tc.Host()
	if target == "" {
		target, _ = cfg.HostTriple()
	}
	logger.Info("no target given, using host", zap.String("target", target))
	return target
}

func emit(w io.Writer, format string, res *engine.Result, m *manifest.Manifest, path string) error {
	enabled := res.Enabled
	switch format {
	case "cargo":
		c := cargo.New(checkPrefix)
		c.RerunIfChanged(path)
		if checkCfg {
			c.CheckCfg(m.Declared(checkPrefix)...)
		}
		return c.Emit(w, enabled)
	case "cmake":
		c := cmake.New(checkPrefix)
		c.Define("CAPCHECK_TARGET", res.Target)
		c.Define("CAPCHECK_TOOLCHAIN", res.Toolchain.String())
		if checkCfg {
			c.Declare(m.Declared(checkPrefix)...)
		}
		return c.Emit(w, enabled)
	case "gotags":
		return gotags.Emit(w, enabled, checkPrefix)
	}
	return fmt.Errorf("unknown format %q", format)
}
