package internal

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goplus/capcheck/manifest"
)

const defaultInitFile = "capcheck.yaml"

var initCmd = &cobra.Command{
	Use:   "init [file]",
	Short: "Write a starter capability manifest",
	Long:  `Init creates a YAML capability manifest, capcheck.yaml unless a file is given.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func starterManifest() map[string]any {
	return map[string]any{
		manifest.DefaultYAMLSection: map[string]any{
			"example": map[string]string{
				"version":         ">=1.70",
				"nightly_version": ">=1.70",
			},
			"cfg(unix)": map[string]any{
				"example_unix": map[string]string{"version": ">=1.74"},
			},
		},
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	path := defaultInitFile
	if len(args) == 1 {
		path = args[0]
	}
	if f, _ := manifest.FormatOf(path); f != manifest.YAML {
		return fmt.Errorf("%s: init only writes YAML manifests", path)
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	data, err := yaml.Marshal(starterManifest())
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized %s\n", path)
	return nil
}
