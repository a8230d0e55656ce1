package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/galogen/internal/config"
	"github.com/google/galogen/internal/emitter"
	"github.com/google/galogen/internal/target"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	flagAPI       string
	flagVersion   string
	flagProfile   string
	flagExts      string
	flagFilename  string
	flagGenerator string
	flagTarget    string
)

var rootCmd = &cobra.Command{
	Use:   "galogen <registry-file>",
	Short: "Generate OpenGL loader code from the Khronos XML registry",
	Long: `Galogen generates a header, as well as code to load OpenGL entry points,
for the exact API version, profile, and extensions that you specify.

Example:
  galogen gl.xml --api gl --ver 4.5 --profile core --filename gl`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runGenerate,
}

func init() {
	rootCmd.Flags().StringVar(&flagAPI, "api", "", `API name: gl, gles1, gles2, or glsc2 (default "gl")`)
	rootCmd.Flags().StringVar(&flagVersion, "ver", "", "Target API version, e.g. 4.5 (default depends on --api)")
	rootCmd.Flags().StringVar(&flagProfile, "profile", "", `API profile: core or compatibility (default "compatibility")`)
	rootCmd.Flags().StringVar(&flagExts, "exts", "", "Comma-separated extension names, without the GL_ prefix")
	rootCmd.Flags().StringVar(&flagFilename, "filename", "", `Base name for the generated files (default "gl")`)
	rootCmd.Flags().StringVar(&flagGenerator, "generator", "", `Output generator (default "`+emitter.DefaultGenerator+`")`)
	rootCmd.Flags().StringVar(&flagTarget, "target", "", "Path to a YAML target file pinning the generation settings")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}
	registryPath := args[0]
	if strings.HasPrefix(registryPath, "--") {
		fmt.Fprintf(os.Stderr,
			"WARNING: first argument %q looks suspicious. Did you forget to specify a path to the XML registry file?\n",
			registryPath)
	}

	config.Load()

	tgt := &target.Target{}
	if flagTarget != "" {
		var err error
		tgt, err = target.ParseFile(flagTarget)
		if err != nil {
			return err
		}
	}

	opts, err := buildOptions(flagValues{
		api:       flagAPI,
		version:   flagVersion,
		profile:   flagProfile,
		exts:      flagExts,
		filename:  flagFilename,
		generator: flagGenerator,
	}, tgt, config.Get)
	if err != nil {
		return err
	}

	return generate(registryPath, opts, cmd.OutOrStdout(), os.Stderr)
}
