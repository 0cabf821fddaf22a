package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the root command for pkgalign.
var rootCmd = &cobra.Command{
	Use:     "pkgalign",
	Version: "dev",
	Short:   "Align source files with their declared packages",
	Long: `pkgalign moves source files into the directory matching the package
they declare, without ever editing file contents.

Planning runs first: every file is parsed, its canonical directory is
resolved, and the whole move set is checked for conflicts. Moves execute
only when planning found zero problems.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// SetVersion overrides the version shown by --version and the version
// command.
func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func init() {
	rootCmd.AddCommand(alignCmd)

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the pkgalign CLI version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(os.Stdout, rootCmd.Version)
		},
	}
	rootCmd.AddCommand(versionCmd)
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
