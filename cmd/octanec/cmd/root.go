// Package cmd wires the core (internal/loader, internal/resolve,
// internal/codegen/*, internal/driver) to a cobra CLI, in the shape of
// the teacher's own cmd/dwscript/cmd package: a package-level rootCmd,
// one file per subcommand, flags bound via closures over package-level
// vars rather than threaded through context.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "octanec",
	Short: "Octane-to-C code generator",
	Long: `octanec lowers a bound Octane program (classes, structs, enums,
and their method bodies) to a tree of GObject-style portable C: one
.c/.h pair per source file, with virtual dispatch through class tables,
properties through a get/set dispatcher, and GType registration for
every class.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
