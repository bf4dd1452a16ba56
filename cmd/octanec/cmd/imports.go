package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/octanelang/octanec/internal/loader"
)

var importsRegistryPath string

var importsCmd = &cobra.Command{
	Use:   "imports",
	Short: "Inspect and edit the import registry (imports.json)",
}

var importsAddCmd = &cobra.Command{
	Use:   "add <Namespace.Name> <header-file>",
	Short: "Map an imported namespace to its #include header",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		reg, err := loader.LoadImportRegistry(importsRegistryPath)
		if err != nil {
			return fmt.Errorf("loading import registry %s: %w", importsRegistryPath, err)
		}
		if err := reg.Add(args[0], args[1]); err != nil {
			return fmt.Errorf("writing import registry %s: %w", importsRegistryPath, err)
		}
		if verbose {
			fmt.Printf("%s -> %s\n", args[0], args[1])
		}
		return nil
	},
}

var importsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every registered namespace -> header mapping",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		reg, err := loader.LoadImportRegistry(importsRegistryPath)
		if err != nil {
			return fmt.Errorf("loading import registry %s: %w", importsRegistryPath, err)
		}
		entries := reg.List()
		keys := make([]string, 0, len(entries))
		for k := range entries {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("%s -> %s\n", k, entries[k])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importsCmd)
	importsCmd.AddCommand(importsAddCmd)
	importsCmd.AddCommand(importsListCmd)

	importsCmd.PersistentFlags().StringVarP(&importsRegistryPath, "file", "f", "imports.json", "import registry path")
}
