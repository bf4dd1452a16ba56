package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/octanelang/octanec/internal/driver"
	"github.com/octanelang/octanec/internal/ir"
	"github.com/octanelang/octanec/internal/loader"
)

var (
	manifestPath string
	registryPath string
	outputDir    string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate .c/.h pairs from an octane.yaml project manifest",
	Long: `generate reads a project manifest naming a set of bound program
documents, resolves every type reference and base class across them,
and runs the Declaration Emitter and Dependency Resolver over each to
produce one .c/.h pair per source file.`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&manifestPath, "manifest", "m", "octane.yaml", "project manifest path")
	generateCmd.Flags().StringVarP(&registryPath, "imports", "i", "", "import registry path (default: imports.json next to the manifest)")
	generateCmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory (default: manifest's outputDir)")
}

func runGenerate(_ *cobra.Command, _ []string) error {
	manifest, err := loader.LoadManifest(manifestPath)
	if err != nil {
		return fmt.Errorf("loading manifest %s: %w", manifestPath, err)
	}

	manifestDir := filepath.Dir(manifestPath)
	if registryPath == "" {
		registryPath = filepath.Join(manifestDir, "imports.json")
	}
	registry, err := loader.LoadImportRegistry(registryPath)
	if err != nil {
		return fmt.Errorf("loading import registry %s: %w", registryPath, err)
	}

	dir := outputDir
	if dir == "" {
		dir = manifest.OutputDir
	}
	if dir == "" {
		dir = "."
	}

	ctx := &ir.Context{Root: ir.NewRootNamespace()}
	var hints []*loader.Hints
	for _, rel := range manifest.SourceFiles {
		path := filepath.Join(manifestDir, rel)
		sf, h, err := loader.LoadProgram(path)
		if err != nil {
			return fmt.Errorf("loading %s: %w", path, err)
		}
		ctx.SourceFiles = append(ctx.SourceFiles, sf)
		hints = append(hints, h)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "wiring %d source file(s)\n", len(ctx.SourceFiles))
	}
	if err := loader.Wire(ctx, hints); err != nil {
		return fmt.Errorf("wiring program: %w", err)
	}

	d := driver.New(dir, registry)
	return d.Run(ctx)
}
