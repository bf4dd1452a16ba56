// Package loader hydrates the front-end-adjacent input the core needs
// but does not itself produce (SPEC_FULL.md §2.1, §3, §6): a project
// manifest naming the source files to process, and per-source-file
// program documents describing their namespace/class/method trees. This
// stands in for the out-of-scope lexer/parser/binder so the core can be
// exercised end-to-end from a CLI invocation.
package loader

import (
	"os"

	"github.com/goccy/go-yaml"
)

// Manifest is the decoded shape of octane.yaml (SPEC_FULL.md §6).
type Manifest struct {
	SourceFiles []string `yaml:"sourceFiles" json:"sourceFiles"`
	OutputDir   string   `yaml:"outputDir" json:"outputDir"`
}

// LoadManifest reads and decodes a project manifest from path.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
