// Command schema-gen writes the versioned JSON Schema document that
// .please/config.yml files reference through the yaml-language-server
// directive. Intended to run from the repository root before publishing.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pleaselabs/please/internal/schema"
)

const filePerms = 0o644

func main() {
	outDir := flag.String("dir", "schema", "output directory")
	flag.Parse()

	if err := run(*outDir); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(outDir string) error {
	data, err := schema.GenerateJSON(true)
	if err != nil {
		return err
	}

	outPath := filepath.Join(filepath.Clean(outDir), schema.Filename())

	//nolint:gosec // dev tool, outDir from CLI flag
	if err := os.WriteFile(outPath, data, filePerms); err != nil {
		return err
	}

	fmt.Println(outPath)

	return nil
}
