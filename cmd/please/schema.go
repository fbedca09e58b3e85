package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/pleaselabs/please/internal/schema"
)

var (
	schemaOutput  string
	schemaCompact bool
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate JSON Schema for the configuration",
	Long: `Generate a JSON Schema (Draft-07) for the .please/config.yml format.

The schema is derived from the Go config types and includes type constraints,
enum values, and defaults for all configuration options.

Examples:
  please schema                           # Print to stdout
  please schema --output schema.json      # Write to file
  please schema --compact                 # Compact output`,
	RunE: runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)

	schemaCmd.Flags().StringVarP(
		&schemaOutput,
		"output", "o",
		"",
		"Write schema to file instead of stdout",
	)

	schemaCmd.Flags().BoolVar(
		&schemaCompact,
		"compact",
		false,
		"Output compact JSON without indentation",
	)
}

func runSchema(_ *cobra.Command, _ []string) error {
	data, err := schema.GenerateJSON(!schemaCompact)
	if err != nil {
		return errors.Wrap(err, "generating schema")
	}

	if schemaOutput != "" {
		const filePerms = 0o644

		if writeErr := os.WriteFile(schemaOutput, data, filePerms); writeErr != nil {
			return errors.Wrap(writeErr, "writing schema file")
		}

		fmt.Printf("Schema written to %s\n", schemaOutput)

		return nil
	}

	fmt.Print(string(data))

	return nil
}
