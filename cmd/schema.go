// Package cmd implements the command-line interface for tubescribe.
package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"
	"github.com/tubescribe-cli/tubescribe/batch"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
}

// schemaCmd generates the JSON schema for batch report outputs.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema for batch report outputs",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "report", "item":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		schema := reflector.Reflect(&batch.Report{})
		handleErr(json.NewEncoder(os.Stdout).Encode(schema))
	},
}
