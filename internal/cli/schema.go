package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// resultSchema describes the output of "reqline parse --format json".
const resultSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "reqline parse results",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["input", "ok"],
    "properties": {
      "input": {"type": "string"},
      "ok": {"type": "boolean"},
      "request": {
        "type": "object",
        "required": ["method", "url", "protocol", "version"],
        "properties": {
          "method": {"type": "string", "enum": ["GET", "POST"]},
          "url": {"type": "string"},
          "protocol": {"type": "string"},
          "version": {"type": "number"}
        },
        "additionalProperties": false
      },
      "error": {
        "type": "object",
        "required": ["stage", "kind", "position", "fragment", "message"],
        "properties": {
          "stage": {"type": "string", "enum": ["method", "target", "protocol", "version"]},
          "kind": {"type": "string"},
          "position": {"type": "integer", "minimum": 0},
          "fragment": {"type": "string"},
          "message": {"type": "string"}
        },
        "additionalProperties": false
      },
      "trace": {"type": "array", "items": {"type": "string"}}
    },
    "additionalProperties": false
  }
}
`

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the parse command's JSON output",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), resultSchema)
		},
	}
}
