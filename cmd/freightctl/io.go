package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"
)

// readInput reads a file, or stdin when path is "-" or empty.
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// decodeInput decodes JSON or YAML into out. YAML documents are converted to
// JSON first so the json tags and custom unmarshalers apply.
func decodeInput(data []byte, out any) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("empty input")
	}

	if trimmed[0] != '{' && trimmed[0] != '[' {
		var doc any
		if err := yaml.Unmarshal(trimmed, &doc); err != nil {
			return fmt.Errorf("failed to parse YAML: %w", err)
		}
		converted, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to convert YAML: %w", err)
		}
		trimmed = converted
	}

	if err := json.Unmarshal(trimmed, out); err != nil {
		return fmt.Errorf("failed to parse input: %w", err)
	}
	return nil
}

// load reads and decodes one input.
func load(cmd *cobra.Command, path string, out any) error {
	data, err := readInput(cmd, path)
	if err != nil {
		return err
	}
	return decodeInput(data, out)
}

// render writes v in the selected format.
func render(cmd *cobra.Command, opts *rootOptions, v any) error {
	w := cmd.OutOrStdout()

	if opts.output == outputYAML {
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		var doc any
		if err := json.Unmarshal(data, &doc); err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
