// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tutorial

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"
)

// Format selects the export encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Document is the on-disk form of the dictionary.
type Document struct {
	Count   int     `json:"count" yaml:"count"`
	Entries []Entry `json:"entries" yaml:"entries"`
}

// Export writes every entry to w in the requested format.
func Export(w io.Writer, format Format) error {
	doc := Document{Count: Count(), Entries: Entries()}

	var (
		data []byte
		err  error
	)
	switch format {
	case FormatYAML, "":
		data, err = yaml.Marshal(&doc)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
	case FormatJSON:
		data, err = json.MarshalIndent(&doc, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		data = append(data, '\n')
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	_, err = w.Write(data)
	return err
}

// Summary returns the line printed when the dictionary is loaded.
func Summary() string {
	lo, hi := Bounds()
	return fmt.Sprintf("Tutorial translation mappings created for %d entries (%d-%d)", Count(), lo, hi)
}
