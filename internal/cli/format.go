package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-prop-config/internal/config"
	"github.com/MKhiriev/go-prop-config/models"
	"github.com/magiconair/properties"
	"gopkg.in/yaml.v3"
)

// writeEntries renders entries to w in format, keeping their order.
func writeEntries(w io.Writer, format, description string, entries []models.RawEntry) error {
	switch strings.ToLower(format) {
	case config.FormatProperties, "":
		return writeProperties(w, description, entries)
	case config.FormatJSON:
		return writeJSON(w, entries)
	case config.FormatYAML:
		return writeYAML(w, entries)
	default:
		return fmt.Errorf("%w: unknown format %q", config.ErrInvalidOutputConfigs, format)
	}
}

func writeProperties(w io.Writer, description string, entries []models.RawEntry) error {
	p := properties.NewProperties()
	p.DisableExpansion = true
	for _, e := range entries {
		if _, _, err := p.Set(e.Key, e.Value); err != nil {
			return fmt.Errorf("error rendering property %q: %w", e.Key, err)
		}
	}

	if description != "" {
		if _, err := fmt.Fprintf(w, "# %s\n", description); err != nil {
			return err
		}
	}
	_, err := p.Write(w, properties.UTF8)
	return err
}

// writeJSON writes a single object whose members follow entry order.
func writeJSON(w io.Writer, entries []models.RawEntry) error {
	bw := bufio.NewWriter(w)

	bw.WriteString("{")
	for i, e := range entries {
		k, err := json.Marshal(e.Key)
		if err != nil {
			return err
		}
		v, err := json.Marshal(e.Value)
		if err != nil {
			return err
		}

		if i > 0 {
			bw.WriteString(",")
		}
		bw.WriteString("\n  ")
		bw.Write(k)
		bw.WriteString(": ")
		bw.Write(v)
	}
	if len(entries) > 0 {
		bw.WriteString("\n")
	}
	bw.WriteString("}\n")

	return bw.Flush()
}

func writeYAML(w io.Writer, entries []models.RawEntry) error {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range entries {
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Value},
		)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("error encoding yaml: %w", err)
	}
	return enc.Close()
}
