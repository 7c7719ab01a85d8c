package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/quadcraft/ivm/internal/quadray"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func validateFormat(format string) error {
	switch format {
	case formatText, formatJSON, formatYAML:
		return nil
	}
	return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
}

// render writes v as JSON or YAML, or calls text for the human form.
func render(w io.Writer, format string, v any, text func(w io.Writer) error) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return text(w)
	}
}

// parseQuadray parses "a,b,c,d" with real-valued components.
func parseQuadray(s string) (quadray.Quadray, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return quadray.Quadray{}, fmt.Errorf("parse point %q: want 4 components, got %d", s, len(parts))
	}

	var vals [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return quadray.Quadray{}, fmt.Errorf("parse point %q: component %d: %w", s, i, err)
		}
		vals[i] = f
	}
	return quadray.New(vals[0], vals[1], vals[2], vals[3]), nil
}

func parseQuadrays(args []string) ([]quadray.Quadray, error) {
	out := make([]quadray.Quadray, 0, len(args))
	for _, a := range args {
		q, err := parseQuadray(a)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, nil
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, 0, len(args))
	for _, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("parse number %q: %w", a, err)
		}
		out = append(out, f)
	}
	return out, nil
}
