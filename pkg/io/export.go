package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Manifest describes one generated image.
type Manifest struct {
	ID      string   `json:"id,omitempty"`
	Mode    string   `json:"mode,omitempty"`
	Seed    uint64   `json:"seed,omitempty"`
	Width   int      `json:"width"`
	Height  int      `json:"height"`
	Palette []string `json:"palette,omitempty"`
	Splits  int      `json:"splits,omitempty"`
	Fills   int      `json:"fills,omitempty"`
	Depth   int      `json:"depth"`
	Regions int      `json:"regions"`
	Leaves  []Region `json:"leaves"`
}

// Region is a visible terminal region with inclusive bounds.
type Region struct {
	X0 int `json:"x0"`
	X1 int `json:"x1"`
	Y0 int `json:"y0"`
	Y1 int `json:"y1"`
}

// WriteJSON encodes m as indented JSON and writes it to w.
func WriteJSON(m *Manifest, w io.Writer) error {
	if m.Leaves == nil {
		m.Leaves = []Region{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes m to a JSON file at path.
func ExportJSON(m *Manifest, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(m, f)
}
