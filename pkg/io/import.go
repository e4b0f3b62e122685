package io

import (
	"encoding/json"
	"io"
	"os"

	apperrors "github.com/matzehuels/mondrian/pkg/errors"
)

// ReadJSON decodes a manifest from r.
//
// Only the fields needed to repaint are checked: the size must be within
// bounds, and a manifest without a seed is rejected because it cannot
// reproduce its image. Leaves are informational and not validated.
func ReadJSON(r io.Reader) (*Manifest, error) {
	var m Manifest
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "decode manifest")
	}
	if m.Seed == 0 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidInput, "manifest has no seed")
	}
	if err := apperrors.ValidateDimensions(m.Width, m.Height); err != nil {
		return nil, err
	}
	for _, h := range m.Palette {
		if err := apperrors.ValidateHexColor(h); err != nil {
			return nil, err
		}
	}
	return &m, nil
}

// ImportJSON reads the manifest file at path.
func ImportJSON(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}
