// Copyright (c) 2025, The NetCube Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/core/base/iox/jsonx"
	"cogentcore.org/core/base/iox/yamlx"
)

// Position is a layout coordinate in arbitrary units.
type Position struct {
	X float32 `json:"x" yaml:"x"`
	Y float32 `json:"y" yaml:"y"`
}

// Dataset is the file form of a network cube's input.
type Dataset struct {

	// Records are the data items.
	Records []*Record `json:"records" yaml:"records"`

	// Positions are optional precomputed layout positions keyed by record id.
	// A [Store] computes a force-directed layout when there are none.
	Positions map[string]Position `json:"positions,omitempty" yaml:"positions,omitempty"`
}

// Format is a dataset file format.
type Format int32

const (
	JSON Format = iota
	YAML
)

// FormatFromFilename returns the format for a file extension:
// .yaml and .yml are YAML, anything else JSON.
func FormatFromFilename(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return JSON
	}
}

// Read decodes a dataset in the given format.
func Read(r io.Reader, format Format) (*Dataset, error) {
	ds := &Dataset{}
	var err error
	switch format {
	case YAML:
		err = yamlx.Read(ds, r)
	default:
		err = jsonx.Read(ds, r)
	}
	if err != nil {
		return nil, err
	}
	return ds, ds.Validate()
}

// Open reads the dataset in filename, choosing the format by extension.
func Open(filename string) (*Dataset, error) {
	ds := &Dataset{}
	var err error
	switch FormatFromFilename(filename) {
	case YAML:
		err = yamlx.Open(ds, filename)
	default:
		err = jsonx.Open(ds, filename)
	}
	if err == nil {
		err = ds.Validate()
	}
	if err != nil {
		return nil, fmt.Errorf("data.Open %s: %w", filename, err)
	}
	return ds, nil
}

// Write encodes the dataset in the given format.
func (ds *Dataset) Write(w io.Writer, format Format) error {
	switch format {
	case YAML:
		return yamlx.Write(ds, w)
	default:
		return jsonx.WriteIndent(ds, w)
	}
}

// Save writes the dataset to filename, choosing the format by extension.
func (ds *Dataset) Save(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	err = ds.Write(f, FormatFromFilename(filename))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("data.Save %s: %w", filename, err)
	}
	return nil
}

// Validate checks that every record has a unique non-empty id and a date.
func (ds *Dataset) Validate() error {
	seen := make(map[string]bool, len(ds.Records))
	for i, r := range ds.Records {
		switch {
		case r == nil:
			return fmt.Errorf("record %d is empty", i)
		case r.ID == "":
			return fmt.Errorf("record %d has no id", i)
		case seen[r.ID]:
			return fmt.Errorf("duplicate record id %q", r.ID)
		case r.DateTime.IsZero():
			return fmt.Errorf("record %q has no date_time", r.ID)
		}
		seen[r.ID] = true
	}
	return nil
}
