// Copyright (c) 2025, The NetCube Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package data provides the records shown by a network cube and a
// [Store] that loads them and derives time buckets, color scales and
// layout positions.
package data

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Record is one time-stamped, categorized data item.
type Record struct {

	// ID uniquely identifies the record.
	ID string `json:"id" yaml:"id"`

	// Category is the primary category of the record.
	Category string `json:"category_1" yaml:"category_1"`

	// DateTime is when the record happened.
	DateTime time.Time `json:"date_time" yaml:"date_time"`

	// TargetNodes lists the ids of related records, most related first.
	TargetNodes []string `json:"target_nodes" yaml:"target_nodes"`

	// Description is free text shown in tooltips.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// rawRecord is the file form of a Record, with a free-form date.
type rawRecord struct {
	ID          string   `json:"id" yaml:"id"`
	Category    string   `json:"category_1" yaml:"category_1"`
	DateTime    string   `json:"date_time" yaml:"date_time"`
	TargetNodes []string `json:"target_nodes" yaml:"target_nodes"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
}

func (rr *rawRecord) record() (Record, error) {
	t, err := ParseTime(rr.DateTime)
	if err != nil {
		return Record{}, fmt.Errorf("record %q: %w", rr.ID, err)
	}
	return Record{ID: rr.ID, Category: rr.Category, DateTime: t, TargetNodes: rr.TargetNodes, Description: rr.Description}, nil
}

func (r Record) raw() rawRecord {
	return rawRecord{ID: r.ID, Category: r.Category, DateTime: r.DateTime.Format(time.RFC3339Nano), TargetNodes: r.TargetNodes, Description: r.Description}
}

func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.raw())
}

func (r Record) MarshalYAML() (any, error) {
	return r.raw(), nil
}

func (r *Record) UnmarshalJSON(b []byte) error {
	var rr rawRecord
	if err := json.Unmarshal(b, &rr); err != nil {
		return err
	}
	rec, err := rr.record()
	if err != nil {
		return err
	}
	*r = rec
	return nil
}

func (r *Record) UnmarshalYAML(value *yaml.Node) error {
	var rr rawRecord
	if err := value.Decode(&rr); err != nil {
		return err
	}
	rec, err := rr.record()
	if err != nil {
		return err
	}
	*r = rec
	return nil
}

// timeLayouts are the accepted date_time formats, most specific first.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006-01",
	"2006",
}

// ParseTime parses a date in one of the accepted layouts. Times without
// a zone are UTC.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date_time")
	}
	for _, l := range timeLayouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date_time %q", s)
}
