// Copyright (c) 2025, The cn-food-mcp Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package food

import (
	"fmt"
	"iter"
	"strings"
)

// Dataset is an ordered, immutable collection of records indexed by id.
// It is safe for concurrent readers.
type Dataset struct {
	records []Record
	byID    map[int]int
}

// NewDataset validates records and builds the id index. Records with a zero
// id are assigned their 1-based position; any other id must equal it.
// The input slice is copied.
func NewDataset(records []Record) (*Dataset, error) {
	ds := &Dataset{
		records: make([]Record, len(records)),
		byID:    make(map[int]int, len(records)),
	}
	copy(ds.records, records)

	for i := range ds.records {
		rec := &ds.records[i]
		want := i + 1
		if rec.ID == 0 {
			rec.ID = want
		}
		if rec.ID != want {
			return nil, fmt.Errorf("record at position %d has id %d, want %d", want, rec.ID, want)
		}
		if strings.TrimSpace(rec.Name) == "" {
			return nil, fmt.Errorf("record %d has an empty name", rec.ID)
		}
		ds.byID[rec.ID] = i
	}
	return ds, nil
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// At returns the record at position i in load order.
func (d *Dataset) At(i int) *Record {
	return &d.records[i]
}

// ByID returns the record with the given id.
func (d *Dataset) ByID(id int) (*Record, bool) {
	i, ok := d.byID[id]
	if !ok {
		return nil, false
	}
	return &d.records[i], true
}

// All iterates over records in load order.
func (d *Dataset) All() iter.Seq2[int, *Record] {
	return func(yield func(int, *Record) bool) {
		for i := range d.records {
			if !yield(i, &d.records[i]) {
				return
			}
		}
	}
}
