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
package nutrient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseField(t *testing.T) {
	tests := []struct {
		input   string
		want    Field
		wantErr bool
	}{
		{"protein", Protein, false},
		{" selenium ", Selenium, false},
		{"retinol_equivalent", RetinolEquivalent, false},
		{"Protein", "", true},
		{"sugar", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseField(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFieldsCanonicalOrder(t *testing.T) {
	fields := Fields()
	require.Len(t, fields, Count)
	assert.Equal(t, Energy, fields[0])
	assert.Equal(t, Selenium, fields[Count-1])

	for i, f := range fields {
		assert.Equal(t, i, f.Index())
		assert.True(t, f.IsValid())
	}

	// Returned slices are copies.
	fields[0] = "mutated"
	assert.Equal(t, Energy, Fields()[0])
}

func TestSupportedFieldsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range SupportedFields() {
		assert.False(t, seen[s], "duplicate field %s", s)
		seen[s] = true
	}
	assert.Len(t, seen, Count)
}

func TestFieldIndexUnknown(t *testing.T) {
	assert.Equal(t, -1, Field("sugar").Index())
	assert.False(t, Field("sugar").IsValid())
}
