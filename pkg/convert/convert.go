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
package convert

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/cnfood/cn-food-mcp/pkg/food"
	"github.com/cnfood/cn-food-mcp/pkg/nutrient"
)

// Supported source encodings.
const (
	EncodingUTF8    = "utf-8"
	EncodingGB18030 = "gb18030"
)

var (
	codeSuffix    = regexp.MustCompile(`,\s*[A-Z]\d+.*$`)
	leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
)

// Options controls a conversion.
type Options struct {
	// Encoding of the source, EncodingUTF8 when empty.
	Encoding string
	// SpotCheck names a record to log after conversion.
	SpotCheck string
}

// SupportedEncodings returns the accepted Options.Encoding values.
func SupportedEncodings() []string {
	return []string{EncodingUTF8, EncodingGB18030}
}

func decoderFor(name string) (*encoding.Decoder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", EncodingUTF8, "utf8":
		return unicode.UTF8.NewDecoder(), nil
	case EncodingGB18030, "gbk", "gb2312":
		return simplifiedchinese.GB18030.NewDecoder(), nil
	default:
		return nil, fmt.Errorf("unsupported encoding %q, supported: %s",
			name, strings.Join(SupportedEncodings(), ", "))
	}
}

// Convert reads the CSV table from r.
func Convert(r io.Reader, opts Options) ([]food.Record, error) {
	dec, err := decoderFor(opts.Encoding)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(transform.NewReader(r, unicode.BOMOverride(dec)))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	fields := nutrient.Fields()
	records := make([]food.Record, 0)
	header := true
	line := 0

	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv: %w", err)
		}
		line++
		if header {
			header = false
			continue
		}
		if isBlank(row) {
			continue
		}

		name := cleanName(cell(row, 0))
		if name == "" {
			slog.Warn("skipping row without a name", "row", line)
			continue
		}

		rec := food.Record{ID: len(records) + 1, Name: name}
		for i, f := range fields {
			rec.Set(f, ParseValue(cell(row, i+1)))
		}
		records = append(records, rec)
	}

	if opts.SpotCheck != "" {
		spotCheck(records, opts.SpotCheck)
	}
	return records, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// cleanName strips a trailing classification code.
func cleanName(raw string) string {
	return strings.TrimSpace(codeSuffix.ReplaceAllString(strings.TrimSpace(raw), ""))
}

// ParseValue reads the leading decimal number of raw. Cells without one
// are not-available.
func ParseValue(raw string) food.Value {
	m := leadingNumber.FindString(strings.TrimSpace(raw))
	if m == "" {
		return food.None()
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return food.None()
	}
	return food.Some(v)
}

func spotCheck(records []food.Record, name string) {
	for i := range records {
		if records[i].Name == name {
			slog.Info("spot check",
				"name", name,
				"id", records[i].ID,
				"energy", records[i].Energy.String(),
				"protein", records[i].Protein.String(),
				"fat", records[i].Fat.String(),
				"carbohydrate", records[i].Carbohydrate.String(),
			)
			return
		}
	}
	slog.Warn("spot check record not found", "name", name)
}
