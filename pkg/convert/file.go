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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cnfood/cn-food-mcp/pkg/food"
	"github.com/cnfood/cn-food-mcp/pkg/serializer"
)

// WriteJSON writes records as a compact JSON array followed by a newline.
func WriteJSON(w io.Writer, records []food.Record) error {
	if records == nil {
		records = []food.Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}
	return nil
}

// ConvertFile converts the CSV at src (a path or http(s) URL) and writes
// the JSON array to dst, or stdout when dst is empty or "-". It returns the
// number of records written.
func ConvertFile(ctx context.Context, src, dst string, opts Options) (int, error) {
	var in io.Reader
	if serializer.IsRemote(src) {
		body, err := serializer.NewHttpReader().ReadWithContext(ctx, src)
		if err != nil {
			return 0, fmt.Errorf("failed to download %s: %w", src, err)
		}
		in = bytes.NewReader(body)
	} else {
		f, err := os.Open(src)
		if err != nil {
			return 0, fmt.Errorf("failed to open %s: %w", src, err)
		}
		defer f.Close()
		in = f
	}

	records, err := Convert(in, opts)
	if err != nil {
		return 0, fmt.Errorf("failed to convert %s: %w", src, err)
	}

	// Validate the output the same way the loader will.
	if _, err := food.NewDataset(records); err != nil {
		return 0, fmt.Errorf("converted records are not loadable: %w", err)
	}

	var out io.Writer = os.Stdout
	if dst != "" && dst != "-" {
		f, err := os.Create(dst)
		if err != nil {
			return 0, fmt.Errorf("failed to create %s: %w", dst, err)
		}
		defer f.Close()
		out = f
	}

	if err := WriteJSON(out, records); err != nil {
		return 0, err
	}
	if f, ok := out.(*os.File); ok && f != os.Stdout {
		if err := f.Sync(); err != nil {
			return 0, fmt.Errorf("failed to flush %s: %w", dst, err)
		}
	}

	slog.Info("converted food table", "source", src, "output", dst, "records", len(records))
	return len(records), nil
}
