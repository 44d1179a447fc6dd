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
	"bytes"
	"context"
	_ "embed"
	"io"
	"log/slog"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/cnfood/cn-food-mcp/pkg/defaults"
	cnerrors "github.com/cnfood/cn-food-mcp/pkg/errors"
	"github.com/cnfood/cn-food-mcp/pkg/serializer"
)

// EmbeddedSource names the compiled-in sample dataset in logs and errors.
const EmbeddedSource = "embedded"

//go:embed data/foods.json
var embeddedFoods []byte

// Load decodes a record collection in the given format and builds a Dataset.
// A leading UTF-8 byte order mark is ignored.
func Load(r io.Reader, format serializer.Format) (*Dataset, error) {
	limited := io.LimitReader(r, defaults.DatasetMaxBytes)
	decoded := transform.NewReader(limited, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	reader, err := serializer.NewReader(format, decoded)
	if err != nil {
		return nil, cnerrors.Wrap(cnerrors.ErrCodeInvalidRequest, "unsupported dataset format", err)
	}

	var records []Record
	if err := reader.Deserialize(&records); err != nil {
		return nil, cnerrors.Wrap(cnerrors.ErrCodeInternal, "failed to decode dataset", err)
	}
	if len(records) == 0 {
		return nil, cnerrors.New(cnerrors.ErrCodeInternal, "dataset is empty")
	}

	ds, err := NewDataset(records)
	if err != nil {
		return nil, cnerrors.Wrap(cnerrors.ErrCodeInternal, "invalid dataset", err)
	}
	return ds, nil
}

// LoadFile loads a dataset from a local path or an http(s) URL. The format
// is inferred from the extension.
func LoadFile(ctx context.Context, path string) (*Dataset, error) {
	format := serializer.FormatFromPath(path)

	reader, err := serializer.NewFileReaderWithContext(ctx, format, path)
	if err != nil {
		return nil, cnerrors.WrapWithContext(cnerrors.ErrCodeInternal, "failed to open dataset", err,
			map[string]any{"path": path})
	}
	defer func() {
		if closeErr := reader.Close(); closeErr != nil {
			slog.Warn("failed to close dataset source", "path", path, "error", closeErr)
		}
	}()

	ds, err := Load(reader.Input(), format)
	if err != nil {
		return nil, cnerrors.WrapWithContext(cnerrors.CodeOf(err), "failed to load dataset", err,
			map[string]any{"path": path})
	}
	return ds, nil
}

// LoadEmbedded loads the sample dataset compiled into the binary.
func LoadEmbedded() (*Dataset, error) {
	return Load(bytes.NewReader(embeddedFoods), serializer.FormatJSON)
}

// Open loads the dataset at path, or the embedded sample when path is empty.
// The load is bounded by defaults.DatasetLoadTimeout.
func Open(ctx context.Context, path string) (*Dataset, error) {
	path = strings.TrimSpace(path)
	source := path
	if source == "" {
		source = EmbeddedSource
	}

	ctx, cancel := context.WithTimeout(ctx, defaults.DatasetLoadTimeout)
	defer cancel()

	var (
		ds  *Dataset
		err error
	)
	if path == "" {
		ds, err = LoadEmbedded()
	} else {
		ds, err = LoadFile(ctx, path)
	}
	if err != nil {
		return nil, err
	}

	slog.Info("dataset loaded", "source", source, "records", ds.Len())
	return ds, nil
}
