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
package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/cnfood/cn-food-mcp/pkg/convert"
)

func convertCmd() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "Convert the published CSV table into dataset JSON",
		ArgsUsage: "[CSV]",
		Description: `Reads the nutrition CSV (path or http(s) URL), drops the header row,
strips classification codes from names and writes a compact JSON array
loadable with --data.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "Source CSV path or URL",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Destination JSON path (default: stdout)",
			},
			&cli.StringFlag{
				Name:  "encoding",
				Value: convert.EncodingUTF8,
				Usage: fmt.Sprintf("Source encoding (supported values: %s)",
					strings.Join(convert.SupportedEncodings(), ", ")),
			},
			&cli.StringFlag{
				Name:  "spot-check",
				Value: "鸡蛋",
				Usage: "Log the converted values of this food name",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			src := cmd.String("input")
			if src == "" {
				src = cmd.Args().First()
			}
			if src == "" {
				return errors.New("an input CSV is required (--input or first argument)")
			}

			_, err := convert.ConvertFile(ctx, src, cmd.String("output"), convert.Options{
				Encoding:  cmd.String("encoding"),
				SpotCheck: cmd.String("spot-check"),
			})
			return err
		},
	}
}
