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
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/cnfood/cn-food-mcp/pkg/nutrient"
	"github.com/cnfood/cn-food-mcp/pkg/query"
)

// invoke runs a tool and writes its payload. Domain outcomes are written
// like any other result.
func invoke(ctx context.Context, cmd *cli.Command, toolName string, args map[string]any) error {
	f, err := newFacade(ctx, cmd)
	if err != nil {
		return err
	}

	res, err := f.Invoke(ctx, toolName, args)
	if err != nil {
		return fmt.Errorf("%s: %w", toolName, err)
	}
	return writeResult(ctx, cmd, res.Payload)
}

func parseIDs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, a := range args {
		for part := range strings.SplitSeq(a, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("invalid food id %q: %w", part, err)
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func nutrientsCmd() *cli.Command {
	return &cli.Command{
		Name:  "nutrients",
		Usage: "List the queryable nutrient fields with names and units",
		Flags: []cli.Flag{outputFlag(), formatFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return invoke(ctx, cmd, query.OpListNutrients, nil)
		},
	}
}

func searchCmd() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Search foods by name (case-insensitive substring, up to 20 results)",
		ArgsUsage: "QUERY",
		Flags:     []cli.Flag{outputFlag(), formatFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return invoke(ctx, cmd, query.OpSearch, map[string]any{
				"query": strings.Join(cmd.Args().Slice(), " "),
			})
		},
	}
}

func getCmd() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Show the full nutrient profile (per 100 g) of one food",
		ArgsUsage: "FOOD_ID",
		Flags:     []cli.Flag{outputFlag(), formatFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one food id, got %d", cmd.Args().Len())
			}
			id, err := strconv.Atoi(strings.TrimSpace(cmd.Args().First()))
			if err != nil {
				return fmt.Errorf("invalid food id %q: %w", cmd.Args().First(), err)
			}
			return invoke(ctx, cmd, query.OpGet, map[string]any{"food_id": id})
		},
	}
}

func compareCmd() *cli.Command {
	return &cli.Command{
		Name:      "compare",
		Usage:     fmt.Sprintf("Compare %d to %d foods side by side", query.MinCompareIDs, query.MaxCompareIDs),
		ArgsUsage: "FOOD_ID FOOD_ID [FOOD_ID...]",
		Flags:     []cli.Flag{outputFlag(), formatFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ids, err := parseIDs(cmd.Args().Slice())
			if err != nil {
				return err
			}
			return invoke(ctx, cmd, query.OpCompare, map[string]any{"food_ids": ids})
		},
	}
}

func filterCmd() *cli.Command {
	return &cli.Command{
		Name:  "filter",
		Usage: "Rank foods by one nutrient within an optional range",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "nutrient",
				Aliases: []string{"n"},
				Usage: fmt.Sprintf("Nutrient field (supported values: %s)",
					strings.Join(nutrient.SupportedFields(), ", ")),
			},
			&cli.FloatFlag{
				Name:  "min",
				Usage: "Inclusive lower bound",
			},
			&cli.FloatFlag{
				Name:  "max",
				Usage: "Inclusive upper bound",
			},
			&cli.IntFlag{
				Name:  "limit",
				Value: query.DefaultFilterLimit,
				Usage: fmt.Sprintf("Maximum results (%d-%d)", query.MinFilterLimit, query.MaxFilterLimit),
			},
			&cli.StringFlag{
				Name:  "sort",
				Value: string(query.SortDesc),
				Usage: fmt.Sprintf("Sort order (supported values: %s)", strings.Join(query.GetSortOrders(), ", ")),
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := map[string]any{
				"nutrient": cmd.String("nutrient"),
				"limit":    cmd.Int("limit"),
				"sort":     cmd.String("sort"),
			}
			if cmd.IsSet("min") {
				args["min"] = cmd.Float("min")
			}
			if cmd.IsSet("max") {
				args["max"] = cmd.Float("max")
			}
			return invoke(ctx, cmd, query.OpFilter, args)
		},
	}
}
