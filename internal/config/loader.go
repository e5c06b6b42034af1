package config

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/katalvlaran/amidakuji/game"
	"github.com/katalvlaran/amidakuji/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// fileRoot is the decoded shape of a settings file. Pointer fields stay nil
// when the attribute is absent so the base value survives.
type fileRoot struct {
	Lanes          *int     `hcl:"lanes,optional"`
	MinLanes       *int     `hcl:"min_lanes,optional"`
	MaxLanes       *int     `hcl:"max_lanes,optional"`
	Rows           *int     `hcl:"rows,optional"`
	RowsPerLane    *int     `hcl:"rows_per_lane,optional"`
	Probability    *float64 `hcl:"probability,optional"`
	Seed           *int64   `hcl:"seed,optional"`
	ExclusiveRungs *bool    `hcl:"exclusive_rungs,optional"`
	Participants   []string `hcl:"participants,optional"`
}

// Load reads the HCL file at path and merges it over base.
// A missing file is not an error: base is returned unchanged.
func Load(ctx context.Context, path string, base game.Settings) (game.Settings, error) {
	logger := ctxlog.FromContext(ctx)

	src, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("Settings file not found, using defaults.", "path", path)
			return base, nil
		}
		return base, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	out, err := Parse(src, path, base)
	if err != nil {
		return base, err
	}
	logger.Debug("Settings file loaded.", "path", path, "lanes", out.Lanes, "seed", out.Seed)
	return out, nil
}

// Parse decodes HCL source and merges it over base. filename is used in
// diagnostics only.
func Parse(src []byte, filename string, base game.Settings) (game.Settings, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return base, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"defaults": defaultsValue(base),
		},
	}

	lanes, diags := resolveLanes(file.Body, evalCtx, base.Lanes)
	if diags.HasErrors() {
		return base, fmt.Errorf("failed to evaluate lanes in %s: %w", filename, diags)
	}
	evalCtx.Variables["lanes"] = cty.NumberIntVal(int64(lanes))

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, evalCtx, &root)
	if diags.HasErrors() {
		return base, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	return merge(base, root), nil
}

// resolveLanes evaluates the lanes attribute on its own so that every other
// attribute can refer to it.
func resolveLanes(body hcl.Body, evalCtx *hcl.EvalContext, fallback int) (int, hcl.Diagnostics) {
	content, _, diags := body.PartialContent(&hcl.BodySchema{
		Attributes: []hcl.AttributeSchema{{Name: "lanes"}},
	})
	if diags.HasErrors() {
		return fallback, diags
	}
	attr, ok := content.Attributes["lanes"]
	if !ok {
		return fallback, nil
	}
	var lanes int
	diags = gohcl.DecodeExpression(attr.Expr, evalCtx, &lanes)
	if diags.HasErrors() {
		return fallback, diags
	}
	return lanes, nil
}

// defaultsValue exposes base as the `defaults` object.
func defaultsValue(base game.Settings) cty.Value {
	names := make([]cty.Value, len(base.Participants))
	for i, n := range base.Participants {
		names[i] = cty.StringVal(n)
	}
	participants := cty.ListValEmpty(cty.String)
	if len(names) > 0 {
		participants = cty.ListVal(names)
	}

	return cty.ObjectVal(map[string]cty.Value{
		"lanes":           cty.NumberIntVal(int64(base.Lanes)),
		"min_lanes":       cty.NumberIntVal(int64(base.MinLanes)),
		"max_lanes":       cty.NumberIntVal(int64(base.MaxLanes)),
		"rows":            cty.NumberIntVal(int64(base.Rows)),
		"rows_per_lane":   cty.NumberIntVal(int64(base.RowsPerLane)),
		"probability":     cty.NumberFloatVal(base.Probability),
		"seed":            cty.NumberIntVal(base.Seed),
		"exclusive_rungs": cty.BoolVal(base.ExclusiveRungs),
		"participants":    participants,
	})
}

func merge(base game.Settings, root fileRoot) game.Settings {
	out := base
	if root.Lanes != nil {
		out.Lanes = *root.Lanes
	}
	if root.MinLanes != nil {
		out.MinLanes = *root.MinLanes
	}
	if root.MaxLanes != nil {
		out.MaxLanes = *root.MaxLanes
	}
	if root.Rows != nil {
		out.Rows = *root.Rows
	}
	if root.RowsPerLane != nil {
		out.RowsPerLane = *root.RowsPerLane
	}
	if root.Probability != nil {
		out.Probability = *root.Probability
	}
	if root.Seed != nil {
		out.Seed = *root.Seed
	}
	if root.ExclusiveRungs != nil {
		out.ExclusiveRungs = *root.ExclusiveRungs
	}
	if root.Participants != nil {
		out.Participants = append([]string(nil), root.Participants...)
	}
	return out
}
