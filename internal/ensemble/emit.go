package ensemble

import (
	"context"
	"errors"
	"io"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/nclbridge/internal/ctxlog"
)

// WriteModule serializes the ensemble members as an HCL module data file
// consumable by the translator. Each parameter becomes one field in its
// sub-section, holding that parameter's value across all members in member
// order; with a single member, fields are plain scalars. Timestepping values
// land in the user sub-section as dt and totaltime.
func WriteModule(ctx context.Context, inputs []Input, out io.Writer) error {
	logger := ctxlog.FromContext(ctx)

	if len(inputs) == 0 {
		return errors.New("ensemble has no members")
	}

	f := hclwrite.NewEmptyFile()
	input := f.Body().AppendNewBlock("input", nil).Body()

	appendSeries(input, "atmosphere", inputs, func(in Input) map[string]float64 { return in.Atmosphere })
	appendSeries(input, "aerosols", inputs, func(in Input) map[string]float64 { return in.Aerosols })
	appendSeries(input, "gases", inputs, func(in Input) map[string]float64 { return in.Gases })

	user := input.AppendNewBlock("user", nil).Body()
	user.SetAttributeValue("dt", cty.NumberFloatVal(inputs[0].Dt))
	user.SetAttributeValue("totaltime", cty.NumberFloatVal(inputs[0].TotalTime))

	if _, err := f.WriteTo(out); err != nil {
		return err
	}

	logger.Debug("Module file written.", "members", len(inputs))
	return nil
}

// appendSeries writes one sub-section block with a field per parameter found
// in the members' group map. Nothing is written for an empty group.
func appendSeries(parent *hclwrite.Body, blockName string, inputs []Input, group func(Input) map[string]float64) {
	params := make([]string, 0, len(group(inputs[0])))
	for name := range group(inputs[0]) {
		params = append(params, name)
	}
	if len(params) == 0 {
		return
	}
	sort.Strings(params)

	body := parent.AppendNewBlock(blockName, nil).Body()
	for _, name := range params {
		attr := fieldName(name)
		if len(inputs) == 1 {
			body.SetAttributeValue(attr, cty.NumberFloatVal(group(inputs[0])[name]))
			continue
		}
		elems := make([]cty.Value, len(inputs))
		for i, in := range inputs {
			elems[i] = cty.NumberFloatVal(group(in)[name])
		}
		body.SetAttributeValue(attr, cty.ListVal(elems))
	}
}

// fieldName collapses a dotted parameter name to its last component, which is
// a valid HCL identifier. Aerosol parameters sharing a species name across
// modes collapse to the same field; the alphabetically last one wins.
func fieldName(param string) string {
	if i := strings.LastIndex(param, "."); i >= 0 {
		return param[i+1:]
	}
	return param
}
