package pipeline

import (
	"fmt"

	"github.com/matzehuels/plansmith/pkg/catalog"
	"github.com/matzehuels/plansmith/pkg/core/plan"
	"github.com/matzehuels/plansmith/pkg/export/schedule"
	"github.com/matzehuels/plansmith/pkg/planio"
	"github.com/matzehuels/plansmith/pkg/render/adjacency"
)

// Render encodes p in every format in opts.Formats. lookup supplies
// furniture details for the xlsx schedule.
func Render(p *plan.Plan, opts Options, lookup catalog.Lookup) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))

	// DOT is shared by the dot and svg formats.
	var dot string
	adjOpts := adjacency.Options{Detailed: opts.Detailed}

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatJSON:
			data, err = planio.MarshalPlan(p)
		case FormatDOT, FormatSVG:
			if dot == "" {
				dot = adjacency.ToDOT(p, adjOpts)
			}
			if format == FormatDOT {
				data = []byte(dot)
			} else {
				data, err = adjacency.RenderSVG(dot)
			}
		case FormatXLSX:
			data, err = schedule.Bytes(p, lookup)
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}
