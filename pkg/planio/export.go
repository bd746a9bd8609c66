package planio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/plansmith/pkg/core/plan"
)

// WritePlan encodes p as indented JSON and writes it to w.
func WritePlan(w io.Writer, p *plan.Plan) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WritePlanFile writes p to a JSON file at path.
func WritePlanFile(p *plan.Plan, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WritePlan(f, p)
}

// MarshalPlan returns the indented JSON encoding of p.
func MarshalPlan(p *plan.Plan) ([]byte, error) {
	var buf bytes.Buffer
	if err := WritePlan(&buf, p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
