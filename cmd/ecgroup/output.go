package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/smallyu/go-ecgroup/pkg/ec"
)

type curveJSON struct {
	Equation string `json:"equation"`
	A        int64  `json:"a"`
	B        int64  `json:"b"`
	P        int64  `json:"p"`
}

func describe(c *ec.Curve) curveJSON {
	return curveJSON{Equation: c.String(), A: c.A(), B: c.B(), P: c.P()}
}

func (a *app) jsonOutput() (bool, error) {
	switch f := a.v.GetString("output"); f {
	case "text":
		return false, nil
	case "json":
		return true, nil
	default:
		return false, fmt.Errorf("invalid output format %q", f)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// curve builds the curve named by the a, b and p settings.
func (a *app) curve() (*ec.Curve, error) {
	c, err := ec.NewCurve(a.v.GetInt64("a"), a.v.GetInt64("b"), a.v.GetInt64("p"), ec.WithLogger(a.logger))
	if err != nil {
		return nil, fmt.Errorf("build curve: %w", err)
	}
	return c, nil
}
