//go:build js && wasm

package main

import (
	"encoding/json"
	"fmt"
	"syscall/js"

	"github.com/smallyu/go-ecgroup/pkg/ec"
)

func main() {
	c := make(chan struct{})

	fmt.Println("Go ECGroup WASM Initialized")

	// Expose Go functions to JS
	js.Global().Set("GoECGroup", map[string]interface{}{
		"Curve":         js.FuncOf(Curve),
		"Order":         js.FuncOf(Order),
		"Cycle":         js.FuncOf(Cycle),
		"Decomposition": js.FuncOf(Decomposition),
	})

	<-c
}

// curveInput is the JSON argument accepted by every exported function.
// gx and gy are only read by Cycle; a missing generator means infinity.
type curveInput struct {
	A  int64  `json:"a"`
	B  int64  `json:"b"`
	P  int64  `json:"p"`
	GX *int64 `json:"gx"`
	GY *int64 `json:"gy"`
}

func parse(args []js.Value) (*ec.Curve, curveInput, error) {
	var input curveInput
	if len(args) != 1 {
		return nil, input, fmt.Errorf("expected 1 argument (jsonParams)")
	}
	if err := json.Unmarshal([]byte(args[0].String()), &input); err != nil {
		return nil, input, fmt.Errorf("invalid json: %w", err)
	}
	c, err := ec.NewCurve(input.A, input.B, input.P)
	if err != nil {
		return nil, input, err
	}
	return c, input, nil
}

func respond(v interface{}) interface{} {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(b)
}

// Curve validates the parameters and returns the reduced curve.
// Arguments:
// 0: JSON string {"a":..,"b":..,"p":..}
// Returns:
// JSON string {"equation":..,"a":..,"b":..,"p":..,"singular":..}
func Curve(this js.Value, args []js.Value) interface{} {
	c, _, err := parse(args)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return respond(map[string]interface{}{
		"equation": c.String(),
		"a":        c.A(),
		"b":        c.B(),
		"p":        c.P(),
		"singular": c.IsSingular(),
	})
}

// Order returns the number of points on the curve.
func Order(this js.Value, args []js.Value) interface{} {
	c, _, err := parse(args)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	ord, err := c.Order()
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return respond(map[string]interface{}{"order": ord})
}

// Cycle returns the cyclic subgroup generated by (gx, gy).
func Cycle(this js.Value, args []js.Value) interface{} {
	c, input, err := parse(args)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	g := ec.Inf()
	if input.GX != nil && input.GY != nil {
		g = ec.Affine(*input.GX, *input.GY)
	} else if input.GX != nil || input.GY != nil {
		return "error: generator needs both gx and gy"
	}

	cycle, err := c.CyclicGroup(g)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return respond(map[string]interface{}{
		"generator": cycle[0],
		"order":     len(cycle),
		"cycle":     cycle,
	})
}

// Decomposition returns the group order split as cofactor * max subgroup order.
func Decomposition(this js.Value, args []js.Value) interface{} {
	c, _, err := parse(args)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	cofactor, maxOrder, err := c.Decomposition()
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return respond(map[string]interface{}{
		"cofactor":  cofactor,
		"max_order": maxOrder,
	})
}
