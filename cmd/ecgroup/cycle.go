package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/smallyu/go-ecgroup/pkg/ec"
)

func (a *app) cycleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cycle",
		Short: "Print the cyclic subgroup generated by a point",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCycle(cmd)
		},
	}
	flags := cmd.Flags()
	flags.Int64("a", 1, "coefficient of x")
	flags.Int64("b", 1, "constant coefficient")
	flags.Int64("p", 5, "prime modulus")
	flags.Int64("gx", 0, "x coordinate of the generator")
	flags.Int64("gy", 0, "y coordinate of the generator")
	flags.Bool("inf", false, "use the point at infinity as the generator")
	return cmd
}

type cycleJSON struct {
	Curve     curveJSON  `json:"curve"`
	Order     int64      `json:"order"`
	Generator ec.Point   `json:"generator"`
	Cycle     []ec.Point `json:"cycle"`
}

func (a *app) runCycle(cmd *cobra.Command) error {
	asJSON, err := a.jsonOutput()
	if err != nil {
		return err
	}
	c, err := a.curve()
	if err != nil {
		return err
	}

	g := ec.Inf()
	if !a.v.GetBool("inf") {
		if !a.v.IsSet("gx") || !a.v.IsSet("gy") {
			return errors.New("a generator needs both --gx and --gy, or --inf")
		}
		g = ec.Affine(a.v.GetInt64("gx"), a.v.GetInt64("gy"))
	}

	gen, err := c.Represent(g)
	if err != nil {
		return fmt.Errorf("generator %s: %w", g, err)
	}
	ord, err := c.Order()
	if err != nil {
		return err
	}
	cycle, err := c.CyclicGroup(gen)
	if err != nil {
		return err
	}
	a.logger.Info("generated cyclic subgroup",
		zap.Stringer("curve", c),
		zap.Stringer("generator", gen),
		zap.Int("order", len(cycle)))

	w := cmd.OutOrStdout()
	if asJSON {
		return writeJSON(w, cycleJSON{
			Curve:     describe(c),
			Order:     ord,
			Generator: gen,
			Cycle:     cycle,
		})
	}

	fmt.Fprintf(w, "Elliptic curve: %s\n", c)
	fmt.Fprintf(w, "order of curve: %d\n", ord)
	fmt.Fprintf(w, "             g: %s\n", gen)
	fmt.Fprintf(w, "    order of g: %d\n", len(cycle))
	for i, pt := range cycle {
		fmt.Fprintf(w, "%2d: %s\n", i, pt)
	}
	return nil
}
