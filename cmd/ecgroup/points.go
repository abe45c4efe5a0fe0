package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smallyu/go-ecgroup/pkg/ec"
)

func (a *app) pointsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "points",
		Short: "Enumerate every point of a curve and check the count against its order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPoints(cmd)
		},
	}
	flags := cmd.Flags()
	flags.Int64("a", 1, "coefficient of x")
	flags.Int64("b", 1, "constant coefficient")
	flags.Int64("p", 5, "prime modulus")
	return cmd
}

type pointsJSON struct {
	Curve  curveJSON  `json:"curve"`
	Order  int64      `json:"order"`
	Points []ec.Point `json:"points"`
}

func (a *app) runPoints(cmd *cobra.Command) error {
	asJSON, err := a.jsonOutput()
	if err != nil {
		return err
	}
	c, err := a.curve()
	if err != nil {
		return err
	}
	ord, err := c.Order()
	if err != nil {
		return err
	}
	points, err := c.Solutions()
	if err != nil {
		return err
	}
	if int64(len(points)) != ord {
		return fmt.Errorf("%s: enumerated %d points, order is %d", c, len(points), ord)
	}

	w := cmd.OutOrStdout()
	if asJSON {
		return writeJSON(w, pointsJSON{Curve: describe(c), Order: ord, Points: points})
	}
	fmt.Fprintf(w, "Elliptic curve: %s\n", c)
	fmt.Fprintf(w, "order of curve: %d\n", ord)
	for i, pt := range points {
		fmt.Fprintf(w, "%3d: %s\n", i, pt)
	}
	return nil
}
