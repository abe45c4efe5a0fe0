package main

import (
	"errors"
	"fmt"
	"math/big"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/smallyu/go-ecgroup/internal/crypto/curves"
	"github.com/smallyu/go-ecgroup/pkg/ec"
	"github.com/smallyu/go-ecgroup/pkg/numtheory"
)

func (a *app) surveyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "survey",
		Short: "Print order and decomposition of one curve shape over a range of primes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSurvey(cmd)
		},
	}
	flags := cmd.Flags()
	flags.Int64("a", 1, "coefficient of x")
	flags.Int64("b", 1, "constant coefficient")
	flags.String("shape", "", fmt.Sprintf("take a and b from a standard curve %v", curves.Names()))
	flags.Int64("from", 2, "smallest modulus to try")
	flags.Int64("to", 50, "largest modulus to try")
	return cmd
}

type surveyRow struct {
	Prime    int64 `json:"prime"`
	A        int64 `json:"a"`
	B        int64 `json:"b"`
	Order    int64 `json:"order"`
	Cofactor int64 `json:"cofactor"`
	MaxOrder int64 `json:"max_order"`
	Singular bool  `json:"singular,omitempty"`
}

func (a *app) shape() (curves.Shape, error) {
	if name := a.v.GetString("shape"); name != "" {
		return curves.Lookup(name)
	}
	return curves.Shape{
		Name: "custom",
		A:    big.NewInt(a.v.GetInt64("a")),
		B:    big.NewInt(a.v.GetInt64("b")),
	}, nil
}

func (a *app) runSurvey(cmd *cobra.Command) error {
	asJSON, err := a.jsonOutput()
	if err != nil {
		return err
	}
	shape, err := a.shape()
	if err != nil {
		return err
	}
	from, to := max(a.v.GetInt64("from"), 1), a.v.GetInt64("to")
	if from > to {
		return fmt.Errorf("empty range [%d, %d]", from, to)
	}

	var rows []surveyRow
	for p := from; p <= to; p++ {
		prime, err := numtheory.IsPrime(p)
		if err != nil {
			return err
		}
		if !prime {
			continue
		}
		c, err := shape.Curve(p, ec.WithLogger(a.logger))
		if errors.Is(err, ec.ErrNotNonSingular) {
			a.logger.Warn("skipping degenerate curve", zap.String("shape", shape.Name), zap.Int64("prime", p))
			continue
		}
		if err != nil {
			return fmt.Errorf("build curve mod %d: %w", p, err)
		}
		row, err := surveyCurve(c)
		if err != nil {
			return fmt.Errorf("%s: %w", c, err)
		}
		rows = append(rows, row)
	}
	a.logger.Info("survey finished", zap.String("shape", shape.Name), zap.Int("curves", len(rows)))

	w := cmd.OutOrStdout()
	if asJSON {
		return writeJSON(w, rows)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "prime\ta\tb\torder\tcofactor\tmax order\t")
	for _, r := range rows {
		note := ""
		if r.Singular {
			note = "singular"
		}
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%d\t%s\n", r.Prime, r.A, r.B, r.Order, r.Cofactor, r.MaxOrder, note)
	}
	return tw.Flush()
}

func surveyCurve(c *ec.Curve) (surveyRow, error) {
	ord, err := c.Order()
	if err != nil {
		return surveyRow{}, err
	}
	cofactor, maxOrder, err := c.Decomposition()
	if err != nil {
		return surveyRow{}, err
	}
	return surveyRow{
		Prime:    c.P(),
		A:        c.A(),
		B:        c.B(),
		Order:    ord,
		Cofactor: cofactor,
		MaxOrder: maxOrder,
		Singular: c.IsSingular(),
	}, nil
}
