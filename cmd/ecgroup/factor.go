package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smallyu/go-ecgroup/pkg/numtheory"
)

func (a *app) factorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "factor N",
		Short: "Print the prime factorization of N",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("parse %q: %w", args[0], err)
			}
			return a.runFactor(cmd, n)
		},
	}
}

type factorJSON struct {
	N          int64              `json:"n"`
	Factors    []numtheory.Factor `json:"factors"`
	Prime      bool               `json:"prime"`
	PrimePower bool               `json:"prime_power"`
}

func (a *app) runFactor(cmd *cobra.Command, n int64) error {
	asJSON, err := a.jsonOutput()
	if err != nil {
		return err
	}
	factors, err := numtheory.PrimeFactors(n)
	if err != nil {
		return fmt.Errorf("factor %d: %w", n, err)
	}
	prime, err := numtheory.IsPrime(n)
	if err != nil {
		return err
	}
	primePow, err := numtheory.IsPrimePow(n)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if asJSON {
		return writeJSON(w, factorJSON{N: n, Factors: factors, Prime: prime, PrimePower: primePow})
	}
	parts := make([]string, len(factors))
	for i, f := range factors {
		if f.Exp == 1 {
			parts[i] = strconv.FormatInt(f.Prime, 10)
		} else {
			parts[i] = fmt.Sprintf("%d^%d", f.Prime, f.Exp)
		}
	}
	if len(parts) == 0 {
		parts = []string{"1"}
	}
	fmt.Fprintf(w, "%d = %s\n", n, strings.Join(parts, " * "))
	fmt.Fprintf(w, "prime: %t, prime power: %t\n", prime, primePow)
	return nil
}
