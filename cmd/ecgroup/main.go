// Command ecgroup explores the group of points of small elliptic curves
// y^2 = x^3 + a*x + b over F_p.
package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const envPrefix = "ECGROUP"

type app struct {
	v      *viper.Viper
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	// every flag can also be set as ECGROUP_<FLAG>, dashes become underscores
	a.v.SetEnvPrefix(envPrefix)
	a.v.AutomaticEnv()
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	root := &cobra.Command{
		Use:           "ecgroup",
		Short:         "Explore the point groups of elliptic curves over small prime fields",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			logger, err := newLogger(a.v.GetString("log-level"), a.v.GetString("log-format"), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.String("log-level", "warn", "log level: debug, info, warn or error")
	flags.String("log-format", "console", "log format: console, json or logfmt")
	flags.StringP("output", "o", "text", "output format: text or json")

	root.AddCommand(a.cycleCmd())
	root.AddCommand(a.surveyCmd())
	root.AddCommand(a.pointsCmd())
	root.AddCommand(a.factorCmd())
	return root
}

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		root.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
