package cli

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"curconv/internal/app"
	"curconv/internal/expr"
)

// NewRootCmd builds the root command. Flag parsing is disabled on purpose:
// the expression grammar owns the whole argument list, since tokens such as
// "->", ">" or "-la" are data to the expression parser, not flags cobra
// could be allowed to eat.
func NewRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:                "curconv [<options>] [<amount>] <from> = <to>",
		Short:              "Convert currencies from the command line",
		Long:               "curconv converts an amount between two currencies using hourly cached exchange rates.",
		Version:            version,
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Run(cmd.Context(), args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch result.Kind {
			case expr.KindShowHelp:
				renderHelp(out, version)
			case expr.KindShowVersion:
				renderVersion(out, version)
			case expr.KindShowUsualList:
				renderUsualList(out, result.Table)
			case expr.KindShowCompleteList:
				renderCompleteList(out, result.Table)
			case expr.KindConvert:
				renderResult(out, result.Conversion)
			}
			return nil
		},
	}
	return cmd
}

// Execute runs the CLI and returns the process exit code.
func Execute(version string) int {
	cmd := NewRootCmd(version)
	if err := cmd.Execute(); err != nil {
		var exitErr *app.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Code == app.ExitArgumentFailure {
				logrus.Error(fmt.Sprintf("%v, try 'curconv --help'", err))
			} else {
				logrus.Error(err)
			}
			return exitErr.Code
		}
		logrus.Error(err)
		return app.ExitRefreshFailure
	}
	return app.ExitOK
}
