// Command city-pop prints the population of every city with a given name
// in a world cities dataset.
//
// Usage:
//
//	city-pop [options] <city>
//	city-pop -f worldcitiespop.csv springfield
//	cat worldcitiespop.csv | city-pop --quiet boston
//
// Each match is printed as "<city>, <country>: <population>".
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/andreiashu/citypop"
)

// errSilent ends the command with a failure status and no message.
var errSilent = errors.New("silent failure")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdin, stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errSilent):
		return 1
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "city-pop [options] <city>",
		Short:         "Print the population of every city with the given name",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Usage()
			}

			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			logger := newLogger(stderr, cfg.Debug)

			opts := []citypop.Option{
				citypop.WithStdin(stdin),
				citypop.WithLogger(logger),
				citypop.WithFuzzy(cfg.Fuzzy),
			}
			if cfg.SkipMalformed {
				opts = append(opts, citypop.WithPolicy(citypop.SkipMalformed))
			}
			if cfg.Near != nil {
				opts = append(opts, citypop.WithNear(cfg.Near.Lat, cfg.Near.Lng, cfg.RadiusKm))
			}

			counts, err := citypop.Search(cfg.File, args[0], opts...)
			if err != nil {
				if cfg.Quiet && citypop.IsKind(err, citypop.KindNotFound) {
					return errSilent
				}
				return err
			}

			for _, pc := range counts {
				fmt.Fprintln(cmd.OutOrStdout(), pc)
			}
			return nil
		},
	}

	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	registerFlags(cmd.Flags())
	return cmd
}
