package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/numcheck/pkg/numformat"
)

func newCheckCmd(cfg appConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [VALUE...]",
		Short: "Check values against a format",
		Long: `Check prints each value followed by "ok" or the reason it was rejected ` +
			`and exits with status 1 if any value is rejected. Without arguments ` +
			`values are read from stdin, one per line. Put "--" before negative ` +
			`values so they are not parsed as flags.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := checkValidator(cmd)
			if err != nil {
				return err
			}

			values := args
			if len(values) == 0 {
				if values, err = readLines(cmd.InOrStdin()); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			invalid := 0
			for _, value := range values {
				if err := v.Check(value); err != nil {
					invalid++
					fmt.Fprintf(out, "%s\t%v\n", value, err)
					continue
				}
				fmt.Fprintf(out, "%s\tok\n", value)
			}

			if invalid > 0 {
				return fmt.Errorf("%w: %d of %d rejected by %s", errInvalidValues, invalid, len(values), v)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.IntP("precision", "p", cfg.Format.Precision, "maximum count of digits plus sign")
	f.IntP("scale", "s", cfg.Format.Scale, "maximum count of fractional digits")
	f.Bool("non-negative", cfg.Format.NonNegative, "reject values with a leading '-'")
	f.StringP("format", "f", "", "format notation such as N(17.2); overrides --precision and --scale")
	f.String("name", "", "catalog format name")
	cmd.MarkFlagsMutuallyExclusive("format", "name")
	cmd.MarkFlagsMutuallyExclusive("precision", "name")
	cmd.MarkFlagsMutuallyExclusive("scale", "name")

	return cmd
}

// checkValidator picks the validator from --name, --format or
// --precision/--scale, in that order.
func checkValidator(cmd *cobra.Command) (*numformat.Validator, error) {
	f := cmd.Flags()

	if name, _ := f.GetString("name"); name != "" {
		catalog, err := loadCatalog(cmd.Context(), cmd)
		if err != nil {
			return nil, err
		}
		v, ok := catalog.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown format %q", name)
		}
		return v, nil
	}

	nonNegative, _ := f.GetBool("non-negative")

	if notation, _ := f.GetString("format"); notation != "" {
		format, err := numformat.ParseFormat(notation)
		if err != nil {
			return nil, err
		}
		format.NonNegative = nonNegative
		return numformat.NewFromFormat(format)
	}

	precision, _ := f.GetInt("precision")
	scale, _ := f.GetInt("scale")
	return numformat.NewFromFormat(numformat.Format{
		Precision:   precision,
		Scale:       scale,
		NonNegative: nonNegative,
	})
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read values: %w", err)
	}
	return lines, nil
}
