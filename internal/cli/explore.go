package cli

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonalee1/adstock-visualization/internal/domain"
	"github.com/jonalee1/adstock-visualization/internal/lib/log"
	"github.com/jonalee1/adstock-visualization/internal/usecase/preset"
	"github.com/jonalee1/adstock-visualization/internal/usecase/publisher"
)

func newExploreCmd(app *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Change parameters interactively and watch the curve update",
		Long: `Start from a preset and read parameter changes from stdin, one per line.
The series is recomputed and rendered after every change.

  half_max=300          set a field on the first curve
  2.shape=3             set a field on curve 2 (0-based)
  domain=0:500:25       sample from 0 to 500 in steps of 25
  periods=30            sample periods 0..29
  quit                  stop

A rejected change leaves the previous curve in place.

Examples:
  printf 'half_max=300\nshape=4\n' | curves explore
  curves explore --preset geometric-decay`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := preset.Find(name)
			if err != nil {
				return err
			}

			pub := publisher.NewPublisher(app.Service(), log.Component(app.Logger, "publisher"))
			pub.Subscribe(func(s *domain.Series) {
				if err := app.Show(p.Description, s); err != nil {
					app.Logger.Error().Err(err).Msg("failed to render series")
				}
			})

			if err := pub.Update(p.Request()); err != nil {
				return err
			}

			scanner := bufio.NewScanner(app.In)
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "" || strings.HasPrefix(line, "#") {
					continue
				}
				if line == "quit" || line == "exit" {
					break
				}
				if err := applyChange(pub, line); err != nil {
					fmt.Fprintf(app.Err, "error: %v\n", err)
				}
			}
			return scanner.Err()
		},
	}

	cmd.Flags().StringVar(&name, "preset", "hill-explorer", "Preset to start from")

	return cmd
}

// applyChange parses one explore line and forwards it to the publisher
func applyChange(pub *publisher.Publisher, line string) error {
	key, value, ok := strings.Cut(line, "=")
	if !ok {
		return fmt.Errorf("%w: %q is not key=value", errInvalidInput, line)
	}
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)

	switch key {
	case "domain":
		d, err := parseDomain(value)
		if err != nil {
			return err
		}
		return pub.SetDomain(d)
	case "periods":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: periods %q is not an integer", errInvalidInput, value)
		}
		return pub.SetDomain(domain.PeriodDomain(n))
	}

	variant := 0
	field := key
	if idx, rest, found := strings.Cut(key, "."); found {
		n, err := strconv.Atoi(idx)
		if err != nil {
			return fmt.Errorf("%w: curve index %q is not an integer", errInvalidInput, idx)
		}
		variant, field = n, rest
	}

	v, err := parseValue(value)
	if err != nil {
		return err
	}
	return pub.SetParam(variant, field, v)
}

// parseDomain reads "start:stop:step"
func parseDomain(s string) (domain.SampleDomain, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return domain.SampleDomain{}, fmt.Errorf("%w: domain %q is not start:stop:step", errInvalidInput, s)
	}
	var vals [3]float64
	for i, part := range parts {
		v, err := parseValue(part)
		if err != nil {
			return domain.SampleDomain{}, err
		}
		vals[i] = v
	}
	return domain.NewSampleDomain(vals[0], vals[1], vals[2]), nil
}
