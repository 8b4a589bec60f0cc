package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"linked_containers/src/logging"
)

// generateElements returns count random elements drawn from [1, maxValue],
// perLine to a line.
func generateElements(r *rand.Rand, count, maxValue, perLine int) string {
	s := new(strings.Builder)
	for i := 0; i < count; i++ {
		fmt.Fprintf(s, "%d", 1+r.Intn(maxValue))
		if (i+1)%perLine == 0 || i == count-1 {
			s.WriteRune('\n')
		} else {
			s.WriteRune(' ')
		}
	}
	return s.String()
}

func newGenerateCommand() *cobra.Command {
	var outPath string
	var count, maxValue, perLine int
	var seed int64

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a file of random elements usable with --file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("must specify the number of elements")
			}
			if maxValue < 1 || perLine < 1 {
				return fmt.Errorf("--max and --per-line must be positive")
			}

			r := rand.New(rand.NewSource(seed))
			if err := os.WriteFile(outPath, []byte(generateElements(r, count, maxValue, perLine)), 0o666); err != nil {
				return errors.Wrapf(err, "writing %q", outPath)
			}
			logging.Info().Str("path", outPath).Int("count", count).Msg("wrote elements")
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "elements.txt", "The output file")
	cmd.Flags().IntVar(&count, "count", 0, "The number of elements")
	cmd.Flags().IntVar(&maxValue, "max", 100, "The largest element value")
	cmd.Flags().IntVar(&perLine, "per-line", 10, "Elements written per line")
	cmd.Flags().Int64Var(&seed, "seed", 1, "Random seed")
	return cmd
}
