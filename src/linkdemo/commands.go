package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"linked_containers/src/collections"
	"linked_containers/src/logging"
	"linked_containers/src/nodes"
)

const (
	envPrefix = "LINKDEMO"

	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
	flagConfig    = "config"
	flagFile      = "file"
	flagLaps      = "laps"
	flagClosed    = "closed"
)

func newRootCommand() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:           "linkdemo",
		Short:         "Build linked stacks, queues, chains and circles from the command line",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initLogging(cmd, v)
		},
	}

	cmd.PersistentFlags().String(flagLogLevel, "info", "Set the log level")
	cmd.PersistentFlags().String(flagLogFormat, "pretty", "Set the log format - Can be either 'json' or 'pretty'")
	cmd.PersistentFlags().String(flagConfig, "", "Optional config file providing defaults for any flag")
	cmd.PersistentFlags().String(flagFile, "", "Read additional whitespace separated elements from this file")

	for _, name := range []string{flagLogLevel, flagLogFormat, flagFile} {
		_ = v.BindPFlag(name, cmd.PersistentFlags().Lookup(name))
	}

	// Flags can also be given as LINKDEMO_LOG_LEVEL and so on.
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd.AddCommand(
		newStackCommand(v),
		newQueueCommand(v),
		newChainCommand(v),
		newCircleCommand(v),
		newPairCommand(),
		newGenerateCommand(),
	)
	return cmd
}

func initLogging(cmd *cobra.Command, v *viper.Viper) error {
	if path, _ := cmd.Flags().GetString(flagConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %q: %w", path, err)
		}
	}

	logger, err := logging.NewLogger(cmd.ErrOrStderr(), v.GetString(flagLogLevel), v.GetString(flagLogFormat))
	if err != nil {
		return fmt.Errorf("invalid --%s: %w", flagLogLevel, err)
	}
	logging.SetGlobalLogger(logger)
	return nil
}

func elementsFor(v *viper.Viper, args []string) ([]string, error) {
	elements, err := gatherElements(args, v.GetString(flagFile))
	if err != nil {
		return nil, err
	}
	logging.Debug().Int("count", len(elements)).Msg("gathered elements")
	return elements, nil
}

func newStackCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "stack [elements...]",
		Short: "Push the elements in order, then pop until the stack is empty",
		RunE: func(cmd *cobra.Command, args []string) error {
			elements, err := elementsFor(v, args)
			if err != nil {
				return err
			}
			drainStack(cmd.OutOrStdout(), collections.StackOf(elements...))
			return nil
		},
	}
}

func newQueueCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "queue [elements...]",
		Short: "Add the elements in order, then poll until the queue is empty",
		RunE: func(cmd *cobra.Command, args []string) error {
			elements, err := elementsFor(v, args)
			if err != nil {
				return err
			}
			drainQueue(cmd.OutOrStdout(), collections.QueueOf(elements...))
			return nil
		},
	}
}

func newChainCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "chain [elements...]",
		Short: "Link the elements into a chain and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			elements, err := elementsFor(v, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderChain(nodes.ChainOf(elements...), len(elements)))
			return nil
		},
	}
}

func newCircleCommand(v *viper.Viper) *cobra.Command {
	var laps int

	cmd := &cobra.Command{
		Use:   "circle [elements...]",
		Short: "Link the elements into a circle and print the given number of laps",
		RunE: func(cmd *cobra.Command, args []string) error {
			if laps < 1 {
				return fmt.Errorf("--%s must be at least 1", flagLaps)
			}
			elements, err := elementsFor(v, args)
			if err != nil {
				return err
			}
			first, err := nodes.CircleOf(elements...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderChain(first, laps*len(elements)))
			return nil
		},
	}
	cmd.Flags().IntVar(&laps, flagLaps, 1, "How many times to go around the circle")
	return cmd
}

func newPairCommand() *cobra.Command {
	var closed bool

	cmd := &cobra.Command{
		Use:   "pair first second",
		Short: "Link two elements, optionally back to each other",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			first := nodes.PairOf(args[0], args[1])
			if closed {
				first = nodes.ClosedPairOf(args[0], args[1])
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderChain(first, 2))
			return nil
		},
	}
	cmd.Flags().BoolVar(&closed, flagClosed, false, "Link the second element back to the first")
	return cmd
}
