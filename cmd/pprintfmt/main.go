// Package main provides the entry point for the pprintfmt CLI.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/prettylisp/pprint/pprint"
)

var (
	width      uint
	miserWidth uint
	lineBudget int
	readably   bool
	explain    bool
	debug      bool

	table = newDemoTable()

	rootCmd = &cobra.Command{
		Use:   "pprintfmt [FILE]",
		Short: "Pretty-print s-expressions with pizzazz!",
		Args:  cobra.MaximumNArgs(1),
		RunE:  run,
	}
)

func init() {
	rootCmd.Flags().UintVar(&width, "width", 0, "right margin column (default 80)")
	rootCmd.Flags().UintVar(&miserWidth, "miser-width", 0, "miser mode threshold (0 disables miser mode)")
	rootCmd.Flags().IntVar(&lineBudget, "lines", 0, "maximum number of lines to print (0: unlimited)")
	rootCmd.Flags().BoolVar(&readably, "readably", false, "disable --lines truncation")
	rootCmd.Flags().BoolVar(&explain, "explain", false, "print a short explanation of the accepted input syntax before formatting the input")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging to stderr")

	_ = viper.BindPFlag("width", rootCmd.Flags().Lookup("width"))
	_ = viper.BindPFlag("miser-width", rootCmd.Flags().Lookup("miser-width"))
	_ = viper.BindPFlag("lines", rootCmd.Flags().Lookup("lines"))
	_ = viper.BindPFlag("readably", rootCmd.Flags().Lookup("readably"))

	viper.SetEnvPrefix("pprint")
	viper.AutomaticEnv()
	viper.SetDefault("width", 0)
	viper.SetDefault("lines", 0)
}

func run(cmd *cobra.Command, args []string) error {
	logger := log.New(os.Stderr)
	if debug {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetOutput(io.Discard)
	}

	var src []byte
	var err error
	if len(args) == 1 {
		src, err = os.ReadFile(args[0])
	} else {
		src, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return fmt.Errorf("unable to read input: %w", err)
	}

	if explain {
		if err := printExplanation(cmd.OutOrStdout(), string(src)); err != nil {
			return fmt.Errorf("unable to render explanation: %w", err)
		}
	}

	forms, err := ReadAll(string(src))
	if err != nil {
		return fmt.Errorf("unable to parse input: %w", err)
	}

	cfg := pprint.Config{
		RightMargin: int(viper.GetUint("width")),
		Readably:    viper.GetBool("readably"),
		Logger:      logger,
	}
	if mw := viper.GetUint("miser-width"); mw > 0 {
		v := int(mw)
		cfg.MiserWidth = &v
	}
	if lines := viper.GetInt("lines"); lines > 0 {
		cfg.Lines = &lines
	}

	return pprint.NewStreamTo(cmd.OutOrStdout(), cfg, func(s *pprint.Stream) error {
		for i, form := range forms {
			if i > 0 {
				if err := s.Mandatory(); err != nil {
					return err
				}
			}
			if err := pprint.OutputPretty(form, s, table); err != nil {
				return err
			}
		}
		return nil
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
