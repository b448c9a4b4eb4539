package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/njchilds90/goalgebra"
	"github.com/njchilds90/goalgebra/internal/config"
	"github.com/njchilds90/goalgebra/internal/logging"
	"github.com/njchilds90/goalgebra/internal/mcp"
	"github.com/njchilds90/goalgebra/parser"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Output flags
	asLaTeX bool
	asJSON  bool

	servePort int

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "goalgebra",
	Short: "goalgebra - exact polynomial algebra from the command line",
	Long: `goalgebra simplifies polynomial expressions with exact rational
coefficients.

Expressions use infix syntax with single-letter variables:

  goalgebra simplify "(x+1)^2"
  goalgebra simplify "6x^2/(3x)" --latex
  goalgebra equal "(x+1)(x-1)" "x^2-1"`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		level := cfg.Logging.Level
		if verbose {
			level = "debug"
		}
		logger, err = logging.New(level, cfg.Logging.JSON)
		if err != nil {
			return err
		}
		algebra.SetParallelThreshold(cfg.Kernel.ParallelThreshold)
		algebra.SetMaxExponent(cfg.Kernel.MaxExponent)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var simplifyCmd = &cobra.Command{
	Use:   "simplify [expression]",
	Short: "Reduce an expression to canonical form",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSimplify,
}

var chooseCmd = &cobra.Command{
	Use:   "choose [n] [k]",
	Short: "Print the binomial coefficient C(n, k)",
	Args:  cobra.ExactArgs(2),
	RunE:  runChoose,
}

var equalCmd = &cobra.Command{
	Use:   "equal [a] [b]",
	Short: "Report whether two expressions simplify to the same value",
	Args:  cobra.ExactArgs(2),
	RunE:  runEqual,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP tool server",
	RunE:  runServe,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to YAML config")

	simplifyCmd.Flags().BoolVar(&asLaTeX, "latex", false, "Print LaTeX instead of plain text")
	simplifyCmd.Flags().BoolVar(&asJSON, "json", false, "Print the JSON expression tree")

	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (overrides config)")

	rootCmd.AddCommand(simplifyCmd)
	rootCmd.AddCommand(chooseCmd)
	rootCmd.AddCommand(equalCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runSimplify(cmd *cobra.Command, args []string) error {
	src := strings.Join(args, " ")
	e, err := parser.ParseSimplified(src)
	if err != nil {
		return err
	}
	logger.Debug("simplified", zap.String("input", src), zap.String("result", algebra.String(e)))

	out := cmd.OutOrStdout()
	switch {
	case asJSON:
		b, err := json.MarshalIndent(algebra.JSONValue(e), "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(b))
	case asLaTeX:
		fmt.Fprintln(out, algebra.LaTeX(e))
	default:
		fmt.Fprintln(out, algebra.String(e))
	}
	return nil
}

func runChoose(cmd *cobra.Command, args []string) error {
	var n, k int
	if _, err := fmt.Sscan(args[0], &n); err != nil {
		return fmt.Errorf("n: %w", algebra.ErrInvalidArgument)
	}
	if _, err := fmt.Sscan(args[1], &k); err != nil {
		return fmt.Errorf("k: %w", algebra.ErrInvalidArgument)
	}
	c, err := algebra.Choose(n, k)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), c.String())
	return nil
}

func runEqual(cmd *cobra.Command, args []string) error {
	a, err := parser.ParseSimplified(args[0])
	if err != nil {
		return err
	}
	b, err := parser.ParseSimplified(args[1])
	if err != nil {
		return err
	}
	eq := a.Equal(b)
	logger.Debug("compared",
		zap.String("a", algebra.String(a)),
		zap.String("b", algebra.String(b)),
		zap.Bool("equal", eq))
	fmt.Fprintln(cmd.OutOrStdout(), eq)
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	if servePort != 0 {
		cfg.Server.Port = servePort
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcp.Serve(ctx, cfg, logger)
}
