// Command brewin runs a Brewin program whose AST has already been produced
// by an external parser and serialized to JSON (see ast.FromJSON). There is
// no Brewin grammar or lexer in this repository; that parsing step is an
// external collaborator the driver assumes, per the interpreter's contract.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/brewin-lang/brewin/ast"
	"github.com/brewin-lang/brewin/interp"
)

// cliVersion is this CLI's own release number, distinct from versionFlag
// (the Brewin *semantic level* the interpreter enforces).
const cliVersion = "0.1.0"

var (
	versionFlag int
	verboseFlag bool
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		// interp.Error was already reported through the HostIO façade (see
		// Interpreter.Run); printing it again here would duplicate it.
		if _, ok := err.(*interp.Error); !ok {
			fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "brewin",
		Short:         "Run Brewin programs from a JSON-encoded AST",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	runCmd := &cobra.Command{
		Use:   "run [file.json]",
		Short: "Load a JSON-encoded AST and run it to completion",
		Args:  cobra.ExactArgs(1),
		RunE:  runProgram,
	}
	runCmd.Flags().IntVar(&versionFlag, "lang-version", 4, "Brewin semantic level to enforce (1-4)")
	runCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable internal diagnostic logging")
	root.AddCommand(runCmd)

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the brewin CLI version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(color.CyanString("brewin v%s", cliVersion))
			return nil
		},
	})

	return root
}

func runProgram(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	root, err := ast.FromJSON(data)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", args[0], err)
	}

	version, err := parseVersion(versionFlag)
	if err != nil {
		return err
	}

	logger := zap.NewNop().Sugar()
	if verboseFlag {
		z, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		logger = z.Sugar()
	}

	ip := interp.New(interp.Config{
		Version: version,
		IO:      interp.NewStdIO(os.Stdin, os.Stdout),
		Logger:  logger,
	})

	if err := ip.Run(context.Background(), root); err != nil {
		return err
	}
	return nil
}

func parseVersion(n int) (interp.Version, error) {
	switch n {
	case 1:
		return interp.V1, nil
	case 2:
		return interp.V2, nil
	case 3:
		return interp.V3, nil
	case 4:
		return interp.V4, nil
	default:
		return 0, fmt.Errorf("--lang-version must be 1-4, got %d", n)
	}
}
