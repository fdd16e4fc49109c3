package main

import (
	"fmt"
	"os"
	"strings"

	humanize "github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/lclang/l/internal/ast"
	"github.com/lclang/l/internal/builtins"
	"github.com/lclang/l/internal/config"
	"github.com/lclang/l/internal/diagnostics"
	"github.com/lclang/l/internal/evalpool"
	"github.com/lclang/l/internal/evalreduce"
	"github.com/lclang/l/internal/types"
)

// There is no lexer or parser in this module (see SPEC_FULL.md): the CLI
// cannot turn program text into a core expression. It runs a demo program
// chosen from demos.go instead, wired through the same type-inference and
// evaluation path a real frontend would use.

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "this is a bug; please report it")
			os.Exit(1)
		}
	}()

	if handleHelp() {
		return
	}
	if handleListDemos() {
		return
	}
	handleRun()
}

func handleHelp() bool {
	for _, arg := range os.Args[1:] {
		if arg == "-h" || arg == "--help" {
			fmt.Println("l — runs a worked demo program through the type checker and evaluator")
			fmt.Println()
			fmt.Println("usage:")
			fmt.Println("  l [--evaluator=reduce|pool] [--check-agreement] [--demo=name]")
			fmt.Println("  l --list-demos")
			fmt.Println()
			fmt.Printf("version %s\n", config.Version)
			return true
		}
	}
	return false
}

func handleListDemos() bool {
	for _, arg := range os.Args[1:] {
		if arg == "--list-demos" {
			for _, name := range demoNames() {
				fmt.Println(name)
			}
			return true
		}
	}
	return false
}

// runOptions is the flat set of flags handleRun understands, hand-parsed
// from os.Args the same way the rest of this family of CLIs is parsed
// (no flag package: every flag here is either bare or "--name=value").
type runOptions struct {
	evaluator      string
	checkAgreement bool
	demo           string
}

func parseArgs(args []string, defaults config.File) runOptions {
	opts := runOptions{
		evaluator:      config.DefaultEvaluator,
		checkAgreement: defaults.CheckAgreement,
		demo:           "arithmetic",
	}
	if defaults.Evaluator != "" {
		opts.evaluator = defaults.Evaluator
	}
	for _, arg := range args {
		switch {
		case arg == "--check-agreement":
			opts.checkAgreement = true
		case strings.HasPrefix(arg, "--evaluator="):
			opts.evaluator = strings.TrimPrefix(arg, "--evaluator=")
		case strings.HasPrefix(arg, "--demo="):
			opts.demo = strings.TrimPrefix(arg, "--demo=")
		}
	}
	return opts
}

func handleRun() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not read %s: %v\n", config.ConfigPath(), err)
		cfg = config.File{}
	}
	opts := parseArgs(os.Args[1:], cfg)

	program, ok := demos[opts.demo]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown demo %q; try --list-demos\n", opts.demo)
		os.Exit(1)
	}

	sessionID := uuid.New()
	sink := diagnostics.NewWriter(os.Stdout)
	prepared := builtins.Prepare(sink, program)

	if err := ast.Verify(prepared); err != nil {
		reportError(sessionID, err)
		os.Exit(1)
	}

	inferred, err := types.InferTypeWithEnv(builtins.BaseTypeEnv(), prepared)
	if err != nil {
		reportError(sessionID, err)
		os.Exit(1)
	}
	if isInteractive() {
		fmt.Printf("[%s] demo %q : %s\n", sessionID, opts.demo, inferred.String())
	} else {
		fmt.Printf("%s : %s\n", opts.demo, inferred.String())
	}

	if opts.checkAgreement {
		runCheckAgreement(sessionID, prepared)
		return
	}

	result, err := runOne(opts.evaluator, prepared)
	if err != nil {
		reportError(sessionID, err)
		os.Exit(1)
	}
	printResult(opts.evaluator, result)
}

// evalResult is the common shape both evaluators reduce a program to, so
// the CLI can print and compare them without caring which one ran.
type evalResult struct {
	isPrimitive bool
	primitive   ast.Primitive
}

func runOne(evaluator string, prepared ast.Expr) (evalResult, error) {
	switch evaluator {
	case "reduce":
		reduced, err := evalreduce.Evaluate(prepared)
		if err != nil {
			return evalResult{}, err
		}
		if reduced.Kind() != ast.KindPrimitive {
			return evalResult{isPrimitive: false}, nil
		}
		return evalResult{isPrimitive: true, primitive: reduced.AsPrimitive()}, nil
	case "pool":
		tree := evalpool.Flatten(prepared)
		completed, err := evalpool.New(tree).EvaluateRoot()
		if err != nil {
			return evalResult{}, err
		}
		if !completed.IsPrimitive() {
			return evalResult{isPrimitive: false}, nil
		}
		return evalResult{isPrimitive: true, primitive: completed.AsPrimitive()}, nil
	default:
		return evalResult{}, fmt.Errorf("unknown evaluator %q (want reduce or pool)", evaluator)
	}
}

func runCheckAgreement(sessionID uuid.UUID, prepared ast.Expr) {
	reduceResult, reduceErr := runOne("reduce", prepared)
	poolResult, poolErr := runOne("pool", prepared)

	if (reduceErr == nil) != (poolErr == nil) {
		fmt.Printf("[%s] evaluators disagree: reduce err=%v pool err=%v\n", sessionID, reduceErr, poolErr)
		os.Exit(1)
	}
	if reduceErr != nil {
		fmt.Printf("[%s] both evaluators agree on error: %v\n", sessionID, reduceErr)
		return
	}
	if reduceResult.isPrimitive != poolResult.isPrimitive {
		fmt.Printf("[%s] evaluators disagree on result shape\n", sessionID)
		os.Exit(1)
	}
	if reduceResult.isPrimitive && !reduceResult.primitive.Equal(poolResult.primitive) {
		fmt.Printf("[%s] evaluators disagree: reduce=%s pool=%s\n", sessionID, reduceResult.primitive.String(), poolResult.primitive.String())
		os.Exit(1)
	}
	fmt.Printf("[%s] evaluators agree\n", sessionID)
	printResult("reduce", reduceResult)
}

func printResult(evaluator string, result evalResult) {
	if !result.isPrimitive {
		fmt.Printf("%s => <closure>\n", evaluator)
		return
	}
	value := result.primitive.Integer()
	if value.IsLarge() {
		fmt.Printf("%s => %s (%s digits)\n", evaluator, value.String(), humanize.Comma(int64(len(value.String()))))
		return
	}
	fmt.Printf("%s => %s\n", evaluator, value.String())
}

func reportError(sessionID uuid.UUID, err error) {
	fmt.Fprintf(os.Stderr, "[%s] error: %v\n", sessionID, err)
}

// isInteractive reports whether stdout is a terminal, used only to decide
// whether to print the banner above the result (piped output stays terse).
func isInteractive() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
