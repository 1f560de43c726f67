package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lyra/internal/a11y"
	"lyra/internal/ast"
	"lyra/internal/diag"
	"lyra/internal/diagfmt"
	"lyra/internal/parser"
	"lyra/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file>...",
	Short: "Audit modules for accessibility problems",
	Long:  "Check parses each module and runs the accessibility analyzer without transforming anything.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  checkExecution,
}

func init() {
	checkCmd.Flags().String("level", "strict", "accessibility level (strict|warn)")
	checkCmd.Flags().Bool("json", false, "print diagnostics as JSON")
}

func checkExecution(cmd *cobra.Command, args []string) error {
	levelName, _ := cmd.Flags().GetString("level")
	level, err := a11y.ParseLevel(levelName)
	if err != nil {
		return err
	}
	if level == a11y.LevelOff {
		return fmt.Errorf("--level off makes check a no-op; use strict or warn")
	}
	asJSON, _ := cmd.Flags().GetBool("json")
	maxDiags, _ := cmd.Flags().GetInt("max-diagnostics")
	quiet, _ := cmd.Flags().GetBool("quiet")

	fs := source.NewFileSet()
	var all []diag.Diagnostic
	for _, path := range args {
		fileID, err := fs.Load(path)
		if err != nil {
			return err
		}

		b := ast.NewBuilder(64)
		bag := diag.NewBag(maxDiags)
		parsed, err := parser.ParseFile(fs, fileID, b, parser.Options{
			Reporter:  diag.BagReporter{Bag: bag},
			MaxErrors: uint(maxDiags),
		})
		if err != nil {
			all = append(all, diag.NewError(diag.ParseError, source.Span{File: fileID}, err.Error()))
			continue
		}
		all = append(all, bag.Items()...)
		if bag.HasErrors() {
			continue
		}
		all = append(all, a11y.Check(b, parsed, level)...)
	}

	if len(all) > 0 {
		if asJSON {
			_ = diagfmt.WriteJSON(cmd.ErrOrStderr(), all, fs, diagfmt.JSONOpts{IncludePositions: true})
		} else {
			diagfmt.Pretty(cmd.ErrOrStderr(), all, fs, diagfmt.DefaultPretty(useColor(cmd)))
		}
	} else if !quiet && !asJSON {
		fmt.Fprintf(cmd.OutOrStdout(), "%d file(s) clean\n", len(args))
	}

	for i := range all {
		if all[i].Severity >= diag.SevError {
			return fmt.Errorf("accessibility audit failed")
		}
	}
	return nil
}
