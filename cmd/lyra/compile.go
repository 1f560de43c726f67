package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"lyra/internal/a11y"
	"lyra/internal/diagfmt"
	"lyra/internal/driver"
	"lyra/internal/project"
	"lyra/internal/sourcemap"
)

var compileCmd = &cobra.Command{
	Use:   "compile [flags] <file>...",
	Short: "Compile Lyra modules to plain JSX",
	Long: "Compile rewrites on:*/class:* directives into data-* attributes, " +
		"runs the accessibility analyzer, and writes the .js output (plus an " +
		"optional .js.map) next to each input or under --out-dir.",
	Args: cobra.MinimumNArgs(1),
	RunE: compileExecution,
}

func init() {
	compileCmd.Flags().String("a11y", "", "accessibility level (strict|warn|off), overrides lyra.toml")
	compileCmd.Flags().Bool("sourcemap", false, "emit a .js.map next to each output")
	compileCmd.Flags().Bool("dev", false, "development mode output")
	compileCmd.Flags().String("out-dir", "", "write outputs under this directory")
	compileCmd.Flags().Bool("json", false, "print diagnostics as JSON")
	compileCmd.Flags().Bool("cache", false, "reuse cached results for unchanged inputs")
	compileCmd.Flags().Bool("dry-run", false, "compile without writing outputs")
}

type compileJob struct {
	path   string
	result driver.Result
	err    error
}

func compileExecution(cmd *cobra.Command, args []string) error {
	cfg, err := project.LoadDir(".")
	if err != nil {
		return err
	}

	levelName, _ := cmd.Flags().GetString("a11y")
	if levelName == "" {
		levelName = cfg.Compiler.A11y
	}
	level, err := a11y.ParseLevel(levelName)
	if err != nil {
		return err
	}

	emitMap, _ := cmd.Flags().GetBool("sourcemap")
	emitMap = emitMap || cfg.Compiler.SourceMap
	dev, _ := cmd.Flags().GetBool("dev")
	dev = dev || cfg.Compiler.Dev
	outDir, _ := cmd.Flags().GetString("out-dir")
	if outDir == "" {
		outDir = cfg.Compiler.OutDir
	}
	asJSON, _ := cmd.Flags().GetBool("json")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	useCache, _ := cmd.Flags().GetBool("cache")
	useCache = useCache || cfg.Cache.Enabled
	maxDiags, _ := cmd.Flags().GetInt("max-diagnostics")
	quiet, _ := cmd.Flags().GetBool("quiet")

	var cache *driver.DiskCache
	if useCache {
		cache, err = driver.OpenDiskCache(cfg.Cache.Dir)
		if err != nil {
			return fmt.Errorf("open cache: %w", err)
		}
	}

	jobs := make([]compileJob, len(args))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			jobs[i] = runJob(path, driver.Options{
				Filename:       path,
				A11y:           level,
				SourceMap:      emitMap,
				Dev:            dev,
				MaxDiagnostics: maxDiags,
			}, cache)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	anyError := false
	for i := range jobs {
		job := &jobs[i]
		if job.err != nil {
			return fmt.Errorf("%s: %w", job.path, job.err)
		}

		printDiagnostics(cmd, &job.result, asJSON)
		if job.result.HasErrors() {
			anyError = true
		}

		if dryRun || !job.result.Meta.Transformed {
			continue
		}
		if err := writeOutputs(job, outDir, emitMap); err != nil {
			return err
		}
		if !quiet && !asJSON {
			fmt.Fprintf(cmd.OutOrStdout(), "compiled %s\n", job.path)
		}
	}

	if anyError {
		return fmt.Errorf("compilation finished with errors")
	}
	return nil
}

// runJob compiles one file, consulting the disk cache when enabled.
func runJob(path string, opts driver.Options, cache *driver.DiskCache) compileJob {
	src, err := os.ReadFile(path) // #nosec G304 -- path comes from the CLI args
	if err != nil {
		return compileJob{path: path, err: err}
	}
	opts.Source = string(src)

	if cache != nil {
		key := driver.Key(opts)
		if res, ok := cache.Load(key, opts); ok {
			return compileJob{path: path, result: res}
		}
		res := driver.Compile(opts)
		_ = cache.Store(key, res) // cache write failures never fail a build
		return compileJob{path: path, result: res}
	}

	return compileJob{path: path, result: driver.Compile(opts)}
}

func printDiagnostics(cmd *cobra.Command, res *driver.Result, asJSON bool) {
	if len(res.Diagnostics) == 0 {
		return
	}
	if asJSON {
		_ = diagfmt.WriteJSON(cmd.ErrOrStderr(), res.Diagnostics, res.FileSet, diagfmt.JSONOpts{
			IncludePositions: true,
		})
		return
	}
	diagfmt.Pretty(cmd.ErrOrStderr(), res.Diagnostics, res.FileSet, diagfmt.DefaultPretty(useColor(cmd)))
}

func writeOutputs(job *compileJob, outDir string, emitMap bool) error {
	outPath := sourcemap.OutputName(job.path)
	if outDir != "" {
		outPath = filepath.Join(outDir, filepath.Base(outPath))
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return err
		}
	}

	if err := os.WriteFile(outPath, []byte(job.result.Code), 0o644); err != nil {
		return err
	}
	if emitMap && job.result.Map != nil {
		raw, err := json.Marshal(job.result.Map)
		if err != nil {
			return err
		}
		if err := os.WriteFile(outPath+".map", raw, 0o644); err != nil {
			return err
		}
	}
	return nil
}
