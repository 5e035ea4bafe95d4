package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/vk/nclbridge/internal/ctxlog"
	"github.com/vk/nclbridge/internal/ensemble"
	"github.com/vk/nclbridge/internal/fsutil"
	"github.com/vk/nclbridge/internal/ncl"
)

// Ensemble spec suffixes accepted by walk mode.
var ensembleSuffixes = []string{".yaml", ".yml"}

// Run executes one conversion according to the configuration: walk mode when
// an ensemble spec is configured, translate mode otherwise.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.EnsemblePath != "" {
		return a.runWalk(ctx)
	}
	return a.runTranslate(ctx)
}

// runTranslate converts one module data file, or every module data file under
// a directory, into NCL source.
func (a *App) runTranslate(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	path := a.config.ModulePath

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("nonexistent file: %s", path)
		}
		return err
	}

	if info.IsDir() {
		files, err := fsutil.FindFilesByExtension(path, ModuleSuffix)
		if err != nil {
			return err
		}
		logger.Info("Translating module directory.", "path", path, "files", len(files))
		for _, file := range files {
			// Per-file output paths; -o cannot apply to a whole directory.
			if err := a.translateFile(ctx, file, ""); err != nil {
				return err
			}
		}
		return nil
	}

	return a.translateFile(ctx, path, a.config.OutputPath)
}

// translateFile loads one module data file and writes its NCL rendition. The
// suffix and load checks run before the output file is created, so failed
// runs leave nothing behind.
func (a *App) translateFile(ctx context.Context, path, outPath string) error {
	logger := ctxlog.FromContext(ctx)

	if !strings.HasSuffix(path, ModuleSuffix) {
		return fmt.Errorf("invalid module file: %s", path)
	}
	if outPath == "" {
		outPath = strings.TrimSuffix(path, ModuleSuffix) + OutputSuffix
	}

	mod, err := a.loader.LoadFile(ctx, path)
	if err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if err := ncl.Translate(ctx, mod, out); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	logger.Info("Module translated.", "module", path, "output", outPath)
	return nil
}

// runWalk expands a YAML ensemble spec into a module data file.
func (a *App) runWalk(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	path := a.config.EnsemblePath

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("nonexistent file: %s", path)
		}
		return err
	}
	suffix := ensembleSuffix(path)
	if suffix == "" {
		return fmt.Errorf("invalid ensemble spec: %s", path)
	}

	spec, err := ensemble.LoadSpec(ctx, path, ensemble.DefaultModelImpl)
	if err != nil {
		return err
	}

	walk := &ensemble.Walk{Reference: spec.Reference, Sweeps: spec.Sweeps}
	inputs, err := walk.GatherInputs()
	if err != nil {
		return err
	}
	logger.Info("Parameter walk gathered.", "process", spec.Process, "members", len(inputs))

	outPath := a.config.OutputPath
	if outPath == "" {
		outPath = strings.TrimSuffix(path, suffix) + ModuleSuffix
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if err := ensemble.WriteModule(ctx, inputs, out); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	logger.Info("Module file written.", "spec", path, "output", outPath)
	return nil
}

// ensembleSuffix returns the recognized spec suffix of the path, or "" when
// the path has none.
func ensembleSuffix(path string) string {
	for _, suffix := range ensembleSuffixes {
		if strings.HasSuffix(path, suffix) {
			return suffix
		}
	}
	return ""
}
