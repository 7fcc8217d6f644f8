package docgen

import (
	"errors"
	"fmt"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Logger defines the logging operations the generator needs.
//
//go:generate mockgen -source=setup.go -destination=mock_logger.go -package=docgen
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}

// Generator extracts documented descriptors from a source tree.
type Generator struct {
	cfg     Config
	target  Target
	include *regexp.Regexp
	logger  Logger
}

// Result describes a finished run.
type Result struct {
	// Entries are the documented descriptors, sorted by name.
	Entries []Entry
	// Path is the written document.
	Path string
	// Scanned counts parsed source files.
	Scanned int
	// Skipped counts scanned files that were not documented.
	Skipped int
}

// NewGenerator prepares a run documenting target. It fails when the inclusion pattern is
// not a valid regular expression.
func NewGenerator(cfg Config, target Target, logger Logger) (*Generator, error) {
	pattern := cfg.InclusionPattern
	if pattern == "" {
		pattern = ".*"
	}
	include, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidPattern, cfg.InclusionPattern, err)
	}
	return &Generator{
		cfg:     cfg,
		target:  target,
		include: include,
		logger:  logger,
	}, nil
}

// Generate walks the project root and overwrites the document in the output directory.
//
// Example:
//
//	gen, err := docgen.NewGenerator(docgen.Config{
//	    ProjectRoot:      ".",
//	    InclusionPattern: ".*/instrument/.*",
//	    OutputDir:        "docs",
//	}, docgen.TagKeyTarget, log)
//	if err != nil {
//	    return err
//	}
//	result, err := gen.Generate()
func (g *Generator) Generate() (Result, error) {
	g.logger.Info("generating span documentation", nil, map[string]interface{}{
		"root":              g.cfg.ProjectRoot,
		"inclusion_pattern": g.cfg.InclusionPattern,
		"capability":        g.target.Interface,
	})

	result, err := g.Collect()
	if err != nil {
		return result, err
	}

	SortEntries(result.Entries)

	if err := os.MkdirAll(g.cfg.OutputDir, 0o755); err != nil {
		return result, &ExtractionError{Op: "write", Path: g.cfg.OutputDir, Err: err}
	}
	result.Path = filepath.Join(g.cfg.OutputDir, g.target.FileName)
	if err := os.WriteFile(result.Path, Render(g.target.Title, result.Entries), 0o644); err != nil {
		return result, &ExtractionError{Op: "write", Path: result.Path, Err: err}
	}

	g.logger.Info("span documentation written", nil, map[string]interface{}{
		"path":    result.Path,
		"entries": len(result.Entries),
		"scanned": result.Scanned,
		"skipped": result.Skipped,
	})
	return result, nil
}

// Collect walks the project root and returns the entries in discovery order.
func (g *Generator) Collect() (Result, error) {
	var result Result
	fset := token.NewFileSet()

	err := filepath.WalkDir(g.cfg.ProjectRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return &ExtractionError{Op: "walk", Path: path, Err: err}
		}
		if d.IsDir() {
			return nil
		}
		if !g.include.MatchString(filepath.ToSlash(path)) {
			g.logger.Debug("file does not match the inclusion pattern", nil, map[string]interface{}{"file": path})
			return nil
		}
		if !strings.HasSuffix(path, sourceExtension) {
			g.logger.Debug("skipping non Go file", nil, map[string]interface{}{"file": path})
			return nil
		}

		src, err := os.ReadFile(path)
		if err != nil {
			return &ExtractionError{Op: "read", Path: path, Err: err}
		}
		result.Scanned++

		entries, ok := g.extract(fset, path, src)
		if !ok {
			result.Skipped++
			return nil
		}
		result.Entries = append(result.Entries, entries...)
		return nil
	})
	if err != nil {
		var extractionErr *ExtractionError
		if !errors.As(err, &extractionErr) {
			err = &ExtractionError{Op: "walk", Path: g.cfg.ProjectRoot, Err: err}
		}
		g.logger.Error("span documentation aborted", err, nil)
		return result, err
	}
	return result, nil
}

// extract documents one file. It reports false when the file was skipped.
func (g *Generator) extract(fset *token.FileSet, path string, src []byte) ([]Entry, bool) {
	file, err := parser.ParseFile(fset, path, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		g.logger.Warn("skipping file that does not parse", err, map[string]interface{}{"file": path})
		return nil, false
	}

	rec, err := recognize(file, g.target)
	if err != nil {
		g.logger.Debug("skipping file", nil, map[string]interface{}{
			"file":   path,
			"type":   rec.typeName,
			"reason": err.Error(),
		})
		return nil, false
	}

	for _, w := range rec.warnings {
		g.logger.Warn("variant without a literal value", nil, map[string]interface{}{
			"file":    path,
			"details": w,
		})
	}
	g.logger.Info("found documented entries", nil, map[string]interface{}{
		"type":    rec.typeName,
		"entries": len(rec.entries),
	})
	return rec.entries, true
}
