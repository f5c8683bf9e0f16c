package lesspipe

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// IgnoreFile is the optional discovery filter, looked up in the source
// root. It uses gitignore syntax and only affects batch discovery; single
// asset resolution never consults it.
const IgnoreFile = ".lessignore"

// Generator drives the batch pipeline: discovery, compilation,
// post-processing and output placement. It holds no state across runs;
// every Parse or Clean is a fresh, complete traversal.
type Generator struct {
	config   Config
	resolver *Resolver
	compiler *Compiler
	writer   *Writer
	post     PostProcessor
	ignore   *ignore.GitIgnore
}

// ParseResult reports what one batch run produced.
type ParseResult struct {
	Sources int             // sources discovered
	Written []string        // destination paths, in traversal order
	Concat  string          // concatenated output path, empty when disabled
	Errors  []*CompileError // populated by ParseAll only

	// concat accumulates per-source CSS in traversal order. It lives for
	// exactly one run and is consumed once by writeConcat.
	concat []string
}

// NewGenerator builds a generator from an immutable configuration. The
// transformer may be nil when only Discover, Check or Clean will be used.
func NewGenerator(config Config, t Transformer) *Generator {
	// Missing or unreadable ignore file degrades gracefully.
	gi, err := ignore.CompileIgnoreFile(filepath.Join(config.SourcePath, IgnoreFile))
	if err != nil {
		gi = nil
	}

	return &Generator{
		config:   config,
		resolver: &Resolver{SourceDir: config.SourcePath},
		compiler: NewCompiler(t),
		writer:   &Writer{DestDir: config.DestinationPath},
		post:     PostProcessor{Compression: config.Compression, Header: config.Header},
		ignore:   gi,
	}
}

// Discover enumerates every stylesheet source under the source root,
// sorted by path. Sorting fixes the traversal order; it governs both
// per-source processing and concatenation order.
//
// Discovery intentionally does not exclude partial-marked files: partials
// are compiled during a batch run even though Exists rejects them for
// single-path lookup. The asymmetry is part of the documented contract.
func (g *Generator) Discover() ([]SourceFile, error) {
	pattern := filepath.Join(g.config.SourcePath, "**", "*.{css,less,lss}")
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("discover sources: %w", err)
	}

	sources := make([]SourceFile, 0, len(matches))
	for _, match := range matches {
		if g.ignore != nil {
			rel, err := filepath.Rel(g.config.SourcePath, match)
			if err == nil && g.ignore.MatchesPath(rel) {
				continue
			}
		}
		abs, err := filepath.Abs(match)
		if err != nil {
			return nil, err
		}
		ext := strings.TrimPrefix(filepath.Ext(match), ".")
		sources = append(sources, SourceFile{Path: abs, Ext: ext})
	}

	sort.Slice(sources, func(i, j int) bool { return sources[i].Path < sources[j].Path })
	return sources, nil
}

// Logical derives a source's logical path from its position relative to
// the source root, extension stripped.
func (g *Generator) Logical(src SourceFile) ([]string, error) {
	root, err := filepath.Abs(g.config.SourcePath)
	if err != nil {
		return nil, err
	}
	rel, err := filepath.Rel(root, src.Path)
	if err != nil {
		return nil, fmt.Errorf("source %s outside source root: %w", src.Path, err)
	}
	rel = strings.TrimSuffix(rel, "."+src.Ext)
	return strings.Split(filepath.ToSlash(rel), "/"), nil
}

// Generate compiles the single asset named by a logical path, writes it to
// its destination and returns the post-processed CSS. Returns
// *NotFoundError or *CompileError on failure.
func (g *Generator) Generate(logical []string) (string, error) {
	src, err := g.resolver.Resolve(logical)
	if err != nil {
		return "", err
	}
	css, err := g.compileOne(src)
	if err != nil {
		return "", err
	}
	if _, err := g.writer.Write(logical, css); err != nil {
		return "", err
	}
	return css, nil
}

// Exists reports whether a logical path resolves to a non-partial source.
func (g *Generator) Exists(logical []string) bool {
	return g.resolver.Exists(logical)
}

// Parse compiles every discovered source, in traversal order, and writes
// one destination file per source. The first CompileError aborts the run:
// outputs already written stay in place, remaining sources are never
// attempted, and the concatenated output is not written. After a fully
// successful run, the concatenated output (when configured) is written as
// the plain joined per-source CSS, no separator.
func (g *Generator) Parse() (*ParseResult, error) {
	sources, err := g.Discover()
	if err != nil {
		return nil, err
	}
	result := &ParseResult{Sources: len(sources)}

	if g.config.Workers > 1 {
		if err := g.parseParallel(sources, result); err != nil {
			return nil, err
		}
	} else {
		for _, src := range sources {
			css, err := g.compileOne(src)
			if err != nil {
				return nil, err
			}
			if err := g.writeOne(src, css, result); err != nil {
				return nil, err
			}
		}
	}

	if err := g.writeConcat(result); err != nil {
		return nil, err
	}
	return result, nil
}

// ParseAll is the collect-and-continue variant of Parse: compile failures
// are recorded in the result instead of aborting, sources that succeed are
// written, and the concatenated output is skipped whenever any source
// failed. Filesystem failures still abort. Parse remains the default
// contract; ParseAll must be requested explicitly.
func (g *Generator) ParseAll() (*ParseResult, error) {
	sources, err := g.Discover()
	if err != nil {
		return nil, err
	}
	result := &ParseResult{Sources: len(sources)}

	for _, src := range sources {
		css, err := g.compileOne(src)
		if err != nil {
			var ce *CompileError
			if errors.As(err, &ce) {
				result.Errors = append(result.Errors, ce)
				continue
			}
			return nil, err
		}
		if err := g.writeOne(src, css, result); err != nil {
			return nil, err
		}
	}

	if len(result.Errors) == 0 {
		if err := g.writeConcat(result); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// parseParallel compiles sources across a bounded worker pool, then writes
// every output in traversal order behind a join barrier. Results are
// buffered by original index, never by completion order, so output and
// concatenation ordering match the sequential path exactly. On the first
// compile failure undispatched work is cancelled, in-flight work is
// discarded, and nothing is written.
func (g *Generator) parseParallel(sources []SourceFile, result *ParseResult) error {
	compiled := make([]string, len(sources))
	jobs := make(chan int)
	done := make(chan struct{})

	var once sync.Once
	var firstErr error
	var wg sync.WaitGroup

	for w := 0; w < g.config.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				css, err := g.compileOne(sources[i])
				if err != nil {
					once.Do(func() {
						firstErr = err
						close(done)
					})
					return
				}
				compiled[i] = css
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i := range sources {
			select {
			case jobs <- i:
			case <-done:
				return
			}
		}
	}()

	wg.Wait()
	if firstErr != nil {
		return firstErr
	}

	for i, src := range sources {
		if err := g.writeOne(src, compiled[i], result); err != nil {
			return err
		}
	}
	return nil
}

// compileOne runs the compile and post-process stages for one source.
func (g *Generator) compileOne(src SourceFile) (string, error) {
	css, err := g.compiler.Compile(src)
	if err != nil {
		return "", err
	}
	return g.post.Apply(css, src), nil
}

// writeOne places one compiled source and records it in the result.
func (g *Generator) writeOne(src SourceFile, css string, result *ParseResult) error {
	logical, err := g.Logical(src)
	if err != nil {
		return err
	}
	dest, err := g.writer.Write(logical, css)
	if err != nil {
		return err
	}
	if g.config.Verbose {
		fmt.Printf("Compiled %s -> %s\n", src.Path, dest)
	}
	result.Written = append(result.Written, dest)
	result.concat = append(result.concat, css)
	return nil
}

// writeConcat writes the joined accumulator to the configured concat
// target. It runs only after every per-source stage has completed.
func (g *Generator) writeConcat(result *ParseResult) error {
	if g.config.Concat == "" {
		return nil
	}
	dest, err := g.writer.Write([]string{g.config.Concat}, strings.Join(result.concat, ""))
	if err != nil {
		return err
	}
	result.Concat = dest
	return nil
}
