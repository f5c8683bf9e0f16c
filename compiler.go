package lesspipe

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Transformer turns preprocessor source text into CSS text. Implementations
// report malformed input through the returned error; the pipeline wraps it
// in a *CompileError with the originating path.
type Transformer interface {
	Transform(source string) (string, error)
}

// TransformerFunc adapts a function to the Transformer interface.
type TransformerFunc func(source string) (string, error)

func (f TransformerFunc) Transform(source string) (string, error) {
	return f(source)
}

// LessTransformer runs sources through the external lessc compiler.
type LessTransformer struct {
	path string
}

// NewLessTransformer locates lessc on PATH. A missing compiler is a
// construction-time failure; the pipeline cannot be built without it.
func NewLessTransformer() (*LessTransformer, error) {
	path, err := exec.LookPath("lessc")
	if err != nil {
		return nil, fmt.Errorf("less compiler not found on PATH: %w", err)
	}
	return &LessTransformer{path: path}, nil
}

// Transform feeds source to lessc on stdin and returns the compiled CSS.
func (t *LessTransformer) Transform(source string) (string, error) {
	cmd := exec.Command(t.path, "-")
	cmd.Stdin = strings.NewReader(source)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", errors.New(msg)
	}

	return stdout.String(), nil
}

// Compiler turns a source file into CSS text. Already-compiled .css sources
// pass through verbatim; everything else goes through the Transformer.
type Compiler struct {
	transformer Transformer
}

// NewCompiler creates a compiler backed by the given transformer. The
// transformer may be nil for pipelines that only discover or clean.
func NewCompiler(t Transformer) *Compiler {
	return &Compiler{transformer: t}
}

// Compile reads the source file and returns its CSS. Preprocessor failures
// surface as *CompileError carrying the source path.
func (c *Compiler) Compile(src SourceFile) (string, error) {
	// #nosec G304 - path comes from trusted discovery/resolution
	content, err := os.ReadFile(src.Path)
	if err != nil {
		return "", fmt.Errorf("read source: %w", err)
	}

	if src.Ext == "css" {
		return string(content), nil
	}

	css, err := c.transformer.Transform(string(content))
	if err != nil {
		return "", &CompileError{Path: src.Path, Err: err}
	}
	return css, nil
}
