package codegen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Output collects one or more named files' worth of generated text in
// memory, keyed by their path relative to an eventual output directory.
// Nothing is written to disk until Flush is called — a generator builds
// up its whole result first, so a mid-generation error never leaves a
// half-written file behind, and tests can inspect Output.Files directly
// without a filesystem.
type Output struct {
	buffers map[string]*bytes.Buffer
	order   []string
}

// NewOutput creates an empty Output.
func NewOutput() *Output {
	return &Output{buffers: map[string]*bytes.Buffer{}}
}

// File returns an Emitter writing to the named relative path, creating the
// underlying buffer on first use. Calling File twice with the same path
// returns an Emitter appending to the same buffer.
func (o *Output) File(relPath string) *Emitter {
	buf, ok := o.buffers[relPath]
	if !ok {
		buf = &bytes.Buffer{}
		o.buffers[relPath] = buf
		o.order = append(o.order, relPath)
	}

	return NewEmitter(buf)
}

// Files returns every generated file's contents keyed by relative path (a
// map, so unordered; Paths gives the first-created order). Flushing each
// path's Emitter before calling this is the caller's responsibility; Flush
// writes the buffers as they are and does not flush Emitters either.
func (o *Output) Files() map[string]string {
	out := make(map[string]string, len(o.buffers))
	for path, buf := range o.buffers {
		out[path] = buf.String()
	}

	return out
}

// Paths returns every generated file's relative path, in first-created
// order, for callers that want deterministic iteration without sorting.
func (o *Output) Paths() []string {
	paths := make([]string, len(o.order))
	copy(paths, o.order)

	return paths
}

// Flush writes every buffered file under dir, creating intermediate
// directories as needed. Paths are written in sorted order so repeated
// runs touch the filesystem in a stable sequence.
func (o *Output) Flush(dir string) error {
	paths := make([]string, 0, len(o.buffers))
	for p := range o.buffers {
		paths = append(paths, p)
	}

	sort.Strings(paths)

	for _, rel := range paths {
		full := filepath.Join(dir, rel)

		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", rel, err)
		}

		if err := os.WriteFile(full, o.buffers[rel].Bytes(), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", rel, err)
		}
	}

	return nil
}
