// Package hookstate detects calls of a tracked state-initializer hook
// whose paired result is not destructured into the conventional
// [value, setValue] form, and proposes automatic rewrites.
//
// The engine is pure: it consumes one already-parsed syntax tree per
// invocation, builds an immutable role table and scope tree scoped to that
// file, and emits diagnostics in document order. It performs no I/O and
// holds no state across files, so callers may analyze files in parallel.
package hookstate

import (
	"fmt"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

type Engine struct {
	cfg Config
}

func New(cfg Config) *Engine {
	if cfg.Module == "" {
		cfg = DefaultConfig()
	}
	return &Engine{cfg: cfg}
}

func NewDefault() *Engine {
	return New(DefaultConfig())
}

func (e *Engine) Config() Config {
	return e.cfg
}

// Analyze runs the rule over one parsed file. Unmatched calls, shadowed
// names, and foreign-module imports are non-matches, never errors; sites
// the engine cannot confidently classify are skipped and traversal
// continues.
func (e *Engine) Analyze(root *sitter.Node, source []byte, path string) []Diagnostic {
	if root == nil {
		return nil
	}

	imports := ScanImports(root, source)
	table := Resolve(imports, e.cfg)
	if table.Empty() {
		return nil
	}

	scopes := BuildScopeTree(root, source)
	sites := FindCallSites(root, source, table, scopes, e.cfg)

	var diags []Diagnostic
	for _, site := range sites {
		if site.Pattern == nil {
			continue
		}
		v := classifyVerdict(site.Pattern)
		if v == verdictValid {
			continue
		}
		diags = append(diags, Diagnostic{
			Message:  e.message(),
			Location: nodeLocation(site.Call, path),
			Fixes:    generateFixes(site, v, table, root, source, e.cfg),
		})
	}
	return diags
}

func (e *Engine) message() string {
	return fmt.Sprintf("%s call is not destructured into value + setter pair", e.cfg.Initializer)
}

// ApplyEdits materializes one fix proposal against the original source.
// Edits are applied back-to-front so earlier offsets stay valid.
func ApplyEdits(source []byte, edits []TextEdit) []byte {
	out := make([]byte, len(source))
	copy(out, source)
	for i := len(edits) - 1; i >= 0; i-- {
		edit := edits[i]
		if edit.Start > edit.End || edit.End > uint(len(out)) {
			continue
		}
		var next []byte
		next = append(next, out[:edit.Start]...)
		next = append(next, edit.NewText...)
		next = append(next, out[edit.End:]...)
		out = next
	}
	return out
}
