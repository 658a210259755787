package hookstate

import (
	"fmt"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// generateFixes synthesizes the ordered fix proposals for an invalid call
// site. The memoization rewrite, when applicable, is always listed before
// the rename.
func generateFixes(site CallSite, v verdict, table *RoleTable, root *sitter.Node, source []byte, cfg Config) []FixProposal {
	if v == verdictUnfixable {
		return nil
	}

	value := anchorValueName(site.Pattern)
	if value == "" {
		return nil
	}

	var fixes []FixProposal
	if v == verdictMemoize {
		if fix, ok := memoizeFix(site, value, table, root, source, cfg); ok {
			fixes = append(fixes, fix)
		}
	}
	fixes = append(fixes, renameFix(site.Pattern, value))
	return fixes
}

// renameFix rewrites the whole pattern to the canonical pair, preserving
// the value identifier's spelling and dropping any further slots.
func renameFix(p *Pattern, value string) FixProposal {
	return FixProposal{
		Edits: []TextEdit{{
			Start:   p.Node.StartByte(),
			End:     p.Node.EndByte(),
			NewText: fmt.Sprintf("[%s, set%s]", value, capitalize(value)),
		}},
	}
}

// memoizeFix replaces the single-slot destructuring declaration with a
// plain binding initialized by the tracked memoizer: the original first
// argument becomes the body of a zero-argument function, and the
// dependency list is empty.
func memoizeFix(site CallSite, value string, table *RoleTable, root *sitter.Node, source []byte, cfg Config) (FixProposal, bool) {
	if site.Declaration == nil {
		return FixProposal{}, false
	}

	memoRef := cfg.Memoizer
	var importEdit *TextEdit
	switch {
	case site.Namespace != "":
		// Qualify through the same namespace object; no import change.
		memoRef = site.Namespace + "." + cfg.Memoizer
	case table.MemoizerLocal() != "":
		memoRef = table.MemoizerLocal()
	default:
		importEdit = memoizerImportEdit(root, source, cfg)
	}

	decl := site.Declaration
	keyword := "const"
	if kw := decl.Child(0); kw != nil {
		keyword = nodeText(kw, source)
	}
	semi := ""
	if last := decl.Child(decl.ChildCount() - 1); last != nil && last.Kind() == ";" {
		semi = ";"
	}

	replacement := fmt.Sprintf("%s %s = %s(%s, [])%s",
		keyword, value, memoRef, factoryText(site.Call, source), semi)

	var edits []TextEdit
	if importEdit != nil {
		edits = append(edits, *importEdit)
	}
	edits = append(edits, TextEdit{
		Start:   decl.StartByte(),
		End:     decl.EndByte(),
		NewText: replacement,
	})

	return FixProposal{
		Description: fmt.Sprintf("Replace %s call with %s", cfg.Initializer, cfg.Memoizer),
		Edits:       edits,
	}, true
}

// factoryText renders the zero-argument function wrapping the original
// initial-value expression. Object literals are parenthesized so the arrow
// body stays an expression rather than a block.
func factoryText(call *sitter.Node, source []byte) string {
	arg := firstArgument(call)
	if arg == nil {
		return "() => {}"
	}
	text := nodeText(arg, source)
	if arg.Kind() == "object" {
		return "() => (" + text + ")"
	}
	return "() => " + text
}

func firstArgument(call *sitter.Node) *sitter.Node {
	args := call.ChildByFieldName("arguments")
	if args == nil {
		return nil
	}
	for i := uint(0); i < args.NamedChildCount(); i++ {
		ch := args.NamedChild(i)
		if ch != nil && ch.Kind() != "comment" {
			return ch
		}
	}
	return nil
}

// memoizerImportEdit extends the tracked module's import with the canonical
// memoizer export: appended to an existing named-import clause when there
// is one, otherwise a fresh import statement right after it.
func memoizerImportEdit(root *sitter.Node, source []byte, cfg Config) *TextEdit {
	stmt, named := findModuleImport(root, source, cfg.Module)
	if stmt == nil {
		return nil
	}

	if named != nil {
		var lastSpec *sitter.Node
		for i := uint(0); i < named.NamedChildCount(); i++ {
			if ch := named.NamedChild(i); ch != nil && ch.Kind() == "import_specifier" {
				lastSpec = ch
			}
		}
		if lastSpec != nil {
			return &TextEdit{
				Start:   lastSpec.EndByte(),
				End:     lastSpec.EndByte(),
				NewText: ", " + cfg.Memoizer,
			}
		}
		// Degenerate import {} from '...': drop the new name inside.
		for i := uint(0); i < named.ChildCount(); i++ {
			if ch := named.Child(i); ch != nil && ch.Kind() == "{" {
				return &TextEdit{Start: ch.EndByte(), End: ch.EndByte(), NewText: " " + cfg.Memoizer + " "}
			}
		}
		return nil
	}

	// Default-only import: add a named import on the next line, reusing
	// the module specifier's original quoting.
	src := stmt.ChildByFieldName("source")
	if src == nil {
		return nil
	}
	return &TextEdit{
		Start:   stmt.EndByte(),
		End:     stmt.EndByte(),
		NewText: fmt.Sprintf("\nimport { %s } from %s;", cfg.Memoizer, nodeText(src, source)),
	}
}

// findModuleImport locates the module's import statement, preferring one
// with a named clause the new export can extend.
func findModuleImport(root *sitter.Node, source []byte, module string) (stmt, named *sitter.Node) {
	for i := uint(0); i < root.ChildCount(); i++ {
		node := root.Child(i)
		if node == nil || node.Kind() != "import_statement" {
			continue
		}
		src := node.ChildByFieldName("source")
		if src == nil || trimQuoted(nodeText(src, source)) != module {
			continue
		}
		if stmt == nil {
			stmt = node
		}
		for j := uint(0); j < node.ChildCount(); j++ {
			clause := node.Child(j)
			if clause == nil || clause.Kind() != "import_clause" {
				continue
			}
			for k := uint(0); k < clause.ChildCount(); k++ {
				if ch := clause.Child(k); ch != nil && ch.Kind() == "named_imports" {
					return node, ch
				}
			}
		}
	}
	return stmt, nil
}
