package hookstate

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Scope is one node of the lexical scope tree. It holds the names declared
// directly inside it; lookups walk the parent chain.
type Scope struct {
	parent *Scope
	decls  map[string]struct{}
}

func newScope(parent *Scope) *Scope {
	return &Scope{parent: parent, decls: make(map[string]struct{})}
}

func (s *Scope) declare(name string) {
	if name != "" {
		s.decls[name] = struct{}{}
	}
}

// Declares reports whether name is declared in this scope or any enclosing
// one. Used to decide whether a local declaration shadows an import.
func (s *Scope) Declares(name string) bool {
	for cur := s; cur != nil; cur = cur.parent {
		if _, ok := cur.decls[name]; ok {
			return true
		}
	}
	return false
}

// ScopeTree maps scope-creating syntax nodes to their Scope. It is built
// in a single traversal and never mutated afterwards; resolution is a pure
// function of (name, node).
type ScopeTree struct {
	root   *Scope
	byNode map[uintptr]*Scope
}

// scopeKinds are the syntax nodes that open a new lexical scope.
var scopeKinds = map[string]bool{
	"program":                        true,
	"statement_block":                true,
	"class_body":                     true,
	"function_declaration":           true,
	"generator_function_declaration": true,
	"function_expression":            true,
	"generator_function":             true,
	"arrow_function":                 true,
	"method_definition":              true,
	"for_statement":                  true,
	"for_in_statement":               true,
	"catch_clause":                   true,
}

// BuildScopeTree walks the syntax tree once, collecting declarations into
// per-scope tables. Import declarations are skipped on purpose: their
// bindings live in the role table, and only genuine re-declarations of a
// tracked name are supposed to shadow it.
func BuildScopeTree(root *sitter.Node, source []byte) *ScopeTree {
	tree := &ScopeTree{byNode: make(map[uintptr]*Scope)}
	tree.root = newScope(nil)
	tree.byNode[root.Id()] = tree.root
	collectScopes(root, tree.root, tree, source)
	return tree
}

func collectScopes(node *sitter.Node, scope *Scope, tree *ScopeTree, source []byte) {
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child == nil {
			continue
		}
		kind := child.Kind()

		if kind == "import_statement" {
			continue
		}

		current := scope
		switch kind {
		case "function_declaration", "generator_function_declaration":
			// The function's name is visible in the enclosing scope; its
			// parameters and body live in the new one.
			scope.declare(nodeText(child.ChildByFieldName("name"), source))
		case "class_declaration":
			scope.declare(nodeText(child.ChildByFieldName("name"), source))
		case "variable_declarator":
			declarePattern(child.ChildByFieldName("name"), scope, source)
		case "formal_parameters":
			declarePattern(child, scope, source)
		}

		if scopeKinds[kind] {
			current = newScope(scope)
			tree.byNode[child.Id()] = current

			switch kind {
			case "function_expression", "generator_function":
				// A named function expression binds its own name only
				// inside itself.
				current.declare(nodeText(child.ChildByFieldName("name"), source))
			case "arrow_function":
				// Single unparenthesized parameter.
				if p := child.ChildByFieldName("parameter"); p != nil {
					declarePattern(p, current, source)
				}
			case "catch_clause":
				declarePattern(child.ChildByFieldName("parameter"), current, source)
			case "for_in_statement":
				// for (const x of xs) declares x in the loop scope; a bare
				// for (x of xs) assigns to an outer binding instead.
				if child.ChildByFieldName("kind") != nil {
					declarePattern(child.ChildByFieldName("left"), current, source)
				}
			}
		}

		collectScopes(child, current, tree, source)
	}
}

// declarePattern records every identifier a binding pattern introduces.
// It follows pattern structure only, so default-value expressions and
// nested function bodies are never mistaken for declarations.
func declarePattern(node *sitter.Node, scope *Scope, source []byte) {
	if node == nil {
		return
	}
	switch node.Kind() {
	case "identifier", "shorthand_property_identifier_pattern":
		scope.declare(nodeText(node, source))
	case "assignment_pattern", "object_assignment_pattern":
		declarePattern(node.ChildByFieldName("left"), scope, source)
	case "pair_pattern":
		declarePattern(node.ChildByFieldName("value"), scope, source)
	case "rest_pattern":
		for i := uint(0); i < node.NamedChildCount(); i++ {
			declarePattern(node.NamedChild(i), scope, source)
		}
	case "array_pattern", "object_pattern", "formal_parameters":
		for i := uint(0); i < node.NamedChildCount(); i++ {
			declarePattern(node.NamedChild(i), scope, source)
		}
	case "required_parameter", "optional_parameter":
		// TypeScript parameter wrappers.
		declarePattern(node.ChildByFieldName("pattern"), scope, source)
	}
}

// ScopeAt returns the innermost scope enclosing node.
func (t *ScopeTree) ScopeAt(node *sitter.Node) *Scope {
	for cur := node; cur != nil; cur = cur.Parent() {
		if s, ok := t.byNode[cur.Id()]; ok {
			return s
		}
	}
	return t.root
}

// Shadowed reports whether a declaration of name is in effect at node.
func (t *ScopeTree) Shadowed(name string, node *sitter.Node) bool {
	return t.ScopeAt(node).Declares(name)
}
