package hookstate

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Sentinel exported names for bindings that do not name a single export.
const (
	ExportedDefault   = "default"
	ExportedNamespace = "namespace"
)

// ImportBinding is one local name introduced by an import declaration.
type ImportBinding struct {
	LocalName    string
	SourceModule string
	ExportedName string
}

// ScanImports collects the import bindings of a file. Import declarations
// are top-level in ES modules, so only the root's direct children are
// inspected.
func ScanImports(root *sitter.Node, source []byte) []ImportBinding {
	var bindings []ImportBinding
	for i := uint(0); i < root.ChildCount(); i++ {
		node := root.Child(i)
		if node == nil || node.Kind() != "import_statement" {
			continue
		}
		bindings = append(bindings, scanImportStatement(node, source)...)
	}
	return bindings
}

func scanImportStatement(node *sitter.Node, source []byte) []ImportBinding {
	src := node.ChildByFieldName("source")
	if src == nil {
		return nil
	}
	module := trimQuoted(nodeText(src, source))
	if module == "" {
		return nil
	}

	var bindings []ImportBinding
	for i := uint(0); i < node.ChildCount(); i++ {
		clause := node.Child(i)
		if clause == nil || clause.Kind() != "import_clause" {
			continue
		}
		for j := uint(0); j < clause.ChildCount(); j++ {
			ch := clause.Child(j)
			if ch == nil {
				continue
			}
			switch ch.Kind() {
			case "identifier":
				// import React from 'react'
				bindings = append(bindings, ImportBinding{
					LocalName:    nodeText(ch, source),
					SourceModule: module,
					ExportedName: ExportedDefault,
				})
			case "namespace_import":
				// import * as React from 'react'
				for k := uint(0); k < ch.ChildCount(); k++ {
					id := ch.Child(k)
					if id != nil && id.Kind() == "identifier" {
						bindings = append(bindings, ImportBinding{
							LocalName:    nodeText(id, source),
							SourceModule: module,
							ExportedName: ExportedNamespace,
						})
					}
				}
			case "named_imports":
				// import { useState, useMemo as memo } from 'react'
				for k := uint(0); k < ch.NamedChildCount(); k++ {
					spec := ch.NamedChild(k)
					if spec == nil || spec.Kind() != "import_specifier" {
						continue
					}
					name := spec.ChildByFieldName("name")
					if name == nil {
						continue
					}
					exported := trimQuoted(nodeText(name, source))
					local := exported
					if alias := spec.ChildByFieldName("alias"); alias != nil {
						local = nodeText(alias, source)
					}
					bindings = append(bindings, ImportBinding{
						LocalName:    local,
						SourceModule: module,
						ExportedName: exported,
					})
				}
			}
		}
	}
	return bindings
}

func trimQuoted(value string) string {
	value = strings.TrimSpace(value)
	return strings.Trim(value, "\"'`")
}
