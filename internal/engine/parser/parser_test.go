package parser

import (
	"testing"

	"hooklint/internal/errors"
)

func TestDetectLanguage(t *testing.T) {
	p := NewParser(NewGrammarLoader())
	cases := map[string]string{
		"src/app.js":        "javascript",
		"src/App.jsx":       "javascript",
		"src/util.mjs":      "javascript",
		"src/legacy.cjs":    "javascript",
		"src/types.ts":      "typescript",
		"src/worker.mts":    "typescript",
		"src/Component.tsx": "tsx",
		"README.md":         "",
		"style.css":         "",
		"noext":             "",
	}
	for path, want := range cases {
		if got := p.GetLanguage(path); got != want {
			t.Errorf("%s: expected %q, got %q", path, want, got)
		}
		if p.IsSupportedPath(path) != (want != "") {
			t.Errorf("%s: IsSupportedPath inconsistent with GetLanguage", path)
		}
	}
}

func TestParseJavaScript(t *testing.T) {
	p := NewParser(NewGrammarLoader())
	file, err := p.ParseFile("app.jsx", []byte("const x = 1;\n"))
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	if file.Language != "javascript" {
		t.Errorf("expected javascript, got %s", file.Language)
	}
	root := file.Root()
	if root == nil || root.Kind() != "program" {
		t.Fatalf("expected program root, got %v", root)
	}
	if root.NamedChildCount() != 1 {
		t.Errorf("expected one statement, got %d", root.NamedChildCount())
	}
}

func TestParseTSX(t *testing.T) {
	p := NewParser(NewGrammarLoader())
	file, err := p.ParseFile("Banner.tsx", []byte("export const B = () => <div />;\n"))
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	if file.Language != "tsx" {
		t.Errorf("expected tsx, got %s", file.Language)
	}
	if file.Root().Kind() != "program" {
		t.Errorf("expected program root, got %s", file.Root().Kind())
	}
}

func TestParseUnsupportedExtension(t *testing.T) {
	p := NewParser(NewGrammarLoader())
	_, err := p.ParseFile("main.go", []byte("package main"))
	if err == nil {
		t.Fatal("expected error for unsupported extension")
	}
	if !errors.IsCode(err, errors.CodeNotSupported) {
		t.Errorf("expected CodeNotSupported, got %v", err)
	}
}

func TestSupportedExtensionsSorted(t *testing.T) {
	exts := NewParser(NewGrammarLoader()).SupportedExtensions()
	if len(exts) != 8 {
		t.Fatalf("expected 8 extensions, got %d", len(exts))
	}
	for i := 1; i < len(exts); i++ {
		if exts[i-1] >= exts[i] {
			t.Errorf("extensions not sorted: %v", exts)
			break
		}
	}
}

func TestLoaderSupported(t *testing.T) {
	loader := NewGrammarLoader()
	for _, lang := range []string{"javascript", "typescript", "tsx"} {
		if !loader.Supported(lang) {
			t.Errorf("expected %s grammar", lang)
		}
		if loader.Language(lang) == nil {
			t.Errorf("%s grammar is nil", lang)
		}
	}
	if loader.Supported("python") {
		t.Error("python must not be supported")
	}
}
