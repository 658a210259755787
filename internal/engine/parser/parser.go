package parser

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"hooklint/internal/errors"
)

// File is one parsed source file. The syntax tree stays alive until Close
// is called; node handles taken from Root are invalid afterwards.
type File struct {
	Path     string
	Language string
	Source   []byte
	tree     *sitter.Tree
}

func (f *File) Root() *sitter.Node {
	return f.tree.RootNode()
}

func (f *File) Close() {
	if f.tree != nil {
		f.tree.Close()
		f.tree = nil
	}
}

type Parser struct {
	loader     *GrammarLoader
	extensions map[string]string
}

func NewParser(loader *GrammarLoader) *Parser {
	return &Parser{
		loader: loader,
		extensions: map[string]string{
			".js":  "javascript",
			".jsx": "javascript",
			".mjs": "javascript",
			".cjs": "javascript",
			".ts":  "typescript",
			".mts": "typescript",
			".cts": "typescript",
			".tsx": "tsx",
		},
	}
}

func (p *Parser) ParseFile(path string, content []byte) (*File, error) {
	lang := p.detectLanguage(path)
	if lang == "" {
		return nil, errors.New(errors.CodeNotSupported, "unsupported language")
	}

	grammar := p.loader.Language(lang)
	if grammar == nil {
		return nil, errors.New(errors.CodeInternal, fmt.Sprintf("grammar not loaded: %s", lang))
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(grammar)

	tree := parser.Parse(content, nil)
	if tree == nil {
		return nil, errors.New(errors.CodeInternal, "parse failed")
	}

	return &File{
		Path:     path,
		Language: lang,
		Source:   content,
		tree:     tree,
	}, nil
}

func (p *Parser) detectLanguage(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	return p.extensions[ext]
}

func (p *Parser) IsSupportedPath(path string) bool {
	return p.detectLanguage(path) != ""
}

func (p *Parser) GetLanguage(path string) string {
	return p.detectLanguage(path)
}

func (p *Parser) SupportedExtensions() []string {
	out := make([]string, 0, len(p.extensions))
	for ext := range p.extensions {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}
