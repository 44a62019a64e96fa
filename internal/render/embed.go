package render

import (
	"path"
	"regexp"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// KindVaultEmbed identifies wiki-embed nodes (![[target]]).
var KindVaultEmbed = ast.NewNodeKind("VaultEmbed")

// VaultEmbed is an inline node for a vault-relative embed reference.
// It renders as a non-standard marker span; the inlining pipeline decides
// whether the target is an embeddable image.
type VaultEmbed struct {
	ast.BaseInline
	Target string // vault-relative link target, verbatim from the source
	Alias  string // optional display alias after the pipe
}

// Kind implements ast.Node.
func (n *VaultEmbed) Kind() ast.NodeKind {
	return KindVaultEmbed
}

// Dump implements ast.Node.
func (n *VaultEmbed) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Target": n.Target,
		"Alias":  n.Alias,
	}, nil)
}

// embedPattern matches ![[target]] and ![[target|alias]] at the reader head.
var embedPattern = regexp.MustCompile(`^!\[\[([^\[\]|]+?)(?:\|([^\[\]]*))?\]\]`)

// embedParser parses wiki embeds as inline nodes.
type embedParser struct{}

// Trigger implements parser.InlineParser.
func (p *embedParser) Trigger() []byte {
	return []byte{'!'}
}

// Parse implements parser.InlineParser.
func (p *embedParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	line, _ := block.PeekLine()
	m := embedPattern.FindSubmatch(line)
	if m == nil {
		return nil
	}
	block.Advance(len(m[0]))
	return &VaultEmbed{
		Target: string(m[1]),
		Alias:  string(m[2]),
	}
}

// embedRenderer renders VaultEmbed nodes as embed-marker spans:
//
//	<span class="internal-embed" src="TARGET" alt="ALIAS">
//
// The marker carries the raw link target; normalization into an image node
// happens later, in the inlining pipeline.
type embedRenderer struct{}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *embedRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindVaultEmbed, r.renderVaultEmbed)
}

func (r *embedRenderer) renderVaultEmbed(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*VaultEmbed)

	alt := n.Alias
	if alt == "" {
		alt = path.Base(n.Target)
	}

	_, _ = w.WriteString(`<span class="internal-embed" src="`)
	_, _ = w.Write(util.EscapeHTML([]byte(n.Target)))
	_, _ = w.WriteString(`" alt="`)
	_, _ = w.Write(util.EscapeHTML([]byte(alt)))
	_, _ = w.WriteString(`">`)
	_, _ = w.Write(util.EscapeHTML([]byte(alt)))
	_, _ = w.WriteString(`</span>`)
	return ast.WalkContinue, nil
}

// vaultEmbedExtension wires the embed parser and renderer into goldmark.
type vaultEmbedExtension struct{}

// VaultEmbedExtension enables ![[target]] wiki embeds.
func VaultEmbedExtension() goldmark.Extender {
	return &vaultEmbedExtension{}
}

// Extend implements goldmark.Extender.
func (e *vaultEmbedExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(&embedParser{}, 150),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&embedRenderer{}, 500),
	))
}
