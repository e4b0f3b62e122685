// Package tree renders recorded split trees as node-link diagrams.
//
// Each node is one region visited by the partitioner. Edges are labelled
// with the split that produced them ("h@120" is a horizontal split along row
// 120). Regions that were split twice keep both subtrees; the one painted
// over by the later split is drawn dashed and grey.
package tree

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/mondrian/pkg/canvas"
	apperrors "github.com/matzehuels/mondrian/pkg/errors"
	"github.com/matzehuels/mondrian/pkg/mondrian"
)

// Output formats.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
	FormatPNG = "png"
)

// Formats lists every supported tree format.
var Formats = []string{FormatDOT, FormatSVG, FormatPNG}

// Options configures diagram generation.
type Options struct {
	// Detailed adds region bounds and depth to node labels.
	Detailed bool
	// VisibleOnly drops subtrees that were painted over.
	VisibleOnly bool
	// Canvas, if set, colours terminal nodes with their interior pixel.
	Canvas canvas.Grid
}

// ToDOT converts a split tree to Graphviz DOT source.
func ToDOT(t *mondrian.Tree, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"filled\", fillcolor=white, fontsize=14, margin=\"0.15,0.05\"];\n")
	buf.WriteString("  edge [fontsize=10];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.2;\n")
	buf.WriteString("\n")

	if t == nil || t.Root == nil {
		buf.WriteString("}\n")
		return buf.String()
	}

	w := dotWriter{buf: &buf, opts: opts}
	w.node(t.Root, true)

	buf.WriteString("}\n")
	return buf.String()
}

type dotWriter struct {
	buf  *bytes.Buffer
	opts Options
	next int
}

func (w *dotWriter) node(n *mondrian.Node, visible bool) string {
	id := fmt.Sprintf("n%d", w.next)
	w.next++

	fmt.Fprintf(w.buf, "  %s [%s];\n", id, strings.Join(w.attrs(n, visible), ", "))

	for i, s := range n.Splits {
		last := i == len(n.Splits)-1
		if w.opts.VisibleOnly && !(visible && last) {
			continue
		}
		for _, child := range s.Children {
			if child == nil {
				continue
			}
			cid := w.node(child, visible && last)
			edge := []string{fmt.Sprintf("label=%q", splitLabel(s))}
			if !(visible && last) {
				edge = append(edge, "style=dashed", "color=grey")
			}
			fmt.Fprintf(w.buf, "  %s -> %s [%s];\n", id, cid, strings.Join(edge, ", "))
		}
	}
	return id
}

func (w *dotWriter) attrs(n *mondrian.Node, visible bool) []string {
	attrs := []string{fmt.Sprintf("label=%q", w.label(n))}
	switch {
	case !visible:
		attrs = append(attrs, "style=\"filled,dashed\"", "fillcolor=lightgrey", "fontcolor=grey30")
	case n.Filled && w.opts.Canvas != nil:
		if hex, ok := interiorHex(w.opts.Canvas, n.Region); ok {
			attrs = append(attrs, fmt.Sprintf("fillcolor=%q", hex), fmt.Sprintf("fontcolor=%q", contrast(hex)))
		}
	}
	return attrs
}

func (w *dotWriter) label(n *mondrian.Node) string {
	r := n.Region
	size := fmt.Sprintf("%dx%d", r.DX()+1, r.DY()+1)
	if !w.opts.Detailed {
		return size
	}
	return fmt.Sprintf("%s\n%s\ndepth: %d", size, r, n.Depth)
}

func splitLabel(s *mondrian.Split) string {
	if s.Orientation == mondrian.Horizontal {
		return fmt.Sprintf("h@%d", s.At)
	}
	return fmt.Sprintf("v@%d", s.At)
}

// interiorHex samples the first interior pixel of r. Regions too thin to
// have an interior report false.
func interiorHex(g canvas.Grid, r mondrian.Region) (string, bool) {
	if r.DX() < 2 || r.DY() < 2 || !r.Within(g) {
		return "", false
	}
	c, ok := colorful.MakeColor(g.At(r.XStart+1, r.YStart+1))
	if !ok {
		return "", false
	}
	return c.Hex(), true
}

// contrast picks a readable label colour for a fill.
func contrast(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "black"
	}
	if l, _, _ := c.Lab(); l < 0.5 {
		return "white"
	}
	return "black"
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	data, err := render(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(data), nil
}

// RenderPNG renders DOT source to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based svg header with a pixel
// one so the diagram scales in browsers.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// Render produces the tree diagram in the requested format.
func Render(ctx context.Context, t *mondrian.Tree, format string, opts Options) ([]byte, error) {
	dot := ToDOT(t, opts)
	switch format {
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG:
		return RenderSVG(ctx, dot)
	case FormatPNG:
		return RenderPNG(ctx, dot)
	default:
		return nil, apperrors.New(apperrors.ErrCodeInvalidFormat, "unsupported tree format: %q", format)
	}
}
