// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/layout"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"golang.org/x/paperbench/results"
)

// ruleGraph is the rule compatibility graph. Node IDs are rule
// indexes. Nodes and neighbors iterate in ID order so layouts are
// reproducible.
type ruleGraph struct {
	*simple.UndirectedGraph
}

func (g ruleGraph) Nodes() graph.Nodes {
	return sortedNodes(g.UndirectedGraph.Nodes())
}

func (g ruleGraph) From(id int64) graph.Nodes {
	return sortedNodes(g.UndirectedGraph.From(id))
}

func sortedNodes(it graph.Nodes) graph.Nodes {
	nodes := graph.NodesOf(it)
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })
	return iterator.NewOrderedNodes(nodes)
}

// An edgeKey is an unordered pair of rule indexes, smaller first.
type edgeKey [2]int

func pair(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// ruleEdges holds the edges drawn for a rule graph, by kind.
type ruleEdges struct {
	// Direct are the declared compatibility edges.
	Direct []edgeKey
	// Clique are pairs inside a clique of at least three rules.
	Clique []edgeKey
	// Transitive join two rules at different positions that share
	// a compatible neighbor but are neither direct nor clique
	// edges.
	Transitive []edgeKey
	// Subtraction are the direct edges in no clique.
	Subtraction []edgeKey
}

// classifyRuleEdges builds the compatibility graph of g and classifies
// its edges. Edges to unknown rule IDs are ignored. When g declares no
// cliques, the maximal cliques of the compatibility graph are used.
func classifyRuleEdges(g *results.SARRuleGraph) (ruleGraph, ruleEdges) {
	index := make(map[string]int, len(g.Rules))
	for i, r := range g.Rules {
		index[r.ID] = i
	}
	ug := ruleGraph{simple.NewUndirectedGraph()}
	for i := range g.Rules {
		ug.AddNode(simple.Node(i))
	}
	direct := make(map[edgeKey]bool)
	for i, r := range g.Rules {
		for _, id := range r.CompatibleWith {
			j, ok := index[id]
			if !ok || j == i {
				continue
			}
			direct[pair(i, j)] = true
			ug.SetEdge(ug.NewEdge(simple.Node(i), simple.Node(j)))
		}
	}

	var cliques [][]int
	for _, c := range g.Cliques {
		var members []int
		for _, id := range c.Rules {
			if j, ok := index[id]; ok {
				members = append(members, j)
			}
		}
		cliques = append(cliques, members)
	}
	if len(g.Cliques) == 0 {
		for _, c := range topo.BronKerbosch(ug) {
			members := make([]int, len(c))
			for k, n := range c {
				members[k] = int(n.ID())
			}
			cliques = append(cliques, members)
		}
	}
	clique := make(map[edgeKey]bool)
	for _, members := range cliques {
		if len(members) < 3 {
			continue
		}
		for a := range members {
			for b := a + 1; b < len(members); b++ {
				if members[a] != members[b] {
					clique[pair(members[a], members[b])] = true
				}
			}
		}
	}

	transitive := make(map[edgeKey]bool)
	for mid := range g.Rules {
		var nbrs []int
		for it := ug.From(int64(mid)); it.Next(); {
			nbrs = append(nbrs, int(it.Node().ID()))
		}
		for a := range nbrs {
			for b := a + 1; b < len(nbrs); b++ {
				x, y := nbrs[a], nbrs[b]
				if g.Rules[x].Position == g.Rules[y].Position {
					continue
				}
				k := pair(x, y)
				if !direct[k] && !clique[k] {
					transitive[k] = true
				}
			}
		}
	}

	var e ruleEdges
	e.Direct = sortedKeys(direct)
	e.Clique = sortedKeys(clique)
	e.Transitive = sortedKeys(transitive)
	for _, k := range e.Direct {
		if !clique[k] && !transitive[k] {
			e.Subtraction = append(e.Subtraction, k)
		}
	}
	return ug, e
}

func sortedKeys(m map[edgeKey]bool) []edgeKey {
	keys := make([]edgeKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i][0] != keys[j][0] {
			return keys[i][0] < keys[j][0]
		}
		return keys[i][1] < keys[j][1]
	})
	return keys
}

// keyRules returns the indexes of the k rules ranked highest by
// amplification times support, then by degree.
func keyRules(rules []results.Rule, degree []int, k int) []int {
	idx := make([]int, len(rules))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		i, j := idx[a], idx[b]
		si, sj := rules[i].Amplification*rules[i].Support, rules[j].Amplification*rules[j].Support
		if si != sj {
			return si > sj
		}
		return degree[i] > degree[j]
	})
	return idx[:min(k, len(idx))]
}

const keyRuleLabels = 14

var edgeStyles = []struct {
	label string
	style draw.LineStyle
}{
	{"Clique", draw.LineStyle{Color: withAlpha(hexColor("#C53030"), 0.7), Width: vg.Points(2.5)}},
	{"Transitive", draw.LineStyle{Color: withAlpha(hexColor("#2B6CB0"), 0.5), Width: vg.Points(1.8), Dashes: dashed}},
	{"Subtraction", draw.LineStyle{Color: withAlpha(hexColor("#38A169"), 0.4), Width: vg.Points(1.2), Dashes: dashPatterns[3]}},
}

func sarRuleGraph(r *Renderer, exp *results.Experiment, st results.Style) (*figure, error) {
	var g results.SARRuleGraph
	if err := exp.Decode(&g); err != nil {
		return nil, err
	}
	if len(g.Rules) == 0 {
		return nil, fmt.Errorf("%w: experiment %s", ErrEmpty, exp.ID)
	}
	ug, edges := classifyRuleEdges(&g)
	if len(edges.Direct) == 0 {
		return ruleScatter(&g, st.TitleOr(exp.Title))
	}

	eades := layout.EadesR2{Repulsion: 1, Rate: 0.05, Updates: 150, Theta: 0.2, Src: rand.NewSource(42)}
	opt := layout.NewOptimizerR2(ug, eades.Update)
	for opt.Update() {
	}
	pos := make([]plotter.XY, len(g.Rules))
	for i := range g.Rules {
		pos[i] = plotter.XY(opt.Coord2(int64(i)))
	}

	p := plot.New()
	p.Title.Text = st.TitleOr(exp.Title)
	p.Title.TextStyle.Font.Size = 12
	p.HideAxes()

	for k, set := range [][]edgeKey{edges.Clique, edges.Transitive, edges.Subtraction} {
		sty := edgeStyles[k].style
		for _, e := range set {
			l, err := plotter.NewLine(plotter.XYs{pos[e[0]], pos[e[1]]})
			if err != nil {
				return nil, err
			}
			l.LineStyle = sty
			p.Add(l)
		}
		thumb, err := plotter.NewLine(plotter.XYs{{}})
		if err != nil {
			return nil, err
		}
		thumb.LineStyle = sty
		p.Legend.Add(edgeStyles[k].label, thumb)
	}
	p.Legend.Top = true
	p.Legend.TextStyle.Font.Size = 9

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, rule := range g.Rules {
		lo, hi = min(lo, rule.Amplification), max(hi, rule.Amplification)
	}
	if !(lo < hi) {
		lo, hi = lo-0.5, hi+0.5
	}
	cm := colorMap(st.Cmap)
	cm.SetMin(lo)
	cm.SetMax(hi)

	degree := make([]int, len(g.Rules))
	for i := range degree {
		degree[i] = ug.From(int64(i)).Len()
	}
	nodes, err := plotter.NewScatter(plotter.XYs(pos))
	if err != nil {
		return nil, err
	}
	nodes.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		rule := g.Rules[i]
		clr, err := cm.At(rule.Amplification)
		if err != nil {
			clr = color.Gray{Y: 0x80}
		}
		area := 60 + 14*math.Sqrt(max(0, rule.Support)) + 12*math.Sqrt(float64(degree[i]))
		return draw.GlyphStyle{
			Color:  withAlpha(clr, 0.9),
			Radius: vg.Points(math.Sqrt(area / math.Pi)),
			Shape:  draw.CircleGlyph{},
		}
	}
	p.Add(nodes)

	keys := keyRules(g.Rules, degree, keyRuleLabels)
	labels := plotter.XYLabels{XYs: make(plotter.XYs, len(keys)), Labels: make([]string, len(keys))}
	for k, i := range keys {
		rule := g.Rules[i]
		labels.XYs[k] = pos[i]
		labels.Labels[k] = fmt.Sprintf("P%d\n%s→%s", rule.Position, rule.From, rule.To)
	}
	lbl, err := plotter.NewLabels(labels)
	if err != nil {
		return nil, err
	}
	for i := range lbl.TextStyle {
		lbl.TextStyle[i].Font.Size = 7
		lbl.TextStyle[i].XAlign = draw.XCenter
		lbl.TextStyle[i].YAlign = draw.YCenter
	}
	p.Add(lbl)

	return withColorBar(p, cm, "Amplification factor", 8.2*vg.Inch, 6.8*vg.Inch), nil
}

// ruleScatter plots amplification against position, for rule sets
// without compatibility edges.
func ruleScatter(g *results.SARRuleGraph, title string) (*figure, error) {
	p := newPlot(title, "Position", "Amplification Factor")
	labels := plotter.XYLabels{XYs: make(plotter.XYs, len(g.Rules)), Labels: make([]string, len(g.Rules))}
	for i, rule := range g.Rules {
		labels.XYs[i] = plotter.XY{X: float64(rule.Position), Y: rule.Amplification}
		labels.Labels[i] = fmt.Sprintf("P%d%s→%s", rule.Position, rule.From, rule.To)
	}
	sc, err := plotter.NewScatter(labels.XYs)
	if err != nil {
		return nil, err
	}
	sc.GlyphStyle.Color = withAlpha(seriesColor(0), 0.7)
	sc.GlyphStyle.Radius = vg.Points(5)
	sc.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(sc)
	lbl, err := plotter.NewLabels(labels)
	if err != nil {
		return nil, err
	}
	for i := range lbl.TextStyle {
		lbl.TextStyle[i].Font.Size = 8
	}
	lbl.Offset = vg.Point{X: vg.Points(4), Y: vg.Points(4)}
	p.Add(lbl)
	return single(p, 7.2*vg.Inch, 5.4*vg.Inch), nil
}
