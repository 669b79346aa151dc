package graph

import (
	"errors"
	"fmt"
)

// ErrInvariant marks a structural fault in a built graph. With the fixed
// topology this is a defect in the builder, never user input.
var ErrInvariant = errors.New("signal graph invariant violated")

func invariantf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvariant, fmt.Sprintf(format, args...))
}

// Validate checks the structural invariants: node counts per kind, full
// convolver channel coverage, splitter→convolver→mixer wiring, acyclicity,
// and the absence of orphaned nodes.
func (g *Graph) Validate() error {
	if err := g.validateNodes(); err != nil {
		return err
	}
	if err := g.validateWiring(); err != nil {
		return err
	}
	if err := g.validateAcyclic(); err != nil {
		return err
	}
	return g.validateExternalPorts()
}

func (g *Graph) validateNodes() error {
	counts := map[NodeKind]int{}
	seen := map[string]bool{}
	channels := map[int]string{}
	assetPath := ""

	for _, n := range g.Nodes {
		if n.Name == "" {
			return invariantf("node with empty name")
		}
		if seen[n.Name] {
			return invariantf("duplicate node name %q", n.Name)
		}
		seen[n.Name] = true
		counts[n.Kind]++

		if n.Kind == KindConvolver {
			if n.Channel < ChannelDirectL || n.Channel > ChannelCrossRL {
				return invariantf("convolver %q has channel %d outside 0-3", n.Name, n.Channel)
			}
			if prev, ok := channels[n.Channel]; ok {
				return invariantf("channel %d bound to both %q and %q", n.Channel, prev, n.Name)
			}
			channels[n.Channel] = n.Name
			if n.AssetPath == "" {
				return invariantf("convolver %q has no impulse response path", n.Name)
			}
			if assetPath == "" {
				assetPath = n.AssetPath
			} else if n.AssetPath != assetPath {
				return invariantf("convolver %q uses %q, others use %q", n.Name, n.AssetPath, assetPath)
			}
		}
	}

	if counts[KindSplitter] != 2 {
		return invariantf("expected 2 splitters, have %d", counts[KindSplitter])
	}
	if counts[KindConvolver] != 4 {
		return invariantf("expected 4 convolvers, have %d", counts[KindConvolver])
	}
	if counts[KindMixer] != 2 {
		return invariantf("expected 2 mixers, have %d", counts[KindMixer])
	}
	if len(channels) != 4 {
		return invariantf("convolver channels cover %d of 4 indices", len(channels))
	}
	return nil
}

func (g *Graph) validateWiring() error {
	inbound := map[string][]Link{}
	outbound := map[string][]Link{}
	for _, l := range g.Links {
		if g.node(l.From.Node) == nil {
			return invariantf("link from unknown node %q", l.From.Node)
		}
		if g.node(l.To.Node) == nil {
			return invariantf("link to unknown node %q", l.To.Node)
		}
		inbound[l.To.Node] = append(inbound[l.To.Node], l)
		outbound[l.From.Node] = append(outbound[l.From.Node], l)
	}

	for _, n := range g.Nodes {
		switch n.Kind {
		case KindConvolver:
			in := inbound[n.Name]
			if len(in) != 1 {
				return invariantf("convolver %q has %d inbound links, want 1", n.Name, len(in))
			}
			src := g.node(in[0].From.Node)
			if src.Kind != KindSplitter {
				return invariantf("convolver %q fed by %s %q, want a splitter", n.Name, src.Kind, src.Name)
			}
		case KindMixer:
			in := inbound[n.Name]
			if len(in) != 2 {
				return invariantf("mixer %q has %d inbound links, want 2", n.Name, len(in))
			}
			if in[0].To.Port == in[1].To.Port {
				return invariantf("mixer %q receives two links on port %q", n.Name, in[0].To.Port)
			}
			direct, cross := 0, 0
			for _, l := range in {
				src := g.node(l.From.Node)
				if src.Kind != KindConvolver {
					return invariantf("mixer %q fed by %s %q, want a convolver", n.Name, src.Kind, src.Name)
				}
				if src.Channel == ChannelDirectL || src.Channel == ChannelDirectR {
					direct++
				} else {
					cross++
				}
			}
			if direct != 1 || cross != 1 {
				return invariantf("mixer %q has %d direct and %d cross inputs, want 1 and 1", n.Name, direct, cross)
			}
		}
	}

	// Orphan check: a node without a graph input port needs an inbound
	// link; a node without a graph output port needs an outbound link.
	hasInput := map[string]bool{}
	for _, p := range g.Inputs {
		hasInput[p.Node] = true
	}
	hasOutput := map[string]bool{}
	for _, p := range g.Outputs {
		hasOutput[p.Node] = true
	}
	for _, n := range g.Nodes {
		if !hasInput[n.Name] && len(inbound[n.Name]) == 0 {
			return invariantf("node %q has no inbound link", n.Name)
		}
		if !hasOutput[n.Name] && len(outbound[n.Name]) == 0 {
			return invariantf("node %q has no outbound link", n.Name)
		}
	}
	return nil
}

func (g *Graph) validateAcyclic() error {
	indegree := map[string]int{}
	next := map[string][]string{}
	for _, n := range g.Nodes {
		indegree[n.Name] = 0
	}
	for _, l := range g.Links {
		indegree[l.To.Node]++
		next[l.From.Node] = append(next[l.From.Node], l.To.Node)
	}

	var ready []string
	for name, deg := range indegree {
		if deg == 0 {
			ready = append(ready, name)
		}
	}

	visited := 0
	for len(ready) > 0 {
		name := ready[len(ready)-1]
		ready = ready[:len(ready)-1]
		visited++
		for _, succ := range next[name] {
			indegree[succ]--
			if indegree[succ] == 0 {
				ready = append(ready, succ)
			}
		}
	}
	if visited != len(g.Nodes) {
		return invariantf("graph contains a cycle")
	}
	return nil
}

func (g *Graph) validateExternalPorts() error {
	if len(g.Inputs) != 2 {
		return invariantf("expected 2 graph inputs, have %d", len(g.Inputs))
	}
	if len(g.Outputs) != 2 {
		return invariantf("expected 2 graph outputs, have %d", len(g.Outputs))
	}
	for _, p := range g.Inputs {
		n := g.node(p.Node)
		if n == nil {
			return invariantf("graph input on unknown node %q", p.Node)
		}
		if n.Kind != KindSplitter {
			return invariantf("graph input on %s %q, want a splitter", n.Kind, n.Name)
		}
	}
	for _, p := range g.Outputs {
		n := g.node(p.Node)
		if n == nil {
			return invariantf("graph output on unknown node %q", p.Node)
		}
		if n.Kind != KindMixer {
			return invariantf("graph output on %s %q, want a mixer", n.Kind, n.Name)
		}
	}
	return nil
}
