package pwconf

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"spatial/internal/graph"
)

// Render serializes a validated graph plus its device binding into a
// PipeWire filter-chain conf fragment. Output is deterministic for
// identical inputs: nodes are emitted splitters, then convolvers in
// channel order, then mixers, and links are grouped by producer.
//
// The playback rate is pinned on this node only; nothing here touches the
// session-wide clock configuration.
func Render(g *graph.Graph, deviceID, displayName string, sampleRate int, gen Generation) (string, error) {
	if g == nil {
		return "", fmt.Errorf("nil graph")
	}
	if err := g.Validate(); err != nil {
		return "", err
	}
	if err := checkQuotable("display name", displayName); err != nil {
		return "", err
	}
	if err := checkQuotable("device id", deviceID); err != nil {
		return "", err
	}
	for _, n := range g.Nodes {
		if n.Kind == graph.KindConvolver {
			if err := checkQuotable("impulse response path", n.AssetPath); err != nil {
				return "", err
			}
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s: spatial audio sink, generated %s (%s)\n",
		displayName, gen.Time.Format(time.RFC3339), gen.ID)
	b.WriteString("# Managed by spatial; remove with `spatial uninstall` rather than editing.\n")
	b.WriteString("context.modules = [\n")
	b.WriteString("    {   name = libpipewire-module-filter-chain\n")
	b.WriteString("        args = {\n")
	fmt.Fprintf(&b, "            node.description = \"%s\"\n", displayName)
	fmt.Fprintf(&b, "            media.name       = \"%s\"\n", displayName)
	b.WriteString("            filter.graph = {\n")
	writeNodes(&b, g)
	writeLinks(&b, g)
	writePorts(&b, "inputs ", g.Inputs)
	writePorts(&b, "outputs", g.Outputs)
	b.WriteString("            }\n")
	b.WriteString("            capture.props = {\n")
	fmt.Fprintf(&b, "                node.name        = \"%s\"\n", SinkNodeName)
	fmt.Fprintf(&b, "                node.description = \"%s\"\n", displayName)
	b.WriteString("                media.class      = Audio/Sink\n")
	b.WriteString("                audio.channels   = 2\n")
	b.WriteString("                audio.position   = [ FL FR ]\n")
	b.WriteString("            }\n")
	b.WriteString("            playback.props = {\n")
	fmt.Fprintf(&b, "                node.name      = \"%s.output\"\n", SinkNodeName)
	b.WriteString("                node.passive   = true\n")
	b.WriteString("                audio.channels = 2\n")
	b.WriteString("                audio.position = [ FL FR ]\n")
	fmt.Fprintf(&b, "                audio.rate     = %d\n", sampleRate)
	fmt.Fprintf(&b, "                target.object  = \"%s\"\n", deviceID)
	b.WriteString("            }\n")
	b.WriteString("        }\n")
	b.WriteString("    }\n")
	b.WriteString("]\n")
	return b.String(), nil
}

// orderedNodes returns nodes grouped splitters → convolvers → mixers, with
// convolvers in channel order and the rest by name.
func orderedNodes(g *graph.Graph) []graph.Node {
	nodes := make([]graph.Node, len(g.Nodes))
	copy(nodes, g.Nodes)
	rank := func(k graph.NodeKind) int {
		switch k {
		case graph.KindSplitter:
			return 0
		case graph.KindConvolver:
			return 1
		default:
			return 2
		}
	}
	sort.SliceStable(nodes, func(i, j int) bool {
		if ri, rj := rank(nodes[i].Kind), rank(nodes[j].Kind); ri != rj {
			return ri < rj
		}
		if nodes[i].Kind == graph.KindConvolver {
			return nodes[i].Channel < nodes[j].Channel
		}
		return nodes[i].Name < nodes[j].Name
	})
	return nodes
}

func writeNodes(b *strings.Builder, g *graph.Graph) {
	b.WriteString("                nodes = [\n")
	for _, n := range orderedNodes(g) {
		switch n.Kind {
		case graph.KindSplitter:
			fmt.Fprintf(b, "                    { type = builtin label = copy name = %s }\n", n.Name)
		case graph.KindConvolver:
			fmt.Fprintf(b, "                    { type = builtin label = convolver name = %s config = { filename = \"%s\" channel = %d } }\n",
				n.Name, n.AssetPath, n.Channel)
		case graph.KindMixer:
			fmt.Fprintf(b, "                    { type = builtin label = mixer name = %s }\n", n.Name)
		}
	}
	b.WriteString("                ]\n")
}

func writeLinks(b *strings.Builder, g *graph.Graph) {
	order := map[string]int{}
	for i, n := range orderedNodes(g) {
		order[n.Name] = i
	}
	links := make([]graph.Link, len(g.Links))
	copy(links, g.Links)
	sort.SliceStable(links, func(i, j int) bool {
		if oi, oj := order[links[i].From.Node], order[links[j].From.Node]; oi != oj {
			return oi < oj
		}
		return order[links[i].To.Node] < order[links[j].To.Node]
	})

	b.WriteString("                links = [\n")
	for _, l := range links {
		fmt.Fprintf(b, "                    { output = \"%s\" input = \"%s\" }\n", l.From, l.To)
	}
	b.WriteString("                ]\n")
}

func writePorts(b *strings.Builder, label string, ports []graph.PortRef) {
	quoted := make([]string, 0, len(ports))
	for _, p := range ports {
		quoted = append(quoted, fmt.Sprintf("%q", p.String()))
	}
	fmt.Fprintf(b, "                %s = [ %s ]\n", label, strings.Join(quoted, " "))
}
