package graph

// NodeKind identifies the processing role of a node. Nodes never change
// kind after creation.
type NodeKind int

const (
	KindSplitter NodeKind = iota
	KindConvolver
	KindMixer
)

func (k NodeKind) String() string {
	switch k {
	case KindSplitter:
		return "splitter"
	case KindConvolver:
		return "convolver"
	case KindMixer:
		return "mixer"
	default:
		return "unknown"
	}
}

// Convolver channel indices into the 4-channel impulse response asset.
const (
	ChannelDirectL = 0
	ChannelDirectR = 1
	ChannelCrossLR = 2
	ChannelCrossRL = 3
)

// Node is a processing node in the signal graph. AssetPath and Channel are
// meaningful for convolver nodes only.
type Node struct {
	Name      string
	Kind      NodeKind
	AssetPath string
	Channel   int
}

// PortRef names a port on a node. Ports are named rather than indexed so
// that mixer inputs stay unambiguous.
type PortRef struct {
	Node string
	Port string
}

func (p PortRef) String() string { return p.Node + ":" + p.Port }

// Link is a directed edge between two ports.
type Link struct {
	From PortRef
	To   PortRef
}

// Graph is the full signal routing description: nodes, links, and the
// graph's external stereo input and output ports. A graph is built fresh
// per install and never mutated after validation.
type Graph struct {
	Nodes   []Node
	Links   []Link
	Inputs  []PortRef
	Outputs []PortRef
}

// node returns the named node, or nil.
func (g *Graph) node(name string) *Node {
	for i := range g.Nodes {
		if g.Nodes[i].Name == name {
			return &g.Nodes[i]
		}
	}
	return nil
}
