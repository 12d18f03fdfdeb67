// Package template parses readme templates into an ordered document tree.
//
// A template is a YAML mapping whose keys are either plain attributes
// (header, style, header_alignment), "!section name~alignment[~spacing]"
// markers, or "!subsection name" markers inside a section. Node order and
// the source column each node starts at are part of the tree: the renderer
// infers nesting indentation from column positions, so the parse keeps
// them.
package template

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/AWCY-Arms/awcy-nfo/pkg/errors"
)

const (
	sectionTag    = "!section"
	subsectionTag = "!subsection"
)

// Kind discriminates the node union
type Kind int

const (
	// KindScalar is text, possibly multi-line via embedded line breaks
	KindScalar Kind = iota
	// KindMapping is an ordered key to node mapping
	KindMapping
	// KindSequence is an ordered list of nodes
	KindSequence
)

// Section marks a named top-level block with its own text alignment
// (left or center) and spacing mode (single or double blank lines)
type Section struct {
	Name      string
	Alignment string
	Spacing   string
}

// Subsection marks a named sub-block inside a section. Alignment and
// spacing come from the enclosing section.
type Subsection struct {
	Name string
}

// Key is a mapping key: a plain label, or a section/subsection marker
type Key struct {
	Label      string
	Section    *Section
	Subsection *Subsection
}

// Pair is one ordered mapping entry
type Pair struct {
	Key   Key
	Value *Node
}

// Node is one vertex of the document tree. Exactly one of Value, Pairs,
// Items is meaningful, selected by Kind. Line and Column are zero-based
// source positions.
type Node struct {
	Kind   Kind
	Value  string
	Pairs  []Pair
	Items  []*Node
	Line   int
	Column int
}

// Document is a parsed template: the ordered top-level mapping
type Document struct {
	root *Node
}

// Parse decodes template source into a document tree
func Parse(data []byte) (*Document, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrTemplateParse, "parsing template")
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.New(errors.ErrTemplateParse, "template is empty")
	}
	root, err := convert(doc.Content[0])
	if err != nil {
		return nil, err
	}
	if root == nil || root.Kind != KindMapping {
		return nil, errors.New(errors.ErrTemplateParse, "template root is not a mapping")
	}
	return &Document{root: root}, nil
}

// convert maps a yaml node onto the closed scalar/mapping/sequence union.
// Null scalars become nil. Anything else is a structural error rather than
// a silent drop.
func convert(n *yaml.Node) (*Node, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return convert(n.Alias)
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return nil, nil
		}
		return &Node{
			Kind:   KindScalar,
			Value:  n.Value,
			Line:   n.Line - 1,
			Column: n.Column - 1,
		}, nil
	case yaml.MappingNode:
		node := &Node{
			Kind:   KindMapping,
			Line:   n.Line - 1,
			Column: n.Column - 1,
			Pairs:  make([]Pair, 0, len(n.Content)/2),
		}
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, err := convertKey(n.Content[i])
			if err != nil {
				return nil, err
			}
			value, err := convert(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			node.Pairs = append(node.Pairs, Pair{Key: key, Value: value})
		}
		return node, nil
	case yaml.SequenceNode:
		// a block sequence's own column points at the dash; indent
		// inference wants the column the item text starts at
		col := n.Column - 1
		if len(n.Content) > 0 {
			col = n.Content[0].Column - 1
		}
		node := &Node{
			Kind:   KindSequence,
			Line:   n.Line - 1,
			Column: col,
			Items:  make([]*Node, 0, len(n.Content)),
		}
		for _, c := range n.Content {
			item, err := convert(c)
			if err != nil {
				return nil, err
			}
			node.Items = append(node.Items, item)
		}
		return node, nil
	default:
		return nil, errors.Newf(errors.ErrMalformedNode,
			"unsupported node at line %d", n.Line)
	}
}

func convertKey(n *yaml.Node) (Key, error) {
	if n.Kind != yaml.ScalarNode {
		return Key{}, errors.Newf(errors.ErrMalformedNode,
			"mapping key at line %d is not a scalar", n.Line)
	}
	switch n.Tag {
	case sectionTag:
		sec, err := parseSection(n.Value)
		if err != nil {
			return Key{}, errors.Wrapf(err, errors.ErrTemplateParse,
				"section marker at line %d", n.Line)
		}
		return Key{Label: sec.Name, Section: sec}, nil
	case subsectionTag:
		name := strings.TrimSpace(n.Value)
		if name == "" {
			return Key{}, errors.Newf(errors.ErrTemplateParse,
				"subsection marker at line %d has no name", n.Line)
		}
		return Key{Label: name, Subsection: &Subsection{Name: name}}, nil
	default:
		return Key{Label: n.Value}, nil
	}
}

// parseSection splits "name~alignment[~spacing]"; spacing defaults to double
func parseSection(value string) (*Section, error) {
	parts := strings.Split(value, "~")
	switch len(parts) {
	case 2:
		return &Section{Name: parts[0], Alignment: parts[1], Spacing: "double"}, nil
	case 3:
		return &Section{Name: parts[0], Alignment: parts[1], Spacing: parts[2]}, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput,
			"expected 'name~alignment[~spacing]', got %q", value)
	}
}

// Pairs returns the ordered top-level entries
func (d *Document) Pairs() []Pair {
	return d.root.Pairs
}

// Attr returns the cleaned value of a plain top-level scalar attribute
func (d *Document) Attr(name string) (string, bool) {
	for _, p := range d.root.Pairs {
		if p.Key.Section != nil || p.Key.Subsection != nil {
			continue
		}
		if p.Key.Label == name {
			if p.Value == nil || p.Value.Kind != KindScalar {
				return "", false
			}
			v := strings.TrimSpace(p.Value.Value)
			return v, v != ""
		}
	}
	return "", false
}

// Section returns the marker and content for the named section. Section
// names are compared by exact string equality; content may be nil for an
// empty section.
func (d *Document) Section(name string) (*Section, *Node, bool) {
	for _, p := range d.root.Pairs {
		if p.Key.Section != nil && p.Key.Section.Name == name {
			return p.Key.Section, p.Value, true
		}
	}
	return nil, nil, false
}

// Lookup finds a plain key inside a mapping node
func (n *Node) Lookup(key string) (*Node, bool) {
	if n == nil || n.Kind != KindMapping {
		return nil, false
	}
	for _, p := range n.Pairs {
		if p.Key.Section == nil && p.Key.Subsection == nil && p.Key.Label == key {
			return p.Value, true
		}
	}
	return nil, false
}

// SeqLookup scans a sequence of single-entry mappings (the About section
// layout) for key and returns its cleaned scalar value
func SeqLookup(n *Node, key string) (string, bool) {
	if n == nil || n.Kind != KindSequence {
		return "", false
	}
	for _, item := range n.Items {
		v, ok := item.Lookup(key)
		if !ok || v == nil || v.Kind != KindScalar {
			continue
		}
		s := strings.TrimSpace(v.Value)
		if s != "" {
			return s, true
		}
	}
	return "", false
}
