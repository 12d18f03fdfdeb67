package render

import (
	"strings"

	"github.com/AWCY-Arms/awcy-nfo/pkg/errors"
	"github.com/AWCY-Arms/awcy-nfo/pkg/template"
)

// walk traverses a section's content tree in document order, emitting
// lines through the builder. indent -1 means "infer from source columns";
// any other value pins the indent for the subtree.
func (r *ReadMe) walk(sec *template.Section, node *template.Node, indent, secIndent int) error {
	if node == nil {
		return nil
	}
	switch node.Kind {
	case template.KindScalar:
		return r.walkText(sec, node.Value, indent, secIndent)
	case template.KindMapping:
		return r.walkMapping(sec, node, indent)
	case template.KindSequence:
		return r.walkSequence(sec, node, indent)
	default:
		return errors.Newf(errors.ErrMalformedNode,
			"unsupported node kind %d in section '%s'", node.Kind, sec.Name)
	}
}

// walkText renders scalar text: one paragraph per embedded line, spacers
// for interior blank lines, and a spacer after each paragraph when the
// section uses double spacing. Each rendered line fixes the indent
// baseline.
func (r *ReadMe) walkText(sec *template.Section, text string, indent, secIndent int) error {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if len(line) == 0 {
			// no spacer for the trailing blank of a text block
			if i != len(lines)-1 {
				if err := r.spacer(); err != nil {
					return err
				}
			}
			continue
		}
		if indent == -1 {
			indent = 0
		}
		err := r.text(line, TextOptions{
			Align:     sec.Alignment,
			Indent:    indent,
			SecIndent: secIndent,
		})
		if err != nil {
			return err
		}
		if sec.Spacing == "double" {
			if err := r.spacer(); err != nil {
				return err
			}
		}
		r.tracker.Snapshot()
	}
	return nil
}

func (r *ReadMe) walkMapping(sec *template.Section, node *template.Node, indent int) error {
	for _, p := range node.Pairs {
		if p.Key.Subsection != nil {
			if r.tracker.initialized {
				if err := r.spacer(); err != nil {
					return err
				}
			}
			if err := r.subsectionHeader(p.Key.Subsection.Name); err != nil {
				return err
			}
			// subsection content re-infers indentation from scratch
			if err := r.walk(sec, p.Value, -1, 0); err != nil {
				return err
			}
			continue
		}

		ident := indent
		if indent == -1 {
			ident = r.tracker.Compute(node.Column - 2)
		}
		label := p.Key.Label + ": "

		switch {
		case p.Value == nil:
			// a key with a null value carries no content
			r.logger.Debug().Str("key", p.Key.Label).Msg("Skipping empty mapping value")
		case p.Value.Kind == template.KindScalar:
			if err := r.walkText(sec, label+p.Value.Value, ident, len(label)); err != nil {
				return err
			}
		case p.Value.Kind == template.KindMapping:
			if err := r.walkText(sec, label, ident, len(label)); err != nil {
				return err
			}
			if err := r.walk(sec, p.Value, ident, 0); err != nil {
				return err
			}
		case p.Value.Kind == template.KindSequence:
			if err := r.walkText(sec, label, ident, len(label)); err != nil {
				return err
			}
			if err := r.walk(sec, p.Value, ident+2, 0); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *ReadMe) walkSequence(sec *template.Section, node *template.Node, indent int) error {
	for _, item := range node.Items {
		ident := indent
		if indent == -1 {
			ident = r.tracker.Compute(node.Column - 2)
		}
		if err := r.walk(sec, item, ident, 0); err != nil {
			return err
		}
	}
	return nil
}
