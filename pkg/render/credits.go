package render

import (
	"strings"

	"github.com/AWCY-Arms/awcy-nfo/pkg/template"
)

// Credits have bespoke sub-rendering: primary thanks get glyph-wrapped
// centered lines, secondary thanks collapse to one comma-joined centered
// line, and the team line always renders, falling back to the style's
// credits_team_thx when the template gives nothing.

func (r *ReadMe) primaryCredits(content *template.Node) error {
	thanks, ok := creditList(content, "primary_thx")
	if !ok {
		return nil
	}
	if err := r.spacer(); err != nil {
		return err
	}
	heading, err := r.builder.styles.Lookup("credits_primary_thx")
	if err != nil {
		return err
	}
	if err := r.subsectionHeader(heading); err != nil {
		return err
	}

	pre, err := r.builder.styles.Lookup("credits_pre")
	if err != nil {
		return err
	}
	post, err := r.builder.styles.Lookup("credits_post")
	if err != nil {
		return err
	}
	offset, err := r.builder.styles.Int("credits_offset")
	if err != nil {
		return err
	}
	for _, name := range thanks {
		err := r.text(decorate(pre, post, name), TextOptions{
			Align:  "center",
			Offset: offset,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *ReadMe) secondaryCredits(content *template.Node) error {
	thanks, ok := creditList(content, "secondary_thx")
	if !ok {
		return nil
	}
	if err := r.spacer(); err != nil {
		return err
	}
	heading, err := r.builder.styles.Lookup("credits_secondary_thx")
	if err != nil {
		return err
	}
	if err := r.subsectionHeader(heading); err != nil {
		return err
	}

	// the last creditor reads "and <name>"
	if len(thanks) >= 2 {
		thanks[len(thanks)-1] = "and " + thanks[len(thanks)-1]
	}
	return r.text(strings.Join(thanks, ", "), TextOptions{
		Align:     "center",
		Delimiter: ",",
	})
}

func (r *ReadMe) additionalThanks(content *template.Node) error {
	if err := r.spacer(); err != nil {
		return err
	}
	heading, err := r.builder.styles.Lookup("credits_additional_thx")
	if err != nil {
		return err
	}
	if err := r.subsectionHeader(heading); err != nil {
		return err
	}

	if thanks, ok := creditList(content, "additional_thx"); ok {
		// trailing ", and" leads into the team line below
		joined := strings.Join(thanks, ", ") + ", and"
		err := r.text(joined, TextOptions{Align: "center", Delimiter: ","})
		if err != nil {
			return err
		}
		if err := r.spacer(); err != nil {
			return err
		}
	}

	team := ""
	if v, found := content.Lookup("team_thx"); found && v != nil && v.Kind == template.KindScalar {
		team = strings.TrimSpace(v.Value)
	}
	if team == "" {
		team, err = r.builder.styles.Lookup("credits_team_thx")
		if err != nil {
			return err
		}
	}
	if err := r.text(team, TextOptions{Align: "center"}); err != nil {
		return err
	}
	return r.spacer()
}

// creditList extracts the scalar entries of a named credit list; false
// when the key is absent, null, or empty
func creditList(content *template.Node, key string) ([]string, bool) {
	node, found := content.Lookup(key)
	if !found || node == nil || node.Kind != template.KindSequence {
		return nil, false
	}
	var entries []string
	for _, item := range node.Items {
		if item != nil && item.Kind == template.KindScalar {
			entries = append(entries, item.Value)
		}
	}
	return entries, len(entries) > 0
}
