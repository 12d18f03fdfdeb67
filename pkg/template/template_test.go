package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AWCY-Arms/awcy-nfo/pkg/assets"
	"github.com/AWCY-Arms/awcy-nfo/pkg/errors"
)

const sample = `header: classic
style: classic

!section About~center~single:
  - title: Example Project
  - subtitle: ""
  - version: 1.0.0

!section Release Notes~left:
  - Initial public release.
  - changes:
      - Added the widget

!section Credits~center~single:
  primary_thx:
    - Alice
  !subsection Extras:
    note: hi
`

func TestParse(t *testing.T) {
	doc, err := Parse([]byte(sample))
	require.NoError(t, err)

	// plain attributes
	v, ok := doc.Attr("header")
	assert.True(t, ok)
	assert.Equal(t, "classic", v)

	_, ok = doc.Attr("missing")
	assert.False(t, ok)

	// section markers carry alignment and spacing
	sec, content, ok := doc.Section("About")
	require.True(t, ok)
	assert.Equal(t, "center", sec.Alignment)
	assert.Equal(t, "single", sec.Spacing)
	require.NotNil(t, content)
	assert.Equal(t, KindSequence, content.Kind)

	// spacing defaults to double when the marker omits it
	sec, _, ok = doc.Section("Release Notes")
	require.True(t, ok)
	assert.Equal(t, "double", sec.Spacing)

	_, _, ok = doc.Section("Nope")
	assert.False(t, ok)
}

func TestParseExampleTemplate(t *testing.T) {
	doc, err := Parse(assets.ExampleTemplate())
	require.NoError(t, err)
	for _, name := range []string{"About", "Release Notes", "Credits", "Print Settings"} {
		_, _, ok := doc.Section(name)
		assert.True(t, ok, "example template is missing section %q", name)
	}
}

func TestSectionOrderPreserved(t *testing.T) {
	doc, err := Parse([]byte(sample))
	require.NoError(t, err)

	var names []string
	for _, p := range doc.Pairs() {
		if p.Key.Section != nil {
			names = append(names, p.Key.Section.Name)
		}
	}
	assert.Equal(t, []string{"About", "Release Notes", "Credits"}, names)
}

func TestSubsectionKey(t *testing.T) {
	doc, err := Parse([]byte(sample))
	require.NoError(t, err)

	_, content, ok := doc.Section("Credits")
	require.True(t, ok)
	require.Equal(t, KindMapping, content.Kind)

	var sub *Subsection
	for _, p := range content.Pairs {
		if p.Key.Subsection != nil {
			sub = p.Key.Subsection
		}
	}
	require.NotNil(t, sub)
	assert.Equal(t, "Extras", sub.Name)
}

func TestColumns(t *testing.T) {
	doc, err := Parse([]byte(sample))
	require.NoError(t, err)

	_, content, ok := doc.Section("Release Notes")
	require.True(t, ok)
	require.Equal(t, KindSequence, content.Kind)

	// top-level section content starts two columns in
	assert.Equal(t, 4, content.Column)

	// the nested sequence under "changes" sits deeper than its parent
	changes, ok := content.Items[1].Lookup("changes")
	require.True(t, ok)
	assert.Greater(t, changes.Column, content.Column)
}

func TestNullValues(t *testing.T) {
	doc, err := Parse([]byte("!section Notes~left~single:\n"))
	require.NoError(t, err)

	_, content, ok := doc.Section("Notes")
	assert.True(t, ok)
	assert.Nil(t, content)
}

func TestSeqLookup(t *testing.T) {
	doc, err := Parse([]byte(sample))
	require.NoError(t, err)
	_, about, _ := doc.Section("About")

	title, ok := SeqLookup(about, "title")
	assert.True(t, ok)
	assert.Equal(t, "Example Project", title)

	// version parsed as a non-string scalar still reads back as text
	version, ok := SeqLookup(about, "version")
	assert.True(t, ok)
	assert.Equal(t, "1.0.0", version)

	// blank values count as absent
	_, ok = SeqLookup(about, "subtitle")
	assert.False(t, ok)

	_, ok = SeqLookup(about, "license")
	assert.False(t, ok)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		code   errors.ErrorCode
	}{
		{"invalid yaml", "a: [unclosed", errors.ErrTemplateParse},
		{"empty document", "", errors.ErrTemplateParse},
		{"scalar root", "just text", errors.ErrTemplateParse},
		{"bad section marker", "!section OnlyName:\n  - a\n", errors.ErrTemplateParse},
		{"unnamed subsection", "!section A~left:\n  !subsection \"\": x\n", errors.ErrTemplateParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.source))
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}
}
