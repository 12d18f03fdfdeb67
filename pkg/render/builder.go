package render

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/AWCY-Arms/awcy-nfo/pkg/style"
)

// Builder produces finished, fixed-width output lines from resolved style
// attributes. Every returned line is terminated with a line break, and
// bordered lines are exactly line_length characters wide.
type Builder struct {
	styles *style.Resolver
	logger zerolog.Logger
}

// NewBuilder wraps a style resolver for line production
func NewBuilder(styles *style.Resolver, logger zerolog.Logger) *Builder {
	return &Builder{styles: styles, logger: logger}
}

// TextOptions control paragraph layout
type TextOptions struct {
	// Align is "left" or "center"
	Align string
	// Delimiter is the wrap delimiter; a single space when empty
	Delimiter string
	// Indent shifts the paragraph's left margin
	Indent int
	// SecIndent is the extra indent applied to continuation lines of a
	// wrapped paragraph so they line up under the wrapped text
	SecIndent int
	// Offset narrows the usable width for glyphs whose rendered width
	// differs from their character count
	Offset int
}

// Spacer returns one border-to-border blank line
func (b *Builder) Spacer() ([]string, error) {
	ll, err := b.styles.Int("line_length")
	if err != nil {
		return nil, err
	}
	start, err := b.styles.Lookup("line_start_char")
	if err != nil {
		return nil, err
	}
	stop, err := b.styles.Lookup("line_end_char")
	if err != nil {
		return nil, err
	}
	return []string{start + spaces(ll-len(start)-len(stop)) + stop + "\n"}, nil
}

// Divider returns one border-to-border divider line. The fill segment's
// length is floor(contentWidth * percent / 100), justified within the
// content width per line_div_alignment and padded with the fill character.
func (b *Builder) Divider() ([]string, error) {
	ll, err := b.styles.Int("line_length")
	if err != nil {
		return nil, err
	}
	start, err := b.styles.Lookup("line_start_char")
	if err != nil {
		return nil, err
	}
	stop, err := b.styles.Lookup("line_end_char")
	if err != nil {
		return nil, err
	}
	fill, err := b.styles.Lookup("line_div_char")
	if err != nil {
		return nil, err
	}
	pct, err := b.styles.Int("line_div_percent")
	if err != nil {
		return nil, err
	}
	align, err := b.styles.Lookup("line_div_alignment")
	if err != nil {
		return nil, err
	}

	width := ll - len(start) - len(stop)
	length := percentOf(pct, width)
	var seg strings.Builder
	for _, ch := range fill {
		seg.WriteString(strings.Repeat(string(ch), length))
	}
	pad := firstRune(fill)

	var div string
	switch align {
	case "right":
		div = padLeftWith(seg.String(), width, pad)
	case "left":
		div = padRightWith(seg.String(), width, pad)
	case "center":
		div = centerWith(seg.String(), width, pad)
	default:
		b.logger.Warn().Str("alignment", align).Msg("Unknown divider alignment, no divider emitted")
		return nil, nil
	}
	return []string{start + div + stop + "\n"}, nil
}

// SectionHeader returns a divider, the decorated aligned title, and a
// second divider
func (b *Builder) SectionHeader(title string) ([]string, error) {
	if title == "" {
		return nil, nil
	}
	pre, err := b.styles.Lookup("section_pre")
	if err != nil {
		return nil, err
	}
	post, err := b.styles.Lookup("section_post")
	if err != nil {
		return nil, err
	}
	align, err := b.styles.Lookup("section_alignment")
	if err != nil {
		return nil, err
	}

	lines, err := b.Divider()
	if err != nil {
		return nil, err
	}
	text, err := b.Text(decorate(pre, post, title), TextOptions{Align: align})
	if err != nil {
		return nil, err
	}
	lines = append(lines, text...)
	bottom, err := b.Divider()
	if err != nil {
		return nil, err
	}
	return append(lines, bottom...), nil
}

// SubsectionHeader returns the decorated aligned title followed by a spacer
func (b *Builder) SubsectionHeader(title string) ([]string, error) {
	if title == "" {
		return nil, nil
	}
	pre, err := b.styles.Lookup("subsection_pre")
	if err != nil {
		return nil, err
	}
	post, err := b.styles.Lookup("subsection_post")
	if err != nil {
		return nil, err
	}
	align, err := b.styles.Lookup("subsection_alignment")
	if err != nil {
		return nil, err
	}

	lines, err := b.Text(decorate(pre, post, title), TextOptions{Align: align})
	if err != nil {
		return nil, err
	}
	spacer, err := b.Spacer()
	if err != nil {
		return nil, err
	}
	return append(lines, spacer...), nil
}

// Text word-wraps text into one or more finished lines. Tokens keep their
// delimiters, so rejoining the emitted slices reproduces the input text.
// The first wrapped line uses the base indent; continuation lines add the
// secondary indent and give up the same amount of width so they stay
// aligned with the start of the wrapped text. Center alignment keeps the
// full width on every line.
func (b *Builder) Text(text string, opts TextOptions) ([]string, error) {
	if text == "" {
		return nil, nil
	}
	if opts.Delimiter == "" {
		opts.Delimiter = " "
	}
	if opts.Indent < 0 {
		b.logger.Warn().Int("indent", opts.Indent).Msg("Using a negative indent value")
	}

	buffer, err := b.styles.Int("line_buffer")
	if err != nil {
		return nil, err
	}
	ll, err := b.styles.Int("line_length")
	if err != nil {
		return nil, err
	}
	start, err := b.styles.Lookup("line_start_char")
	if err != nil {
		return nil, err
	}
	stop, err := b.styles.Lookup("line_end_char")
	if err != nil {
		return nil, err
	}

	maxLen := ll - (len(start) + len(stop) + 2*buffer + opts.Indent + opts.Offset)
	if len(text) <= maxLen {
		switch opts.Align {
		case "center":
			return []string{b.centerLine(text, maxLen, buffer, start, stop)}, nil
		case "left":
			return []string{b.leftLine(text, maxLen, buffer, start, stop, opts.Indent, 0)}, nil
		default:
			b.logger.Warn().Str("alignment", opts.Align).Msg("Unknown text alignment, no line emitted")
			return nil, nil
		}
	}

	tokens := strings.SplitAfter(text, opts.Delimiter)
	var lines []string
	flushed := 0
	flush := func(slice []string) {
		s := strings.TrimLeft(strings.Join(slice, ""), " \t")
		switch opts.Align {
		case "center":
			lines = append(lines, b.centerLine(s, maxLen, buffer, start, stop))
		case "left":
			if flushed == 0 {
				lines = append(lines, b.leftLine(s, maxLen, buffer, start, stop, opts.Indent, 0))
			} else {
				lines = append(lines, b.leftLine(s, maxLen, buffer, start, stop, opts.Indent, opts.SecIndent))
			}
			// continuation lines are narrower by the secondary indent
			if flushed == 0 {
				maxLen -= opts.SecIndent
			}
		default:
			b.logger.Warn().Str("alignment", opts.Align).Msg("Unknown text alignment, no line emitted")
		}
		flushed++
	}

	var pending []string
	total := 0
	for _, tok := range tokens {
		if total+len(tok) > maxLen && len(pending) > 0 {
			flush(pending)
			pending = pending[:0]
			total = 0
		}
		pending = append(pending, tok)
		total += len(tok)
	}
	if total > 0 {
		flush(pending)
	}
	return lines, nil
}

func (b *Builder) leftLine(text string, maxLen, buffer int, start, stop string, indent, secIndent int) string {
	return start +
		spaces(buffer+indent+secIndent) +
		padRight(text, maxLen) +
		spaces(buffer) +
		stop + "\n"
}

func (b *Builder) centerLine(text string, maxLen, buffer int, start, stop string) string {
	return start +
		spaces(buffer) +
		center(text, maxLen) +
		spaces(buffer) +
		stop + "\n"
}

// decorate wraps title in pre/post glyphs with one separating space per
// non-empty glyph
func decorate(pre, post, title string) string {
	if pre != "" {
		title = pre + " " + title
	}
	if post != "" {
		title = title + " " + post
	}
	return title
}
