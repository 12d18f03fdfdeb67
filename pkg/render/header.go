package render

import (
	"os"
	"strings"

	"github.com/AWCY-Arms/awcy-nfo/pkg/assets"
	"github.com/AWCY-Arms/awcy-nfo/pkg/errors"
)

// The ASCII header block resolves through a four-step fallback chain:
// explicit parameter, template attribute, style attribute, default style
// attribute. Each miss warns and falls through; exhausting the chain is
// fatal.

func (r *ReadMe) makeHeader() error {
	r.logger.Info().Msg("=> Header ...")
	data, err := r.loadHeader()
	if err != nil {
		return err
	}
	align, err := r.headerAlignment()
	if err != nil {
		return err
	}
	ll, err := r.builder.styles.Int("line_length")
	if err != nil {
		return err
	}

	// each raw line keeps its original length: trailing whitespace is
	// stripped and restored as spaces before justification, so block
	// headers keep their right-hand spacing
	for _, raw := range strings.SplitAfter(string(data), "\n") {
		if raw == "" {
			continue
		}
		stripped := strings.TrimRight(raw, " \t\r\n")
		line := stripped + spaces(len(raw)-len(stripped))
		switch align {
		case "right":
			line = padLeft(line, ll)
		case "left":
			line = padRight(line, ll)
		case "center":
			line = center(line, ll)
		}
		r.lines = append(r.lines, line+"\n")
	}

	r.logger.Info().Msg("=> Subheader ...")
	subheader, err := r.builder.styles.Lookup("subheader")
	if err != nil {
		return err
	}
	r.lines = append(r.lines, "\n", center(subheader, ll)+"\n", "\n")
	return nil
}

func (r *ReadMe) loadHeader() ([]byte, error) {
	if data := r.headerFromParam(); data != nil {
		return data, nil
	}
	if data := r.headerFromTemplate(); data != nil {
		return data, nil
	}
	if data := r.headerFromStyle(); data != nil {
		return data, nil
	}
	if data := r.headerFromDefault(); data != nil {
		return data, nil
	}
	name, _ := r.defaults.Get("header")
	return nil, errors.Newf(errors.ErrHeaderNotFound,
		"invalid default fallback header '%s'", headerFile(name))
}

func (r *ReadMe) headerFromParam() []byte {
	if r.headerParam == "" {
		return nil
	}
	// an existing file wins over a bundled resource of the same name;
	// the path keeps the caller's case, only resource names are lowercased
	path := ensureExt(strings.TrimSpace(r.headerParam), ".txt")
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		if data, err := os.ReadFile(path); err == nil {
			r.logger.Info().Str("header", path).Msg("Header: (parameter)")
			return data
		}
	}
	name := headerFile(r.headerParam)
	if data, err := assets.Header(name); err == nil {
		r.logger.Info().Str("header", name).Msg("Header: (parameter)")
		return data
	}
	r.logger.Warn().Str("header", name).
		Msg("Invalid header parameter, falling back to template header")
	return nil
}

func (r *ReadMe) headerFromTemplate() []byte {
	attr, ok := r.doc.Attr("header")
	if !ok {
		return nil
	}
	name := headerFile(attr)
	if data, err := assets.Header(name); err == nil {
		r.logger.Info().Str("header", name).Msg("Header: (template)")
		return data
	}
	r.logger.Warn().Str("header", name).
		Msg("Invalid header template, falling back to style header")
	return nil
}

func (r *ReadMe) headerFromStyle() []byte {
	attr, ok := r.override.Get("header")
	if !ok {
		return nil
	}
	name := headerFile(attr)
	if data, err := assets.Header(name); err == nil {
		r.logger.Info().Str("header", name).Msg("Header: (style)")
		return data
	}
	fallback, _ := r.defaults.Get("header")
	r.logger.Warn().Str("header", name).Str("fallback", headerFile(fallback)).
		Msg("Invalid header style, falling back to default header")
	return nil
}

func (r *ReadMe) headerFromDefault() []byte {
	attr, ok := r.defaults.Get("header")
	if !ok {
		return nil
	}
	name := headerFile(attr)
	if data, err := assets.Header(name); err == nil {
		r.logger.Info().Str("header", name).Msg("Header: (default)")
		return data
	}
	return nil
}

// headerAlignment resolves template attribute, then style, then default,
// validating each candidate
func (r *ReadMe) headerAlignment() (string, error) {
	if v, ok := r.doc.Attr("header_alignment"); ok && validAlignment(v) {
		align := strings.ToLower(v)
		r.logger.Info().Str("alignment", align).Msg("HeaderAlignment: (template)")
		return align, nil
	}
	if v, ok := r.override.Get("header_alignment"); ok && validAlignment(v) {
		align := strings.ToLower(v)
		r.logger.Info().Str("alignment", align).Msg("HeaderAlignment: (style)")
		return align, nil
	}
	v, ok := r.defaults.Get("header_alignment")
	if !ok || !validAlignment(v) {
		return "", errors.Newf(errors.ErrStyleDefaultMissing,
			"default style has no valid 'header_alignment'")
	}
	align := strings.ToLower(v)
	r.logger.Warn().Str("alignment", align).
		Msg("Using fallback value for 'header_alignment'")
	return align, nil
}

func validAlignment(v string) bool {
	switch strings.ToLower(v) {
	case "center", "left", "right":
		return true
	}
	return false
}

// headerFile normalizes a header name for resource lookup
func headerFile(name string) string {
	return ensureExt(strings.ToLower(strings.TrimSpace(name)), ".txt")
}
