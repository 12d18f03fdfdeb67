// Package style defines the visual-layout parameters for a rendered readme
// and the fallback resolution between a partial override sheet and the
// complete built-in default sheet.
//
// A sheet is a flat record of named attributes (border glyphs, line length,
// divider proportions, alignments, credit glyphs, footer text). Override
// sheets may omit attributes; resolution falls back to the default sheet,
// warns once per attribute, and caches the substituted value on the
// override so repeated lookups stay quiet.
package style

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/AWCY-Arms/awcy-nfo/pkg/errors"
	"github.com/AWCY-Arms/awcy-nfo/pkg/logging"
)

// Attribute names recognized by the renderer. The built-in classic sheet
// carries all of them; anything else in a style file is ignored.
var Attributes = []string{
	"header",
	"header_alignment",
	"subheader",
	"line_buffer",
	"line_length",
	"line_div_char",
	"line_div_percent",
	"line_div_alignment",
	"line_start_char",
	"line_end_char",
	"section_pre",
	"section_post",
	"section_alignment",
	"subsection_pre",
	"subsection_post",
	"subsection_alignment",
	"credits_primary_thx",
	"credits_secondary_thx",
	"credits_additional_thx",
	"credits_team_thx",
	"credits_pre",
	"credits_post",
	"credits_offset",
	"footer",
	"footer_alignment",
	"subfooter",
	"contact_us",
}

// Sheet is a flat attribute record. A blank value counts as absent, the
// same as a missing key.
type Sheet map[string]string

// ParseSheet decodes YAML style source into a sheet. Leading and trailing
// whitespace on values is dropped; blank values are dropped entirely so
// they resolve through fallback.
func ParseSheet(data []byte) (Sheet, error) {
	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrStyleNotFound, "style source is not a flat YAML mapping")
	}
	if raw == nil {
		return nil, errors.New(errors.ErrStyleNotFound, "style source is empty")
	}
	sheet := make(Sheet, len(raw))
	for k, v := range raw {
		k = strings.TrimSpace(k)
		v = strings.TrimSpace(v)
		if k == "" || v == "" {
			continue
		}
		sheet[k] = v
	}
	return sheet, nil
}

// Get returns the attribute value and whether it is present and non-blank
func (s Sheet) Get(attr string) (string, bool) {
	v, ok := s[strings.TrimSpace(attr)]
	return v, ok && v != ""
}

// Resolve is the pure fallback lookup: override first, then defaults.
// It reports whether the default was substituted. A default sheet missing
// the attribute is a configuration error with no further fallback.
func Resolve(override, defaults Sheet, attr string) (string, bool, error) {
	if v, ok := override.Get(attr); ok {
		return v, false, nil
	}
	v, ok := defaults.Get(attr)
	if !ok {
		return "", false, errors.Newf(errors.ErrStyleDefaultMissing,
			"default style is missing attribute '%s'", attr).WithDetail("attribute", attr)
	}
	return v, true, nil
}

// Resolver resolves attributes against an override/default sheet pair,
// memoizing fallback results onto the override sheet. One resolver serves
// exactly one render; sheets are read-only afterwards apart from the
// memoization inserts.
type Resolver struct {
	override Sheet
	defaults Sheet
	logger   zerolog.Logger
}

// NewResolver builds a resolver over the sheet pair. A nil override is
// treated as an empty sheet so memoization has somewhere to land.
func NewResolver(override, defaults Sheet) *Resolver {
	if override == nil {
		override = Sheet{}
	}
	return &Resolver{
		override: override,
		defaults: defaults,
		logger:   logging.GetLogger("style"),
	}
}

// WithLogger routes resolver warnings to the given logger (the render
// process log)
func (r *Resolver) WithLogger(logger zerolog.Logger) *Resolver {
	r.logger = logger
	return r
}

// Lookup resolves attr through the fallback chain. On fallback it warns
// once, naming the attribute and substituted value, and writes the value
// back onto the override sheet.
func (r *Resolver) Lookup(attr string) (string, error) {
	v, defaulted, err := Resolve(r.override, r.defaults, attr)
	if err != nil {
		return "", err
	}
	if defaulted {
		r.logger.Warn().Str("attribute", attr).Str("value", v).
			Msg("Using fallback value")
		r.override[strings.TrimSpace(attr)] = v
	}
	return v, nil
}

// Int resolves attr and parses it as an integer
func (r *Resolver) Int(attr string) (int, error) {
	v, err := r.Lookup(attr)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrInvalidInput,
			"style attribute '%s' is not an integer", attr)
	}
	return n, nil
}
