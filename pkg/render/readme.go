// Package render turns a parsed readme template and a resolved style into
// the finished fixed-width text document.
//
// The document is assembled in a fixed order: header block, About, Release
// Notes, Credits, any remaining optional sections in source order, footer.
// The three named sections are required. A failure in any stage logs the
// cause and falls through to the write step, which flushes whatever lines
// were accumulated before the failure.
package render

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/AWCY-Arms/awcy-nfo/pkg/errors"
	"github.com/AWCY-Arms/awcy-nfo/pkg/style"
	"github.com/AWCY-Arms/awcy-nfo/pkg/template"
)

// Required section names, compared by exact string equality
const (
	sectionAbout        = "About"
	sectionReleaseNotes = "Release Notes"
	sectionCredits      = "Credits"
)

// ReadMe renders one document. Instances hold per-render state (line
// buffer, indent tracker, style memoization) and must not be reused.
type ReadMe struct {
	doc         *template.Document
	builder     *Builder
	override    style.Sheet
	defaults    style.Sheet
	headerParam string
	lines       []string
	completed   []string
	tracker     indentTracker
	logger      zerolog.Logger
}

// NewReadMe prepares a render of doc with the given style sheet pair. The
// header parameter, when non-empty, takes precedence over the template's
// and style's header choices.
func NewReadMe(doc *template.Document, override, defaults style.Sheet, headerParam string, logger zerolog.Logger) *ReadMe {
	resolver := style.NewResolver(override, defaults).WithLogger(logger)
	return &ReadMe{
		doc:         doc,
		builder:     NewBuilder(resolver, logger),
		override:    override,
		defaults:    defaults,
		headerParam: headerParam,
		logger:      logger,
	}
}

// Render produces the document lines. On failure the accumulated partial
// buffer is returned alongside the error so the caller can still flush it.
func (r *ReadMe) Render() ([]string, error) {
	steps := []struct {
		name string
		fn   func() error
	}{
		{"header", r.makeHeader},
		{"about", r.makeAbout},
		{"release notes", r.makeReleaseNotes},
		{"credits", r.makeCredits},
		{"optionals", r.makeOptionals},
		{"footer", r.makeFooter},
	}
	for _, step := range steps {
		if err := step.fn(); err != nil {
			r.logger.Error().Err(err).Str("stage", step.name).
				Msg("Render failed, flushing partial output")
			return r.lines, err
		}
	}
	return r.lines, nil
}

func (r *ReadMe) append(lines []string, err error) error {
	if err != nil {
		return err
	}
	r.lines = append(r.lines, lines...)
	return nil
}

func (r *ReadMe) spacer() error {
	return r.append(r.builder.Spacer())
}

func (r *ReadMe) divider() error {
	return r.append(r.builder.Divider())
}

func (r *ReadMe) text(text string, opts TextOptions) error {
	return r.append(r.builder.Text(text, opts))
}

func (r *ReadMe) sectionHeader(title string) error {
	return r.append(r.builder.SectionHeader(title))
}

func (r *ReadMe) subsectionHeader(title string) error {
	return r.append(r.builder.SubsectionHeader(title))
}

func (r *ReadMe) makeAbout() error {
	r.logger.Info().Msg("=> About ...")
	if err := r.divider(); err != nil {
		return err
	}
	if err := r.spacer(); err != nil {
		return err
	}

	sec, content, ok := r.doc.Section(sectionAbout)
	if !ok {
		return errors.Newf(errors.ErrRequiredMissing,
			"required template section '%s', not found", sectionAbout)
	}
	title, ok := template.SeqLookup(content, "title")
	if !ok {
		return errors.New(errors.ErrRequiredMissing,
			"required template attribute 'title', not found")
	}
	version, ok := template.SeqLookup(content, "version")
	if !ok {
		return errors.New(errors.ErrRequiredMissing,
			"required template attribute 'version', not found")
	}

	if err := r.text(title, TextOptions{Align: sec.Alignment}); err != nil {
		return err
	}
	if subtitle, ok := template.SeqLookup(content, "subtitle"); ok {
		if err := r.text(subtitle, TextOptions{Align: sec.Alignment}); err != nil {
			return err
		}
	}
	if err := r.text(normalizeVersion(version), TextOptions{Align: sec.Alignment}); err != nil {
		return err
	}
	if err := r.spacer(); err != nil {
		return err
	}
	r.completed = append(r.completed, sec.Name)
	return nil
}

func (r *ReadMe) makeReleaseNotes() error {
	r.logger.Info().Msg("=> Release Notes ...")
	sec, content, ok := r.doc.Section(sectionReleaseNotes)
	if !ok {
		return errors.Newf(errors.ErrRequiredMissing,
			"required template section '%s', not found", sectionReleaseNotes)
	}
	if err := r.sectionHeader(sec.Name); err != nil {
		return err
	}
	if err := r.spacer(); err != nil {
		return err
	}
	if content != nil {
		// release notes render flush against the section margin
		if err := r.walk(sec, content, 0, 0); err != nil {
			return err
		}
		if sec.Spacing == "single" {
			if err := r.spacer(); err != nil {
				return err
			}
		}
	} else {
		if err := r.spacer(); err != nil {
			return err
		}
	}
	r.completed = append(r.completed, sec.Name)
	return nil
}

func (r *ReadMe) makeCredits() error {
	r.logger.Info().Msg("=> Credits ...")
	sec, content, ok := r.doc.Section(sectionCredits)
	if !ok {
		return errors.Newf(errors.ErrRequiredMissing,
			"required template section '%s', not found", sectionCredits)
	}
	if err := r.sectionHeader(sec.Name); err != nil {
		return err
	}
	if content != nil {
		if err := r.primaryCredits(content); err != nil {
			return err
		}
		if err := r.secondaryCredits(content); err != nil {
			return err
		}
		if err := r.additionalThanks(content); err != nil {
			return err
		}
	} else {
		// no credits given, thank the team and move on
		if err := r.spacer(); err != nil {
			return err
		}
		team, err := r.builder.styles.Lookup("credits_team_thx")
		if err != nil {
			return err
		}
		if err := r.text(team, TextOptions{Align: "center"}); err != nil {
			return err
		}
		if err := r.spacer(); err != nil {
			return err
		}
	}
	r.completed = append(r.completed, sec.Name)
	return nil
}

// makeOptionals renders every section not already rendered by name, in
// source document order
func (r *ReadMe) makeOptionals() error {
	for _, p := range r.doc.Pairs() {
		sec := p.Key.Section
		if sec == nil || r.isCompleted(sec.Name) || p.Value == nil {
			continue
		}
		r.tracker.Reset()
		r.logger.Info().Msgf("=> %s ...", sec.Name)
		if err := r.sectionHeader(sec.Name); err != nil {
			return err
		}
		if err := r.spacer(); err != nil {
			return err
		}
		if err := r.walk(sec, p.Value, -1, 0); err != nil {
			return err
		}
		if sec.Spacing == "single" {
			if err := r.spacer(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *ReadMe) makeFooter() error {
	r.logger.Info().Msg("=> Footer ...")
	if err := r.divider(); err != nil {
		return err
	}
	if err := r.spacer(); err != nil {
		return err
	}
	align, err := r.builder.styles.Lookup("footer_alignment")
	if err != nil {
		return err
	}
	for _, attr := range []string{"footer", "subfooter", "contact_us"} {
		value, err := r.builder.styles.Lookup(attr)
		if err != nil {
			return err
		}
		if err := r.text(value, TextOptions{Align: align}); err != nil {
			return err
		}
	}
	if err := r.spacer(); err != nil {
		return err
	}
	return r.divider()
}

func (r *ReadMe) isCompleted(name string) bool {
	for _, c := range r.completed {
		if c == name {
			return true
		}
	}
	return false
}

// normalizeVersion prefixes a bare version with "v"
func normalizeVersion(version string) string {
	if !strings.HasPrefix(version, "v") {
		return "v" + version
	}
	return version
}
