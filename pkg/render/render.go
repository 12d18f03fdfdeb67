package render

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/AWCY-Arms/awcy-nfo/pkg/assets"
	"github.com/AWCY-Arms/awcy-nfo/pkg/errors"
	"github.com/AWCY-Arms/awcy-nfo/pkg/logging"
	"github.com/AWCY-Arms/awcy-nfo/pkg/style"
	"github.com/AWCY-Arms/awcy-nfo/pkg/template"
)

// Options are the inputs of one readme creation
type Options struct {
	// TemplateFile is the readme template; .yaml is appended when missing
	TemplateFile string
	// Output is a target directory or .txt file path
	Output string
	// Filename overrides the readme file name
	Filename string
	// Header names a bundled header or an external header file
	Header string
	// Style names a bundled style or an external style file
	Style string
	// LogToFile writes a process log beside the readme
	LogToFile bool
	// Verbosity carries the CLI verbosity into the process log
	Verbosity int
}

// Create runs the full pipeline: resolve paths, parse the template, load
// styles, render, and write. A render failure still flushes whatever
// partial output was accumulated before returning the failure.
func Create(opts Options) error {
	logger := logging.GetLogger("render")

	defaults, err := loadDefaultSheet()
	if err != nil {
		logger.Error().Err(err).Msg("Default style is unusable")
		return err
	}

	templatePath, err := ResolveTemplatePath(opts.TemplateFile)
	if err != nil {
		logger.Error().Err(err).Msg("Invalid input")
		return err
	}
	logger.Info().Str("path", templatePath).Msg("Input")

	outputPath, err := ResolveOutputPath(
		templatePath,
		strings.TrimSpace(opts.Output),
		ensureExt(strings.TrimSpace(opts.Filename), ".txt"),
		logger,
	)
	if err != nil {
		logger.Error().Err(err).Msg("Invalid output")
		return err
	}

	// the process log lives beside the readme and mirrors render decisions
	if opts.LogToFile {
		logPath := strings.TrimSuffix(outputPath, filepath.Ext(outputPath)) + ".log"
		plog, perr := logging.NewProcessLog(logPath, opts.Verbosity)
		if perr != nil {
			logger.Warn().Err(perr).Msg("Process log unavailable, logging to console only")
		} else {
			defer func() {
				if cerr := plog.Close(); cerr != nil {
					logger.Warn().Err(cerr).Msg("Closing process log")
				}
			}()
			logger = plog.Logger
			logger.Info().Str("input", templatePath).Str("output", outputPath).
				Msg("Render started")
		}
	}

	data, err := os.ReadFile(templatePath)
	if err != nil {
		err = errors.Wrap(err, errors.ErrInvalidInput, "reading template")
		logger.Error().Err(err).Msg("Cannot read template")
		return err
	}
	doc, err := template.Parse(data)
	if err != nil {
		logger.Error().Err(err).Msg("Cannot parse template")
		return err
	}

	override, err := loadStyleSheet(strings.TrimSpace(opts.Style), doc, logger)
	if err != nil {
		logger.Error().Err(err).Msg("Cannot load style")
		return err
	}

	readme := NewReadMe(doc, override, defaults, strings.TrimSpace(opts.Header), logger)
	lines, renderErr := readme.Render()

	if err := WriteLines(outputPath, lines, logger); err != nil && renderErr == nil {
		renderErr = err
	}
	return renderErr
}

// WriteLines flushes the line buffer to path. An empty buffer writes
// nothing and reports the failed creation.
func WriteLines(path string, lines []string, logger zerolog.Logger) error {
	if len(lines) == 0 {
		err := errors.New(errors.ErrEmptyOutput, "failed readme file creation, no content to write")
		logger.Error().Err(err).Msg("Nothing written")
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "creating readme file")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logger.Warn().Err(cerr).Msg("Closing readme file")
		}
	}()
	for _, line := range lines {
		if _, err := f.WriteString(line); err != nil {
			return errors.Wrap(err, errors.ErrFileWrite, "writing readme file")
		}
	}
	logger.Info().Str("path", path).Int("lines", len(lines)).Msg("Readme written")
	return nil
}

// loadDefaultSheet parses the embedded default style. It must be complete;
// a broken default is a configuration error with no fallback.
func loadDefaultSheet() (style.Sheet, error) {
	data, err := assets.Style(assets.DefaultStyle)
	if err != nil {
		return nil, err
	}
	return style.ParseSheet(data)
}

// loadStyleSheet resolves the override style through its fallback chain:
// explicit parameter (file or bundled resource), template attribute,
// bundled default. Each miss warns and falls through.
func loadStyleSheet(param string, doc *template.Document, logger zerolog.Logger) (style.Sheet, error) {
	if param != "" {
		if sheet := readSheet(param, logger); sheet != nil {
			logger.Info().Str("style", param).Msg("Style: (parameter)")
			return sheet, nil
		}
		logger.Warn().Str("style", param).
			Msg("Invalid style parameter, falling back to template style")
	}
	if attr, ok := doc.Attr("style"); ok {
		name := styleFile(attr)
		if data, err := assets.Style(name); err == nil {
			if sheet, err := style.ParseSheet(data); err == nil {
				logger.Info().Str("style", name).Msg("Style: (template)")
				return sheet, nil
			}
		}
		logger.Warn().Str("style", name).Str("fallback", assets.DefaultStyle).
			Msg("Invalid style template, falling back to default style")
	}
	data, err := assets.Style(assets.DefaultStyle)
	if err != nil {
		return nil, err
	}
	sheet, err := style.ParseSheet(data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrStyleNotFound,
			"invalid default fallback style '%s'", assets.DefaultStyle)
	}
	logger.Info().Str("style", assets.DefaultStyle).Msg("Style: (default)")
	return sheet, nil
}

// readSheet loads a style from an existing file, else from the bundled
// resources; nil when neither parses. The file check keeps the caller's
// case, only the resource name is lowercased.
func readSheet(param string, logger zerolog.Logger) style.Sheet {
	path := ensureExt(strings.TrimSpace(param), ".yaml")
	if isFile(path) {
		if data, err := os.ReadFile(path); err == nil {
			if sheet, err := style.ParseSheet(data); err == nil {
				return sheet
			}
			logger.Warn().Str("style", path).Msg("Style file does not parse")
		}
		return nil
	}
	if data, err := assets.Style(styleFile(param)); err == nil {
		if sheet, err := style.ParseSheet(data); err == nil {
			return sheet
		}
	}
	return nil
}

// styleFile normalizes a style name for resource lookup
func styleFile(name string) string {
	return ensureExt(strings.ToLower(strings.TrimSpace(name)), ".yaml")
}
