package render

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/AWCY-Arms/awcy-nfo/pkg/errors"
)

// ensureExt appends ext when the file does not already carry it
func ensureExt(file, ext string) string {
	if file != "" && filepath.Ext(file) != ext {
		return file + ext
	}
	return file
}

// stem is the file name without directory or extension
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ResolveTemplatePath validates the input template path. A missing .yaml
// extension is appended before the lookup.
func ResolveTemplatePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", errors.New(errors.ErrInvalidInput, "missing template file")
	}
	path = ensureExt(strings.TrimSpace(path), ".yaml")
	if !isFile(path) {
		return "", errors.Newf(errors.ErrInvalidInput, "invalid template file '%s'", path)
	}
	return filepath.Abs(path)
}

// ResolveOutputPath derives the readme file path from the template path
// and the optional output/filename parameters:
//   - output and filename: filename inside output (or output's parent when
//     output is an existing file)
//   - output only: template stem inside output when it is a directory;
//     output itself when it already names a .txt file; otherwise the stem
//     inside output-as-directory
//   - filename only: filename beside the template
//   - neither: template path with a .txt extension
//
// Parent directories are created; an existing target warns before being
// overwritten.
func ResolveOutputPath(templatePath, output, filename string, logger zerolog.Logger) (string, error) {
	var path string
	switch {
	case output != "" && filename != "":
		if isFile(output) {
			logger.Warn().Str("output", output).Msg("Output is a file, using parent directory")
			path = filepath.Join(filepath.Dir(output), filename)
		} else {
			path = filepath.Join(output, filename)
		}
	case output != "":
		switch {
		case isDir(output):
			path = filepath.Join(output, stem(templatePath)+".txt")
		case filepath.Ext(output) == ".txt":
			path = output
		default:
			path = filepath.Join(output, stem(templatePath)+".txt")
		}
	case filename != "":
		path = filepath.Join(filepath.Dir(templatePath), filename)
	default:
		path = filepath.Join(filepath.Dir(templatePath), stem(templatePath)+".txt")
	}

	path, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInvalidInput, "resolving output path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", errors.Wrap(err, errors.ErrFileWrite, "creating output directory")
	}
	if isFile(path) {
		logger.Warn().Str("path", path).Msg("Existing file will be overwritten")
	}
	logger.Info().Str("path", path).Msg("Output")
	return path, nil
}
