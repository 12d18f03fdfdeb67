package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AWCY-Arms/awcy-nfo/pkg/errors"
	"github.com/AWCY-Arms/awcy-nfo/pkg/template"
)

func TestCreateEndToEnd(t *testing.T) {
	dir := t.TempDir()
	tmpl := writeFile(t, filepath.Join(dir, "project.yaml"), sampleTemplate)

	err := Create(Options{TemplateFile: tmpl, LogToFile: true})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "project.txt"))
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "..:: Are We Cool Yet? ::..")
	assert.Contains(t, out, "..:: Release Notes ::..")
	assert.Contains(t, out, "Guns Are Civil Rights")

	// the process log lands beside the readme
	log, err := os.ReadFile(filepath.Join(dir, "project.log"))
	require.NoError(t, err)
	assert.Contains(t, string(log), "Readme written")
}

func TestCreateWithoutProcessLog(t *testing.T) {
	dir := t.TempDir()
	tmpl := writeFile(t, filepath.Join(dir, "project.yaml"), sampleTemplate)

	err := Create(Options{TemplateFile: tmpl})
	require.NoError(t, err)

	assert.True(t, isFile(filepath.Join(dir, "project.txt")))
	assert.False(t, isFile(filepath.Join(dir, "project.log")))
}

func TestCreateOutputOptions(t *testing.T) {
	dir := t.TempDir()
	tmpl := writeFile(t, filepath.Join(dir, "project.yaml"), sampleTemplate)

	err := Create(Options{
		TemplateFile: tmpl,
		Output:       filepath.Join(dir, "dist"),
		Filename:     "release",
	})
	require.NoError(t, err)
	assert.True(t, isFile(filepath.Join(dir, "dist", "release.txt")))
}

func TestCreateFlushesPartialOnRenderFailure(t *testing.T) {
	dir := t.TempDir()
	src := `!section About~center~single:
  - title: Example
`
	tmpl := writeFile(t, filepath.Join(dir, "broken.yaml"), src)

	err := Create(Options{TemplateFile: tmpl})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRequiredMissing))

	// whatever rendered before the failure is still written
	data, rerr := os.ReadFile(filepath.Join(dir, "broken.txt"))
	require.NoError(t, rerr)
	assert.Contains(t, string(data), "..:: Are We Cool Yet? ::..")
	assert.NotContains(t, string(data), "..:: Release Notes ::..")
}

func TestCreateMissingTemplate(t *testing.T) {
	err := Create(Options{TemplateFile: filepath.Join(t.TempDir(), "absent")})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestCreateUnparsableTemplate(t *testing.T) {
	dir := t.TempDir()
	tmpl := writeFile(t, filepath.Join(dir, "bad.yaml"), "a: [unclosed\n")

	err := Create(Options{TemplateFile: tmpl})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateParse))
}

func TestLoadStyleSheet(t *testing.T) {
	logger := zerolog.Nop()
	doc, err := template.Parse([]byte("style: minimal\n"))
	require.NoError(t, err)
	empty, err := template.Parse([]byte("header: classic\n"))
	require.NoError(t, err)

	t.Run("parameter file", func(t *testing.T) {
		path := writeFile(t, filepath.Join(t.TempDir(), "custom.yaml"),
			"footer: Custom Footer\n")
		sheet, err := loadStyleSheet(path, empty, logger)
		require.NoError(t, err)
		v, ok := sheet.Get("footer")
		assert.True(t, ok)
		assert.Equal(t, "Custom Footer", v)
	})

	t.Run("parameter file with uppercase path", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "Styles")
		path := writeFile(t, filepath.Join(dir, "Custom.yaml"),
			"footer: Custom Footer\n")
		sheet, err := loadStyleSheet(path, empty, logger)
		require.NoError(t, err)
		v, ok := sheet.Get("footer")
		assert.True(t, ok)
		assert.Equal(t, "Custom Footer", v)
	})

	t.Run("parameter resource", func(t *testing.T) {
		sheet, err := loadStyleSheet("minimal", empty, logger)
		require.NoError(t, err)
		assert.NotEmpty(t, sheet)
	})

	t.Run("template attribute", func(t *testing.T) {
		sheet, err := loadStyleSheet("", doc, logger)
		require.NoError(t, err)
		assert.NotEmpty(t, sheet)
	})

	t.Run("invalid parameter falls through", func(t *testing.T) {
		sheet, err := loadStyleSheet("no-such-style", empty, logger)
		require.NoError(t, err)
		// the bundled default carries the full attribute set
		v, ok := sheet.Get("subheader")
		assert.True(t, ok)
		assert.Equal(t, "..:: Are We Cool Yet? ::..", v)
	})
}

func TestStyleFile(t *testing.T) {
	assert.Equal(t, "classic.yaml", styleFile("Classic"))
	assert.Equal(t, "classic.yaml", styleFile(" classic.yaml "))
}
