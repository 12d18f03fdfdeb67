package main

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort      = "Render stylized AWCY? readme.txt files from yaml templates"
	MsgHeadersShort   = "List bundled ASCII header blocks"
	MsgStylesShort    = "List bundled styles"
	MsgExampleShort   = "Output the example readme template"
	MsgGenStyleShort  = "Output a bundled style sheet as a starting point"
	MsgGenConfigShort = "Generate a default configuration file"
	MsgConfigShort    = "Show the effective configuration"
	MsgVersionShort   = "Print version information"

	// Error messages
	MsgErrNoTemplate = "no template file specified"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v WARN, -vv INFO, -vvv DEBUG)"
	MsgFlagOutput   = "Complete filepath or directory to output the readme file"
	MsgFlagFilename = "Readme filename, overrides '--output' when that names a file"
	MsgFlagHeader   = "Filepath/name of an ascii header file, overrides the template header"
	MsgFlagStyle    = "Filepath/name of a yaml style file, overrides the template style"
	MsgFlagLog      = "Create a log file of the readme.txt creation process"
	MsgFlagWrite    = "Write to a file instead of stdout"
)

// Long messages
const (
	MsgRootLong = `awcy-nfo renders fixed-width, bordered readme.txt files from yaml
templates in the classic NFO style: ASCII-art header, About block,
release notes, credits, and footer.

Templates mark sections with '!section name~alignment~spacing' keys;
everything else nests as plain yaml. See 'awcy-nfo example' for a full
template.

The readme is written beside the template unless --output or --filename
say otherwise. Headers and styles resolve from the command line first,
then the template, then the style sheet, then the built-in defaults.`

	MsgExampleLong = `Output the bundled example template. With --write, 'example.yaml' is
created in the current directory.`

	MsgGenStyleLong = `Output a bundled style sheet. With --write, '<name>_example.yaml' is
created in the current directory for editing.`

	MsgGenConfigLong = `Output the default configuration with every value commented out. With
--write, the file is created at the user configuration path.`
)

// Templates (embedded)
var (
	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
