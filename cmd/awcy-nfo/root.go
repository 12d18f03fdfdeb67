package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/AWCY-Arms/awcy-nfo/internal/version"
	"github.com/AWCY-Arms/awcy-nfo/pkg/config"
	"github.com/AWCY-Arms/awcy-nfo/pkg/errors"
	"github.com/AWCY-Arms/awcy-nfo/pkg/logging"
	"github.com/AWCY-Arms/awcy-nfo/pkg/render"
)

// NewRootCmd creates and returns the root command. The root itself is the
// renderer: 'awcy-nfo template.yaml' creates the readme.
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var (
		verbosity int
		output    string
		filename  string
		header    string
		styleName string
		logToFile bool
	)

	rootCmd := &cobra.Command{
		Use:     "awcy-nfo <template>",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// No template given: show help but report incorrect usage
				_ = cmd.Help()
				return errors.New(errors.ErrInvalidInput, MsgErrNoTemplate)
			}
			logger := logging.GetLogger("cmd")

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			// flags beat config, config beats built-in defaults
			if !cmd.Flags().Changed("style") && cfg.Render.Style != "" {
				styleName = cfg.Render.Style
			}
			if !cmd.Flags().Changed("header") && cfg.Render.Header != "" {
				header = cfg.Render.Header
			}
			if !cmd.Flags().Changed("output") && cfg.Output.Dir != "" {
				output = cfg.Output.Dir
			}
			if !cmd.Flags().Changed("filename") && cfg.Output.Filename != "" {
				filename = cfg.Output.Filename
			}
			if !cmd.Flags().Changed("log") {
				logToFile = cfg.Log.File
			}

			logger.Info().
				Str("template", args[0]).
				Str("style", styleName).
				Str("header", header).
				Bool("log", logToFile).
				Msg("Starting readme creation")

			return render.Create(render.Options{
				TemplateFile: args[0],
				Output:       output,
				Filename:     filename,
				Header:       header,
				Style:        styleName,
				LogToFile:    logToFile,
				Verbosity:    verbosity,
			})
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)

	// Render flags
	rootCmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)
	rootCmd.Flags().StringVarP(&filename, "filename", "f", "", MsgFlagFilename)
	rootCmd.Flags().StringVar(&header, "header", "", MsgFlagHeader)
	rootCmd.Flags().StringVarP(&styleName, "style", "s", "", MsgFlagStyle)
	rootCmd.Flags().BoolVarP(&logToFile, "log", "l", true, MsgFlagLog)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newHeadersCmd())
	rootCmd.AddCommand(newStylesCmd())
	rootCmd.AddCommand(newExampleCmd())
	rootCmd.AddCommand(newGenStyleCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "awcy-nfo version %s\n", version.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", version.Commit)
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", version.Date)
		},
	}
}
