package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AWCY-Arms/awcy-nfo/pkg/assets"
	"github.com/AWCY-Arms/awcy-nfo/pkg/logging"
)

func newHeadersCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "headers [name]",
		Short:   MsgHeadersShort,
		GroupID: "misc",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				name := resourceName(args[0], ".txt")
				data, err := assets.Header(name)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, formatBoldUpper(name))
				fmt.Fprintln(out)
				fmt.Fprint(out, string(data))
				return nil
			}
			for _, name := range assets.Headers() {
				fmt.Fprintln(out, name)
			}
			return nil
		},
	}
}

func newStylesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "styles [name]",
		Short:   MsgStylesShort,
		GroupID: "misc",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				name := resourceName(args[0], ".yaml")
				data, err := assets.Style(name)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, formatBoldUpper(name))
				fmt.Fprintln(out)
				fmt.Fprint(out, string(data))
				return nil
			}
			for _, name := range assets.Styles() {
				fmt.Fprintln(out, name)
			}
			return nil
		},
	}
}

func newExampleCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:     "example",
		Short:   MsgExampleShort,
		Long:    MsgExampleLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data := assets.ExampleTemplate()
			if !write {
				fmt.Fprint(cmd.OutOrStdout(), string(data))
				return nil
			}
			logger := logging.GetLogger("cmd.example")
			path := "example.yaml"
			if err := os.WriteFile(path, data, 0644); err != nil {
				return err
			}
			logger.Info().Str("path", path).Msg("Example template written")
			fmt.Fprintf(cmd.OutOrStdout(), "Created '%s'\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	return cmd
}

func newGenStyleCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:     "genstyle [name]",
		Short:   MsgGenStyleShort,
		Long:    MsgGenStyleLong,
		GroupID: "misc",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := assets.DefaultStyle
			if len(args) == 1 {
				name = resourceName(args[0], ".yaml")
			}
			data, err := assets.Style(name)
			if err != nil {
				return err
			}
			if !write {
				fmt.Fprint(cmd.OutOrStdout(), string(data))
				return nil
			}
			logger := logging.GetLogger("cmd.genstyle")
			path := strings.TrimSuffix(name, ".yaml") + "_example.yaml"
			if err := os.WriteFile(path, data, 0644); err != nil {
				return err
			}
			logger.Info().Str("path", path).Msg("Style example written")
			fmt.Fprintf(cmd.OutOrStdout(), "Created '%s'\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	return cmd
}

// resourceName normalizes a user-given resource name
func resourceName(name, ext string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if !strings.HasSuffix(name, ext) {
		name += ext
	}
	return name
}
