package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AWCY-Arms/awcy-nfo/pkg/config"
	"github.com/AWCY-Arms/awcy-nfo/pkg/logging"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			out, err := cfg.Dump()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newGenConfigCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content := config.GenerateContent()
			if !write {
				fmt.Fprint(cmd.OutOrStdout(), content)
				return nil
			}
			logger := logging.GetLogger("cmd.gen-config")
			path, err := config.UserConfigPath()
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil {
				logger.Warn().Str("path", path).Msg("Existing config will be overwritten")
			}
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created '%s'\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	return cmd
}
