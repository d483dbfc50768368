package cli

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/Control-D-Inc/vpnhost"
)

const defaultConfigFile = "vpnhost.toml"

func initConfigCmd() *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultConfigFile
			if len(args) == 1 {
				path = args[0]
			}
			if err := writeConfigFile(path, vpnhost.DefaultConfig(), force); err != nil {
				return err
			}
			mainLog.Load().Info().Msgf("wrote default config to %s", path)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "config is valid")
			return nil
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage vpnhost config",
		Args:  cobra.OnlyValidArgs,
		ValidArgs: []string{
			initCmd.Use,
			validateCmd.Use,
		},
	}
	configCmd.AddCommand(initCmd)
	configCmd.AddCommand(validateCmd)
	return configCmd
}

func writeConfigFile(path string, cfg vpnhost.Config, overwrite bool) error {
	bs, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("unable to marshal config to toml: %w", err)
	}
	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if !overwrite {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, os.FileMode(0o644))
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	defer f.Close()
	if _, err := f.Write(bs); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
