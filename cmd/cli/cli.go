package cli

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Control-D-Inc/vpnhost"
)

var v *viper.Viper

func initCLI() *cobra.Command {
	// Enable opening via explorer.exe on Windows.
	// See: https://github.com/spf13/cobra/issues/844.
	cobra.MousetrapHelpText = ""
	cobra.EnableCommandSorting = false

	v = viper.NewWithOptions(viper.KeyDelimiter("::"))
	vpnhost.InitConfig(v, "vpnhost")

	rootCmd := &cobra.Command{
		Use:     "vpnhost",
		Short:   "Check hostnames supplied by VPN clients",
		Version: "1.0.0",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initConsoleLogging(cmd.ErrOrStderr())
		},
	}
	rootCmd.PersistentFlags().CountVarP(
		&verbose,
		"verbose",
		"v",
		`verbose log output, "-v" basic logging, "-vv" debug level logging`,
	)
	rootCmd.PersistentFlags().BoolVarP(
		&silent,
		"silent",
		"s",
		false,
		`do not write any log output`,
	)
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file")
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.AddCommand(initCheckCmd())
	rootCmd.AddCommand(initStripCmd())
	rootCmd.AddCommand(initConfigCmd())
	return rootCmd
}

// loadConfig reads the config file, if any, then validates the result.
// A missing config file is only an error when set explicitly with --config.
func loadConfig() (*vpnhost.Config, error) {
	if configPath != "" {
		v.SetConfigFile(configPath)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else {
		mainLog.Load().Info().Msgf("loaded config file: %s", v.ConfigFileUsed())
	}

	var cfg vpnhost.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := vpnhost.ValidateConfig(validator.New(), &cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := initLogging(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
