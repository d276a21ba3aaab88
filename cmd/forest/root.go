package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/FrenchMajesty/partition"
)

func newRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:           "forest",
		Short:         "Maintain a persistent partition of elements into equivalence classes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default .forest.yaml)")
	flags.String("state", "", "state file, .json for JSON (default "+partition.DefaultStatePath+")")
	flags.Bool("auto-register", false, "register unknown elements instead of failing")
	flags.BoolP("verbose", "v", false, "verbose output")

	_ = v.BindPFlag("state_path", flags.Lookup("state"))
	_ = v.BindPFlag("auto_register", flags.Lookup("auto-register"))
	_ = v.BindPFlag("verbose", flags.Lookup("verbose"))

	rootCmd.AddCommand(
		newAddCmd(v),
		newUnionCmd(v),
		newFindCmd(v),
		newConnectedCmd(v),
		newSetsCmd(v),
		newApplyCmd(v),
	)
	return rootCmd
}

func initConfig(v *viper.Viper, cmd *cobra.Command) error {
	if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".forest")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("FOREST")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// It's fine if no config file is found; we use defaults.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}

// withPartitioner opens the configured state, runs fn and saves the state
// back, also when fn fails.
func withPartitioner(v *viper.Viper, fn func(p *partition.Partitioner) error) error {
	cfg, err := loadConfig(v)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	p, err := partition.New(partition.Config{
		StatePath:    cfg.StatePath,
		AutoRegister: cfg.AutoRegister,
		Logger:       logger,
	})
	if err != nil {
		return err
	}

	runErr := fn(p)
	return errors.Join(runErr, p.Close())
}
