package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm/logger"

	"mapper-gen/mybatis_gen"
)

var version = "dev"

// flags shared by every subcommand
type globalFlags struct {
	configPath string
	envFile    string
	verbose    bool
}

var global globalFlags

// RootCmd returns the mapper-gen command tree
func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "mapper-gen",
		Short:   "Generate MyBatis entities, mappers and services from a database schema",
		Version: version,
		Long: `mapper-gen reads the tables of a MySQL or Oracle schema and writes, for every
table, an entity, a mapper interface, a mapper xml, a service interface and a
service implementation.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&global.configPath, "config", "c", mybatis_gen.DefaultConfigFile, "config file")
	rootCmd.PersistentFlags().StringVar(&global.envFile, "env", "", "env file with data source secrets (default .env when present)")
	rootCmd.PersistentFlags().BoolVar(&global.verbose, "verbose", false, "log every SQL statement and generated file")

	rootCmd.AddCommand(GenerateCmd())
	rootCmd.AddCommand(TablesCmd())
	rootCmd.AddCommand(InitCmd())
	return rootCmd
}

// loadConfig reads the env file and the config file. A missing default
// config file yields the default config.
func loadConfig(cmd *cobra.Command) (*mybatis_gen.Config, error) {
	if global.envFile != "" {
		if err := godotenv.Load(global.envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file: %w", err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg, err := mybatis_gen.LoadConfig(global.configPath)
	if errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("config") {
		fmt.Println(color.New(color.FgYellow).Sprintf("! %s not found, using defaults", global.configPath))
		def := mybatis_gen.DefaultConfig()
		cfg, err = &def, nil
	}
	if err != nil {
		return nil, err
	}
	cfg.Logger = newLogger()
	return cfg, nil
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if global.verbose {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func gormLogger() logger.Interface {
	if global.verbose {
		return logger.Default.LogMode(logger.Info)
	}
	return logger.Default.LogMode(logger.Silent)
}
