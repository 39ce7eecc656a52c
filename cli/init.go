package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mapper-gen/mybatis_gen"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Long: `Write a config file holding every default value. Secrets can stay out of the
file: ${VAR} references are expanded from the environment and from .env.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := global.configPath
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to replace it", path)
			}
			cfg := defaultFileConfig()
			if err := mybatis_gen.SaveConfig(path, &cfg); err != nil {
				return err
			}
			fmt.Printf("%s config written to %s\n", color.New(color.FgGreen).Sprint("✓"), path)
			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  edit the dataSource section")
			fmt.Println("  mapper-gen tables")
			fmt.Println("  mapper-gen generate")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "replace an existing config file")
	return cmd
}

// defaultFileConfig is DefaultConfig with placeholders for the data source.
func defaultFileConfig() mybatis_gen.Config {
	cfg := mybatis_gen.DefaultConfig()
	cfg.DataSource.Host = "127.0.0.1"
	cfg.DataSource.Port = 3306
	cfg.DataSource.Username = "root"
	cfg.DataSource.Password = "${DB_PASSWORD}"
	cfg.DataSource.Database = "test"
	cfg.DataSource.Params = map[string]string{"charset": "utf8mb4"}
	cfg.OutputDir = "./generated"
	return cfg
}
