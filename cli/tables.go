package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mapper-gen/mybatis_gen/helpers"
	"mapper-gen/pool"
	"mapper-gen/utils"
)

// TablesCmd returns the tables command
func TablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "List the tables of the data source",
		Long:  `List the tables of the data source and mark the ones generate would pick.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			db, err := pool.Open(cfg.DataSource, gormLogger())
			if err != nil {
				return err
			}
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			defer sqlDB.Close()

			names, err := helpers.ListTables(db, cfg.DataSource.Dialect(), helpers.Options{Logger: cfg.Logger})
			if err != nil {
				return err
			}
			picked := pick(names, cfg.Strategy.Include, cfg.Strategy.Exclude)
			for _, name := range names {
				if utils.ContainsFold(picked, name) {
					fmt.Printf("  %s %s\n", color.New(color.FgGreen).Sprint("✓"), name)
				} else {
					fmt.Printf("  %s %s\n", color.New(color.FgHiBlack).Sprint("-"), name)
				}
			}
			fmt.Printf("\n%d of %d table(s) selected\n", len(picked), len(names))
			return nil
		},
	}
}

// pick applies the include or exclude list the way generate does.
func pick(names, include, exclude []string) []string {
	if len(include) > 0 {
		var picked []string
		for _, name := range names {
			if utils.ContainsFold(include, name) {
				picked = append(picked, name)
			}
		}
		return picked
	}
	return utils.Remove(names, exclude...)
}
