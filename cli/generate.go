package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mapper-gen/mybatis_gen"
	"mapper-gen/mybatis_gen/helpers"
	"mapper-gen/mybatis_gen/naming"
	"mapper-gen/pool"
)

// GenerateCmd returns the generate command
func GenerateCmd() *cobra.Command {
	var (
		include  []string
		exclude  []string
		strategy string
		output   string
		override bool
		dryRun   bool
		open     bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate code for the configured tables",
		Long: `Generate reads the schema of the configured data source and writes the
five artifacts of every selected table below the output directory.

Examples:
  mapper-gen generate
  mapper-gen generate --include t_user,t_role --naming remove_prefix_and_camel
  mapper-gen generate --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("include") {
				cfg.WithInclude(include...)
			}
			if flags.Changed("exclude") {
				cfg.WithExclude(exclude...)
			}
			if flags.Changed("naming") {
				cfg.WithNamingStrategy(naming.Strategy(strategy))
			}
			if flags.Changed("output") {
				cfg.OutputDir = output
			}
			if flags.Changed("override") {
				cfg.FileOverride = override
			}
			if flags.Changed("open") {
				cfg.OpenOutputDir = open
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			db, err := pool.Open(cfg.DataSource, gormLogger())
			if err != nil {
				return err
			}
			g := mybatis_gen.NewGenerator(db, *cfg)

			var sink mybatis_gen.Sink
			fileSink := &mybatis_gen.FileSink{Override: cfg.FileOverride, Logger: cfg.Logger}
			if dryRun {
				sink = &mybatis_gen.DryRunSink{Out: os.Stdout}
			} else {
				sink = fileSink
			}

			report, err := g.Execute(sink)
			printReport(report)
			if err != nil {
				return fmt.Errorf("generate failed: %w", err)
			}
			if dryRun {
				return nil
			}

			fmt.Printf("%s %d file(s) written, %d skipped under %s\n",
				color.New(color.FgGreen).Sprint("✓"), len(fileSink.Written), len(fileSink.Skipped), g.OutputDir())
			if len(fileSink.Skipped) > 0 {
				fmt.Println("  use --override to replace existing files")
			}
			if cfg.OpenOutputDir {
				return mybatis_gen.OpenDir(g.OutputDir(), cfg.Logger)
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&include, "include", nil, "only these tables")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "every table but these")
	cmd.Flags().StringVar(&strategy, "naming", "", "nochange, underline_to_camel, remove_prefix or remove_prefix_and_camel")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output directory")
	cmd.Flags().BoolVar(&override, "override", false, "replace existing files")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "list the files without writing them")
	cmd.Flags().BoolVar(&open, "open", false, "open the output directory when done")
	return cmd
}

func printReport(report *helpers.Report) {
	if report == nil {
		return
	}
	warn := color.New(color.FgYellow)
	if report.Empty {
		fmt.Println(warn.Sprint("! the database has no tables"))
	}
	if report.BlankRows > 0 {
		fmt.Println(warn.Sprintf("! %d table row(s) without a name skipped", report.BlankRows))
	}
	for _, name := range report.NotFound {
		fmt.Println(warn.Sprintf("! table %s does not exist", name))
	}
}
