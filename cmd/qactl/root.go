package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/yungbote/visualenglish-backend/internal/modules/qa"
	"github.com/yungbote/visualenglish-backend/internal/modules/qa/cascade"
	"github.com/yungbote/visualenglish-backend/internal/platform/logger"
	"github.com/yungbote/visualenglish-backend/internal/services"
)

var (
	cfgFile string
	conf    = viper.New()
)

var rootCmd = &cobra.Command{
	Use:   "qactl",
	Short: "Inspect and maintain Visual English slide Q&A",
	Long: `qactl resolves the question and answer shown for a slide, edits, hides or
flags it, imports the content team's mapping spreadsheets, and scans slide
folders.

Settings come from flags, QACTL_* environment variables, or a YAML file
passed with --config. Database settings use the server's DB_DRIVER and
POSTGRES_* variables.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "YAML config file")
	pf.String("server", "", "Content API base URL; resolve remotely when set")
	pf.String("token", "", "Bearer token for the content API")
	pf.String("book", "", "Book id")
	pf.String("unit", "", "Unit id")
	pf.String("material", "", "Material id of the slide")
	pf.String("edits-dir", "", "Directory for edits kept on this device (default: user config dir)")
	pf.String("mapping", "", "Mapping file (.xlsx or .json) to load for local resolution")
	pf.String("exceptions", "", "YAML file extending the built-in exception table")
	pf.String("log-mode", "production", "Logger mode (development, production, nop)")

	for _, name := range []string{"server", "token", "book", "unit", "material", "edits-dir", "mapping", "exceptions", "log-mode"} {
		_ = conf.BindPFlag(name, pf.Lookup(name))
	}
}

func initConfig() {
	_ = godotenv.Load()
	conf.SetEnvPrefix("QACTL")
	conf.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	conf.AutomaticEnv()
	if cfgFile != "" {
		conf.SetConfigFile(cfgFile)
		if err := conf.ReadInConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not read config %s: %v\n", cfgFile, err)
		}
	}
}

func newLogger() (*logger.Logger, error) {
	return logger.New(conf.GetString("log-mode"))
}

// localResolver builds an in-process cascade, optionally seeded with the
// --mapping file for the --book/--unit pair.
func localResolver(cmd *cobra.Command, log *logger.Logger) (services.QAResolveService, error) {
	exceptions, err := qa.LoadExceptionsFile(conf.GetString("exceptions"))
	if err != nil {
		return nil, err
	}
	mappings := services.NewQAMappingService(nil, log, nil)
	if path := conf.GetString("mapping"); path != "" {
		book := conf.GetString("book")
		if book == "" {
			return nil, fmt.Errorf("--mapping requires --book")
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open mapping: %w", err)
		}
		defer f.Close()
		res, err := mappings.Import(cmd.Context(), book, conf.GetString("unit"), path, f)
		if err != nil {
			return nil, err
		}
		log.Info("mapping loaded", "file", path, "imported", res.Imported, "skipped", res.Skipped)
	}
	return services.NewQAResolveService(log, cascade.NewEngines(log, exceptions), mappings, nil), nil
}
