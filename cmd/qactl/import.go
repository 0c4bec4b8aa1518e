package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yungbote/visualenglish-backend/internal/app"
	"github.com/yungbote/visualenglish-backend/internal/data/db"
	"github.com/yungbote/visualenglish-backend/internal/data/repos"
	"github.com/yungbote/visualenglish-backend/internal/services"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Load an .xlsx or .json mapping file into the database",
	Long: `Import replaces the stored mapping rows for the book (and unit, when
--unit is given) with the rows in the file. A file named like
qa-mapping-book3.json or book3-unit2.xlsx supplies --book and --unit when
they are omitted.

Examples:
  qactl import qa-mapping-book3.json
  qactl import "Book 1 Unit 4.xlsx" --book 1 --unit 4`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	path := args[0]
	book, unit := conf.GetString("book"), conf.GetString("unit")
	if book == "" {
		if b, u, ok := services.ParseMappingFilename(path); ok {
			book = b
			if unit == "" {
				unit = u
			}
		}
	}
	if book == "" {
		return fmt.Errorf("cannot tell the book from %q; pass --book", path)
	}

	cfg := app.LoadConfig()
	if !cfg.DBEnabled() {
		return fmt.Errorf("import needs a database; set DB_DRIVER")
	}
	dbService, err := db.Open(cfg.DB, log)
	if err != nil {
		return err
	}
	defer dbService.Close()

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open mapping: %w", err)
	}
	defer f.Close()

	mappings := services.NewQAMappingService(dbService.DB(), log, repos.NewQAMappingRepo(dbService.DB(), log))
	res, err := mappings.Import(cmd.Context(), book, unit, path, f)
	if err != nil {
		return err
	}
	return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
		"bookId":   book,
		"unitId":   unit,
		"imported": res.Imported,
		"skipped":  res.Skipped,
	})
}
