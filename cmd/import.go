package main

import (
	"context"
	"fmt"
	"os"

	"github.com/lshigami/quizreview/database"
	"github.com/lshigami/quizreview/internal/importer"
	"github.com/lshigami/quizreview/internal/repository"
	"github.com/lshigami/quizreview/internal/service"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file.xlsx>",
	Short: "Import questions from a spreadsheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open %s: %w", args[0], err)
		}
		defer file.Close()

		parsed, err := importer.ReadXLSX(file)
		if err != nil {
			return err
		}
		if dryRun {
			fmt.Printf("Parsed %d rows, %d row errors\n", len(parsed.Rows), len(parsed.Errors))
			for _, e := range parsed.Errors {
				fmt.Printf("  row %d: %s\n", e.Row, e.Message)
			}
			return nil
		}

		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		db, err := database.NewDatabase(cfg)
		if err != nil {
			return err
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}
		if err := database.AutoMigrate(db); err != nil {
			return err
		}

		questions := service.NewQuestionService(repository.NewQuestionRepository(db))
		summary, err := questions.ImportQuestions(context.Background(), parsed)
		if err != nil {
			return err
		}

		fmt.Printf("Created %d, skipped %d, errors %d\n", summary.Created, summary.Skipped, len(summary.Errors))
		for _, e := range summary.Errors {
			fmt.Printf("  row %d: %s\n", e.Row, e.Message)
		}
		return nil
	},
}

func init() {
	importCmd.Flags().Bool("dry-run", false, "Parse and validate the file without writing to the database")
}
