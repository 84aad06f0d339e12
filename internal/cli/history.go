package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	filestore "github.com/sanjaykm/wellness-agent/internal/adapters/storage/file"
	sqlitestore "github.com/sanjaykm/wellness-agent/internal/adapters/storage/sqlite"
	"github.com/sanjaykm/wellness-agent/internal/app/session"
	"github.com/sanjaykm/wellness-agent/internal/config"
	"github.com/sanjaykm/wellness-agent/internal/domain"
)

func init() {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Print the stored check-in log",
		RunE:  runHistory,
	}

	cmd.Flags().Bool("summary", false, "Only print the latest-session summary")

	RootCmd.AddCommand(cmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	summaryOnly, _ := cmd.Flags().GetBool("summary")

	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var store domain.HistoryStore
	switch cfg.StorageBackend {
	case "sqlite":
		s, err := sqlitestore.NewHistoryStore(cfg.SQLitePath)
		if err != nil {
			return fmt.Errorf("open sqlite history store: %w", err)
		}
		defer s.Close()
		store = s
	default:
		store = filestore.NewHistoryStore(cfg.HistoryPath)
	}

	records, _ := store.LoadHistory(cmd.Context())

	if summaryOnly {
		fmt.Println(session.SummarizeLatest(records))
		return nil
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(records); err != nil {
		return err
	}
	fmt.Println(session.SummarizeLatest(records))
	return nil
}
