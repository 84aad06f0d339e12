package cli

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httpadapter "github.com/sanjaykm/wellness-agent/internal/adapters/http"
	"github.com/sanjaykm/wellness-agent/internal/adapters/llm"
	"github.com/sanjaykm/wellness-agent/internal/adapters/speech"
	filestore "github.com/sanjaykm/wellness-agent/internal/adapters/storage/file"
	memstore "github.com/sanjaykm/wellness-agent/internal/adapters/storage/memory"
	sqlitestore "github.com/sanjaykm/wellness-agent/internal/adapters/storage/sqlite"
	"github.com/sanjaykm/wellness-agent/internal/app/session"
	"github.com/sanjaykm/wellness-agent/internal/app/tools"
	"github.com/sanjaykm/wellness-agent/internal/config"
	"github.com/sanjaykm/wellness-agent/internal/domain"
	"github.com/sanjaykm/wellness-agent/internal/observability"
)

func init() {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the agent and expose the tool surface to the conversational driver",
		RunE:  runServe,
	}

	RootCmd.AddCommand(cmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := observability.Init(debug); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	log := observability.Logger()

	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx := cmd.Context()

	// LLM: mock or Vertex depending on config (useful for dev)
	var llmClient domain.LLMClient
	if cfg.UseMockLLM {
		log.Info("using mock LLM client")
		llmClient = llm.NewMockLLM()
	} else {
		log.Info("using Vertex LLM client", zap.String("model", cfg.ModelName))
		llmClient, err = llm.NewGeminiClient(ctx, cfg.GCPProjectID, cfg.GCPLocation, cfg.ModelName)
		if err != nil {
			return fmt.Errorf("init Vertex LLM client: %w", err)
		}
	}

	// History storage: file (canonical), memory or sqlite
	var historyStore domain.HistoryStore
	switch cfg.StorageBackend {
	case "memory":
		log.Info("using in-memory history store")
		historyStore = memstore.NewHistoryStore()
	case "sqlite":
		log.Info("using sqlite history store", zap.String("path", cfg.SQLitePath))
		s, err := sqlitestore.NewHistoryStore(cfg.SQLitePath)
		if err != nil {
			return fmt.Errorf("init sqlite history store: %w", err)
		}
		defer s.Close()
		historyStore = s
	default:
		log.Info("using file history store", zap.String("path", cfg.HistoryPath))
		historyStore = filestore.NewHistoryStore(cfg.HistoryPath)
	}

	sessionStore := memstore.NewSessionStore()

	// External speech collaborators; out-of-process in a real deployment.
	speech.NewMockPipeline(cfg.Speech)

	svc := session.NewService(llmClient, sessionStore, historyStore)

	registry := tools.NewRegistry(
		tools.NewMoodEnergyTool(svc),
		tools.NewObjectivesTool(svc),
		tools.NewCompleteTool(svc),
	)

	handler := httpadapter.NewServer(svc, registry, historyStore)

	addr := ":" + cfg.Port
	log.Info("wellness agent listening", zap.String("addr", addr))
	return http.ListenAndServe(addr, handler)
}
