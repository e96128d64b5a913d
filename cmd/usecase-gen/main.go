package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"usecase-gen/internal/agent"
	"usecase-gen/internal/config"
	"usecase-gen/internal/llm"
	"usecase-gen/internal/metrics"
	"usecase-gen/internal/model"
	"usecase-gen/internal/render"
	"usecase-gen/internal/search"
)

var (
	cfgPath     string
	provider    string
	modelName   string
	outputPath  string
	metricsAddr string
)

func main() {
	root := &cobra.Command{
		Use:          "usecase-gen [company or industry]",
		Short:        "Generate AI/GenAI use-case proposals for a company or industry",
		Args:         cobra.ExactArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}
	root.Flags().StringVarP(&cfgPath, "config", "c", "", "optional YAML config file")
	root.Flags().StringVar(&provider, "provider", "", "text generation provider (gemini or openai)")
	root.Flags().StringVar(&modelName, "model", "", "model name override")
	root.Flags().StringVarP(&outputPath, "output", "o", "", "path for the resource links document")
	root.Flags().StringVar(&metricsAddr, "metrics-addr", "", "expose Prometheus metrics on this address")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load() // loads .env if present

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if provider != "" {
		cfg.Provider = provider
	}
	if modelName != "" {
		cfg.Model = modelName
	}
	if metricsAddr != "" {
		cfg.MetricsAddr = metricsAddr
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.MetricsAddr != "" {
		metrics.StartMetricsServer(cfg.MetricsAddr)
	}

	ctx := cmd.Context()
	gen, err := newGenerator(ctx, cfg)
	if err != nil {
		return err
	}
	searchClient := search.NewGoogleCSE(cfg.GoogleCSEAPIKey, cfg.GoogleCSEID)

	subject := args[0]
	bundle := agent.NewOrchestrator(searchClient, gen).Run(ctx, subject)
	fmt.Println(render.Report(bundle))

	if doc := render.ResourceDoc(bundle); doc != "" {
		name := outputPath
		if name == "" {
			name = render.ResourceFileName(subject)
		}
		if err := os.WriteFile(name, []byte(doc), 0644); err != nil {
			return fmt.Errorf("write resource links: %w", err)
		}
		fmt.Printf("Resource links written to %s\n", name)
	}
	if bundle.Status == model.StatusFailedResearch {
		fmt.Println("Research failed; no use cases were generated.")
	}
	return nil
}

func newGenerator(ctx context.Context, cfg *config.Config) (llm.TextGenerator, error) {
	switch cfg.Provider {
	case "openai":
		return llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.Model), nil
	default:
		return llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.Model)
	}
}
