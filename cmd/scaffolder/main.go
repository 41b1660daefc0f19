package main

import (
	"context"
	"os"
	"os/signal"

	"scaffolder/internal/config"
	"scaffolder/internal/helpers"
	"scaffolder/internal/llm"
	"scaffolder/internal/services"

	"github.com/spf13/cobra"
)

var configFile string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "scaffolder",
		Short: "Scaffolder - AI-generated project ideas and scaffolded learning guides",
		Long: `Scaffolder is a tool that asks a generative language model for new
learning-project ideas, expands each idea into a phased scaffolded project
guide, and then has the model review and rewrite its own guides.`,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "config.yaml", "Configuration file path")

	// Ideas command
	var ideasCmd = &cobra.Command{
		Use:   "ideas",
		Short: "Generate a batch of new project ideas",
		Long:  "Ask the model for new ideas distinct from the seed corpus and print them",
		RunE:  runIdeas,
	}
	ideasCmd.Flags().IntP("count", "n", 0, "Number of ideas to generate (overrides config)")
	ideasCmd.Flags().Bool("compare-log", false, "Also avoid ideas from the response log")
	ideasCmd.Flags().Bool("save-log", false, "Append generated ideas to the response log")
	rootCmd.AddCommand(ideasCmd)

	// Run command
	var runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run the full pipeline from fresh ideas",
		Long:  "Generate ideas, expand each into a scaffolded guide, then review every guide",
		RunE:  runPipeline,
	}
	runCmd.Flags().IntP("count", "n", 0, "Number of ideas to generate (overrides config)")
	runCmd.Flags().StringP("output", "o", "", "Output directory (overrides config)")
	runCmd.Flags().Bool("no-review", false, "Skip the review phase")
	rootCmd.AddCommand(runCmd)

	// Detailed command
	var detailedCmd = &cobra.Command{
		Use:   "detailed",
		Short: "Run the pipeline over the detailed-idea seed corpus",
		Long:  "Expand every structured idea from the detailed seed corpus into a guide, then review",
		RunE:  runDetailed,
	}
	detailedCmd.Flags().StringP("output", "o", "", "Output directory (overrides config)")
	detailedCmd.Flags().Bool("no-review", false, "Skip the review phase")
	rootCmd.AddCommand(detailedCmd)

	// Review command
	var reviewCmd = &cobra.Command{
		Use:   "review <dir>",
		Short: "Review previously generated guides",
		Long:  "Ask the model to critique and rewrite every guide in a directory",
		Args:  cobra.ExactArgs(1),
		RunE:  runReview,
	}
	rootCmd.AddCommand(reviewCmd)

	if err := rootCmd.Execute(); err != nil {
		helpers.PrintError("Error: %v", err)
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command) (*config.Config, llm.Client, context.Context, context.CancelFunc, error) {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	applyOverrides(cmd, cfg)

	client, err := llm.New(&cfg.LLM)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	return cfg, client, ctx, cancel, nil
}

func applyOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("count") {
		if count, err := flags.GetInt("count"); err == nil && count > 0 {
			cfg.Pipeline.IdeaCount = count
		}
	}
	if flags.Changed("output") {
		if dir, err := flags.GetString("output"); err == nil && dir != "" {
			cfg.Pipeline.OutputDir = dir
		}
	}
	if flags.Changed("no-review") {
		cfg.Pipeline.Review = false
	}
	if flags.Changed("compare-log") {
		compare, _ := flags.GetBool("compare-log")
		cfg.Pipeline.CompareWithLog = compare
	}
	if flags.Changed("save-log") {
		save, _ := flags.GetBool("save-log")
		cfg.Pipeline.SaveToLog = save
	}
}

func runIdeas(cmd *cobra.Command, args []string) error {
	cfg, client, ctx, cancel, err := setup(cmd)
	if err != nil {
		return err
	}
	defer cancel()

	helpers.PrintTitle("Generating Project Ideas")
	helpers.PrintInfo("Model: %s", client.Name())

	pipeline := services.NewPipeline(cfg, client)
	ideas, err := pipeline.Ideas().Generate(ctx, cfg.Pipeline.IdeaCount,
		cfg.Pipeline.CompareWithLog, cfg.Pipeline.SaveToLog)
	if err != nil {
		return err
	}

	helpers.PrintTitle("New Ideas")
	for n, idea := range ideas {
		helpers.PrintIdea(n+1, idea)
	}
	if cfg.Pipeline.SaveToLog {
		helpers.PrintSuccess("Appended %d ideas to the response log", len(ideas))
	}
	return nil
}

func runPipeline(cmd *cobra.Command, args []string) error {
	cfg, client, ctx, cancel, err := setup(cmd)
	if err != nil {
		return err
	}
	defer cancel()

	helpers.PrintTitle("Running Scaffolding Pipeline")
	helpers.PrintInfo("Output directory: %s", cfg.Pipeline.OutputDir)

	pipeline := services.NewPipeline(cfg, client)
	_, err = pipeline.RunRandom(ctx)
	return err
}

func runDetailed(cmd *cobra.Command, args []string) error {
	cfg, client, ctx, cancel, err := setup(cmd)
	if err != nil {
		return err
	}
	defer cancel()

	helpers.PrintTitle("Running Pipeline over Detailed Ideas")
	helpers.PrintInfo("Output directory: %s", cfg.Pipeline.OutputDir)

	pipeline := services.NewPipeline(cfg, client)
	_, err = pipeline.RunDetailed(ctx)
	return err
}

func runReview(cmd *cobra.Command, args []string) error {
	cfg, client, ctx, cancel, err := setup(cmd)
	if err != nil {
		return err
	}
	defer cancel()

	dir := args[0]
	helpers.PrintTitle("Reviewing Guides")
	helpers.PrintInfo("Guide directory: %s", dir)

	pipeline := services.NewPipeline(cfg, client)
	reviewed, err := pipeline.ReviewDir(ctx, dir)
	if err != nil {
		return err
	}

	helpers.PrintSuccess("Reviewed %d guides into %s", reviewed, dir+"/"+services.ImprovedDirName)
	return nil
}
