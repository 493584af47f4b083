package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/carwise/vehicle-advisor/internal/advisor"
	"github.com/carwise/vehicle-advisor/internal/ai"
	"github.com/carwise/vehicle-advisor/internal/ai/gemini"
	"github.com/carwise/vehicle-advisor/internal/catalog"
	"github.com/carwise/vehicle-advisor/internal/logger"
	"github.com/carwise/vehicle-advisor/internal/matching"
	"github.com/carwise/vehicle-advisor/internal/profile"
	"github.com/carwise/vehicle-advisor/internal/secrets"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptExplain       = "Explain the top matches"
	PromptReportByBrand = "Report shortlist by brand"
	PromptDumpToFile    = "Dump shortlist to file"
	PromptChangeAnswer  = "Change an answer"
	PromptExcludeBrand  = "Exclude a brand"
	PromptPreferBrand   = "Prefer a brand"
	PromptRestart       = "Restart"
	PromptExit          = "Exit"
	PromptBack          = "back"
)

var (
	errExit   = errors.New("exit requested")
	errResume = errors.New("resume interview")
)

var actionPrompt = promptui.Select{
	Label: "What next?",
	Items: []string{
		PromptExplain,
		PromptReportByBrand,
		PromptDumpToFile,
		PromptChangeAnswer,
		PromptExcludeBrand,
		PromptPreferBrand,
		PromptRestart,
		PromptExit,
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the interactive vehicle advisor session",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("catalog", "c", "", "path to the vehicle catalog csv")
	runCmd.Flags().IntP("top-n", "n", 0, "shortlist size")
	runCmd.Flags().BoolP("free-form", "f", false, "sniff answers for change-my-field and brand statements")

	viper.BindPFlag("catalog", runCmd.Flags().Lookup("catalog"))
	viper.BindPFlag("advisor.top-n", runCmd.Flags().Lookup("top-n"))
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the vehicle-advisor", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	if config == nil {
		logger.Fatal("config is required")
	}

	if strings.TrimSpace(config.Catalog) == "" {
		logger.Fatal("catalog path is required under the 'catalog' key to recommend vehicles")
	}

	cat, err := catalog.Load(config.Catalog, logger)
	if err != nil {
		logger.Fatal("loading the vehicle catalog", zap.Error(err))
	}

	logger.Info("catalog loaded",
		zap.String("path", config.Catalog),
		zap.Int("vehicles", cat.Len()),
		zap.Int("brands", len(cat.Brands())),
	)

	explainer, err := prepareExplainer(ctx, config.AI, logger)
	if err != nil {
		logger.Warn("running without explanations", zap.Error(err))
	}

	session, err := advisor.NewSession(cat, sessionConfig(config.Advisor), explainer, logger)
	if err != nil {
		logger.Fatal("creating the session", zap.Error(err))
	}

	if config.Advisor != nil {
		session.SetBlockedBrands(config.Advisor.BlockedBrands...)
		session.SetPreferredBrands(config.Advisor.PreferredBrands...)
	}

	var extractor profile.FieldExtractor = profile.NewPromptedExtractor()
	if cmd.Flag("free-form").Value.String() == "true" {
		extractor = profile.NewKeywordExtractor(cat.Brands())
	}

	for {
		if err := collectAnswers(session, extractor, logger); err != nil {
			logger.Info("exiting", zap.Error(err))
			return
		}

		err := finalMenu(ctx, session, logger)
		if errors.Is(err, errResume) {
			continue
		}
		if errors.Is(err, errExit) {
			return
		}
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

// collectAnswers walks the interview until the completion threshold is
// reached, recomputing the shortlist after every accepted answer.
func collectAnswers(session *advisor.Session, extractor profile.FieldExtractor, logger *zap.Logger) error {
	for !session.IsComplete() {
		field, question, ok := session.CurrentQuestion()
		if !ok {
			return nil
		}

		answerPrompt := promptui.Prompt{Label: question}
		input, err := answerPrompt.Run()
		if err != nil {
			return err
		}

		extraction := extractor.Extract(input, field)
		switch extraction.Action {
		case profile.ActionUnlock:
			if session.RequestUnlock(extraction.Field) {
				logger.Info("answer cleared, asking again", zap.String("field", extraction.Field))
			}
			continue
		case profile.ActionBlockBrand:
			session.SetBlockedBrands(extraction.Value)
			logger.Info("brand excluded", zap.String("brand", extraction.Value))
		case profile.ActionPreferBrand:
			session.SetPreferredBrands(extraction.Value)
			logger.Info("brand preferred", zap.String("brand", extraction.Value))
		default:
			result := session.SubmitAnswer(extraction.Value)
			if !result.Accepted {
				logger.Warn("answer rejected, please try again", zap.String("field", field))
				continue
			}
		}

		shortlist, err := session.ComputeMatches(0)
		if err != nil {
			return fmt.Errorf("compute matches: %w", err)
		}
		logShortlist(logger, shortlist)
	}

	return nil
}

func finalMenu(ctx context.Context, session *advisor.Session, logger *zap.Logger) error {
	for {
		shortlist, err := session.ComputeMatches(0)
		if err != nil {
			return fmt.Errorf("compute matches: %w", err)
		}

		if len(shortlist) == 0 {
			logger.Warn("no vehicles match the current constraints",
				zap.Strings("blocked_brands", session.BlockedBrands()),
				zap.Strings("preferred_brands", session.PreferredBrands()),
			)
		} else {
			logShortlist(logger, shortlist)
		}

		_, action, err := actionPrompt.Run()
		if err != nil {
			return err
		}

		if err := handleAction(ctx, action, session, shortlist, logger); err != nil {
			return err
		}
	}
}

func handleAction(ctx context.Context, action string, session *advisor.Session, shortlist []*matching.ScoredVehicle, logger *zap.Logger) error {
	switch action {
	case PromptExplain:
		explanation, err := session.Explain(ctx, shortlist)
		if err != nil {
			if errors.Is(err, advisor.ErrNoExplainer) {
				logger.Warn("explanations are disabled", zap.String("hint", "enable the ai section in the configuration file"))
				return nil
			}
			return fmt.Errorf("explain shortlist: %w", err)
		}
		fmt.Println(explanation)
		return nil
	case PromptReportByBrand:
		pretty, _ := json.MarshalIndent(shortlistVehicles(shortlist).ReportByBrand(), "", "  ")
		logger.Info(string(pretty), zap.Int("vehicles", len(shortlist)))
		return nil
	case PromptDumpToFile:
		filename, err := shortlistVehicles(shortlist).DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump shortlist to file: %w", err)
		}
		logger.Info("dumping shortlist to file", zap.String("filename", filename))
		return nil
	case PromptChangeAnswer:
		return changeAnswer(session, logger)
	case PromptExcludeBrand:
		return pickBrand(session, logger, session.SetBlockedBrands)
	case PromptPreferBrand:
		return pickBrand(session, logger, session.SetPreferredBrands)
	case PromptRestart:
		session.Reset()
		logger.Info("session restarted")
		return errResume
	case PromptExit:
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func changeAnswer(session *advisor.Session, logger *zap.Logger) error {
	answers := session.Profile()
	items := make([]string, 0, len(answers)+1)
	for _, field := range profile.Fields() {
		if _, answered := answers[field]; answered {
			items = append(items, field)
		}
	}

	fieldPrompt := promptui.Select{
		Label: "Choose the answer to change",
		Items: append(items, PromptBack),
	}

	_, selected, err := fieldPrompt.Run()
	if err != nil {
		return err
	}

	if selected == PromptBack {
		return nil
	}

	if session.RequestUnlock(selected) {
		return errResume
	}
	return nil
}

func pickBrand(session *advisor.Session, logger *zap.Logger, apply func(...string)) error {
	brandPrompt := promptui.Select{
		Label: "Choose a brand",
		Items: append(session.CatalogBrands(), PromptBack),
	}

	_, selected, err := brandPrompt.Run()
	if err != nil {
		return err
	}

	if selected == PromptBack {
		return nil
	}

	apply(selected)
	logger.Info("brand filters updated",
		zap.Strings("blocked_brands", session.BlockedBrands()),
		zap.Strings("preferred_brands", session.PreferredBrands()),
	)
	return nil
}

func logShortlist(log *zap.Logger, shortlist []*matching.ScoredVehicle) {
	for rank, candidate := range shortlist {
		log.Info("shortlist",
			zap.Int("rank", rank+1),
			zap.String("vehicle", candidate.Label()),
			zap.Float64("score", candidate.Score),
			zap.String("msrp", candidate.MSRPRange),
		)
	}
}

func shortlistVehicles(shortlist []*matching.ScoredVehicle) *catalog.Vehicles {
	vehicles := &catalog.Vehicles{}
	for _, candidate := range shortlist {
		vehicles.Items = append(vehicles.Items, candidate.Vehicle)
	}
	return vehicles
}

func sessionConfig(cfg *AdvisorConfig) *advisor.Config {
	if cfg == nil {
		return nil
	}

	return &advisor.Config{
		Collector: &profile.CollectorConfig{
			Weights:             cfg.Weights,
			CompletionThreshold: cfg.CompletionThreshold,
			PrioritizeByWeight:  cfg.PrioritizeByWeight,
		},
		Matcher: &matching.Config{
			Weights:         cfg.Weights,
			SlackMultiplier: cfg.BudgetSlack,
			DefaultBudget:   cfg.DefaultBudget,
		},
		TopN: cfg.TopN,
	}
}

func prepareExplainer(ctx context.Context, cfg *AIConfig, baseLogger *zap.Logger) (ai.Explainer, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, nil
	}

	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	if cfg.Gemini == nil {
		return nil, fmt.Errorf("gemini configuration is required when ai is enabled")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: cfg.Gemini.APIKeyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	aiLogger := logger.WithCommonFields(baseLogger, "gemini", cfg.Gemini.Model)

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries, aiLogger)
	if err != nil {
		return nil, err
	}

	return gemini.NewExplainer(generator, aiLogger, cfg.Gemini.MaxLogLength), nil
}
