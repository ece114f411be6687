package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/jobmail/internal/batch"
	"github.com/spigell/jobmail/internal/event"
	"github.com/spigell/jobmail/internal/filtering"
	"github.com/spigell/jobmail/internal/logger"
	"github.com/spigell/jobmail/internal/mailfile"
	"github.com/spigell/jobmail/internal/utils"
)

const (
	PromptReportByEventType = "Report by event type"
	PromptReportByCompany   = "Report by company"
	PromptResultsToFile     = "Dump results to file"
	PromptShowDetails       = "Show details"
	PromptExit              = "Exit"
	PromptBack              = "back"

	detailsSubjectLimit = 60
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptReportByEventType, PromptReportByCompany, PromptShowDetails, PromptResultsToFile, PromptExit},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Classify every message file in a directory and review the results",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("input-dir", "i", ".", "directory with .eml files")
	runCmd.Flags().IntP("workers", "w", 0, "number of parallel workers. Zero means one per CPU.")
	runCmd.Flags().BoolP("auto-approve", "y", false, "print the report by event type and exit without prompting")

	viper.BindPFlag("input-dir", runCmd.Flags().Lookup("input-dir"))
	viper.BindPFlag("workers", runCmd.Flags().Lookup("workers"))
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

	logger.Info("starting the jobmail", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	c, err := newClassifier(config)
	if err != nil {
		logger.Fatal("building the classifier", zap.Error(err))
	}

	paths, err := mailfile.List(config.InputDir)
	if err != nil {
		logger.Fatal("listing message files", zap.Error(err), zap.String("input-dir", config.InputDir))
	}

	if len(paths) == 0 {
		logger.Info("exiting", zap.String("reason", "no message files found"), zap.String("input-dir", config.InputDir))
		return
	}

	logger.Info("classifying messages", zap.Int("count", len(paths)))

	results, err := batch.New(c, config.Workers, logger).ClassifyFiles(ctx, paths)
	if err != nil {
		logger.Fatal("classifying messages", zap.Error(err))
	}

	filters := prepareFilters(config.Filters, logger)
	for _, status := range filtering.Describe(filters.Steps()) {
		logger.Debug("filter configured",
			zap.String("name", status.Name),
			zap.Bool("enabled", status.Enabled),
			zap.String("reason", status.Reason),
			zap.Any("details", status.Details),
		)
	}

	filtered, err := filters.RunFilters(ctx, results)
	if err != nil {
		logger.Fatal("filtering failed", zap.Error(err))
	}
	results = filtered

	if results.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no messages left after filters"))
		return
	}

	logger.Info("classification summary", countFields(results)...)

	if cmd.Flag("auto-approve").Value.String() == "true" {
		if err := handleAction(PromptReportByEventType, logger, results); err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}
		return
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		logger.Info("current list of messages", zap.Int("count", results.Len()))

		if err := handleAction(action, logger, results); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, logger *zap.Logger, results *batch.Results) error {
	switch action {
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	case PromptReportByEventType:
		pretty, _ := json.MarshalIndent(results.ReportByEventType(), "", "  ")
		logger.Info(string(pretty), zap.Int("messages count", results.Len()))
		return nil
	case PromptReportByCompany:
		pretty, _ := json.MarshalIndent(results.ReportByCompany(), "", "  ")
		logger.Info(string(pretty), zap.Int("messages count", results.Len()))
		return nil
	case PromptShowDetails:
		return showDetails(logger, results)
	case PromptResultsToFile:
		filename, err := results.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
		return nil
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func showDetails(logger *zap.Logger, results *batch.Results) error {
	for {
		items := make([]string, 0, results.Len()+1)
		for _, item := range results.Items {
			items = append(items, detailsLabel(item))
		}

		resultPrompt := promptui.Select{
			Label: "Choose a message and press ENTER",
			Items: append(items, PromptBack),
			Size:  10,
		}

		_, selected, err := resultPrompt.Run()
		if err != nil {
			return err
		}

		if selected == PromptBack {
			return nil
		}

		id := strings.Split(selected, " ")[0]
		result := results.FindByID(id)
		if result == nil {
			return fmt.Errorf("there is no such message id %s", id)
		}

		pretty, _ := json.MarshalIndent(result, "", "  ")
		logger.Info(string(pretty))
	}
}

func detailsLabel(r *batch.Result) string {
	return fmt.Sprintf("%s %s / %s / %s",
		r.ID, r.Output.EventType, r.Input.Sender, utils.TruncateForLog(r.Input.Subject, detailsSubjectLimit),
	)
}

func countFields(results *batch.Results) []zap.Field {
	counts := results.Counts()

	types := make([]event.Type, 0, len(counts))
	for t := range counts {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	fields := make([]zap.Field, 0, len(types)+1)
	fields = append(fields, zap.Int("total", results.Len()))
	for _, t := range types {
		fields = append(fields, zap.Int(strings.ToLower(t.String()), counts[t]))
	}
	return fields
}

func prepareFilters(config *FiltersConfig, logger *zap.Logger) *filtering.Filtering {
	if config == nil {
		config = &FiltersConfig{}
	}

	steps := []filtering.Filter{
		filtering.NewNewsletter(),
		filtering.NewExcludedSenders(config.ExcludeSenders, logger),
		filtering.NewEventTypes(&filtering.EventTypesConfig{Keep: config.EventTypes}),
		filtering.NewMinConfidence(config.MinConfidence),
	}

	if !config.SkipNewsletters {
		filtering.DisableByName(steps, "newsletter", "skip-newsletters is off")
	}

	return filtering.New(steps, logger)
}
