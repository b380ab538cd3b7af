package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"bikeshare/config"
	"bikeshare/domain/entities/filter"
	"bikeshare/storage"
	"bikeshare/utils"

	"github.com/sirupsen/logrus"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configFilepath string
	envFile        string
	logLevel       string
	cityFlag       string
	monthFlag      string
	dayFlag        string
)

var rootCmd = &cobra.Command{
	Use:   "bikeshare",
	Short: "Explore US bikeshare trip data",
	Long: `Loads the trips of Chicago, New York City or Washington, filters them by month and day
and prints the most frequent times of travel, the popular stations, trip durations and user stats.

Without --city the filters are asked interactively.`,
	SilenceUsage: true,
	RunE:         runExplorer,
}

var historyCmd = &cobra.Command{
	Use:          "history",
	Short:        "List the reports saved in the report store",
	SilenceUsage: true,
	RunE:         runHistory,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFilepath, "config", config.DefaultConfigFilepath, "path to the yaml config file")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "optional .env file with overrides")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (overrides config)")

	rootCmd.Flags().StringVar(&cityFlag, "city", "", "city to analyze, skips the interactive prompts")
	rootCmd.Flags().StringVar(&monthFlag, "month", filter.All, "month filter (January..June or all)")
	rootCmd.Flags().StringVar(&dayFlag, "day", filter.All, "day filter (Monday..Sunday or all)")

	rootCmd.AddCommand(historyCmd)
}

// InitLogger Receives the log level to be set in logrus as a string. This method
// parses the string and set the level to the logger. If the level string is not
// valid an error is returned
func InitLogger(logLevel string) error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	customFormatter := &logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   false,
	}
	logrus.SetFormatter(customFormatter)
	logrus.SetLevel(level)
	return nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var envFiles []string
	if envFile != "" {
		envFiles = append(envFiles, envFile)
	}

	cfg, err := config.LoadConfig(configFilepath, envFiles...)
	if errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("config") {
		log.Debugf("[method: loadConfig] %s not found, using defaults and environment", configFilepath)
		cfg, err = config.FromEnv(envFiles...)
	}
	if err != nil {
		return nil, err
	}

	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if err = InitLogger(cfg.LogLevel); err != nil {
		return nil, err
	}
	return cfg, nil
}

func openReportWriters(ctx context.Context, cfg *config.Config) ([]storage.ReportWriter, error) {
	var writers []storage.ReportWriter

	publisherConfig := cfg.Report.Publisher
	if publisherConfig.Enabled {
		publisher, err := storage.NewRabbitMQPublisher(publisherConfig.URL, publisherConfig.Queue, publisherConfig.ContentType)
		if err != nil {
			return nil, err
		}
		writers = append(writers, publisher)
	}

	if cfg.Report.Store.Driver != "" {
		sqlWriter, err := storage.NewSQLWriter(ctx, cfg.Report.Store.Driver, cfg.Report.Store.DSN)
		if err != nil {
			for _, writer := range writers {
				_ = writer.Close()
			}
			return nil, err
		}
		writers = append(writers, sqlWriter)
	}

	return writers, nil
}

func presetSpec(cmd *cobra.Command) (*filter.Spec, error) {
	if !cmd.Flags().Changed("city") {
		return nil, nil
	}

	spec, err := filter.NewSpec(cityFlag, monthFlag, dayFlag)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

func runExplorer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	spec, err := presetSpec(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	writers, err := openReportWriters(ctx, cfg)
	if err != nil {
		log.Errorf("[method: runExplorer] error opening report writers, reports will not be saved: %s", err.Error())
		writers = nil
	}

	client := NewClient(cfg, cmd.InOrStdin(), cmd.OutOrStdout(), writers...)
	defer client.Close()

	err = client.Run(ctx, spec)
	log.Debug("Finish main.go")
	return err
}

func runHistory(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if cfg.Report.Store.Driver == "" {
		return fmt.Errorf("%w: report.store.driver is not set", config.ErrInvalidConfig)
	}

	ctx := cmd.Context()
	store, err := storage.NewSQLWriter(ctx, cfg.Report.Store.Driver, cfg.Report.Store.DSN)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			log.Errorf("[method: runHistory] error closing report store: %s", closeErr.Error())
		}
	}()

	var reader storage.ReportReader = store
	reports, err := reader.FetchAll(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, report := range reports {
		fmt.Fprintf(out, "%s  %s  %s  %v trips\n", report.CreatedAt.Format("2006-01-02 15:04:05"), report.QueryID, report.Filter, report.Trips)
	}
	if len(reports) == 0 {
		fmt.Fprintln(out, "There are no saved reports.")
	}
	return nil
}

func main() {
	ctx, stop := utils.GetSignalContext(context.Background())
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
