package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/huanfeng/localecsv/internal/config"
	"github.com/huanfeng/localecsv/internal/errors"
	"github.com/huanfeng/localecsv/internal/i18n"
	"github.com/huanfeng/localecsv/internal/version"
	"github.com/huanfeng/localecsv/pkg/models"
	"github.com/huanfeng/localecsv/pkg/utils"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	debug   bool
	logFile string
	noColor bool
	langArg string

	appConfig *models.Config
	appLogger utils.Logger
)

var rootCmd = &cobra.Command{
	Use:   "localecsv",
	Short: "Export the system locale catalog to CSV",
	Long: `localecsv enumerates every locale known to the operating system and writes
its LCID, ANSI and OEM code pages, character-set names and descriptive names
to a UTF-8 CSV file. Running it without a subcommand performs the export.`,
	Version:           version.Short(),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runExport,
}

// Execute runs the root command and exits with status 1 on failure
func Execute() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	if err := i18n.Init(langFromArgs(args)); err != nil {
		fmt.Fprintf(stderr, "i18n init failed: %v\n", err)
	}
	applyCommandLocalization()

	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	closeLogger()
	if err == nil {
		return 0
	}

	if le, ok := errors.As(err); ok {
		fmt.Fprint(stderr, le.FormatDetailed())
		return le.ExitCode()
	}
	fmt.Fprintf(stderr, "%s: %v\n", i18n.T("common.error"), err)
	return 1
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default ./localecsv.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log progress details")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log every locale lookup")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "also append diagnostics to this file")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored diagnostics")
	rootCmd.PersistentFlags().StringVar(&langArg, "lang", "", "interface language (en, zh)")

	addExportFlags(rootCmd)
}

// setup loads configuration and the diagnostic logger before any command runs
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return errors.NewConfigurationError(err, errors.CodeConfigLoad, i18n.T("common.errLoadConfig")).
			WithContext("config", cfgFile)
	}
	appConfig = cfg

	loggerConfig := utils.DefaultLoggerConfig()
	loggerConfig.Level, _ = utils.ParseLogLevel(cfg.Log.Level)
	loggerConfig.Format, _ = utils.ParseLogFormat(cfg.Log.Format)
	loggerConfig.EnableColor = cfg.Log.Color && !noColor
	if verbose && loggerConfig.Level > utils.LogLevelInfo {
		loggerConfig.Level = utils.LogLevelInfo
	}
	if debug {
		loggerConfig.Level = utils.LogLevelDebug
	}
	if path := firstNonEmpty(logFile, cfg.Log.File); path != "" {
		loggerConfig.EnableFile = true
		loggerConfig.FilePath = path
	}

	if err := utils.InitGlobalLogger(loggerConfig); err != nil {
		return errors.NewFileSystemError(err, errors.CodeConfigInvalid, i18n.T("common.errLogger"))
	}
	appLogger = utils.GetGlobalLogger()
	appLogger.Debug("Interface language: %s", i18n.CurrentLanguage())
	return nil
}

func closeLogger() {
	if c, ok := appLogger.(io.Closer); ok {
		_ = c.Close()
	}
}

// langFromArgs finds --lang before cobra parses flags, so help text is localized too
func langFromArgs(args []string) string {
	for i, arg := range args {
		if arg == "--" {
			break
		}
		if v, ok := strings.CutPrefix(arg, "--lang="); ok {
			return v
		}
		if arg == "--lang" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
