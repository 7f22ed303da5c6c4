package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/huanfeng/localecsv/internal/config"
	"github.com/huanfeng/localecsv/internal/errors"
	"github.com/huanfeng/localecsv/internal/i18n"
	"github.com/huanfeng/localecsv/pkg/export"
	"github.com/huanfeng/localecsv/pkg/models"
	"github.com/huanfeng/localecsv/pkg/nls"
	"github.com/spf13/cobra"
)

var (
	exportOutput       string
	exportSort         bool
	exportCatalog      string
	exportCharsetNames string
	exportMissingField string
	exportProgress     bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the locale catalog to a CSV file",
	Long: `Enumerate all system locales and write one CSV row per locale that has an
ANSI code page. The file starts with a UTF-8 byte-order mark and a fixed header.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	addExportFlags(exportCmd)
}

// addExportFlags registers the export flags; the root command shares them so it can export directly
func addExportFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&exportOutput, "output", "o", config.DefaultOutput, "CSV file to write")
	cmd.Flags().BoolVar(&exportSort, "sort", true, "sort rows by locale name")
	cmd.Flags().StringVar(&exportCatalog, "catalog", "", "snapshot file to read instead of the native catalog")
	cmd.Flags().StringVar(&exportCharsetNames, "charset-names", export.CharsetNamesPlatform, "character-set naming: platform or iana")
	cmd.Flags().StringVar(&exportMissingField, "missing-field", "", "text for descriptive fields that cannot be read")
	cmd.Flags().BoolVar(&exportProgress, "progress", false, "show a progress bar on stderr")
}

// applyExportFlags overrides configuration with the flags the user actually set
func applyExportFlags(cmd *cobra.Command, cfg *models.Config) error {
	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output.Path = exportOutput
	}
	if flags.Changed("sort") {
		cfg.Output.Sort = exportSort
	}
	if flags.Changed("catalog") {
		cfg.Catalog.Source = exportCatalog
	}
	if flags.Changed("charset-names") {
		cfg.Records.CharsetNames = exportCharsetNames
	}
	if flags.Changed("missing-field") {
		cfg.Records.MissingField = exportMissingField
	}
	if err := config.Validate(cfg); err != nil {
		return errors.NewConfigurationError(err, errors.CodeConfigInvalid, i18n.T("common.errInvalidConfig"))
	}
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg := *appConfig
	if err := applyExportFlags(cmd, &cfg); err != nil {
		return err
	}

	catalog, err := openCatalog(cfg.Catalog.Source)
	if err != nil {
		return err
	}

	charsets, err := export.NewCharsetNamer(cfg.Records.CharsetNames, catalog)
	if err != nil {
		return errors.NewConfigurationError(err, errors.CodeConfigInvalid, i18n.T("common.errInvalidConfig"))
	}

	builder := export.NewBuilder(catalog, charsets,
		export.WithMissingField(cfg.Records.MissingField),
		export.WithLogger(appLogger),
	)

	fmt.Fprintln(cmd.ErrOrStderr(), i18n.T("cmd.export.start", map[string]interface{}{
		"source": cfg.Catalog.Source,
	}))

	opts := export.Options{
		Output: cfg.Output.Path,
		Sort:   cfg.Output.Sort,
	}
	if exportProgress {
		opts.Progress = cmd.ErrOrStderr()
	}

	summary, err := export.Run(catalog, builder, opts, appLogger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, i18n.T("cmd.export.summary", map[string]interface{}{
		"written": summary.Written,
		"total":   summary.Enumerated,
		"skipped": summary.TotalSkipped(),
	}))
	fmt.Fprintln(out, i18n.T("cmd.export.done", map[string]interface{}{
		"output": summary.Output,
	}))
	return nil
}

// openCatalog returns the native catalog for "native" (or empty), otherwise loads a snapshot file
func openCatalog(source string) (nls.Catalog, error) {
	if source == "" || strings.EqualFold(source, config.SourceNative) {
		catalog, err := nls.Native()
		if err != nil {
			return nil, errors.NewPlatformError(err, errors.CodeCatalogOpen, i18n.T("common.errCatalog"))
		}
		return catalog, nil
	}

	if _, err := os.Stat(source); err != nil {
		return nil, errors.NewFileSystemError(err, errors.CodeCatalogOpen, i18n.T("common.errCatalog")).
			WithContext("catalog", source)
	}
	snapshot, err := nls.LoadSnapshot(source)
	if err != nil {
		return nil, errors.NewPlatformError(err, errors.CodeCatalogOpen, i18n.T("common.errCatalog")).
			WithContext("catalog", source)
	}
	return snapshot, nil
}
