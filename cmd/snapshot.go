package cmd

import (
	"fmt"
	"runtime"

	"github.com/huanfeng/localecsv/internal/errors"
	"github.com/huanfeng/localecsv/internal/i18n"
	"github.com/huanfeng/localecsv/internal/version"
	"github.com/huanfeng/localecsv/pkg/nls"
	"github.com/spf13/cobra"
)

var (
	snapshotOutput  string
	snapshotCatalog string
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Capture the locale catalog to a replayable file",
	Long: `Record every answer the locale catalog gives (locale names, flags, LCIDs,
properties and code page names) into a YAML, TOML or JSON file. Pass the file
to 'localecsv export --catalog' to reproduce the export on any machine.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		source := appConfig.Catalog.Source
		if cmd.Flags().Changed("catalog") {
			source = snapshotCatalog
		}

		catalog, err := openCatalog(source)
		if err != nil {
			return err
		}

		label := fmt.Sprintf("%s/%s localecsv %s", runtime.GOOS, runtime.GOARCH, version.Short())
		if s, ok := catalog.(*nls.Snapshot); ok && s.Source != "" {
			label = s.Source
		}

		snapshot, err := nls.Capture(catalog, label)
		if err != nil {
			return errors.NewPlatformError(err, errors.CodeCatalogEnum, i18n.T("common.errCatalog"))
		}

		if err := snapshot.Save(snapshotOutput); err != nil {
			return errors.NewFileSystemError(err, errors.CodeSnapshotWrite, i18n.T("cmd.snapshot.errWrite")).
				WithContext("path", snapshotOutput)
		}

		appLogger.Info("Captured %d locales and %d code pages", len(snapshot.Entries), len(snapshot.CodePages))
		fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cmd.snapshot.done", map[string]interface{}{
			"count":  len(snapshot.Entries),
			"output": snapshotOutput,
		}))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(snapshotCmd)

	snapshotCmd.Flags().StringVarP(&snapshotOutput, "output", "o", "locale_catalog.yaml", "snapshot file (.yaml, .toml or .json)")
	snapshotCmd.Flags().StringVar(&snapshotCatalog, "catalog", "", "re-encode an existing snapshot instead of the native catalog")
}
