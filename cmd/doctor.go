package cmd

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/huanfeng/localecsv/internal/errors"
	"github.com/huanfeng/localecsv/internal/i18n"
	"github.com/huanfeng/localecsv/pkg/export"
	"github.com/huanfeng/localecsv/pkg/models"
	"github.com/huanfeng/localecsv/pkg/nls"
	"github.com/huanfeng/localecsv/pkg/system"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that an export can run",
	Long: `The doctor command checks that the locale catalog can be opened and
enumerated, how many locales would be exported or skipped, and that the
output directory is writable. Nothing is written to the CSV file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		cfg := *appConfig
		if err := applyExportFlags(cmd, &cfg); err != nil {
			return err
		}

		fmt.Fprintln(out, i18n.T("cmd.doctor.title"))
		fmt.Fprintln(out, strings.Repeat("=", 50))

		var issues []string

		catalog, err := openCatalog(cfg.Catalog.Source)
		if err != nil {
			issues = append(issues, reportCheck(out, i18n.T("cmd.doctor.checkCatalog"), err))
		} else {
			reportCheck(out, i18n.T("cmd.doctor.checkCatalog"), nil)
			if issue := checkEnumeration(out, catalog, &cfg); issue != "" {
				issues = append(issues, issue)
			}
		}

		if issue := reportCheck(out, i18n.T("cmd.doctor.checkOutput"), checkWritable(cfg.Output.Path)); issue != "" {
			issues = append(issues, issue)
		} else if issue := checkDiskSpace(out, cfg.Output.Path); issue != "" {
			issues = append(issues, issue)
		}

		fmt.Fprintln(out, strings.Repeat("=", 50))
		if len(issues) == 0 {
			fmt.Fprintln(out, i18n.T("cmd.doctor.allPassed"))
			return nil
		}

		fmt.Fprintln(out, i18n.T("cmd.doctor.issues", map[string]interface{}{"count": len(issues)}))
		for i, issue := range issues {
			fmt.Fprintf(out, "%d. %s\n", i+1, issue)
		}
		return errors.NewValidationError(errors.CodeDoctorFailed, i18n.T("cmd.doctor.failed"))
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	addExportFlags(doctorCmd)
}

// reportCheck prints one check line and returns the issue text for a failure
func reportCheck(out io.Writer, name string, err error) string {
	if err == nil {
		fmt.Fprintf(out, "[OK]   %s\n", name)
		return ""
	}
	fmt.Fprintf(out, "[FAIL] %s: %v\n", name, err)
	return fmt.Sprintf("%s: %v", name, err)
}

// checkEnumeration dry-runs the builder over the catalog and reports what an export would contain
func checkEnumeration(out io.Writer, catalog nls.Catalog, cfg *models.Config) string {
	entries, err := catalog.Locales()
	if issue := reportCheck(out, i18n.T("cmd.doctor.checkEnumerate"), err); issue != "" {
		return issue
	}

	charsets, err := export.NewCharsetNamer(cfg.Records.CharsetNames, catalog)
	if err != nil {
		return reportCheck(out, i18n.T("cmd.doctor.checkEnumerate"), err)
	}
	builder := export.NewBuilder(catalog, charsets, export.WithLogger(appLogger))

	skipped := make(map[export.SkipReason]int)
	exported, unknown := 0, 0
	for _, entry := range entries {
		record, reason := builder.Build(entry)
		if reason.Skipped() {
			skipped[reason]++
			continue
		}
		exported++
		if record.ANSICharset == export.UnknownCharset {
			unknown++
		}
	}

	fmt.Fprintf(out, "       %s\n", i18n.T("cmd.doctor.locales", map[string]interface{}{
		"total":    len(entries),
		"exported": exported,
	}))
	for _, reason := range []export.SkipReason{export.SkipLCID, export.SkipANSILookup, export.SkipANSIZero} {
		if n := skipped[reason]; n > 0 {
			fmt.Fprintf(out, "       %s\n", i18n.T("cmd.doctor.skipped", map[string]interface{}{
				"count":  n,
				"reason": string(reason),
			}))
		}
	}
	if unknown > 0 {
		fmt.Fprintf(out, "       %s\n", i18n.T("cmd.doctor.unknownCharsets", map[string]interface{}{"count": unknown}))
	}
	if names := nls.NonBCP47(entries); len(names) > 0 {
		fmt.Fprintf(out, "       %s\n", i18n.T("cmd.doctor.nonBCP47", map[string]interface{}{"count": len(names)}))
		appLogger.Debug("Locale names outside BCP 47: %s", strings.Join(names, ", "))
	}

	if len(entries) == 0 {
		return i18n.T("cmd.doctor.emptyCatalog")
	}
	return ""
}

// minFreeSpace is far above the size of a full export
const minFreeSpace = 1 << 20

// checkDiskSpace reports the space left on the output volume
func checkDiskSpace(out io.Writer, path string) string {
	dir, err := nearestExistingDir(filepath.Dir(path))
	if err != nil {
		return reportCheck(out, i18n.T("cmd.doctor.checkDisk"), err)
	}
	usage, err := system.CheckDiskSpace(dir)
	if stderrors.Is(err, system.ErrUnsupported) {
		appLogger.Debug("Skipping disk space check: %v", err)
		return ""
	}
	if err == nil && usage.Available < minFreeSpace {
		err = fmt.Errorf("%s", i18n.T("cmd.doctor.lowDisk", map[string]interface{}{
			"available": system.FormatBytes(usage.Available),
		}))
	}
	if issue := reportCheck(out, i18n.T("cmd.doctor.checkDisk"), err); issue != "" {
		return issue
	}

	fmt.Fprintf(out, "       %s\n", i18n.T("cmd.doctor.diskFree", map[string]interface{}{
		"available": system.FormatBytes(usage.Available),
		"used":      fmt.Sprintf("%.1f", usage.UsedPct()),
	}))
	return ""
}

// checkWritable creates and removes a temporary file in the output directory,
// or in its nearest existing parent since the export creates missing directories
func checkWritable(path string) error {
	dir, err := nearestExistingDir(filepath.Dir(path))
	if err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, ".localecsv-doctor-*")
	if err != nil {
		return err
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}

// nearestExistingDir returns dir or the closest ancestor that exists
func nearestExistingDir(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		info, err := os.Stat(dir)
		if err == nil {
			if !info.IsDir() {
				return "", fmt.Errorf("%s is not a directory", dir)
			}
			return dir, nil
		}
		if !os.IsNotExist(err) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", err
		}
		dir = parent
	}
}
