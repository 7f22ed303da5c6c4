package cmd

import (
	"github.com/huanfeng/localecsv/internal/i18n"
	"github.com/spf13/cobra"
)

var flagMessages = map[string]string{
	"config":        "flags.config",
	"verbose":       "flags.verbose",
	"debug":         "flags.debug",
	"log-file":      "flags.logFile",
	"no-color":      "flags.noColor",
	"lang":          "flags.lang",
	"output":        "flags.output",
	"sort":          "flags.sort",
	"catalog":       "flags.catalog",
	"charset-names": "flags.charsetNames",
	"missing-field": "flags.missingField",
	"progress":      "flags.progress",
}

// applyCommandLocalization updates command and flag descriptions after i18n is initialized.
func applyCommandLocalization() {
	localizeCommand(rootCmd, "cmd.root")
	localizeCommand(exportCmd, "cmd.export")
	localizeCommand(snapshotCmd, "cmd.snapshot")
	localizeCommand(initCmd, "cmd.init")
	localizeCommand(doctorCmd, "cmd.doctor")
	localizeCommand(versionCmd, "cmd.version")

	for name, id := range flagMessages {
		if flag := rootCmd.PersistentFlags().Lookup(name); flag != nil {
			flag.Usage = i18n.T(id)
		}
		// Export flags are registered on several commands; snapshot and init keep their own wording.
		for _, cmd := range []*cobra.Command{rootCmd, exportCmd, doctorCmd} {
			if flag := cmd.Flags().Lookup(name); flag != nil {
				flag.Usage = i18n.T(id)
			}
		}
	}
}

func localizeCommand(cmd *cobra.Command, prefix string) {
	cmd.Short = i18n.T(prefix + ".short")
	cmd.Long = i18n.T(prefix + ".long")
}
