package cmd

import (
	"fmt"
	"os"

	"github.com/huanfeng/localecsv/internal/config"
	"github.com/huanfeng/localecsv/internal/errors"
	"github.com/huanfeng/localecsv/internal/i18n"
	"github.com/spf13/cobra"
)

var (
	initForce bool
	initPath  string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a localecsv configuration file",
	Long:  `Write a commented localecsv.yaml with every setting at its default value.`,
	Args:  cobra.NoArgs,
	// The configuration may not exist yet, so skip loading it.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(initPath); err == nil && !initForce {
			return errors.NewValidationError(errors.CodeConfigExists,
				i18n.T("cmd.init.exists", map[string]interface{}{"path": initPath})).
				WithSuggestion(i18n.T("cmd.init.useForce"))
		}

		if err := config.SaveTemplate(initPath); err != nil {
			return errors.NewFileSystemError(err, errors.CodeTemplateWrite, i18n.T("cmd.init.errWrite")).
				WithContext("path", initPath)
		}

		fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cmd.init.created", map[string]interface{}{"path": initPath}))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing configuration")
	initCmd.Flags().StringVarP(&initPath, "output", "o", "localecsv.yaml", "configuration file to create")
}
