package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agily-hq/agily/internal/application"
	"github.com/agily-hq/agily/internal/config"
	"github.com/agily-hq/agily/internal/config/db"
	"github.com/agily-hq/agily/internal/notify"
	"github.com/agily-hq/agily/internal/repository"
)

func services() *application.Services {
	config.LoadConfig()
	db.Init()
	return application.New(repository.New(db.DB), notify.NewSMTPSender())
}

func main() {
	rootCmd := &cobra.Command{
		Use:          "agilyctl",
		Short:        "Operational CLI for the Agily tracker",
		SilenceUsage: true,
	}

	var outPath string
	exportCmd := &cobra.Command{
		Use:   "export-issues <project-id>",
		Short: "Export a project's issues to an Excel workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var pid uint
			if _, err := fmt.Sscanf(args[0], "%d", &pid); err != nil {
				return fmt.Errorf("invalid project id %q", args[0])
			}

			f, err := services().Excel.ExportIssues(repository.ExportFilter{PID: &pid})
			if err != nil {
				return err
			}
			if outPath == "" {
				outPath = fmt.Sprintf("issues-%d.xlsx", pid)
			}
			if err := f.SaveAs(outPath); err != nil {
				return err
			}
			cmd.Printf("Wrote %s\n", outPath)
			return nil
		},
	}
	exportCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default issues-<id>.xlsx)")

	importCmd := &cobra.Command{
		Use:   "import-issues <project-id> <file.xlsx>",
		Short: "Import issues into a project from an Excel workbook",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var pid uint
			if _, err := fmt.Sscanf(args[0], "%d", &pid); err != nil {
				return fmt.Errorf("invalid project id %q", args[0])
			}

			f, err := os.Open(args[1])
			if err != nil {
				return err
			}
			defer f.Close()

			created, warnings, err := services().Excel.ImportIssues(pid, f)
			if err != nil {
				return err
			}
			for _, warn := range warnings {
				cmd.Printf("warning: %s\n", warn)
			}
			cmd.Printf("Imported %d issue(s)\n", created)
			return nil
		},
	}

	rootCmd.AddCommand(exportCmd, importCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
