package main

import (
	"fmt"

	"github.com/jonathan/resume-deck/internal/config"
	"github.com/jonathan/resume-deck/internal/observability"
	"github.com/jonathan/resume-deck/internal/rendering"
	"github.com/spf13/cobra"
)

var inspectTemplateCmd = &cobra.Command{
	Use:   "inspect-template",
	Short: "List the text regions of a template and the field each one receives",
	RunE:  runInspectTemplate,
}

var (
	inspectConfigPath string
	inspectTemplate   string
)

func init() {
	inspectTemplateCmd.Flags().StringVar(&inspectConfigPath, "config", "", "Path to config.json file")
	inspectTemplateCmd.Flags().StringVarP(&inspectTemplate, "template", "t", "", "Path to the .pptx template (default "+config.DefaultTemplate+")")

	rootCmd.AddCommand(inspectTemplateCmd)
}

func runInspectTemplate(cmd *cobra.Command, _ []string) error {
	var flags config.Config
	if cmd.Flags().Changed("template") {
		flags.Template = inspectTemplate
	}

	cfg, err := resolveConfig(inspectConfigPath, flags)
	if err != nil {
		return err
	}

	regions, err := rendering.ListRegions(cfg.Template)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Template: %s\n", cfg.Template)
	observability.NewPrinter(cmd.OutOrStdout()).PrintRegions(regions)
	return nil
}
