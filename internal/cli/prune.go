package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mofprune/internal/app"
)

type pruneOptions struct {
	Schema      schemaFlags
	Roots       []string
	Output      string
	Format      string
	StageDir    string
	IncludeName string
}

func newPruneCommand() *cobra.Command {
	opts := pruneOptions{}
	cmd := &cobra.Command{
		Use:   "prune [flags] ROOT.mof...",
		Short: "Emit include directives for the schema files the root MOF files depend on",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrune(cmd, args, opts)
		},
	}
	bindSchemaFlags(cmd, &opts.Schema, true)
	cmd.Flags().StringSliceVar(&opts.Roots, "root", nil, "Root MOF file (repeatable; used when no arguments are given)")
	cmd.Flags().StringVar(&opts.Output, "output", "", "Write include directives to this file instead of stdout")
	cmd.Flags().StringVar(&opts.Format, "format", "pragma", "Output format (pragma|paths)")
	cmd.Flags().StringVar(&opts.StageDir, "stage-dir", "", "Copy required schema files into this directory")
	cmd.Flags().StringVar(&opts.IncludeName, "include-name", "schema-includes.mof", "Include file name written into the stage directory")

	_ = viper.BindPFlag("roots", cmd.Flags().Lookup("root"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("format", cmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("stage_dir", cmd.Flags().Lookup("stage-dir"))
	_ = viper.BindPFlag("include_name", cmd.Flags().Lookup("include-name"))
	return cmd
}

func runPrune(cmd *cobra.Command, args []string, opts pruneOptions) error {
	schema := opts.Schema.resolve(cmd)
	roots := args
	if len(roots) == 0 {
		roots = resolveStrings(cmd, opts.Roots, "roots", "root")
	}
	service := newAppService()
	result, err := service.Prune(commandContext(cmd), app.PruneRequest{
		SchemaDir:   schema.SchemaDir,
		ClassIndex:  schema.ClassIndex,
		Roots:       roots,
		Output:      resolveString(cmd, opts.Output, "output", "output"),
		Format:      resolveString(cmd, opts.Format, "format", "format"),
		ForwardRefs: schema.ForwardRefs,
		Workers:     schema.Workers,
		StageDir:    resolveString(cmd, opts.StageDir, "stage_dir", "stage-dir"),
		IncludeName: resolveString(cmd, opts.IncludeName, "include_name", "include-name"),
	})
	if err != nil {
		return err
	}
	event := log.Info().Int("required", len(result.Required))
	if result.OutputPath != "" {
		event = event.Str("output", result.OutputPath)
	}
	if result.IncludePath != "" {
		event = event.Str("include", result.IncludePath).Int("staged", len(result.Staged))
	}
	event.Msg("pruned")
	return nil
}
