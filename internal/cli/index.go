package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mofprune/internal/app"
)

type indexOptions struct {
	Schema schemaFlags
	Output string
}

func newIndexCommand() *cobra.Command {
	opts := indexOptions{}
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Parse a CIM schema directory and write its class index",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runIndex(cmd, opts)
		},
	}
	bindSchemaFlags(cmd, &opts.Schema, false)
	cmd.Flags().StringVar(&opts.Output, "output", "class-index.yaml", "Output path for class index YAML")
	_ = viper.BindPFlag("index_output", cmd.Flags().Lookup("output"))
	return cmd
}

func runIndex(cmd *cobra.Command, opts indexOptions) error {
	schema := opts.Schema.resolve(cmd)
	service := newAppService()
	result, err := service.Index(commandContext(cmd), app.IndexRequest{
		SchemaDir:   schema.SchemaDir,
		Output:      resolveString(cmd, opts.Output, "index_output", "output"),
		ForwardRefs: schema.ForwardRefs,
		Workers:     schema.Workers,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "class index written: %s (%d files, %d classes)\n", result.OutputPath, result.FileCount, result.ClassCount)
	return nil
}
