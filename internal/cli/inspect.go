package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mofprune/internal/app"
)

type inspectOptions struct {
	ForwardRefs string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect FILE...",
		Short: "Show the classes a MOF file defines and depends on",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args, opts)
		},
	}
	cmd.Flags().StringVar(&opts.ForwardRefs, "forward-refs", "ordered", "Same-file forward reference handling (ordered|resolve)")
	_ = viper.BindPFlag("forward_refs", cmd.Flags().Lookup("forward-refs"))
	return cmd
}

func runInspect(cmd *cobra.Command, args []string, opts inspectOptions) error {
	service := newAppService()
	result, err := service.Inspect(app.InspectRequest{
		Files:       args,
		ForwardRefs: resolveString(cmd, opts.ForwardRefs, "forward_refs", "forward-refs"),
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, file := range result.Files {
		fmt.Fprintf(out, "%s\n", file.Path)
		fmt.Fprintf(out, "  defines: %s\n", strings.Join(file.DefinedClasses, ", "))
		fmt.Fprintf(out, "  depends: %s\n", strings.Join(file.DependentClasses, ", "))
	}
	return nil
}
