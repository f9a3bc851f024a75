package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveStrings(cmd *cobra.Command, values []string, key string, flagName string) []string {
	if cmd == nil {
		if len(values) > 0 {
			return values
		}
		return viper.GetStringSlice(key)
	}
	if flagChanged(cmd, flagName) {
		return values
	}
	return viper.GetStringSlice(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func resolveInt(cmd *cobra.Command, value int, key string, flagName string) int {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetInt(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}

// normalizeFlagName accepts underscore spellings such as --cim_schema_dir.
func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// schemaFlags are shared by every command that loads a schema directory.
type schemaFlags struct {
	SchemaDir   string
	ClassIndex  string
	ForwardRefs string
	Workers     int
}

func bindSchemaFlags(cmd *cobra.Command, opts *schemaFlags, withIndex bool) {
	cmd.Flags().StringVar(&opts.SchemaDir, "cim-schema-dir", "", "CIM schema directory to index")
	cmd.Flags().StringVar(&opts.ForwardRefs, "forward-refs", "ordered", "Same-file forward reference handling (ordered|resolve)")
	cmd.Flags().IntVar(&opts.Workers, "workers", 8, "Concurrent parse workers (0 = default)")
	_ = viper.BindPFlag("cim_schema_dir", cmd.Flags().Lookup("cim-schema-dir"))
	_ = viper.BindPFlag("forward_refs", cmd.Flags().Lookup("forward-refs"))
	_ = viper.BindPFlag("workers", cmd.Flags().Lookup("workers"))
	if withIndex {
		cmd.Flags().StringVar(&opts.ClassIndex, "class-index", "", "Class index YAML to load instead of scanning")
		_ = viper.BindPFlag("class_index", cmd.Flags().Lookup("class-index"))
	}
}

func (f schemaFlags) resolve(cmd *cobra.Command) schemaFlags {
	return schemaFlags{
		SchemaDir:   resolveString(cmd, f.SchemaDir, "cim_schema_dir", "cim-schema-dir"),
		ClassIndex:  resolveString(cmd, f.ClassIndex, "class_index", "class-index"),
		ForwardRefs: resolveString(cmd, f.ForwardRefs, "forward_refs", "forward-refs"),
		Workers:     resolveInt(cmd, f.Workers, "workers", "workers"),
	}
}
