package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/diary/pkg/section"
)

// SectionOptions narrows a list to one section and an optional query.
type SectionOptions struct {
	Section string
	Search  string
}

func AddSectionArgs(cmd *cobra.Command, o *SectionOptions) {
	cmd.Flags().StringVarP(&o.Section, "section", "s", "",
		"Only entries with content in this section.")
	cmd.Flags().StringVarP(&o.Search, "search", "q", "",
		"Only entries containing this text.")
	_ = cmd.RegisterFlagCompletionFunc("section", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return SectionNames(), cobra.ShellCompDirectiveNoFileComp
	})
}

// GetSection resolves the flag; empty means every section.
func (o *SectionOptions) GetSection() (section.Key, error) {
	if o.Section == "" {
		return "", nil
	}
	return section.ForAlias(o.Section)
}

// SectionNames lists section keys for completion and ValidArgs.
func SectionNames() []string {
	keys := section.Keys()
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, string(k))
	}
	return names
}
