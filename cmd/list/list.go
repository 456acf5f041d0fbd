// Package list provides the list command.
package list

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/basesgo/bases/cmd"
	"github.com/basesgo/bases/lib/enum"
	"github.com/basesgo/bases/lib/flags"
	"github.com/basesgo/bases/registry"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v2"
)

// Format is the output format of the listing
type Format = enum.Enum[formatChoices]

// Output formats
const (
	FormatText Format = iota
	FormatYAML
	FormatJSON
)

type formatChoices struct{}

func (formatChoices) Choices() []string {
	return []string{
		FormatText: "text",
		FormatYAML: "yaml",
		FormatJSON: "json",
	}
}

// Globals
var (
	prefix = ""
	format = FormatText
)

func init() {
	cmd.Root.AddCommand(commandDefinition)
	cmdFlags := commandDefinition.Flags()
	flags.StringVarP(cmdFlags, &prefix, "prefix", "", prefix, "Only list names starting with this")
	flags.FVarP(cmdFlags, &format, "format", "", "Output format text|yaml|json")
}

var commandDefinition = &cobra.Command{
	Use:   "list [alphabets|encodings]",
	Short: `List the registered alphabets and encodings.`,
	Long: `List the registered alphabets, encodings or both, sorted by name.

    $ bases list --prefix base58 encodings
    $ bases list --format yaml alphabets
`,
	ValidArgs: []string{"alphabets", "encodings"},
	RunE: func(command *cobra.Command, args []string) error {
		if err := cmd.CheckArgs(0, 1, command, args); err != nil {
			return err
		}
		what := ""
		if len(args) > 0 {
			what = args[0]
		}
		items, err := Items(what, prefix)
		if err != nil {
			return err
		}
		return Write(command.OutOrStdout(), items, format)
	},
}

// Item describes one registry entry
type Item struct {
	Table         string `json:"table" yaml:"table"`
	Name          string `json:"name" yaml:"name"`
	Kind          string `json:"kind" yaml:"kind"`
	Base          int    `json:"base" yaml:"base"`
	CaseSensitive bool   `json:"case_sensitive" yaml:"case_sensitive"`
	Description   string `json:"description" yaml:"description"`
}

// Items lists the entries of the table what, or of both tables if what
// is empty, which start with prefix.
func Items(what, prefix string) (items []Item, err error) {
	switch what {
	case "", "alphabets", "encodings":
	default:
		return nil, cmd.UsageError(errors.Errorf("can't list %q: want alphabets or encodings", what))
	}
	if what != "encodings" {
		for _, e := range registry.Alphabets.List(prefix) {
			items = append(items, Item{
				Table:         "alphabets",
				Name:          e.Name,
				Kind:          e.Value.Kind().String(),
				Base:          e.Value.Base(),
				CaseSensitive: e.Value.CaseSensitive(),
				Description:   e.Value.String(),
			})
		}
	}
	if what != "alphabets" {
		for _, e := range registry.Encodings.List(prefix) {
			items = append(items, Item{
				Table:         "encodings",
				Name:          e.Name,
				Kind:          e.Value.Kind().String(),
				Base:          e.Value.Base(),
				CaseSensitive: e.Value.CaseSensitive(),
				Description:   e.Value.String(),
			})
		}
	}
	return items, nil
}

// Write prints items to w in format
func Write(w io.Writer, items []Item, format Format) error {
	switch format {
	case FormatJSON:
		if items == nil {
			items = []Item{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(items), "writing json")
	case FormatYAML:
		out, err := yaml.Marshal(items)
		if err != nil {
			return errors.Wrap(err, "writing yaml")
		}
		_, err = w.Write(out)
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	table := ""
	for _, item := range items {
		if item.Table != table {
			if table != "" {
				_, _ = fmt.Fprintln(tw)
			}
			table = item.Table
			_, _ = fmt.Fprintf(tw, "%s:\n", table)
		}
		cs := "case-insensitive"
		if item.CaseSensitive {
			cs = "case-sensitive"
		}
		_, _ = fmt.Fprintf(tw, "  %s\t%s\t%d\t%s\t%s\n", item.Name, item.Kind, item.Base, cs, item.Description)
	}
	return tw.Flush()
}
