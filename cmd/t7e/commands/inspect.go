package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/t7e/core/catalog"
	"github.com/dmitrymomot/t7e/core/i18n"
	"github.com/dmitrymomot/t7e/core/logger"
)

func inspectCmd(a *app) *cobra.Command {
	var (
		domain  string
		entries bool
	)

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print the metadata and entries of a catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.source.Read(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			c, err := catalog.Decode(data, domain)
			if err != nil {
				return err
			}
			if perr := c.PluralFormsError(); perr != nil {
				a.log.Warn("plural forms ignored", logger.File(args[0]), logger.Error(perr))
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "domain\t%s\n", c.Domain())
			fmt.Fprintf(w, "charset\t%s\n", c.Charset())
			fmt.Fprintf(w, "nplurals\t%d\n", c.NPlurals())
			fmt.Fprintf(w, "plural\t%s\n", c.PluralForms())
			fmt.Fprintf(w, "messages\t%d\n", c.Len())

			if entries {
				fmt.Fprintln(w)
				for _, key := range c.Keys() {
					entry, _ := c.Lookup(key)
					ctx := "-"
					if key.HasContext {
						ctx = fmt.Sprintf("%q", key.Context)
					}
					fmt.Fprintf(w, "%s\t%q\t%s\n", ctx, key.ID, quoteAll(entry.Forms()))
				}
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&domain, "domain", "d", i18n.DefaultDomainName, "domain name recorded on the catalog")
	cmd.Flags().BoolVarP(&entries, "entries", "e", false, "list every entry")

	return cmd
}

func quoteAll(forms []string) string {
	quoted := make([]string, len(forms))
	for i, f := range forms {
		quoted[i] = fmt.Sprintf("%q", f)
	}
	return strings.Join(quoted, " | ")
}
