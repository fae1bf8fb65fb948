package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/t7e/core/i18n"
	"github.com/dmitrymomot/t7e/core/logger"
)

func translateCmd(a *app) *cobra.Command {
	var (
		locales []string
		domain  string
		msgctx  string
		plural  string
		count   int
		set     map[string]string
	)

	cmd := &cobra.Command{
		Use:   "translate <msgid>",
		Short: "Resolve one message through the manifest's catalogs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.source.Read(cmd.Context(), a.cfg.Manifest)
			if err != nil {
				return fmt.Errorf("read manifest: %w", err)
			}
			m, err := i18n.ParseManifest(data)
			if err != nil {
				return err
			}

			bundle, err := i18n.LoadBundle(cmd.Context(), a.source, m, i18n.WithLogger(a.log))
			if err != nil {
				return err
			}

			locale, p := bundle.MatchLocale(locales...)
			a.log.Debug("locale selected", logger.Locale(locale))

			msg := i18n.Message{
				Singular: args[0],
				Plural:   plural,
				Domain:   domain,
			}
			if cmd.Flags().Changed("context") {
				msg.Context = i18n.String(msgctx)
			}
			if cmd.Flags().Changed("count") {
				msg.Count = i18n.Int(count)
			}

			placeholders := make(i18n.M, len(set))
			for k, v := range set {
				placeholders[k] = v
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), p.Render(msg, placeholders))
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVarP(&locales, "locale", "l", nil, "preferred locales or Accept-Language values, best first")
	flags.StringVarP(&domain, "domain", "d", "", "domain (default: the locale's primary domain)")
	flags.StringVarP(&msgctx, "context", "c", "", "message context; an explicit empty value is a context too")
	flags.StringVarP(&plural, "plural", "p", "", "plural source text")
	flags.IntVarP(&count, "count", "n", 0, "count used to select the plural form")
	flags.StringToStringVar(&set, "set", nil, "placeholder values, e.g. --set user=Ann")

	return cmd
}
