package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"refdeck/internal/bootstrap"
	"refdeck/internal/platform/config"
	"refdeck/internal/platform/id"
	"refdeck/internal/platform/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootFlags struct {
	configPath string
	content    string
	dataDir    string
	watch      bool
	asJSON     bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "refdeck",
		Short:         "Terminal study-card reference browser",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.configPath, "config", config.DefaultFile, "config file path")
	root.PersistentFlags().StringVar(&flags.content, "content", "", "content document path or URL (overrides config)")
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "data directory (overrides config)")
	root.PersistentFlags().BoolVar(&flags.watch, "watch", false, "reload the TUI when the content file changes")
	root.PersistentFlags().BoolVar(&flags.asJSON, "json", false, "print JSON instead of text")

	root.AddCommand(newTUICmd(flags))
	root.AddCommand(newRouteCmd(flags))
	root.AddCommand(newSearchCmd(flags))
	root.AddCommand(newTopicsCmd(flags))
	root.AddCommand(newTagsCmd(flags))
	root.AddCommand(newPreviewCmd(flags))
	root.AddCommand(newCheckCmd(flags))
	root.AddCommand(newThemeCmd(flags))
	root.AddCommand(newConfigCmd(flags))
	root.AddCommand(newMCPCmd(flags))
	return root
}

func loadConfig(flags *rootFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}
	if flags.content != "" {
		cfg.Content = flags.content
	}
	if flags.dataDir != "" {
		cfg.DataDir = flags.dataDir
	}
	if flags.watch {
		cfg.Watch = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// loadApp wires the application. toFile sends logs to the log file, which
// the TUI needs because it owns the terminal.
func loadApp(flags *rootFlags, toFile bool) (*bootstrap.App, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(cfg, toFile, id.UUID{})
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg, logger)
}

func withApp(flags *rootFlags, toFile bool, run func(app *bootstrap.App) error) error {
	app, err := loadApp(flags, toFile)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()
	return run(app)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTUICmd(flags *rootFlags) *cobra.Command {
	var route string
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive browser",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, true, func(app *bootstrap.App) error {
				return bootstrap.RunTUI(cmd.Context(), app, route, app.Config().Watch)
			})
		},
	}
	cmd.Flags().StringVar(&route, "route", "", "initial fragment, e.g. #browse or #topic/<slug>")
	return cmd
}

func newRouteCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "route <fragment>",
		Short: "Resolve a fragment and print the view it selects",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fragment := ""
			if len(args) == 1 {
				fragment = args[0]
			}
			return withApp(flags, false, func(app *bootstrap.App) error {
				out, err := app.BrowseCLI.Route(cmd.Context(), fragment)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				if flags.asJSON {
					return printJSON(w, out)
				}
				_, _ = fmt.Fprintf(w, "route: %s\nview: %s\n", out.Route, out.View)
				if out.Title != "" {
					_, _ = fmt.Fprintf(w, "title: %s\n", out.Title)
				}
				if out.Summary != "" {
					_, _ = fmt.Fprintf(w, "summary: %s\n", out.Summary)
				}
				if out.Message != "" {
					_, _ = fmt.Fprintf(w, "message: %s\n", out.Message)
				}
				for i, ch := range out.Chapters {
					_, _ = fmt.Fprintf(w, "chapter %d: %s\n", i+1, ch)
				}
				for _, section := range out.Sections {
					_, _ = fmt.Fprintf(w, "\n%s\n", section.Title)
					for _, link := range section.Links {
						_, _ = fmt.Fprintf(w, "  %s\t%s\t%d cards\n", link.Fragment, link.Title, link.CardCount)
					}
				}
				if len(out.Cards) > 0 {
					_, _ = fmt.Fprintf(w, "\ncards: %d\n", len(out.Cards))
					for _, c := range out.Cards {
						_, _ = fmt.Fprintf(w, "  %s\t%s\t%s\n", c.ID, c.Topic, c.Question)
					}
				}
				return nil
			})
		},
	}
}

func newSearchCmd(flags *rootFlags) *cobra.Command {
	var category, topic, tag, term string
	var limit int
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Filter cards by category, topic, tag and free text",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit < 0 {
				return fmt.Errorf("--limit must be non-negative")
			}
			return withApp(flags, false, func(app *bootstrap.App) error {
				cards, err := app.SearchCLI.Search(cmd.Context(), category, topic, tag, term, limit)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				if flags.asJSON {
					return printJSON(w, cards)
				}
				if len(cards) == 0 {
					_, _ = fmt.Fprintln(w, "no cards match")
					return nil
				}
				for _, c := range cards {
					topicTitle := c.TopicTitle
					if c.Orphan {
						topicTitle = "(no topic)"
					}
					_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.ID, topicTitle, strings.Join(c.Tags, ","), c.Question)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "category slug (default all)")
	cmd.Flags().StringVar(&topic, "topic", "", "topic slug (default all)")
	cmd.Flags().StringVar(&tag, "tag", "", "exact tag (default all)")
	cmd.Flags().StringVar(&term, "term", "", "case-insensitive text term")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum results (0 for no limit)")
	return cmd
}

func newTopicsCmd(flags *rootFlags) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "topics",
		Short: "List topic options, narrowed by category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, false, func(app *bootstrap.App) error {
				topics, err := app.SearchCLI.Topics(cmd.Context(), category)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				if flags.asJSON {
					return printJSON(w, topics)
				}
				for _, t := range topics {
					_, _ = fmt.Fprintf(w, "%s\t%s\n", t.Slug, t.Title)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "category slug (default all)")
	return cmd
}

func newTagsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List every tag in the content",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, false, func(app *bootstrap.App) error {
				tags, err := app.CatalogCLI.Tags(cmd.Context())
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				if flags.asJSON {
					return printJSON(w, tags)
				}
				if len(tags) == 0 {
					_, _ = fmt.Fprintln(w, "no tags")
					return nil
				}
				for _, t := range tags {
					_, _ = fmt.Fprintln(w, t)
				}
				return nil
			})
		},
	}
}

func newPreviewCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "preview <slug>",
		Short: "Show a topic preview",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(flags, false, func(app *bootstrap.App) error {
				p, err := app.CatalogCLI.Preview(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				if flags.asJSON {
					return printJSON(w, p)
				}
				_, _ = fmt.Fprintf(w, "title: %s\nsummary: %s\nchapters: %d\ncards: %d\n", p.Title, p.Summary, p.ChapterCount, p.CardCount)
				for i, ch := range p.Chapters {
					_, _ = fmt.Fprintf(w, "  %d. %s\n", i+1, ch)
				}
				return nil
			})
		},
	}
}

func newCheckCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Load the content and report what was indexed",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, false, func(app *bootstrap.App) error {
				report, err := app.CatalogCLI.Check(cmd.Context())
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				if flags.asJSON {
					return printJSON(w, report)
				}
				_, _ = fmt.Fprintf(w, "source: %s\nvariant: %s\ncategories: %d\ntopics: %d\nsubtopics: %d\ncards: %d (orphans %d)\ntags: %d\n",
					report.Source, report.Variant, report.Categories, report.Topics, report.Subtopics, report.Cards, report.Orphans, report.Tags)
				if len(report.Rejections) > 0 {
					_, _ = fmt.Fprintf(w, "rejected: %d\n", len(report.Rejections))
					for _, r := range report.Rejections {
						_, _ = fmt.Fprintf(w, "  %s %s: %s\n", r.Kind, r.ID, r.Reason)
					}
				}
				return nil
			})
		},
	}
}

func newThemeCmd(flags *rootFlags) *cobra.Command {
	theme := &cobra.Command{Use: "theme", Short: "Show or change the stored theme"}

	report := func(cmd *cobra.Command, name string, stored bool) error {
		w := cmd.OutOrStdout()
		if flags.asJSON {
			return printJSON(w, map[string]any{"theme": name, "stored": stored})
		}
		if !stored {
			_, _ = fmt.Fprintf(w, "%s (default)\n", name)
			return nil
		}
		_, _ = fmt.Fprintln(w, name)
		return nil
	}

	theme.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the stored theme",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, false, func(app *bootstrap.App) error {
				out, err := app.PreferenceCLI.Show(cmd.Context())
				if err != nil {
					return err
				}
				return report(cmd, out.Theme, out.Stored)
			})
		},
	})
	theme.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Switch between light and dark",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, false, func(app *bootstrap.App) error {
				out, err := app.PreferenceCLI.Toggle(cmd.Context())
				if err != nil {
					return err
				}
				return report(cmd, out.Theme, out.Stored)
			})
		},
	})
	theme.AddCommand(&cobra.Command{
		Use:   "set <light|dark>",
		Short: "Store a theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(flags, false, func(app *bootstrap.App) error {
				out, err := app.PreferenceCLI.Set(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return report(cmd, out.Theme, out.Stored)
			})
		},
	})
	return theme
}

func newConfigCmd(flags *rootFlags) *cobra.Command {
	cfgCmd := &cobra.Command{Use: "config", Short: "Configuration helpers"}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := flags.configPath
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			cfg := config.Default()
			if flags.content != "" {
				cfg.Content = flags.content
			}
			if flags.dataDir != "" {
				cfg.DataDir = flags.dataDir
			}
			if err := cfg.Save(path); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cfgCmd.AddCommand(initCmd, show)
	return cfgCmd
}

func newMCPCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve read-only tools over MCP on stdio",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withApp(flags, false, bootstrap.RunMCP)
		},
	}
}
