package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rpupo63/portfolio-backend/catalog"
	"github.com/rpupo63/portfolio-backend/config"
	"github.com/rpupo63/portfolio-backend/i18n"
	"github.com/rpupo63/portfolio-backend/models"
)

func newProjectsCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Inspect the project catalog",
	}

	cmd.PersistentFlags().String("locale", "en", "Locale to display (en or ar)")

	cmd.AddCommand(newProjectsListCmd(cfg))
	cmd.AddCommand(newProjectsShowCmd(cfg))

	return cmd
}

func newProjectsListCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects in display order",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadStore(cfg.CatalogFile)
			if err != nil {
				return err
			}

			locale, err := localeFlag(cmd)
			if err != nil {
				return err
			}

			filter, err := listFilter(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			projects := store.Filter(filter)
			if len(projects) == 0 {
				color.New(color.FgYellow).Fprintln(out, "No projects match")
				return nil
			}

			for _, view := range i18n.ResolveAll(projects, locale) {
				marker := " "
				if view.Featured {
					marker = "★"
				}
				fmt.Fprintf(out, "%3d  %-24s %-11s %s %s\n",
					view.Priority, view.Slug, statusColor(view.Status).Sprint(view.Status), marker, view.Title)
			}
			return nil
		},
	}

	cmd.Flags().Bool("featured", false, "Only featured projects")
	cmd.Flags().Bool("other", false, "Only non-featured projects")
	cmd.Flags().String("category", "", "Only projects in this SEO category")
	cmd.Flags().String("status", "", "Only projects with this status")
	cmd.Flags().String("technology", "", "Only projects using this technology")
	cmd.MarkFlagsMutuallyExclusive("featured", "other")

	return cmd
}

func localeFlag(cmd *cobra.Command) (models.Locale, error) {
	code, _ := cmd.Flags().GetString("locale")
	locale, ok := i18n.ParseLocale(code)
	if !ok {
		return locale, fmt.Errorf("unsupported locale %q", code)
	}
	return locale, nil
}

func listFilter(cmd *cobra.Command) (catalog.ProjectFilter, error) {
	category, _ := cmd.Flags().GetString("category")
	status, _ := cmd.Flags().GetString("status")
	technology, _ := cmd.Flags().GetString("technology")
	featured, _ := cmd.Flags().GetBool("featured")
	other, _ := cmd.Flags().GetBool("other")

	filter := catalog.ProjectFilter{
		Category:   category,
		Status:     models.ProjectStatus(status),
		Technology: technology,
	}
	if status != "" && !filter.Status.Valid() {
		return filter, fmt.Errorf("unknown status %q", status)
	}
	switch {
	case featured:
		filter.Featured = &featured
	case other:
		notFeatured := false
		filter.Featured = &notFeatured
	}
	return filter, nil
}

func newProjectsShowCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "show <slug>",
		Short: "Show one project in a locale",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadStore(cfg.CatalogFile)
			if err != nil {
				return err
			}

			project, ok := store.FindBySlug(args[0])
			if !ok {
				return fmt.Errorf("project %q not found", args[0])
			}

			locale, err := localeFlag(cmd)
			if err != nil {
				return err
			}
			printProject(cmd.OutOrStdout(), i18n.Resolve(project, locale))
			return nil
		},
	}
}

func printProject(out io.Writer, view i18n.LocalizedView) {
	color.New(color.Bold).Fprintf(out, "%s (%s)\n", view.Title, view.Slug)
	fmt.Fprintf(out, "%s\n\n", view.ShortDescription)
	fmt.Fprintf(out, "Status:   %s\n", statusColor(view.Status).Sprint(view.Status))
	fmt.Fprintf(out, "Priority: %d\n", view.Priority)
	fmt.Fprintf(out, "Started:  %s\n", view.StartDate)
	if view.EndDate != nil {
		fmt.Fprintf(out, "Ended:    %s\n", *view.EndDate)
	}

	if len(view.TechnologyGroups) > 0 {
		fmt.Fprintln(out, "\nTechnologies:")
		for _, group := range view.TechnologyGroups {
			names := make([]string, 0, len(group.Technologies))
			for _, tech := range group.Technologies {
				names = append(names, tech.Name)
			}
			fmt.Fprintf(out, "  %-10s %v\n", group.Category, names)
		}
	}

	if view.PrimaryDemo != nil || view.PrimaryGithub != nil {
		fmt.Fprintln(out, "\nLinks:")
		if view.PrimaryDemo != nil {
			fmt.Fprintf(out, "  demo    %s\n", view.PrimaryDemo.URL)
		}
		if view.PrimaryGithub != nil {
			fmt.Fprintf(out, "  github  %s\n", view.PrimaryGithub.URL)
		}
	}

	if len(view.Images) > 0 {
		fmt.Fprintln(out, "\nImages:")
		for _, image := range view.Images {
			label := image.Caption
			if label == "" {
				label = image.Alt
			}
			fmt.Fprintf(out, "  %s  %s\n", image.Src, label)
		}
	}
}

func statusColor(status models.ProjectStatus) *color.Color {
	switch status {
	case models.StatusCompleted:
		return color.New(color.FgGreen)
	case models.StatusInProgress:
		return color.New(color.FgYellow)
	case models.StatusArchived:
		return color.New(color.FgHiBlack)
	default:
		return color.New(color.FgCyan)
	}
}
