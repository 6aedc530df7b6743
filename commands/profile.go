package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rpupo63/portfolio-backend/config"
	"github.com/rpupo63/portfolio-backend/i18n"
)

func newProfileCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show the owner profile in a locale",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := loadProfile(cfg.ProfileFile)
			if err != nil {
				return err
			}
			locale, err := localeFlag(cmd)
			if err != nil {
				return err
			}
			printProfile(cmd.OutOrStdout(), i18n.ResolveProfile(profile, locale))
			return nil
		},
	}

	cmd.Flags().String("locale", "en", "Locale to display (en or ar)")

	return cmd
}

func printProfile(out io.Writer, view i18n.ProfileView) {
	color.New(color.Bold).Fprintf(out, "%s, %s\n", view.Name, view.JobTitle)
	fmt.Fprintf(out, "%s\n", view.Headline)

	if len(view.SkillGroups) > 0 {
		fmt.Fprintln(out, "\nSkills:")
		for _, group := range view.SkillGroups {
			names := make([]string, 0, len(group.Skills))
			for _, skill := range group.Skills {
				names = append(names, skill.Name)
			}
			fmt.Fprintf(out, "  %-10s %s\n", group.Category, strings.Join(names, ", "))
		}
	}

	if len(view.Experience) > 0 {
		fmt.Fprintln(out, "\nExperience:")
		for _, e := range view.Experience {
			end := "present"
			if e.EndDate != nil {
				end = e.EndDate.String()
			}
			fmt.Fprintf(out, "  %s - %s  %s, %s\n", e.StartDate, end, e.Position, e.Company)
		}
	}

	if len(view.Certifications) > 0 {
		fmt.Fprintln(out, "\nCertifications:")
		for _, c := range view.Certifications {
			fmt.Fprintf(out, "  %s (%s)\n", c.Name, c.Issuer)
		}
	}
}
