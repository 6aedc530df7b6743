package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/rpupo63/portfolio-backend/catalog"
	"github.com/rpupo63/portfolio-backend/config"
)

func newValidateCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the catalog and profile files for problems",
		Long: `Validate the project catalog and the owner profile, reporting every problem found.
Without --file or --profile-file the CATALOG_FILE and PROFILE_FILE settings are used,
falling back to the embedded documents.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalogFile, _ := cmd.Flags().GetString("file")
			if catalogFile == "" {
				catalogFile = cfg.CatalogFile
			}
			profileFile, _ := cmd.Flags().GetString("profile-file")
			if profileFile == "" {
				profileFile = cfg.ProfileFile
			}

			catalogData, err := readDocument(catalogFile, catalog.Embedded)
			if err != nil {
				return fmt.Errorf("read catalog: %w", err)
			}
			profileData, err := readDocument(profileFile, catalog.EmbeddedProfile)
			if err != nil {
				return fmt.Errorf("read profile: %w", err)
			}

			out := cmd.OutOrStdout()
			failed := 0

			projects, err := catalog.Parse(catalogData)
			if n := reportProblems(out, err); n > 0 {
				color.New(color.FgRed).Fprintf(out, "✗ %s: %d problem(s) found\n", catalogSource(catalogFile), n)
				failed += n
			} else {
				color.New(color.FgGreen).Fprintf(out, "✓ %s: %d projects OK\n", catalogSource(catalogFile), len(projects))
			}

			_, err = catalog.ParseProfile(profileData)
			if n := reportProblems(out, err); n > 0 {
				color.New(color.FgRed).Fprintf(out, "✗ profile %s: %d problem(s) found\n", catalogSource(profileFile), n)
				failed += n
			} else {
				color.New(color.FgGreen).Fprintf(out, "✓ profile %s: OK\n", catalogSource(profileFile))
			}

			if failed > 0 {
				return fmt.Errorf("%d problem(s) found", failed)
			}
			return nil
		},
	}

	cmd.Flags().String("file", "", "Catalog file to validate")
	cmd.Flags().String("profile-file", "", "Profile file to validate")

	return cmd
}

func readDocument(file string, embedded func() []byte) ([]byte, error) {
	if file == "" {
		return embedded(), nil
	}
	return os.ReadFile(file)
}

// reportProblems prints one line per problem in err and returns how many
// there were.
func reportProblems(out io.Writer, err error) int {
	if err == nil {
		return 0
	}
	problems := []error{err}
	var merr *multierror.Error
	if errors.As(err, &merr) {
		problems = merr.Errors
	}
	for _, problem := range problems {
		color.New(color.FgRed).Fprintf(out, "  %s\n", problem)
	}
	return len(problems)
}
