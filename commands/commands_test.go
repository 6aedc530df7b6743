package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	t.Setenv("CATALOG_FILE", "")
	t.Setenv("PROFILE_FILE", "")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "missing.env")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func Test_ValidateEmbeddedCatalog(t *testing.T) {
	out, err := run(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "embedded: 4 projects OK")
	assert.Contains(t, out, "profile embedded: OK")
}

func Test_ValidateReportsProfileProblems(t *testing.T) {
	file := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(file, []byte("profile:\n  author:\n    name: \"Jane\"\n    email: \"nope\"\n"), 0o600))

	out, err := run(t, "validate", "--profile-file", file)
	require.Error(t, err)
	assert.Contains(t, out, "embedded: 4 projects OK")
	assert.Contains(t, out, "invalid email address")
}

func Test_Profile(t *testing.T) {
	out, err := run(t, "profile", "--locale", "ar")
	require.NoError(t, err)
	assert.Contains(t, out, "مطور ويب")
	assert.Contains(t, out, "Skills:")
	assert.Contains(t, out, "React, Next.js")
}

func Test_ValidateReportsProblems(t *testing.T) {
	file := filepath.Join(t.TempDir(), "projects.yaml")
	require.NoError(t, os.WriteFile(file, []byte("projects:\n  - slug: Bad Slug\n"), 0o600))

	out, err := run(t, "validate", "--file", file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "problem(s) found")
	assert.Contains(t, out, "✗ "+file)
}

func Test_ValidateMissingFile(t *testing.T) {
	_, err := run(t, "validate", "--file", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read catalog")
}

func Test_ProjectsList(t *testing.T) {
	out, err := run(t, "projects", "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "sillalink")
	assert.Contains(t, lines[3], "daraa")
}

func Test_ProjectsListFilters(t *testing.T) {
	out, err := run(t, "projects", "list", "--other")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(strings.TrimSpace(out), "\n")+1)
	assert.Contains(t, out, "daraa")

	out, err = run(t, "projects", "list", "--technology", "no-such-tech")
	require.NoError(t, err)
	assert.Contains(t, out, "No projects match")

	_, err = run(t, "projects", "list", "--status", "abandoned")
	assert.Error(t, err)

	_, err = run(t, "projects", "list", "--featured", "--other")
	assert.Error(t, err)
}

func Test_ProjectsShow(t *testing.T) {
	out, err := run(t, "projects", "show", "sentora-perfume-store", "--locale", "ar")
	require.NoError(t, err)
	assert.Contains(t, out, "(sentora-perfume-store)")
	assert.Contains(t, out, "Technologies:")

	_, err = run(t, "projects", "show", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	_, err = run(t, "projects", "show", "sentora-perfume-store", "--locale", "fr")
	assert.Error(t, err)
}
