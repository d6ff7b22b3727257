package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetRootCmd_Exists verifies getRootCmd returns
// a valid command.
func TestGetRootCmd_Exists(t *testing.T) {
	cmd := getRootCmd()
	require.NotNil(t, cmd, "Root command should exist")
	assert.Equal(t, "authcheck", cmd.Use,
		"Command name should be authcheck")
}

// TestGetRootCmd_VersionFormat verifies version
// output format.
func TestGetRootCmd_VersionFormat(t *testing.T) {
	tests := []struct {
		msg  string
		flag string
	}{
		{"long", "--version"},
		{"short", "-V"},
	}

	for _, v := range tests {
		cmd := getRootCmd()
		cmd.Version = "version: v1.2.3\nbuild:   abc123"

		buf := new(bytes.Buffer)
		cmd.SetOut(buf)
		cmd.SetArgs([]string{v.flag})

		err := cmd.Execute()
		require.NoError(t, err, v.msg)

		output := buf.String()
		assert.Contains(t, output, "v1.2.3", v.msg)
		assert.Contains(t, output, "abc123", v.msg)
	}
}

// TestGetRootCmd_HelpText verifies help text content.
func TestGetRootCmd_HelpText(t *testing.T) {
	cmd := getRootCmd()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--help"})

	err := cmd.Execute()
	require.NoError(t, err)

	helpText := buf.String()
	assert.Contains(t, helpText, "authcheck")
	assert.Contains(t, helpText, "quota")
	assert.Contains(t, helpText, "--quota")
}

// TestGetRootCmd_Subcommands verifies all commands are registered.
func TestGetRootCmd_Subcommands(t *testing.T) {
	cmd := getRootCmd()
	names := make(map[string]bool)
	for _, c := range cmd.Commands() {
		names[c.Name()] = true
	}
	for _, name := range []string{
		"import", "datasets", "use", "drop", "merge", "flag", "report", "reset",
	} {
		assert.True(t, names[name], name)
	}

	mergeCmd, _, err := cmd.Find([]string{"merge", "link"})
	require.NoError(t, err)
	assert.Equal(t, "link", mergeCmd.Name())
	assert.NotNil(t, mergeCmd.Flags().Lookup("primary"))
}

const papersCSV = `Paper ID,Paper Title,Author Names,Author Emails
1,First,"Ann Lee*; Bob Stone","ann@a.org*; bob@b.org"
2,Second,Ann Lee,ann@a.org
3,Third,A. Lee,ann@a.org
4,Fourth,Ann Lee,alee@b.org
`

func runCmd(t *testing.T, args ...string) string {
	t.Helper()
	cmd := getRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute(), strings.Join(args, " "))
	return buf.String()
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// TestWorkflow runs import, merge and report against a temporary home.
func TestWorkflow(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("AUTHCHECK_STORE_BACKEND", "sqlite")

	dir := t.TempDir()
	papers := filepath.Join(dir, "papers.csv")
	require.NoError(t, os.WriteFile(papers, []byte(papersCSV), 0644))

	runCmd(t, "import", "--label", "main", papers)

	out := runCmd(t, "datasets", "--format", "csv")
	assert.Contains(t, out, "main")
	assert.Contains(t, out, "papers.csv")

	violations := filepath.Join(dir, "violations.csv")
	runCmd(t, "report", "-k", "violations", "-o", violations)
	res := readFile(t, violations)
	assert.Contains(t, res, "ann@a.org")
	assert.NotContains(t, res, "alee@b.org")

	runCmd(t, "merge", "link", "-p", "ann@a.org", "-e", "alee@b.org",
		"--note", "same person")
	out = runCmd(t, "merge", "list", "--format", "csv")
	assert.Contains(t, out, "alee@b.org")
	assert.Contains(t, out, "same person")

	runCmd(t, "report", "-k", "violations", "-o", violations)
	assert.Contains(t, readFile(t, violations), "1, 2, 3, 4")

	merges := filepath.Join(dir, "merges.yaml")
	runCmd(t, "merge", "export", merges)
	assert.Contains(t, readFile(t, merges), "alee@b.org")

	runCmd(t, "--quota", "5", "report", "-k", "violations", "-o", violations)
	assert.NotContains(t, readFile(t, violations), "ann@a.org")

	runCmd(t, "merge", "unlink", "ann@a.org")
	out = runCmd(t, "merge", "list", "--format", "csv")
	assert.NotContains(t, out, "alee@b.org")

	runCmd(t, "merge", "apply", merges)
	out = runCmd(t, "merge", "list", "--format", "csv")
	assert.Contains(t, out, "alee@b.org")

	runCmd(t, "flag", "bob@b.org")
	authors := filepath.Join(dir, "authors.json")
	runCmd(t, "report", "-k", "authors", "-o", authors)
	assert.Contains(t, readFile(t, authors), "bob@b.org")

	runCmd(t, "reset")
	out = runCmd(t, "datasets", "--format", "csv")
	assert.Contains(t, out, "main", "reset without confirmation keeps data")

	runCmd(t, "reset", "--force")
	out = runCmd(t, "datasets", "--format", "csv")
	assert.NotContains(t, out, "main")
}
