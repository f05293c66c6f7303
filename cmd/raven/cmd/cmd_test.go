package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T) *Options {
	t.Helper()
	dir := t.TempDir()
	content := fmt.Sprintf(`
database:
  path: %q
paths:
  projects: %q
  temp: %q
logging:
  level: error
speech:
  consent: denied
`, filepath.Join(dir, "raven.db"), filepath.Join(dir, "projects"), filepath.Join(dir, "temp"))

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return &Options{ConfigPath: path}
}

func run(t *testing.T, opts *Options, args ...string) (string, error) {
	t.Helper()
	root := &cobra.Command{Use: "raven", SilenceUsage: true, SilenceErrors: true}
	root.AddCommand(ProjectCmd(opts), FileCmd(opts), NoteCmd(opts), ExtractCmd(opts), ResetCmd(opts))

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(""))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestProjectAndFileCommands(t *testing.T) {
	opts := writeConfig(t)

	out, err := run(t, opts, "project", "create", "Thesis")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "1\tThesis\t"), out)

	src := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(src, []byte("hello"), 0644))

	out, err = run(t, opts, "file", "add", "--project", "1", src)
	require.NoError(t, err)
	assert.Contains(t, out, "notes.txt\tunsupported")

	out, err = run(t, opts, "project", "show", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Files:   1")

	// Unsupported files are skipped, so there is nothing to print but the notice.
	out, err = run(t, opts, "extract", "--project", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "skipped: notes.txt")

	_, err = run(t, opts, "project", "delete", "1")
	require.NoError(t, err)

	_, err = run(t, opts, "project", "show", "1")
	assert.ErrorContains(t, err, "project not found")
}

func TestNoteCommands(t *testing.T) {
	opts := writeConfig(t)

	_, err := run(t, opts, "project", "create", "P")
	require.NoError(t, err)

	_, err = run(t, opts, "note", "add", "--project", "1", "--title", "Idea", "--content", "first draft")
	require.NoError(t, err)

	_, err = run(t, opts, "note", "edit", "1", "--content", "second draft")
	require.NoError(t, err)

	out, err := run(t, opts, "note", "list", "--project", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "#1 Idea")
	assert.Contains(t, out, "second draft")

	docx := filepath.Join(t.TempDir(), "idea.docx")
	_, err = run(t, opts, "note", "export", "1", "--docx", docx)
	require.NoError(t, err)
	assert.FileExists(t, docx)
}

func TestResetRequiresConfirmation(t *testing.T) {
	opts := writeConfig(t)

	_, err := run(t, opts, "reset")
	assert.Error(t, err)

	_, err = run(t, opts, "reset", "--yes")
	assert.NoError(t, err)
}

func TestParseID(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"7", 7, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
	}
	for _, tt := range tests {
		got, err := parseID(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestPodcastFlagHelpListsChoices(t *testing.T) {
	podcast := PodcastCmd(&Options{})

	assert.Equal(t, "host style: casual, professional, entertaining", podcast.Flags().Lookup("style").Usage)
	assert.Equal(t, "episode length: short, medium, long", podcast.Flags().Lookup("length").Usage)
}
