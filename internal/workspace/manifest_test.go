package workspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleManifest = `[workspace]
members = [
    "template",
    "util",
    "day01",
]
`

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Cargo.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestAddMemberInsertsBeforeClosingLine(t *testing.T) {
	path := writeManifest(t, sampleManifest)

	require.NoError(t, AddMember(path, "day02"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(string(data), "\n")

	before := strings.Count(sampleManifest, "\n")
	require.Len(t, lines, before+2, "exactly one line added")

	closing := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "]" {
			closing = i
			break
		}
	}
	require.GreaterOrEqual(t, closing, 1)
	require.Equal(t, `    "day02",`, lines[closing-1], "new entry sits immediately before the closing line")
}

func TestAddMemberPreservesOrder(t *testing.T) {
	path := writeManifest(t, sampleManifest)

	require.NoError(t, AddMember(path, "day02"))

	members, err := Members(path)
	require.NoError(t, err)
	require.Equal(t, []string{"template", "util", "day01", "day02"}, members)
}

func TestAddMemberRejectsDuplicate(t *testing.T) {
	path := writeManifest(t, sampleManifest)

	err := AddMember(path, "day01")
	require.ErrorIs(t, err, ErrMemberExists)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, sampleManifest, string(data), "manifest unchanged")
}

func TestAddMemberMissingClosingLine(t *testing.T) {
	path := writeManifest(t, "[workspace]\nmembers = [\n    \"template\",\n")

	err := AddMember(path, "day02")
	require.Error(t, err)
	require.Contains(t, err.Error(), "closing")
}

func TestHasMember(t *testing.T) {
	path := writeManifest(t, sampleManifest)

	ok, err := HasMember(path, "day01")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = HasMember(path, "day02")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMembersStopsAtClosingLine(t *testing.T) {
	path := writeManifest(t, sampleManifest+"\n[workspace.dependencies]\nanyhow = \"1\"\n")

	members, err := Members(path)
	require.NoError(t, err)
	require.Equal(t, []string{"template", "util", "day01"}, members)
}
