package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestCopyDirCopiesNestedTree(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "template")
	writeFile(t, filepath.Join(src, "Cargo.toml"), "name = \"day_XX\"\n")
	writeFile(t, filepath.Join(src, "src", "main.rs"), "// dayXX\n")

	dst := filepath.Join(tmp, "day01")
	require.NoError(t, CopyDir(src, dst))

	descriptor, err := os.ReadFile(filepath.Join(dst, "Cargo.toml"))
	require.NoError(t, err)
	require.Equal(t, "name = \"day_XX\"\n", string(descriptor))

	source, err := os.ReadFile(filepath.Join(dst, "src", "main.rs"))
	require.NoError(t, err)
	require.Equal(t, "// dayXX\n", string(source))
}

func TestCopyDirMissingSource(t *testing.T) {
	tmp := t.TempDir()
	err := CopyDir(filepath.Join(tmp, "missing"), filepath.Join(tmp, "day01"))
	require.Error(t, err)
}

func TestRewriteTokenReplacesAllOccurrences(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.rs")
	writeFile(t, path, "const INPUT_FILE_PATH: &str = \"./dayXX/input\";\n// dayXX\n")

	require.NoError(t, RewriteToken(path, "dayXX", "day07"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "const INPUT_FILE_PATH: &str = \"./day07/input\";\n// day07\n", string(data))
	require.NotContains(t, string(data), "dayXX")
}

func TestRewriteTokenLeavesOtherTokensAlone(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Cargo.toml")
	writeFile(t, path, "name = \"day_XX\"\n# dayXX is the source token\n")

	require.NoError(t, RewriteToken(path, "day_XX", "day_01"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "day_01")
	require.Contains(t, string(data), "dayXX")
}

func TestRewriteTokenMissingPlaceholder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Cargo.toml")
	writeFile(t, path, "name = \"already-substituted\"\n")

	err := RewriteToken(path, "day_XX", "day_01")
	require.Error(t, err)
	require.Contains(t, err.Error(), "placeholder")
}
