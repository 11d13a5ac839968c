package artifact_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/fuzzprop/internal/artifact"
)

func Test_Save_WritesBufferContents(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	buf := []byte{0xDE, 0xAD, 0xBE, 0xEF}

	path, err := artifact.Save(dir, "my test", buf)
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, buf, got)
}

func Test_Save_CreatesMissingDirectory(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "crashes")

	_, err := artifact.Save(dir, "t", []byte{1})
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func Test_Save_SameInputTwice_SamePath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	buf := []byte{1, 2, 3}

	first, err := artifact.Save(dir, "t", buf)
	require.NoError(t, err)

	second, err := artifact.Save(dir, "t", buf)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func Test_Save_DifferentInput_DifferentPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	first, err := artifact.Save(dir, "t", []byte{1, 2, 3})
	require.NoError(t, err)

	second, err := artifact.Save(dir, "t", []byte{4, 5, 6})
	require.NoError(t, err)

	require.NotEqual(t, first, second)
}

func Test_Save_SanitizesTestNameForFilesystem(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	path, err := artifact.Save(dir, "weird/name with spaces!", []byte{1})
	require.NoError(t, err)

	require.Equal(t, filepath.Dir(path), dir)
	require.NotContains(t, filepath.Base(path), "/")
	require.NotContains(t, filepath.Base(path), " ")
}
