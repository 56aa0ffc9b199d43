package gunzip_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"

	"github.com/reactome/releasefetch/gunzip"
	"github.com/reactome/releasefetch/log"
	"github.com/reactome/releasefetch/log/mocks"
)

func writeGzip(t *testing.T, path, content string) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
}

func TestDecompress(t *testing.T) {
	t.Parallel()

	t.Run("extracts and keeps the source", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		src := filepath.Join(dir, "test1.txt.gz")
		dst := filepath.Join(dir, "test1.txt")
		writeGzip(t, src, "This is file1")

		logger := &mocks.FakeLogger{}
		ctx := log.WithContextLogger(context.Background(), logger)
		require.NoError(t, gunzip.Decompress(ctx, src, dst))

		content, err := os.ReadFile(dst)
		require.NoError(t, err)
		require.Equal(t, "This is file1", string(content))
		require.FileExists(t, src)
		require.Equal(t, 2, logger.InfoCallCount())
	})

	t.Run("not gzip", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		src := filepath.Join(dir, "plain.gz")
		dst := filepath.Join(dir, "plain")
		require.NoError(t, os.WriteFile(src, []byte("plain text"), 0o644))

		err := gunzip.Decompress(context.Background(), src, dst)

		var decompressErr *gunzip.DecompressError
		require.ErrorAs(t, err, &decompressErr)
		require.Equal(t, src, decompressErr.Source)
		require.NoFileExists(t, dst)
	})

	t.Run("truncated stream leaves no target", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		src := filepath.Join(dir, "big.gz")
		dst := filepath.Join(dir, "big")
		writeGzip(t, src, "UniProt mapping data that will be cut short")

		data, err := os.ReadFile(src)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(src, data[:len(data)-6], 0o644))

		require.Error(t, gunzip.Decompress(context.Background(), src, dst))
		require.NoFileExists(t, dst)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
	})

	t.Run("missing source", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		err := gunzip.Decompress(context.Background(), filepath.Join(dir, "nope.gz"), filepath.Join(dir, "nope"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestDecompressAll(t *testing.T) {
	t.Parallel()

	t.Run("runs every job", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		var jobs []gunzip.Job
		for i := range 6 {
			src := filepath.Join(dir, fmt.Sprintf("test%d.txt.gz", i))
			writeGzip(t, src, fmt.Sprintf("This is file%d", i))
			jobs = append(jobs, gunzip.Job{Source: src, Target: filepath.Join(dir, fmt.Sprintf("test%d.txt", i))})
		}

		require.NoError(t, gunzip.DecompressAll(context.Background(), jobs, 2))

		for i, job := range jobs {
			content, err := os.ReadFile(job.Target)
			require.NoError(t, err)
			require.Equal(t, fmt.Sprintf("This is file%d", i), string(content))
		}
	})

	t.Run("returns the failure", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		good := filepath.Join(dir, "good.gz")
		writeGzip(t, good, "good")

		err := gunzip.DecompressAll(context.Background(), []gunzip.Job{
			{Source: good, Target: filepath.Join(dir, "good")},
			{Source: filepath.Join(dir, "missing.gz"), Target: filepath.Join(dir, "missing")},
		}, 0)

		var decompressErr *gunzip.DecompressError
		require.ErrorAs(t, err, &decompressErr)
		require.Equal(t, filepath.Join(dir, "missing.gz"), decompressErr.Source)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := gunzip.DecompressAll(ctx, []gunzip.Job{{Source: "a.gz", Target: "a"}}, 1)
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("no jobs", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, gunzip.DecompressAll(context.Background(), nil, 4))
	})
}
