// Package gunzip decompresses downloaded gzip files, several at a time.
package gunzip

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/klauspost/compress/gzip"
	"golang.org/x/sync/errgroup"

	"github.com/reactome/releasefetch/log"
)

// Job is one gzip file and the path its content is written to.
type Job struct {
	Source string
	Target string
}

// DecompressError reports a job that could not be completed.
type DecompressError struct {
	Source string
	Target string
	Err    error
}

func (e *DecompressError) Error() string {
	return fmt.Sprintf("extracting %s to %s: %v", e.Source, e.Target, e.Err)
}

func (e *DecompressError) Unwrap() error {
	return e.Err
}

// Decompress writes the decompressed content of src to dst. The source file is never removed.
// dst is replaced only once the whole stream was decompressed and its checksum verified.
func Decompress(ctx context.Context, src, dst string) error {
	logger := log.FromContext(ctx, log.Noop())
	logger.Info("Extracting", "source", src, "target", dst)

	if err := decompress(src, dst); err != nil {
		return &DecompressError{Source: src, Target: dst, Err: err}
	}

	logger.Info("Completed extraction", "source", src, "target", dst)
	return nil
}

func decompress(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	zr, err := gzip.NewReader(in)
	if err != nil {
		return fmt.Errorf("read gzip header: %w", err)
	}
	defer zr.Close()

	out, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".*.part")
	if err != nil {
		return fmt.Errorf("create temporary file: %w", err)
	}
	tmp := out.Name()
	defer os.Remove(tmp)

	if _, err := io.Copy(out, zr); err != nil {
		out.Close()
		return fmt.Errorf("decompress: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close temporary file: %w", err)
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		return err
	}

	return os.Rename(tmp, dst)
}

// DecompressAll runs the jobs on at most workers goroutines (the number of CPUs when workers <= 0).
// Jobs are independent: a failure stops jobs that have not started yet, and the first error
// is returned once every running job has finished.
func DecompressAll(ctx context.Context, jobs []Job, workers int) error {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, job := range jobs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return Decompress(gctx, job.Source, job.Target)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
