//go:build linux

package releasefetch

import (
	"io/fs"
	"time"

	"golang.org/x/sys/unix"
)

// creationTime returns the birth time of path when the filesystem records it,
// and the modification time otherwise.
func creationTime(path string, info fs.FileInfo) time.Time {
	var stx unix.Statx_t
	err := unix.Statx(unix.AT_FDCWD, path, 0, unix.STATX_BTIME, &stx)
	if err != nil || stx.Mask&unix.STATX_BTIME == 0 {
		return info.ModTime()
	}

	return time.Unix(stx.Btime.Sec, int64(stx.Btime.Nsec))
}
