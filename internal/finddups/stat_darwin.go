//go:build darwin

package finddups

import (
	"io/fs"
	"syscall"
	"time"
)

// changeTime extracts the inode change time from the platform stat.
func changeTime(info fs.FileInfo) time.Time {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return info.ModTime()
	}

	return time.Unix(stat.Ctimespec.Sec, int64(stat.Ctimespec.Nsec)) //nolint:unconvert // Nsec is int32 on some arches
}
