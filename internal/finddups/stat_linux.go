//go:build linux

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

	return time.Unix(int64(stat.Ctim.Sec), int64(stat.Ctim.Nsec)) //nolint:unconvert // 32-bit platforms use int32 fields
}
