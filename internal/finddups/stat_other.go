//go:build !linux && !darwin

package finddups

import (
	"io/fs"
	"time"
)

// changeTime falls back to the modification time on platforms without a
// portable change-time stat field.
func changeTime(info fs.FileInfo) time.Time {
	return info.ModTime()
}
