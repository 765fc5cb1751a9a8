package fsutil

import (
	"fmt"
	"os"
)

// BackupSuffix is appended to a file's path for its sidecar backup.
const BackupSuffix = ".splice.bak"

// CreateBackup writes a sidecar copy of path before it is overwritten.
// Returns true if a backup was created, false if one already existed.
//
// An existing backup is never overwritten: across repeated runs the
// backup keeps the contents that predate the first rewrite.
func CreateBackup(path string) (bool, error) {
	backupPath := path + BackupSuffix

	if _, err := os.Stat(backupPath); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat backup path: %w", err)
	}

	content, mode, err := ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read original for backup: %w", err)
	}

	if err := WriteAtomic(backupPath, content, mode); err != nil {
		return false, fmt.Errorf("write backup: %w", err)
	}

	return true, nil
}
