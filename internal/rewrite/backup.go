package rewrite

import (
	"fmt"
	"io"
	"os"
	"time"
)

// BackupPath returns the backup name for path: "<path>.<unix_timestamp>.bak".
// Two backups of the same file within one second collide and the later one
// wins; timestamp granularity is the documented limit.
func BackupPath(path string, now time.Time) string {
	return fmt.Sprintf("%s.%d.bak", path, now.Unix())
}

// copyFile streams src to dst byte-for-byte, preserving compressed payloads
// as-is, with default permissions.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
