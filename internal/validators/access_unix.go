//go:build unix

package validators

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

// canRead asks the kernel whether the real user may read path.
func canRead(path string, _ fs.FileInfo) error {
	return unix.Access(path, unix.R_OK)
}

// canWrite asks the kernel whether the real user may write path.
func canWrite(path string, _ fs.FileInfo) error {
	return unix.Access(path, unix.W_OK)
}
