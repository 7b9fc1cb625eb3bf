//go:build !unix

package validators

import (
	"errors"
	"io/fs"
	"os"
)

var errReadOnly = errors.New("read-only")

func canRead(path string, _ fs.FileInfo) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	return f.Close()
}

func canWrite(_ string, info fs.FileInfo) error {
	if info.Mode().Perm()&0o200 == 0 {
		return errReadOnly
	}
	return nil
}
