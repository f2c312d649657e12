package main

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

const (
	// number of hex characters kept from the digest
	IDLEN = 8
)

// TrimExt removes the extension from filename, as reported by
// filepath.Ext
func TrimExt(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}

// JobID returns the first IDLEN hex characters of the SHA-256 digest
// of base. The same base always yields the same id.
func JobID(base string) string {
	sum := sha256.Sum256([]byte(base))
	return hex.EncodeToString(sum[:])[:IDLEN]
}

// EnsureDir creates dir, and any missing parents, unless it already
// exists as a directory
func EnsureDir(fs afero.Fs, log logrus.FieldLogger, dir string) error {
	ok, err := afero.DirExists(fs, dir)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return err
	}
	log.WithField("dir", dir).Info("Created directory")
	return nil
}

// ListDir returns the entries of dir in the order the filesystem
// reports them. Unlike afero.ReadDir, the entries are not sorted.
func ListDir(fs afero.Fs, dir string) ([]os.FileInfo, error) {
	f, err := fs.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.Readdir(-1)
}
