package migrate

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Lagufka/minecraft-UUID-replacer/debug"

	"github.com/spf13/afero"
)

const (
	backupSuffix = ".bak"
	tmpSuffix    = ".tmp"
)

// Backup copies path to path.bak, or to the first of path.bak1,
// path.bak2, ... that does not exist. An existing file is never
// overwritten.
func Backup(fs afero.Fs, path string) (string, error) {
	bak := path + backupSuffix
	for i := 1; ; i++ {
		_, err := fs.Stat(bak)
		if errors.Is(err, os.ErrNotExist) {
			break
		}
		if err != nil {
			return "", err
		}
		bak = fmt.Sprintf("%s%s%d", path, backupSuffix, i)
	}
	if err := copyFile(fs, path, bak, os.O_EXCL); err != nil {
		return "", err
	}
	if debug.Backup() {
		debug.Logf("backup %s -> %s\n", path, bak)
	}
	return bak, nil
}

// copyFile copies src to dst keeping the mode and modification time.
// flag is or'ed into the open flags of dst.
func copyFile(fs afero.Fs, src, dst string, flag int) error {
	info, err := fs.Stat(src)
	if err != nil {
		return err
	}
	in, err := fs.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC|flag, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return fs.Chtimes(dst, info.ModTime(), info.ModTime())
}

// Commit replaces the content of path with d.
//
// A backup is taken first. The new content is written to path.tmp and
// renamed over path. On success the backup is removed. On failure the
// original content is copied back from the backup, which is left in
// place, and an ErrWrite error is returned.
//
// kept is the backup left on disk, if any. It is also set when the
// commit succeeded but the backup could not be removed.
func Commit(fs afero.Fs, path string, d []byte) (kept string, err error) {
	info, err := fs.Stat(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
	}
	bak, err := Backup(fs, path)
	if err != nil {
		return "", fmt.Errorf("%w: backing up %s: %w", ErrWrite, path, err)
	}
	if err := replace(fs, path, d, info.Mode().Perm()); err != nil {
		if rerr := copyFile(fs, bak, path, 0); rerr != nil {
			return bak, fmt.Errorf("%w: %s: %w; restoring from %s failed: %w", ErrWrite, path, err, bak, rerr)
		}
		return bak, fmt.Errorf("%w: %s: %w; restored from %s", ErrWrite, path, err, bak)
	}
	if err := fs.Remove(bak); err != nil {
		return bak, nil
	}
	return "", nil
}

func replace(fs afero.Fs, path string, d []byte, perm os.FileMode) error {
	tmp := path + tmpSuffix
	if err := afero.WriteFile(fs, tmp, d, perm); err != nil {
		fs.Remove(tmp)
		return err
	}
	if err := fs.Rename(tmp, path); err != nil {
		fs.Remove(tmp)
		return err
	}
	return nil
}
