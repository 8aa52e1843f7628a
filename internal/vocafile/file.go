package vocafile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vocamaster/vocamaster/internal/vocab"
)

// DefaultPath is the data file used when nothing else is configured.
const DefaultPath = "voca.dat"

// Load reads the repository stored at path. A missing or empty file is a
// new data file: it yields an empty repository and created=true.
func Load(path string) (repo *vocab.Repository, created bool, err error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return vocab.NewRepository(), true, nil
		}
		return nil, false, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	repo, err = Decode(f)
	if err != nil {
		return nil, false, fmt.Errorf("load %s: %w", path, err)
	}
	return repo, repo.Len() == 0, nil
}

// Save writes repo to path and marks it clean. The data goes to a
// temporary file in the same directory first and is renamed into place,
// so a failed write leaves the previous file intact. On failure the
// repository stays dirty.
func Save(path string, repo *vocab.Repository) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if err := Encode(tmp, repo); err != nil {
		tmp.Close()
		return fmt.Errorf("write data file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close data file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod data file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace data file: %w", err)
	}

	repo.MarkClean()
	return nil
}
