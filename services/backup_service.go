package services

import (
	"archive/zip"
	"fmt"
	"io"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"

	"soullink-tracker/config"
	"soullink-tracker/database"
	"soullink-tracker/reference"
)

// BackupService bundles the store file and the three reference files
// into a ZIP archive and restores such an archive in place.
type BackupService struct {
	cfg   *config.Config
	db    *database.Manager
	cache *reference.Cache
}

func NewBackupService(cfg *config.Config, db *database.Manager, cache *reference.Cache) *BackupService {
	return &BackupService{cfg: cfg, db: db, cache: cache}
}

func (s *BackupService) bundleNames() []string {
	return []string{
		s.cfg.DatabaseFile,
		reference.RoutesFile,
		reference.PokemonNamesFile,
		reference.LevelCapsFile,
	}
}

// WriteArchive streams the backup bundle. Missing files are skipped
// with a warning, never fatal.
func (s *BackupService) WriteArchive(w io.Writer) error {
	zw := zip.NewWriter(w)

	for _, name := range s.bundleNames() {
		data, err := os.ReadFile(filepath.Join(s.cfg.DataDir, name))
		if os.IsNotExist(err) {
			log.Printf("backup: %s missing, skipping", name)
			continue
		}
		if err != nil {
			zw.Close()
			return fmt.Errorf("read %s: %w", name, err)
		}
		entry, err := zw.Create(name)
		if err != nil {
			zw.Close()
			return fmt.Errorf("create archive entry %s: %w", name, err)
		}
		if _, err := entry.Write(data); err != nil {
			zw.Close()
			return fmt.Errorf("write archive entry %s: %w", name, err)
		}
	}

	return zw.Close()
}

// Restore overwrites the on-disk artifacts with the archive contents,
// then reopens the store and reloads the reference cache so nothing
// keeps serving the pre-restore state. Every entry is validated before
// anything is written.
func (s *BackupService) Restore(zr *zip.Reader) error {
	allowed := make(map[string]bool, 4)
	for _, name := range s.bundleNames() {
		allowed[name] = true
	}

	dataDir, err := filepath.Abs(s.cfg.DataDir)
	if err != nil {
		return err
	}

	for _, entry := range zr.File {
		base, err := s.safeTarget(dataDir, entry.Name)
		if err != nil {
			return err
		}
		if !allowed[base] {
			return fmt.Errorf("archive entry %q is not an allowed file: %w", entry.Name, ErrForbidden)
		}
	}

	for _, entry := range zr.File {
		base, _ := s.safeTarget(dataDir, entry.Name)
		if err := s.extract(entry, filepath.Join(dataDir, base)); err != nil {
			return err
		}
	}

	if err := s.db.Reopen(); err != nil {
		return fmt.Errorf("reopen store after restore: %w", err)
	}
	s.cache.Reload()

	log.Println("restore completed")
	return nil
}

// safeTarget rejects absolute paths and parent-directory escapes, and
// verifies the entry resolves inside the data directory.
func (s *BackupService) safeTarget(dataDir, name string) (string, error) {
	if path.IsAbs(name) || filepath.IsAbs(name) {
		return "", fmt.Errorf("archive entry %q has an absolute path: %w", name, ErrForbidden)
	}
	for _, part := range strings.Split(path.Clean(name), "/") {
		if part == ".." {
			return "", fmt.Errorf("archive entry %q escapes the data directory: %w", name, ErrForbidden)
		}
	}
	base := path.Base(path.Clean(name))
	target, err := filepath.Abs(filepath.Join(dataDir, base))
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(target, dataDir+string(os.PathSeparator)) {
		return "", fmt.Errorf("archive entry %q escapes the data directory: %w", name, ErrForbidden)
	}
	return base, nil
}

func (s *BackupService) extract(entry *zip.File, target string) error {
	src, err := entry.Open()
	if err != nil {
		return fmt.Errorf("open archive entry %s: %w", entry.Name, err)
	}
	defer src.Close()

	dst, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("create %s: %w", target, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("extract %s: %w", entry.Name, err)
	}
	return nil
}
