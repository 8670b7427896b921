package snapshot

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"salon-booking/internal/infra"
	"salon-booking/internal/infra/converter"
	"salon-booking/internal/usecase/scheduling"
)

// FileStore keeps one JSON file per collection in dir. Each file is replaced
// atomically, so a crash mid-save leaves either the old or the new file.
type FileStore struct {
	dir    string
	logger *slog.Logger
}

func NewFileStore(dir string, logger *slog.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, infra.WrapStoreErr(logger, infra.KindIOFailure, backendFile, "failed to create data dir", err)
	}
	return &FileStore{dir: dir, logger: logger}, nil
}

func (s *FileStore) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

func (s *FileStore) Load(ctx context.Context) (scheduling.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return scheduling.Snapshot{}, err
	}
	payloads := make(map[string][]byte, len(converter.Collections))
	for _, name := range converter.Collections {
		b, err := os.ReadFile(s.path(name))
		switch {
		case err == nil:
			payloads[name] = b
		case errors.Is(err, fs.ErrNotExist):
		default:
			s.logger.WarnContext(ctx, "unreadable snapshot file, starting it empty", "collection", name, "error", err)
		}
	}
	return decode(ctx, s.logger, payloads), nil
}

func (s *FileStore) Save(ctx context.Context, snap scheduling.Snapshot) error {
	payloads, err := encode(snap)
	if err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindEncode, backendFile, "failed to encode snapshot", err)
	}
	for _, name := range converter.Collections {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := writeAtomic(s.path(name), payloads[name]); err != nil {
			return infra.WrapStoreErr(s.logger, infra.KindIOFailure, backendFile, "failed to write "+name, err)
		}
	}
	return nil
}

func writeAtomic(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
