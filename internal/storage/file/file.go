package file

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/MikhailRaia/link-shortener/internal/model"
	"github.com/MikhailRaia/link-shortener/internal/pool"
)

const (
	filePerm os.FileMode = 0644
	dirPerm  os.FileMode = 0755

	bufferPoolSize = 4
)

// Storage implements LinkStore backed by a single JSON object file.
type Storage struct {
	filePath string
	buffers  *pool.Pool[*bytes.Buffer]
}

// NewStorage creates a file-backed storage at the provided path.
// The parent directory is created if needed; the file itself is created lazily on first Load.
func NewStorage(filePath string) (*Storage, error) {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Storage{
		filePath: filePath,
		buffers: pool.New(bufferPoolSize, func() *bytes.Buffer {
			return new(bytes.Buffer)
		}),
	}, nil
}

// Path returns the backing file location.
func (s *Storage) Path() string {
	return s.filePath
}

// Load reads the whole mapping. A missing file is replaced by an empty object.
func (s *Storage) Load(ctx context.Context) (model.LinkMapping, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		log.Info().Str("path", s.filePath).Msg("Links file not found, creating an empty one")

		links := make(model.LinkMapping)
		if err := s.write(links); err != nil {
			return nil, err
		}
		return links, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read links file: %w", err)
	}

	links := make(model.LinkMapping)
	if len(bytes.TrimSpace(data)) == 0 {
		return links, nil
	}

	if err := json.Unmarshal(data, &links); err != nil {
		return nil, fmt.Errorf("failed to unmarshal links: %w", err)
	}

	// A file holding "null" decodes to a nil map.
	if links == nil {
		links = make(model.LinkMapping)
	}

	return links, nil
}

// Save replaces the file contents with links.
func (s *Storage) Save(ctx context.Context, links model.LinkMapping) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.write(links)
}

func (s *Storage) write(links model.LinkMapping) error {
	buf := s.buffers.Get()
	defer s.buffers.Put(buf)

	if links == nil {
		links = model.LinkMapping{}
	}

	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(links); err != nil {
		return fmt.Errorf("failed to marshal links: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.filePath), filepath.Base(s.filePath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(bytes.TrimRight(buf.Bytes(), "\n")); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write links file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close links file: %w", err)
	}

	if err := os.Chmod(tmpName, filePerm); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to set links file mode: %w", err)
	}

	if err := os.Rename(tmpName, s.filePath); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace links file: %w", err)
	}

	return nil
}
