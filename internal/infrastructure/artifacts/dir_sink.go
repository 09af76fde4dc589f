// Package artifacts holds artifact sinks that do not need a database.
package artifacts

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"freight_quote/internal/domain/entities"
	"freight_quote/internal/usecase/interfaces"
	"freight_quote/pkg/logger"
)

var ErrInvalidFilename = errors.New("invalid artifact filename")

// DirSink writes every artifact as a file under Root, grouped by reference:
// {root}/{reference}/{filename}. Existing files are replaced.
type DirSink struct {
	root string
	log  *logger.Logger
}

var _ interfaces.IArtifactSink = (*DirSink)(nil)

func NewDirSink(root string, log *logger.Logger) (*DirSink, error) {
	if log == nil {
		log = logger.Nop()
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("creating export dir %s: %w", root, err)
	}
	return &DirSink{root: root, log: log}, nil
}

func (s *DirSink) Emit(ctx context.Context, a entities.Artifact) error {
	name := filepath.Base(a.Filename)
	if name == "." || name == string(filepath.Separator) || name != a.Filename {
		return fmt.Errorf("%w: %q", ErrInvalidFilename, a.Filename)
	}

	dir := filepath.Join(s.root, safeSegment(a.Reference))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	// Write then rename so readers never see a partial file.
	tmp, err := os.CreateTemp(dir, "."+name+".*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(a.Content); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	path := filepath.Join(dir, name)
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	s.log.Info(ctx, fmt.Sprintf("[artifact][dir] written path=%s size=%d", path, len(a.Content)))
	return nil
}

func safeSegment(ref string) string {
	ref = filepath.Base(filepath.Clean("/" + ref))
	if ref == "/" || ref == "." || ref == "" {
		return "unreferenced"
	}
	return ref
}
