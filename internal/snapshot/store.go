// Package snapshot provides the file-backed snapshot source: one JSON
// document per process, as cached by the puller after a fetch.
package snapshot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	jsoniter "github.com/json-iterator/go"
	"golang.org/x/sync/errgroup"

	"procompare/internal/core/domain"
	"procompare/internal/core/ports"
	"procompare/internal/errors"
)

const SourceTypeFile = "file"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Config struct {
	Dir string `mapstructure:"dir" validate:"required"`
}

// FileStore reads snapshots from <dir>/<processID>.json.
type FileStore struct {
	dir    string
	logger ports.Logger
}

func NewFileStore(cfg Config, logger ports.Logger) (*FileStore, error) {
	if cfg.Dir == "" {
		return nil, errors.New(errors.CodeConfigValidation, "snapshot directory cannot be empty")
	}
	return &FileStore{dir: cfg.Dir, logger: logger}, nil
}

func (s *FileStore) Type() string { return SourceTypeFile }

func (s *FileStore) Load(ctx context.Context, processID string) (*domain.ProcessSnapshot, error) {
	path := filepath.Join(s.dir, processID+".json")
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewUserFacing(errors.CodeSnapshotNotFound,
				fmt.Sprintf("no snapshot found for process %q", processID),
				fmt.Sprintf("Pull the process configuration first so %s exists.", path))
		}
		return nil, errors.Wrap(err, errors.CodeSnapshotReadError,
			fmt.Sprintf("failed reading snapshot file %s", path))
	}

	// Decode to a loose map first, then map into the typed snapshot; field,
	// state and binding descriptors stay raw property bags.
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(err, errors.CodeSnapshotParseError,
			fmt.Sprintf("snapshot file %s is not valid JSON", path))
	}

	snap := &domain.ProcessSnapshot{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           snap,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed building snapshot decoder")
	}
	if err := decoder.Decode(doc); err != nil {
		return nil, errors.Wrap(err, errors.CodeSnapshotParseError,
			fmt.Sprintf("snapshot file %s does not match the expected shape", path))
	}

	if snap.ProcessID == "" {
		snap.ProcessID = processID
	}
	if s.logger != nil {
		s.logger.Debugf(ctx, "Loaded snapshot for process %s (%d work item types)", processID, len(snap.WorkItemTypes))
	}
	return snap, nil
}

// LoadAll loads the given processes concurrently, preserving the requested
// order in the returned pairs. With no ids it discovers every *.json file
// in the snapshot directory, sorted by process id.
func (s *FileStore) LoadAll(ctx context.Context, processIDs []string) ([]domain.SnapshotPair, error) {
	if len(processIDs) == 0 {
		discovered, err := s.discover()
		if err != nil {
			return nil, err
		}
		processIDs = discovered
	}

	pairs := make([]domain.SnapshotPair, len(processIDs))
	g, childCtx := errgroup.WithContext(ctx)
	for i, pid := range processIDs {
		g.Go(func() error {
			if childCtx.Err() != nil {
				return childCtx.Err()
			}
			snap, err := s.Load(childCtx, pid)
			if err != nil {
				return err
			}
			pairs[i] = domain.SnapshotPair{ProcessID: pid, Snapshot: snap}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return pairs, nil
}

func (s *FileStore) discover() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, errors.WrapUserFacing(err, errors.CodeSnapshotReadError,
			fmt.Sprintf("failed listing snapshot directory %s", s.dir),
			"Check that the configured snapshot directory exists and is readable.")
	}

	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(entry.Name(), ".json"))
	}
	sort.Strings(ids)
	return ids, nil
}
