package profile

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/KirkDiggler/dice-companion/internal/entities/dnd5e"
	"github.com/KirkDiggler/dice-companion/internal/errors"
	"github.com/KirkDiggler/dice-companion/internal/pkg/clock"
)

const (
	charactersDir = "characters"
	backupsDir    = "backups"
	fileExt       = ".json"
)

type fileRepository struct {
	charactersPath string
	backupsPath    string
	clock          clock.Clock
}

// FileConfig contains configuration for the file-backed profile repository
type FileConfig struct {
	// DataDir holds the characters/ and backups/ directories
	DataDir string
	Clock   clock.Clock
}

// Validate validates the FileConfig
func (cfg *FileConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.DataDir == "" {
		return errors.InvalidArgument("data dir cannot be empty")
	}
	return nil
}

// NewFile creates a profile repository that stores one JSON file per profile
func NewFile(cfg *FileConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	r := &fileRepository{
		charactersPath: filepath.Join(cfg.DataDir, charactersDir),
		backupsPath:    filepath.Join(cfg.DataDir, backupsDir),
		clock:          c,
	}

	for _, dir := range []string{r.charactersPath, r.backupsPath} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to create data directory")
		}
	}

	return r, nil
}

func (r *fileRepository) pathFor(key string) string {
	return filepath.Join(r.charactersPath, key+fileExt)
}

func (r *fileRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	key, err := keyFor(input.Name)
	if err != nil {
		return nil, err
	}

	p, err := readProfile(r.pathFor(key))
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errors.NotFoundf("profile %s not found", input.Name)
	}

	slog.DebugContext(ctx, "Loaded profile", "name", p.Name, "path", r.pathFor(key))

	return &GetOutput{Profile: p}, nil
}

func (r *fileRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	entries, err := os.ReadDir(r.charactersPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read profile directory")
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), fileExt) {
			continue
		}

		path := filepath.Join(r.charactersPath, entry.Name())
		p, err := readProfile(path)
		if err != nil || p == nil {
			slog.WarnContext(ctx, "Skipping unreadable profile", "path", path, "error", err)
			continue
		}
		names = append(names, p.Name)
	}
	sort.Strings(names)

	return &ListOutput{Names: names}, nil
}

func (r *fileRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	key, err := prepare(input.Profile)
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(input.Profile, "", "    ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal profile")
	}

	path := r.pathFor(key)
	backupCreated := false
	if previous, err := os.ReadFile(path); err == nil {
		backup := filepath.Join(r.backupsPath, r.clock.Now().Format(backupTimeLayout)+"_"+key+fileExt)
		if err := os.WriteFile(backup, previous, 0o644); err != nil {
			return nil, errors.Wrap(err, "failed to write profile backup")
		}
		backupCreated = true
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "failed to read existing profile")
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return nil, errors.Wrap(err, "failed to write profile")
	}
	if err := os.Rename(tmp, path); err != nil {
		return nil, errors.Wrap(err, "failed to replace profile")
	}

	slog.InfoContext(ctx, "Saved profile",
		"name", input.Profile.Name,
		"path", path,
		"backup_created", backupCreated,
	)

	return &SaveOutput{Profile: input.Profile, BackupCreated: backupCreated}, nil
}

func (r *fileRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	key, err := keyFor(input.Name)
	if err != nil {
		return nil, err
	}

	if err := os.Remove(r.pathFor(key)); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("profile %s not found", input.Name)
		}
		return nil, errors.Wrap(err, "failed to delete profile")
	}

	slog.InfoContext(ctx, "Deleted profile", "name", input.Name)

	return &DeleteOutput{}, nil
}

// readProfile returns nil, nil when the file does not exist
func readProfile(path string) (*dnd5e.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to read profile")
	}

	var p dnd5e.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal profile %s", filepath.Base(path))
	}

	return &p, nil
}
