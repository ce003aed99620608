package profile

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"strings"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dice-companion/internal/entities/dnd5e"
	"github.com/KirkDiggler/dice-companion/internal/errors"
	"github.com/KirkDiggler/dice-companion/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/dice-companion/internal/redis"
)

const (
	// profileKeyPrefix holds profile records only; any safe name is valid
	// after it
	profileKeyPrefix = "profile:"
	backupKeyPrefix  = "profiles:backup:"
	indexKey         = "profiles:index"

	// Backups kept per profile
	defaultMaxBackups = 20
)

// Backup is one previous version of a profile kept in redis
type Backup struct {
	SavedAt string          `json:"saved_at"`
	Data    json.RawMessage `json:"data"`
}

type redisRepository struct {
	client     redisclient.Client
	clock      clock.Clock
	maxBackups int64
}

// RedisConfig contains configuration for the Redis profile repository.
type RedisConfig struct {
	Client     redisclient.Client
	Clock      clock.Clock
	MaxBackups int
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed profile repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Use real clock if none provided
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	maxBackups := cfg.MaxBackups
	if maxBackups <= 0 {
		maxBackups = defaultMaxBackups
	}

	return &redisRepository{
		client:     cfg.Client,
		clock:      c,
		maxBackups: int64(maxBackups),
	}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	key, err := keyFor(input.Name)
	if err != nil {
		return nil, err
	}

	result, err := r.client.Get(ctx, profileKeyPrefix+key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("profile %s not found", input.Name)
		}
		return nil, errors.Wrapf(err, "failed to get profile")
	}

	var p dnd5e.Profile
	if err := json.Unmarshal([]byte(result), &p); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal profile")
	}

	slog.DebugContext(ctx, "Loaded profile", "name", p.Name, "key", profileKeyPrefix+key)

	return &GetOutput{Profile: &p}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	names, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list profiles")
	}
	sort.Strings(names)

	return &ListOutput{Names: names}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	key, err := prepare(input.Profile)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Profile)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal profile")
	}

	profileKey := profileKeyPrefix + key
	previous, err := r.client.Get(ctx, profileKey).Bytes()
	if err != nil && err != redis.Nil {
		return nil, errors.Wrapf(err, "failed to get existing profile")
	}

	pipe := r.client.TxPipeline()

	backupCreated := err == nil
	if backupCreated {
		backup, err := json.Marshal(Backup{
			SavedAt: r.clock.Now().Format(backupTimeLayout),
			Data:    previous,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal profile backup")
		}
		backupKey := backupKeyPrefix + key
		pipe.LPush(ctx, backupKey, backup)
		pipe.LTrim(ctx, backupKey, 0, r.maxBackups-1)
	}

	pipe.Set(ctx, profileKey, data, 0)
	pipe.SAdd(ctx, indexKey, input.Profile.Name)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save profile")
	}

	slog.InfoContext(ctx, "Saved profile",
		"name", input.Profile.Name,
		"key", profileKey,
		"backup_created", backupCreated,
	)

	return &SaveOutput{Profile: input.Profile, BackupCreated: backupCreated}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	key, err := keyFor(input.Name)
	if err != nil {
		return nil, err
	}

	profileKey := profileKeyPrefix + key
	result, err := r.client.Get(ctx, profileKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("profile %s not found", input.Name)
		}
		return nil, errors.Wrapf(err, "failed to get profile")
	}

	// The index holds the display name, which may differ from the key
	name := input.Name
	var stored dnd5e.Profile
	if err := json.Unmarshal([]byte(result), &stored); err == nil && stored.Name != "" {
		name = stored.Name
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, profileKey)
	pipe.SRem(ctx, indexKey, name)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete profile")
	}

	slog.InfoContext(ctx, "Deleted profile", "name", name)

	return &DeleteOutput{}, nil
}

// ListBackups returns the kept versions of a profile, newest first
func ListBackups(ctx context.Context, client redisclient.Client, name string) ([]Backup, error) {
	key, err := keyFor(name)
	if err != nil {
		return nil, err
	}

	raw, err := client.LRange(ctx, backupKeyPrefix+key, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list backups")
	}

	backups := make([]Backup, 0, len(raw))
	for _, item := range raw {
		var b Backup
		if err := json.Unmarshal([]byte(item), &b); err != nil {
			slog.WarnContext(ctx, "Skipping corrupt backup", "name", name, "error", err)
			continue
		}
		backups = append(backups, b)
	}

	return backups, nil
}

// ScanResult reports a pass over the stored profiles
type ScanResult struct {
	Checked int
	Corrupt []string
}

// FindCorrupt scans every stored profile key and returns the keys whose data
// does not decode, fails validation, or is stored under the wrong key
func FindCorrupt(ctx context.Context, client redisclient.Client) (*ScanResult, error) {
	result := &ScanResult{}

	iter := client.Scan(ctx, 0, profileKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		result.Checked++

		data, err := client.Get(ctx, key).Bytes()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, errors.Wrapf(err, "failed to read %s", key)
		}

		var p dnd5e.Profile
		if err := json.Unmarshal(data, &p); err != nil {
			slog.WarnContext(ctx, "Corrupt profile JSON", "key", key, "error", err)
			result.Corrupt = append(result.Corrupt, key)
			continue
		}

		safe, err := prepare(&p)
		if err != nil {
			slog.WarnContext(ctx, "Invalid profile", "key", key, "error", err)
			result.Corrupt = append(result.Corrupt, key)
			continue
		}
		if profileKeyPrefix+safe != key {
			slog.WarnContext(ctx, "Profile stored under wrong key", "key", key, "name", p.Name)
			result.Corrupt = append(result.Corrupt, key)
		}
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to scan profiles")
	}

	sort.Strings(result.Corrupt)
	return result, nil
}

// DeleteCorrupt removes a profile record found by FindCorrupt together with
// every index name that resolves to its key
func DeleteCorrupt(ctx context.Context, client redisclient.Client, key string) error {
	if !strings.HasPrefix(key, profileKeyPrefix) {
		return errors.InvalidArgumentf("%s is not a profile key", key)
	}

	names, err := client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return errors.Wrapf(err, "failed to list profiles")
	}

	pipe := client.TxPipeline()
	pipe.Del(ctx, key)
	for _, name := range names {
		if profileKeyPrefix+SafeName(name) == key {
			pipe.SRem(ctx, indexKey, name)
		}
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrapf(err, "failed to delete %s", key)
	}

	slog.InfoContext(ctx, "Deleted corrupt profile", "key", key)

	return nil
}

// SavedAtTime parses the backup timestamp
func (b Backup) SavedAtTime() (time.Time, error) {
	return time.ParseInLocation(backupTimeLayout, b.SavedAt, time.Local)
}
