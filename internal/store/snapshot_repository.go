package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/devplane/devplane/internal/errors"
	"github.com/devplane/devplane/internal/pricing"
)

// Snapshot source values.
const (
	SourceBuiltin = "builtin"
	SourceLive    = "live"
	SourceFile    = "file"
)

// Snapshot is a pricing table captured at a point in time.
type Snapshot struct {
	ID        string
	Version   string
	Source    string
	CreatedAt time.Time
	Table     *pricing.Table
}

type SnapshotRepository struct{ db *gorm.DB }

func NewSnapshotRepository(db *gorm.DB) *SnapshotRepository { return &SnapshotRepository{db: db} }

func snapshotToModel(r *SnapshotRecord) (*Snapshot, error) {
	var table pricing.Table
	if err := json.Unmarshal([]byte(r.Payload), &table); err != nil {
		return nil, errors.Wrapf(errors.TypeStorage, err, "corrupt snapshot payload for version %s", r.Version)
	}
	return &Snapshot{
		ID:        r.ID,
		Version:   r.Version,
		Source:    r.Source,
		CreatedAt: r.CreatedAt,
		Table:     &table,
	}, nil
}

// Save stores a pricing table as a snapshot. Saving a version that already
// exists replaces its payload, so re-fetching a table stays idempotent.
func (r *SnapshotRepository) Save(ctx context.Context, table *pricing.Table, source string) (*Snapshot, error) {
	payload, err := json.Marshal(table)
	if err != nil {
		return nil, errors.Wrap(errors.TypeStorage, "failed to encode snapshot", err)
	}

	var existing SnapshotRecord
	err = r.db.WithContext(ctx).First(&existing, "version = ?", table.Version).Error
	switch err {
	case nil:
		existing.Source = source
		existing.Currency = string(table.Currency)
		existing.Payload = string(payload)
		if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
			return nil, errors.Wrap(errors.TypeStorage, "failed to update snapshot", err)
		}
		return snapshotToModel(&existing)
	case gorm.ErrRecordNotFound:
		rec := SnapshotRecord{
			ID:       "snap-" + uuid.NewString(),
			Version:  table.Version,
			Source:   source,
			Currency: string(table.Currency),
			Payload:  string(payload),
		}
		if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
			return nil, errors.Wrap(errors.TypeStorage, "failed to create snapshot", err)
		}
		return snapshotToModel(&rec)
	default:
		return nil, errors.Wrap(errors.TypeStorage, "failed to query snapshots", err)
	}
}

// Latest returns the most recently created snapshot.
func (r *SnapshotRepository) Latest(ctx context.Context) (*Snapshot, error) {
	var rec SnapshotRecord
	if err := r.db.WithContext(ctx).Order("created_at DESC").First(&rec).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("pricing snapshot", "latest")
		}
		return nil, errors.Wrap(errors.TypeStorage, "failed to query snapshots", err)
	}
	return snapshotToModel(&rec)
}

// GetByVersion returns the snapshot with the given table version.
func (r *SnapshotRepository) GetByVersion(ctx context.Context, version string) (*Snapshot, error) {
	var rec SnapshotRecord
	if err := r.db.WithContext(ctx).First(&rec, "version = ?", version).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("pricing snapshot", version)
		}
		return nil, errors.Wrap(errors.TypeStorage, "failed to query snapshots", err)
	}
	return snapshotToModel(&rec)
}

// List returns all snapshots, newest first.
func (r *SnapshotRepository) List(ctx context.Context) ([]*Snapshot, error) {
	var recs []SnapshotRecord
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&recs).Error; err != nil {
		return nil, errors.Wrap(errors.TypeStorage, "failed to list snapshots", err)
	}
	out := make([]*Snapshot, 0, len(recs))
	for i := range recs {
		s, err := snapshotToModel(&recs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
