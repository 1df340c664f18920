package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/devplane/devplane/internal/errors"
	"github.com/devplane/devplane/internal/pricing"
)

// Estimate is a saved cost estimate for one project/environment pair.
type Estimate struct {
	ID           string
	Project      string
	Environment  string
	Region       string
	TotalCost    decimal.Decimal
	Currency     string
	TableVersion string
	CreatedAt    time.Time
	Breakdown    *pricing.Breakdown
}

type EstimateRepository struct{ db *gorm.DB }

func NewEstimateRepository(db *gorm.DB) *EstimateRepository { return &EstimateRepository{db: db} }

func estimateToModel(r *EstimateRecord) (*Estimate, error) {
	var breakdown pricing.Breakdown
	if err := json.Unmarshal([]byte(r.Payload), &breakdown); err != nil {
		return nil, errors.Wrapf(errors.TypeStorage, err, "corrupt estimate payload %s", r.ID)
	}
	total, err := decimal.NewFromString(r.TotalCost)
	if err != nil {
		return nil, errors.Wrapf(errors.TypeStorage, err, "corrupt total cost in estimate %s", r.ID)
	}
	return &Estimate{
		ID:           r.ID,
		Project:      r.Project,
		Environment:  r.Environment,
		Region:       r.Region,
		TotalCost:    total,
		Currency:     r.Currency,
		TableVersion: r.TableVersion,
		CreatedAt:    r.CreatedAt,
		Breakdown:    &breakdown,
	}, nil
}

// Save stores a cost breakdown as a new estimate record.
func (r *EstimateRepository) Save(ctx context.Context, b *pricing.Breakdown) (*Estimate, error) {
	payload, err := json.Marshal(b)
	if err != nil {
		return nil, errors.Wrap(errors.TypeStorage, "failed to encode estimate", err)
	}

	rec := EstimateRecord{
		ID:           "est-" + uuid.NewString(),
		Project:      b.Project,
		Environment:  string(b.Environment),
		Region:       string(b.Region),
		TotalCost:    b.TotalCost.StringFixed(2),
		Currency:     string(b.Currency),
		TableVersion: b.TableVersion,
		Payload:      string(payload),
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, errors.Wrap(errors.TypeStorage, "failed to save estimate", err)
	}
	return estimateToModel(&rec)
}

// List returns saved estimates, newest first. Empty project or environment
// matches everything; limit <= 0 returns all.
func (r *EstimateRepository) List(ctx context.Context, project, environment string, limit int) ([]*Estimate, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if project != "" {
		q = q.Where("project = ?", project)
	}
	if environment != "" {
		q = q.Where("environment = ?", environment)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	var recs []EstimateRecord
	if err := q.Find(&recs).Error; err != nil {
		return nil, errors.Wrap(errors.TypeStorage, "failed to list estimates", err)
	}
	out := make([]*Estimate, 0, len(recs))
	for i := range recs {
		e, err := estimateToModel(&recs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// Latest returns the most recent estimate for a project/environment pair.
func (r *EstimateRepository) Latest(ctx context.Context, project, environment string) (*Estimate, error) {
	estimates, err := r.List(ctx, project, environment, 1)
	if err != nil {
		return nil, err
	}
	if len(estimates) == 0 {
		return nil, errors.NotFound("estimate", project+"/"+environment)
	}
	return estimates[0], nil
}
