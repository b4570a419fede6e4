package audit

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/feedback-hub/internal/models"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		b, err := json.Marshal(ev.Metadata)
		if err != nil {
			return errors.Wrapf(err, "encode %s metadata", ev.Action)
		}
		metaJSON = string(b)
	}

	entry := models.AuditLog{
		ActorID:  optional(ev.ActorID),
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: optional(ev.EntityID),
		Metadata: metaJSON,
	}

	return l.db.WithContext(ctx).Create(&entry).Error
}

// Filter narrows a listing. Zero values are ignored. To is inclusive of
// the whole day.
type Filter struct {
	Action string
	Entity string
	From   *time.Time
	To     *time.Time
	Page   int
	Limit  int
}

// Normalize applies the paging defaults and clamps the page so its offset
// fits in an int.
func (f Filter) Normalize() Filter {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > MaxPageSize {
		f.Limit = DefaultPageSize
	}
	if f.Page-1 > math.MaxInt/f.Limit {
		f.Page = math.MaxInt/f.Limit + 1
	}
	return f
}

func (l *Logger) List(ctx context.Context, f Filter) ([]models.AuditLog, int64, error) {
	f = f.Normalize()

	q := l.db.WithContext(ctx).Model(&models.AuditLog{})

	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at < ?", f.To.Add(24*time.Hour))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	logs := []models.AuditLog{}
	if err := q.
		Order("created_at DESC").
		Order("id DESC").
		Limit(f.Limit).
		Offset((f.Page - 1) * f.Limit).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
