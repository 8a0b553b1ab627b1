package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/pause-manager/internal/domain/reservation"
	"github.com/BruksfildServices01/pause-manager/internal/models"
	"github.com/BruksfildServices01/pause-manager/internal/timezone"
)

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

var _ domain.Repository = (*ReservationGormRepository)(nil)

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *ReservationGormRepository) HasConflict(
	ctx context.Context,
	slot domain.Slot,
	excludeID *uint,
) (bool, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where(
			"room = ? AND date = ? AND status IN ? AND start_time < ? AND end_time > ?",
			slot.Room,
			slot.Day(),
			domain.BlockingStatuses,
			slot.EndTime,
			slot.StartTime,
		)

	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// WithinSlotLock usa um advisory lock transacional por sala+dia; ele é
// liberado no commit/rollback. A constraint EXCLUDE continua como rede.
func (r *ReservationGormRepository) WithinSlotLock(
	ctx context.Context,
	slot domain.Slot,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"SELECT pg_advisory_xact_lock(hashtext(?))",
			slot.LockKey(),
		).Error; err != nil {
			return err
		}
		return fn(&ReservationGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Reservation
// --------------------------------------------------

func (r *ReservationGormRepository) Create(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(res).Error
}

// Update escreve apenas as colunas do patch: campos que o pedido não
// trouxe ficam como estão no banco, mesmo que outro pedido os tenha mudado.
func (r *ReservationGormRepository) Update(
	ctx context.Context,
	res *models.Reservation,
	columns []string,
) error {
	res.SyncMinutes()

	result := r.db.WithContext(ctx).
		Model(res).
		Select(withUpdatedAt(columns)).
		Updates(res)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func withUpdatedAt(columns []string) []string {
	out := make([]string, 0, len(columns)+1)
	out = append(out, columns...)
	return append(out, "updated_at")
}

func (r *ReservationGormRepository) Get(
	ctx context.Context,
	id uint,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Event").
		First(&res, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &res, nil
}

func (r *ReservationGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {
	result := r.db.WithContext(ctx).Delete(&models.Reservation{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ReservationGormRepository) List(ctx context.Context) ([]models.Reservation, error) {
	var list []models.Reservation
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Event").
		Order("date ASC, start_time ASC").
		Find(&list).Error
	return list, err
}

func (r *ReservationGormRepository) ListUpcoming(
	ctx context.Context,
	from time.Time,
	limit int,
) ([]models.Reservation, error) {

	var list []models.Reservation
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Event").
		Where("date >= ? AND status IN ?", from.Format(timezone.DateLayout), domain.UpcomingStatuses).
		Order("date ASC, start_time ASC").
		Limit(limit).
		Find(&list).Error
	return list, err
}

// WeeklyStats agrupa por dia da semana (1 = domingo) e sala.
func (r *ReservationGormRepository) WeeklyStats(
	ctx context.Context,
	since time.Time,
) ([]domain.WeeklyStat, error) {

	var rows []domain.WeeklyStat
	err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Select(`
			CAST(EXTRACT(DOW FROM date) AS INTEGER) + 1 AS day,
			room,
			COUNT(*) AS count,
			COALESCE(SUM(participants), 0) AS total_participants
		`).
		Where("date >= ?", since.Format(timezone.DateLayout)).
		Group("day, room").
		Order("day ASC, room ASC").
		Scan(&rows).Error
	return rows, err
}

// --------------------------------------------------
// Referências
// --------------------------------------------------

func (r *ReservationGormRepository) ClientExists(ctx context.Context, id uint) (bool, error) {
	return exists(ctx, r.db, &models.Client{}, id)
}

func (r *ReservationGormRepository) EventExists(ctx context.Context, id uint) (bool, error) {
	return exists(ctx, r.db, &models.Event{}, id)
}

func exists(ctx context.Context, db *gorm.DB, model any, id uint) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).
		Model(model).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
