package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/pause-manager/internal/domain/dashboard"
	"github.com/BruksfildServices01/pause-manager/internal/models"
)

type DashboardGormRepository struct {
	db *gorm.DB
}

func NewDashboardGormRepository(db *gorm.DB) *DashboardGormRepository {
	return &DashboardGormRepository{db: db}
}

var _ domain.Repository = (*DashboardGormRepository)(nil)

// --------------------------------------------------
// Events
// --------------------------------------------------

func eventScope(q domain.EventQuery) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if q.Day != "" {
			tx = tx.Where("date = ?", q.Day)
		}
		if q.FromDay != "" {
			tx = tx.Where("date >= ?", q.FromDay)
		}
		if len(q.Types) > 0 {
			if q.MatchServiceType {
				tx = tx.Where("(type IN ? OR service_type IN ?)", q.Types, q.Types)
			} else {
				tx = tx.Where("type IN ?", q.Types)
			}
		}
		if len(q.Statuses) > 0 {
			tx = tx.Where("status IN ?", q.Statuses)
		}
		return tx
	}
}

func (r *DashboardGormRepository) FindEvents(
	ctx context.Context,
	q domain.EventQuery,
	limit int,
) ([]models.Event, error) {

	tx := r.db.WithContext(ctx).
		Scopes(eventScope(q)).
		Order("date ASC, start_time ASC")
	if limit > 0 {
		tx = tx.Limit(limit)
	}

	var events []models.Event
	err := tx.Find(&events).Error
	return events, err
}

func (r *DashboardGormRepository) CountEvents(ctx context.Context, q domain.EventQuery) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Event{}).
		Scopes(eventScope(q)).
		Count(&count).Error
	return count, err
}

func (r *DashboardGormRepository) FirstEvent(ctx context.Context, q domain.EventQuery) (*models.Event, error) {
	var e models.Event
	err := r.db.WithContext(ctx).
		Scopes(eventScope(q)).
		Order("date ASC, start_time ASC").
		First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// --------------------------------------------------
// Reservations
// --------------------------------------------------

func reservationScope(q domain.ReservationQuery) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if q.Day != "" {
			tx = tx.Where("date = ?", q.Day)
		}
		if q.FromDay != "" {
			tx = tx.Where("date >= ?", q.FromDay)
		}
		if len(q.Statuses) > 0 {
			tx = tx.Where("status IN ?", q.Statuses)
		}
		return tx
	}
}

func (r *DashboardGormRepository) CountReservations(ctx context.Context, q domain.ReservationQuery) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Scopes(reservationScope(q)).
		Count(&count).Error
	return count, err
}

func (r *DashboardGormRepository) FirstReservation(ctx context.Context, q domain.ReservationQuery) (*models.Reservation, error) {
	var res models.Reservation
	err := r.db.WithContext(ctx).
		Scopes(reservationScope(q)).
		Order("date ASC, start_time ASC").
		First(&res).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// --------------------------------------------------
// Clients / Services
// --------------------------------------------------

func (r *DashboardGormRepository) ListActiveClients(ctx context.Context, limit int) ([]models.Client, error) {
	var clients []models.Client
	err := r.db.WithContext(ctx).
		Where("status = ?", models.ClientStatusActive).
		Order("name ASC").
		Limit(limit).
		Find(&clients).Error
	return clients, err
}

func (r *DashboardGormRepository) CountActiveClients(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("status = ?", models.ClientStatusActive).
		Count(&count).Error
	return count, err
}

func (r *DashboardGormRepository) CountActiveServices(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("status = ?", models.ServiceStatusActive).
		Count(&count).Error
	return count, err
}
