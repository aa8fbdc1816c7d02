package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/barbearia-af/booking-api/internal/domain/appointment"
	"github.com/barbearia-af/booking-api/internal/httperr"
	"github.com/barbearia-af/booking-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Profile
// --------------------------------------------------

func (r *BookingGormRepository) GetProfileByID(
	ctx context.Context,
	id uuid.UUID,
) (*models.Profile, error) {

	var p models.Profile
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *BookingGormRepository) ListBarbers(
	ctx context.Context,
) ([]models.Profile, error) {

	var barbers []models.Profile
	if err := r.db.WithContext(ctx).
		Select("id", "full_name", "avatar_url").
		Where("role = ?", models.RoleAdmin).
		Order("full_name ASC").
		Find(&barbers).Error; err != nil {
		return nil, err
	}
	return barbers, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	id uuid.UUID,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND active = true", id).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *BookingGormRepository) ListServices(
	ctx context.Context,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("active = true").
		Order("price ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// --------------------------------------------------
// Availability (working window)
// --------------------------------------------------

func (r *BookingGormRepository) GetAvailability(
	ctx context.Context,
	barberID uuid.UUID,
	date string,
) (*models.BarberAvailability, error) {

	var av models.BarberAvailability
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND date = ?", barberID, date).
		First(&av).Error; err != nil {
		return nil, err
	}
	return &av, nil
}

func (r *BookingGormRepository) UpsertAvailability(
	ctx context.Context,
	av *models.BarberAvailability,
) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "barber_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns(
				[]string{"start_time", "end_time", "updated_at"},
			),
		}).
		Create(av).Error
}

func (r *BookingGormRepository) DeleteAvailability(
	ctx context.Context,
	barberID uuid.UUID,
	date string,
) error {
	res := r.db.WithContext(ctx).
		Where("barber_id = ? AND date = ?", barberID, date).
		Delete(&models.BarberAvailability{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("availability_not_configured")
	}
	return nil
}

func (r *BookingGormRepository) ListAvailabilityDates(
	ctx context.Context,
	barberID uuid.UUID,
) ([]models.BarberAvailability, error) {

	var rows []models.BarberAvailability
	if err := r.db.WithContext(ctx).
		Where("barber_id = ?", barberID).
		Order("date ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *BookingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		if isUniqueViolation(err) {
			// Índice parcial (barber_id, appointment_time) em scheduled:
			// alguém chegou primeiro entre o snapshot e a escrita.
			return httperr.ErrBusiness("slot_taken")
		}
		return err
	}
	return nil
}

func (r *BookingGormRepository) GetAppointment(
	ctx context.Context,
	id uuid.UUID,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		First(&ap, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *BookingGormRepository) ListScheduledForDay(
	ctx context.Context,
	barberID uuid.UUID,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where(
			"barber_id = ? AND status = ? AND appointment_time >= ? AND appointment_time < ?",
			barberID, string(domain.StatusScheduled), start, end,
		).
		Order("appointment_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *BookingGormRepository) ListForClient(
	ctx context.Context,
	clientID uuid.UUID,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Barber").
		Where("client_id = ?", clientID).
		Order("appointment_time DESC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *BookingGormRepository) ListForBarberDay(
	ctx context.Context,
	barberID uuid.UUID,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where(
			"barber_id = ? AND appointment_time >= ? AND appointment_time < ?",
			barberID, start, end,
		).
		Order("appointment_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// --------------------------------------------------
// Blocked slots
// --------------------------------------------------

func (r *BookingGormRepository) CreateBlockedSlot(
	ctx context.Context,
	bs *models.BlockedSlot,
) error {
	return r.db.WithContext(ctx).Create(bs).Error
}

func (r *BookingGormRepository) GetBlockedSlot(
	ctx context.Context,
	id uuid.UUID,
) (*models.BlockedSlot, error) {

	var bs models.BlockedSlot
	if err := r.db.WithContext(ctx).First(&bs, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &bs, nil
}

func (r *BookingGormRepository) DeleteBlockedSlot(
	ctx context.Context,
	id uuid.UUID,
) error {
	return r.db.WithContext(ctx).
		Delete(&models.BlockedSlot{}, "id = ?", id).Error
}

func (r *BookingGormRepository) ListBlockedForDay(
	ctx context.Context,
	barberID uuid.UUID,
	start time.Time,
	end time.Time,
) ([]models.BlockedSlot, error) {

	var rows []models.BlockedSlot
	if err := r.db.WithContext(ctx).
		Where(
			"barber_id = ? AND start_time >= ? AND start_time < ?",
			barberID, start, end,
		).
		Order("start_time ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
