package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Barbershop
// --------------------------------------------------

func (r *AppointmentGormRepository) GetBarbershopByID(
	ctx context.Context,
	id uint,
) (*models.Barbershop, error) {

	var shop models.Barbershop
	if err := r.db.WithContext(ctx).First(&shop, id).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

func (r *AppointmentGormRepository) GetBarbershopBySlug(
	ctx context.Context,
	slug string,
) (*models.Barbershop, error) {

	var shop models.Barbershop
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&shop).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

// --------------------------------------------------
// Service / people
// --------------------------------------------------

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	barbershopID uint,
	serviceID uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barbershop_id = ?", serviceID, barbershopID).
		First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *AppointmentGormRepository) GetBarber(
	ctx context.Context,
	barbershopID uint,
	barberID uint,
) (*models.User, error) {

	var barber models.User
	if err := r.db.WithContext(ctx).
		Where(
			"id = ? AND barbershop_id = ? AND role IN ?",
			barberID, barbershopID,
			[]string{models.RoleOwner, models.RoleBarber},
		).
		First(&barber).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

func (r *AppointmentGormRepository) GetUser(
	ctx context.Context,
	userID uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// --------------------------------------------------
// Working hours
// --------------------------------------------------

// GetWeekSchedule monta o expediente semanal do barbeiro a partir das
// linhas por weekday. O bool diferencia "nunca configurado" (false)
// de "configurado" — mesmo que todos os dias estejam fechados.
func (r *AppointmentGormRepository) GetWeekSchedule(
	ctx context.Context,
	barberID uint,
) (domain.WeekSchedule, bool, error) {

	var rows []models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("barber_id = ?", barberID).
		Order("weekday ASC").
		Find(&rows).Error; err != nil {
		return domain.WeekSchedule{}, false, err
	}

	if len(rows) == 0 {
		return domain.WeekSchedule{}, false, nil
	}

	week := domain.WeekSchedule{
		Days: make(map[int]domain.DayHours, len(rows)),
	}

	for _, row := range rows {
		if row.SlotStepMin > 0 && week.SlotStepMin == 0 {
			week.SlotStepMin = row.SlotStepMin
		}

		if !row.Active {
			week.Days[row.Weekday] = domain.DayHours{Closed: true}
			continue
		}

		day := domain.DayHours{
			Start: row.StartTime,
			End:   row.EndTime,
		}
		for _, br := range row.Breaks {
			day.Breaks = append(day.Breaks, domain.BreakWindow{
				Start: br.Start,
				End:   br.End,
			})
		}
		week.Days[row.Weekday] = day
	}

	return week, true, nil
}

// --------------------------------------------------
// Busy ranges
// --------------------------------------------------

func (r *AppointmentGormRepository) ListBusyRanges(
	ctx context.Context,
	barberID uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]domain.TimeRange, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("start_at", "end_at").
		Where(
			"barber_id = ? AND status IN ? AND start_at >= ? AND start_at < ?",
			barberID, domain.BusyStatuses, dayStart, dayEnd,
		).
		Order("start_at ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	ranges := make([]domain.TimeRange, 0, len(aps))
	for _, ap := range aps {
		ranges = append(ranges, domain.TimeRange{
			Start: ap.StartAt,
			End:   ap.EndAt,
		})
	}
	return ranges, nil
}

// --------------------------------------------------
// Appointment (guarded writes)
// --------------------------------------------------

func userMirrorFrom(ap *models.Appointment) models.UserAppointment {
	return models.UserAppointment{
		AppointmentID:      ap.PublicID,
		UserID:             ap.UserID,
		BarbershopID:       ap.BarbershopID,
		BarberID:           ap.BarberID,
		ServiceID:          ap.ServiceID,
		ServiceName:        ap.ServiceName,
		ServiceDurationMin: ap.ServiceDurationMin,
		ServicePrice:       ap.ServicePrice,
		ServiceImageURL:    ap.ServiceImageURL,
		BarberName:         ap.BarberName,
		StartAt:            ap.StartAt,
		EndAt:              ap.EndAt,
		Status:             ap.Status,
	}
}

func barberMirrorFrom(ap *models.Appointment) models.BarberAppointment {
	return models.BarberAppointment{
		AppointmentID:      ap.PublicID,
		BarberID:           ap.BarberID,
		BarbershopID:       ap.BarbershopID,
		UserID:             ap.UserID,
		ServiceID:          ap.ServiceID,
		ServiceName:        ap.ServiceName,
		ServiceDurationMin: ap.ServiceDurationMin,
		ServicePrice:       ap.ServicePrice,
		UserName:           ap.UserName,
		UserSurname:        ap.UserSurname,
		UserPhone:          ap.UserPhone,
		StartAt:            ap.StartAt,
		EndAt:              ap.EndAt,
		Status:             ap.Status,
	}
}

// conflictQuery monta a busca de sobreposições meio-abertas
// PENDING/CONFIRMED do barbeiro, com FOR UPDATE nas linhas retornadas.
// Postgres não aceita FOR UPDATE junto de agregação, então a checagem
// materializa os ids em vez de contar.
func conflictQuery(
	tx *gorm.DB,
	barberID uint,
	start time.Time,
	end time.Time,
	excludeID uint,
) *gorm.DB {

	q := tx.
		Model(&models.Appointment{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"barber_id = ? AND status IN ? AND start_at < ? AND end_at > ?",
			barberID, domain.BusyStatuses, end, start,
		)

	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	return q
}

// assertNoConflictLocked trava os agendamentos conflitantes do barbeiro
// e falha se existir algum. Só vale dentro de transação; fora dela a
// checagem é consultiva. Slot vazio não trava linha nenhuma — quem
// serializa duas inserções simultâneas no mesmo buraco é a constraint
// de exclusão do banco.
func assertNoConflictLocked(
	tx *gorm.DB,
	barberID uint,
	start time.Time,
	end time.Time,
	excludeID uint,
) error {

	var conflictIDs []uint
	if err := conflictQuery(tx, barberID, start, end, excludeID).
		Pluck("id", &conflictIDs).Error; err != nil {
		return err
	}
	if len(conflictIDs) > 0 {
		return httperr.ErrBusiness("slot_no_longer_available")
	}
	return nil
}

// CreateAppointmentWithMirrors grava canônico + dois espelhos numa única
// transação, com re-checagem de conflito dentro dela. A constraint de
// exclusão do Postgres é a última linha de defesa contra corrida
// check-then-act; a violação vira o mesmo erro de negócio.
func (r *AppointmentGormRepository) CreateAppointmentWithMirrors(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := assertNoConflictLocked(tx, ap.BarberID, ap.StartAt, ap.EndAt, 0); err != nil {
			return err
		}

		if err := tx.Create(ap).Error; err != nil {
			return err
		}

		userMirror := userMirrorFrom(ap)
		if err := tx.Create(&userMirror).Error; err != nil {
			return err
		}

		barberMirror := barberMirrorFrom(ap)
		return tx.Create(&barberMirror).Error
	})

	if err != nil && httperr.IsExclusionConflict(err) {
		return httperr.ErrBusiness("slot_no_longer_available")
	}
	return err
}

func (r *AppointmentGormRepository) SaveStatusWithMirrors(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(ap).Error; err != nil {
			return err
		}

		patch := map[string]any{
			"status":     ap.Status,
			"updated_at": ap.UpdatedAt,
		}

		if err := tx.Model(&models.UserAppointment{}).
			Where("appointment_id = ?", ap.PublicID).
			Updates(patch).Error; err != nil {
			return err
		}

		return tx.Model(&models.BarberAppointment{}).
			Where("appointment_id = ?", ap.PublicID).
			Updates(patch).Error
	})
}

func (r *AppointmentGormRepository) SaveTimesWithMirrors(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := assertNoConflictLocked(tx, ap.BarberID, ap.StartAt, ap.EndAt, ap.ID); err != nil {
			return err
		}

		if err := tx.Save(ap).Error; err != nil {
			return err
		}

		patch := map[string]any{
			"start_at":   ap.StartAt,
			"end_at":     ap.EndAt,
			"updated_at": ap.UpdatedAt,
		}

		if err := tx.Model(&models.UserAppointment{}).
			Where("appointment_id = ?", ap.PublicID).
			Updates(patch).Error; err != nil {
			return err
		}

		return tx.Model(&models.BarberAppointment{}).
			Where("appointment_id = ?", ap.PublicID).
			Updates(patch).Error
	})

	if err != nil && httperr.IsExclusionConflict(err) {
		return httperr.ErrBusiness("slot_no_longer_available")
	}
	return err
}

// RebuildMirrors regenera os dois espelhos a partir do canônico.
// Idempotente: usado como reparo quando algum cliente antigo deixou
// espelho órfão ou desatualizado.
func (r *AppointmentGormRepository) RebuildMirrors(
	ctx context.Context,
	publicID uuid.UUID,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ap models.Appointment
		if err := tx.
			Where("public_id = ?", publicID).
			First(&ap).Error; err != nil {
			return err
		}

		if err := tx.
			Where("appointment_id = ?", publicID).
			Delete(&models.UserAppointment{}).Error; err != nil {
			return err
		}
		if err := tx.
			Where("appointment_id = ?", publicID).
			Delete(&models.BarberAppointment{}).Error; err != nil {
			return err
		}

		userMirror := userMirrorFrom(&ap)
		if err := tx.Create(&userMirror).Error; err != nil {
			return err
		}

		barberMirror := barberMirrorFrom(&ap)
		return tx.Create(&barberMirror).Error
	})
}

// --------------------------------------------------
// Appointment (reads)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentByPublicID(
	ctx context.Context,
	publicID uuid.UUID,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("public_id = ?", publicID).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) ListUpcomingForUser(
	ctx context.Context,
	userID uint,
	now time.Time,
) (*models.UserAppointment, error) {

	var aps []models.UserAppointment
	if err := r.db.WithContext(ctx).
		Where(
			"user_id = ? AND status IN ? AND start_at >= ?",
			userID, domain.BusyStatuses, now,
		).
		Order("start_at ASC").
		Limit(1).
		Find(&aps).Error; err != nil {
		return nil, err
	}

	if len(aps) == 0 {
		return nil, nil
	}
	return &aps[0], nil
}

func (r *AppointmentGormRepository) ListPastForUser(
	ctx context.Context,
	userID uint,
	before time.Time,
	limit int,
) ([]models.UserAppointment, error) {

	if limit <= 0 {
		limit = 10
	}

	var aps []models.UserAppointment
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND start_at < ?", userID, before).
		Order("start_at DESC").
		Limit(limit).
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) ListBarberPeriod(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]models.BarberAppointment, error) {

	var aps []models.BarberAppointment
	if err := r.db.WithContext(ctx).
		Where(
			"barber_id = ? AND start_at >= ? AND start_at < ?",
			barberID, start, end,
		).
		Order("start_at ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
