package businesshours

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с расписанием работы бизнесов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByBusiness получает все строки расписания бизнеса,
// упорядоченные по дню недели
func (r *Repository) GetByBusiness(ctx context.Context, businessID int64) ([]*domain.BusinessHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"business_id",
		"day_of_week",
		"open_time",
		"close_time",
		"is_working_day",
		"slot_duration",
	).
		From("business_hours").
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("day_of_week ASC, open_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBusiness - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBusiness - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	hours := make([]*domain.BusinessHours, 0)
	for rows.Next() {
		h, err := scanHours(rows)
		if err != nil {
			return nil, err
		}
		hours = append(hours, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByBusiness - rows error: %v", ErrScanRow, err)
	}

	return hours, nil
}

// GetWorkingDay получает рабочее расписание бизнеса на день недели.
// Нерабочие дни (is_working_day = false) не возвращаются: для генерации
// слотов их отсутствие равнозначно отсутствию строки.
func (r *Repository) GetWorkingDay(ctx context.Context, businessID int64, dayOfWeek int) (*domain.BusinessHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"business_id",
		"day_of_week",
		"open_time",
		"close_time",
		"is_working_day",
		"slot_duration",
	).
		From("business_hours").
		Where(squirrel.Eq{
			"business_id":    businessID,
			"day_of_week":    dayOfWeek,
			"is_working_day": true,
		}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWorkingDay - build select query: %v", ErrBuildQuery, err)
	}

	var h domain.BusinessHours
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&h.ID,
		&h.BusinessID,
		&h.DayOfWeek,
		&h.OpenTime,
		&h.CloseTime,
		&h.IsWorkingDay,
		&h.SlotDuration,
	)

	if err == sql.ErrNoRows {
		return nil, ErrHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetWorkingDay - scan hours: %v", ErrScanRow, err)
	}

	return &h, nil
}

// ReplaceForBusiness заменяет расписание бизнеса целиком: удаляет все
// строки и вставляет переданный набор. Вызывающий ОБЯЗАН обернуть вызов
// в транзакцию (txmanager), иначе сбой между delete и insert оставит
// бизнес без расписания.
func (r *Repository) ReplaceForBusiness(ctx context.Context, businessID int64, hours []*domain.BusinessHours) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("business_hours").
		Where(squirrel.Eq{"business_id": businessID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceForBusiness - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceForBusiness - execute delete: %v", ErrExecQuery, err)
	}

	if len(hours) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("business_hours").
		Columns(
			"business_id",
			"day_of_week",
			"open_time",
			"close_time",
			"is_working_day",
			"slot_duration",
		)

	for _, h := range hours {
		insertBuilder = insertBuilder.Values(
			businessID,
			h.DayOfWeek,
			h.OpenTime,
			h.CloseTime,
			h.IsWorkingDay,
			h.EffectiveSlotDuration(),
		)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceForBusiness - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceForBusiness - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

func scanHours(rows *sql.Rows) (*domain.BusinessHours, error) {
	var h domain.BusinessHours
	err := rows.Scan(
		&h.ID,
		&h.BusinessID,
		&h.DayOfWeek,
		&h.OpenTime,
		&h.CloseTime,
		&h.IsWorkingDay,
		&h.SlotDuration,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: scanHours - scan row: %v", ErrScanRow, err)
	}
	return &h, nil
}
