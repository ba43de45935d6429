package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Repository репозиторий для работы с записями на прием
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись.
// Если в контексте передана активная транзакция (через context.Value),
// использует её — обязательное условие для пути создания записи, где
// проверка конфликта и вставка должны быть одной атомарной единицей.
func (r *Repository) Create(ctx context.Context, apt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"customer_id",
			"business_id",
			"date",
			"time",
			"status",
			"notes",
		).
		Values(
			apt.CustomerID,
			apt.BusinessID,
			apt.Date,
			apt.Time,
			apt.Status,
			apt.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&apt.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	apt.CreatedAt = createdAt.Time
	apt.UpdatedAt = updatedAt.Time

	return apt, nil
}

// GetByID получает запись по ID без проверки владельца.
// Скоупинг по владельцу делают GetByIDForCustomer/GetByIDForBusiness.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByIDForCustomer получает запись по ID, принадлежащую клиенту.
// Чужая запись неотличима от несуществующей: обе дают ErrAppointmentNotFound.
func (r *Repository) GetByIDForCustomer(ctx context.Context, id, customerID int64) (*domain.Appointment, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id, "customer_id": customerID})
}

// GetByIDForBusiness получает запись по ID, адресованную бизнесу
func (r *Repository) GetByIDForBusiness(ctx context.Context, id, businessID int64) (*domain.Appointment, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id, "business_id": businessID})
}

// GetWithFilter получает записи по фильтру владельца (клиент или бизнес)
// с опциональной фильтрацией по статусу и дате и пагинацией
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"customer_id",
		"business_id",
		"date",
		"time",
		"status",
		"notes",
		"created_at",
		"updated_at",
	).
		From("appointments")

	if filter.CustomerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.BusinessID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"business_id": *filter.BusinessID})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"date": *filter.Date})
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = domain.DefaultListLimit
	}

	// Сначала новые
	selectBuilder = selectBuilder.
		OrderBy("date DESC, time DESC").
		Limit(uint64(limit)).
		Offset(uint64(filter.Offset))

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// GetBookedTimes получает времена записей бизнеса на дату для выдачи слотов.
// Исключаются ТОЛЬКО отменённые записи: denied здесь учитывается как занято
// не будет — предикат намеренно отличается от HasBlockingAppointment.
func (r *Repository) GetBookedTimes(ctx context.Context, businessID int64, date time.Time) ([]types.TimeString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("time").
		From("appointments").
		Where(squirrel.Eq{"business_id": businessID, "date": date}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		OrderBy("time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedTimes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedTimes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	times := make([]types.TimeString, 0)
	for rows.Next() {
		var t types.TimeString
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("%w: GetBookedTimes - scan time: %v", ErrScanRow, err)
		}
		times = append(times, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBookedTimes - rows error: %v", ErrScanRow, err)
	}

	return times, nil
}

// HasBlockingAppointment проверяет, занят ли слот (business, date, time)
// для создания новой записи. Блокирует любой статус, кроме denied.
// Внутри транзакции строки блокируются (FOR UPDATE), чтобы конкурентное
// создание на тот же слот сериализовалось.
func (r *Repository) HasBlockingAppointment(ctx context.Context, businessID int64, date time.Time, t types.TimeString) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id").
		From("appointments").
		Where(squirrel.Eq{"business_id": businessID, "date": date, "time": t}).
		Where(squirrel.NotEq{"status": domain.StatusDenied}).
		Limit(1)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: HasBlockingAppointment - build select query: %v", ErrBuildQuery, err)
	}

	var id int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: HasBlockingAppointment - scan: %v", ErrScanRow, err)
	}

	return true, nil
}

// UpdateStatusByBusiness обновляет статус записи, адресованной бизнесу.
// 0 затронутых строк означает "не найдена или чужая" — наружу это одна
// и та же ошибка, существование чужих записей не раскрывается.
func (r *Repository) UpdateStatusByBusiness(ctx context.Context, id, businessID int64, status domain.AppointmentStatus) error {
	return r.updateStatus(ctx, status, squirrel.Eq{"id": id, "business_id": businessID})
}

// CancelByCustomer отменяет запись клиента. Уже отменённая запись повторно
// не отменяется — условие status != cancelled даёт 0 строк и ErrAppointmentNotFound.
func (r *Repository) CancelByCustomer(ctx context.Context, id, customerID int64) error {
	return r.updateStatus(ctx, domain.StatusCancelled, squirrel.And{
		squirrel.Eq{"id": id, "customer_id": customerID},
		squirrel.NotEq{"status": domain.StatusCancelled},
	})
}

// CountByStatus подсчитывает записи владельца по статусам (для статистики)
func (r *Repository) CountByStatus(ctx context.Context, filter domain.AppointmentsFilter) (map[domain.AppointmentStatus]int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("status", "COUNT(*)").
		From("appointments")

	if filter.CustomerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.BusinessID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"business_id": *filter.BusinessID})
	}

	query, args, err := selectBuilder.GroupBy("status").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CountByStatus - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountByStatus - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make(map[domain.AppointmentStatus]int)
	for rows.Next() {
		var status domain.AppointmentStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("%w: CountByStatus - scan row: %v", ErrScanRow, err)
		}
		counts[status] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountByStatus - rows error: %v", ErrScanRow, err)
	}

	return counts, nil
}

func (r *Repository) updateStatus(ctx context.Context, status domain.AppointmentStatus, where interface{}) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(where).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: updateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: updateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: updateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"customer_id",
		"business_id",
		"date",
		"time",
		"status",
		"notes",
		"created_at",
		"updated_at",
	).
		From("appointments").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	var apt domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&apt.ID,
		&apt.CustomerID,
		&apt.BusinessID,
		&apt.Date,
		&apt.Time,
		&apt.Status,
		&apt.Notes,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan appointment: %v", ErrScanRow, err)
	}

	apt.CreatedAt = createdAt.Time
	apt.UpdatedAt = updatedAt.Time

	return &apt, nil
}

// scanAppointments сканирует результаты запроса в слайс записей
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		var apt domain.Appointment
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&apt.ID,
			&apt.CustomerID,
			&apt.BusinessID,
			&apt.Date,
			&apt.Time,
			&apt.Status,
			&apt.Notes,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}

		apt.CreatedAt = createdAt.Time
		apt.UpdatedAt = updatedAt.Time

		appointments = append(appointments, &apt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
