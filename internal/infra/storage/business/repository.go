package business

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
)

// Переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для чтения бизнесов.
// Бизнесы создаются и редактируются вне этого сервиса; здесь они нужны
// только как reference-сущность для проверок существования и владения.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бизнесов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает бизнес по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Business, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByOwner получает бизнес по ID пользователя-владельца.
// У пользователя с ролью business ровно один бизнес.
func (r *Repository) GetByOwner(ctx context.Context, userID int64) (*domain.Business, error) {
	return r.getOne(ctx, squirrel.Eq{"user_id": userID})
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq) (*domain.Business, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"user_id",
		"name",
		"description",
		"address",
		"phone",
		"created_at",
	).
		From("businesses").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	var b domain.Business
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&b.UserID,
		&b.Name,
		&b.Description,
		&b.Address,
		&b.Phone,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBusinessNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan business: %v", ErrScanRow, err)
	}

	b.CreatedAt = createdAt.Time

	return &b, nil
}
