package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/smartclassroom/SCB-BookingService/internal/domain"
	"github.com/smartclassroom/SCB-BookingService/pkg/dbmetrics"
	"github.com/smartclassroom/SCB-BookingService/pkg/psqlbuilder"
)

// exclusionViolationCode код ошибки PostgreSQL при нарушении EXCLUDE-ограничения
// (пересекающиеся интервалы бронирований)
const exclusionViolationCode = "23P01"

const bookingColumns = "id, user_id, start_time, end_time, purpose, attendees, " +
	"description, receipt_url, status, created_at, updated_at"

// Repository репозиторий для работы с бронированиями аудитории
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Если в контексте передана активная транзакция (через context.Value), использует её.
//
// Даже при вызове вне транзакции пересекающаяся запись не может появиться:
// схема содержит EXCLUDE-ограничение по диапазону [start_time, end_time)
// для статусов pending/approved, его нарушение транслируется в ErrSlotTaken.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"user_id",
			"start_time",
			"end_time",
			"purpose",
			"attendees",
			"description",
			"receipt_url",
			"status",
		).
		Values(
			booking.UserID,
			booking.StartTime,
			booking.EndTime,
			booking.Purpose,
			booking.Attendees,
			booking.Description,
			booking.ReceiptURL,
			booking.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isExclusionViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBookings().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// CountOverlapping подсчитывает бронирования со статусом pending/approved,
// пересекающие полуоткрытый диапазон [start, end). Записи, граничащие с
// диапазоном по краю, пересечением не считаются.
//
// excludeID, если указан, исключает бронирование из проверки
// (используется при повторной валидации существующей записи).
//
// Внутри транзакции пересекающиеся строки блокируются через FOR UPDATE,
// чтобы закрыть гонку check-then-insert при создании бронирования.
func (r *Repository) CountOverlapping(ctx context.Context, start, end time.Time, excludeID *int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	blockingStatuses := make([]string, len(domain.BlockingStatuses))
	for i, s := range domain.BlockingStatuses {
		blockingStatuses[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select("id").
		From("bookings").
		Where(squirrel.Lt{"start_time": end}).
		Where(squirrel.Gt{"end_time": start}).
		Where(squirrel.Eq{"status": blockingStatuses})

	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *excludeID})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: CountOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return 0, fmt.Errorf("%w: CountOverlapping - scan row: %v", ErrScanRow, err)
		}
		count++
	}

	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("%w: CountOverlapping - rows error: %v", ErrScanRow, err)
	}

	return count, nil
}

// ListBetween получает бронирования, начинающиеся в полуоткрытом окне
// [start, end), в порядке возрастания времени начала.
// Статус не фильтруется: календарь показывает и отклоненные заявки.
func (r *Repository) ListBetween(ctx context.Context, start, end time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBookings().
		Where(squirrel.GtOrEq{"start_time": start}).
		Where(squirrel.Lt{"start_time": end}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListBetween - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBetween - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetByUserID получает бронирования пользователя, сначала новые.
// Опционально фильтрует по статусу.
func (r *Repository) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectBookings().
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("start_time DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// UpdateStatus обновляет статус бронирования и возвращает предыдущий статус.
// Запись обновляется (и updated_at обновляется) даже если статус не изменился:
// по предыдущему значению вызывающая сторона решает, отправлять ли уведомление.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (domain.BookingStatus, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// UPDATE ... FROM с предварительным FOR UPDATE отдает прежний статус
	// атомарно, без отдельного SELECT
	query := `
		UPDATE bookings AS b
		SET status = $1, updated_at = NOW()
		FROM (SELECT id, status AS prev_status FROM bookings WHERE id = $2 FOR UPDATE) prev
		WHERE b.id = prev.id
		RETURNING prev.prev_status`

	var prevStatus domain.BookingStatus
	err := executor.QueryRowContext(ctx, query, status, id).Scan(&prevStatus)
	if err == sql.ErrNoRows {
		return "", ErrBookingNotFound
	}
	if err != nil {
		if isExclusionViolation(err) {
			// Повторное одобрение поверх занятого слота (после того как слот
			// был перебронирован) отклоняется ограничением БД
			return "", ErrSlotTaken
		}
		return "", fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	return prevStatus, nil
}

// SetReceipt сохраняет ссылку на загруженный чек
func (r *Repository) SetReceipt(ctx context.Context, id int64, receiptURL string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("receipt_url", receiptURL).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetReceipt - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetReceipt - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetReceipt - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// CountByStatusForUser считает бронирования пользователя по статусам
// (для дашборда)
func (r *Repository) CountByStatusForUser(ctx context.Context, userID int64) (*domain.StatusSummary, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("status", "COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		GroupBy("status").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CountByStatusForUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountByStatusForUser - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	summary := &domain.StatusSummary{}
	for rows.Next() {
		var status domain.BookingStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("%w: CountByStatusForUser - scan row: %v", ErrScanRow, err)
		}
		switch status {
		case domain.StatusPending:
			summary.Pending = count
		case domain.StatusApproved:
			summary.Approved = count
		case domain.StatusRejected:
			summary.Rejected = count
		}
		summary.Total += count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountByStatusForUser - rows error: %v", ErrScanRow, err)
	}

	return summary, nil
}

// ListUserIDs получает отсортированный список всех пользователей,
// когда-либо бронировавших аудиторию.
// Используется как fallback для детерминированной раскраски календаря,
// когда identity-сервис недоступен.
func (r *Repository) ListUserIDs(ctx context.Context) ([]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("DISTINCT user_id").
		From("bookings").
		OrderBy("user_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListUserIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListUserIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	userIDs := make([]int64, 0)
	for rows.Next() {
		var userID int64
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("%w: ListUserIDs - scan user_id: %v", ErrScanRow, err)
		}
		userIDs = append(userIDs, userID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListUserIDs - rows error: %v", ErrScanRow, err)
	}

	return userIDs, nil
}

// selectBookings базовый SELECT по всем колонкам бронирования
func selectBookings() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"user_id",
		"start_time",
		"end_time",
		"purpose",
		"attendees",
		"description",
		"receipt_url",
		"status",
		"created_at",
		"updated_at",
	).From("bookings")
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку в бронирование
func (r *Repository) scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.StartTime,
		&booking.EndTime,
		&booking.Purpose,
		&booking.Attendees,
		&booking.Description,
		&booking.ReceiptURL,
		&booking.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// isExclusionViolation проверяет, что ошибка вызвана EXCLUDE-ограничением
func isExclusionViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == exclusionViolationCode
	}
	return false
}
