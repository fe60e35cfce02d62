package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/smartclassroom/SCB-BookingService/internal/api/handlers"
)

// Заголовки аутентификации. Сервис доверяет им полностью:
// их проставляет внешний identity-сервис / gateway после проверки сессии.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"

	RoleStaff = "staff"
)

type ctxKey int

const (
	userIDKey ctxKey = iota
	isStaffKey
)

// Auth middleware аутентификации: требует валидный X-User-ID
// и кладет ID пользователя и признак сотрудника в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get(HeaderUserID)
		if userIDStr == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "missing "+HeaderUserID+" header")
			return
		}

		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, "invalid "+HeaderUserID+" header")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, isStaffKey, r.Header.Get(HeaderUserRole) == RoleStaff)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// StaffOnly middleware-guard для административных операций.
// Применяется после Auth.
func StaffOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsStaff(r.Context()) {
			handlers.RespondForbidden(w, "staff role required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserID возвращает ID аутентифицированного пользователя из контекста
func UserID(ctx context.Context) int64 {
	id, _ := ctx.Value(userIDKey).(int64)
	return id
}

// IsStaff возвращает true, если запрос выполняет сотрудник
func IsStaff(ctx context.Context) bool {
	isStaff, _ := ctx.Value(isStaffKey).(bool)
	return isStaff
}
