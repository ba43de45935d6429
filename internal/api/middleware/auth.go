package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

type actorContextKey struct{}

const (
	headerUserID   = "X-User-ID"
	headerUserRole = "X-User-Role"
)

// Auth извлекает личность вызывающего из identity-заголовков.
// Сервис стоит за API-гейтвеем, который уже проверил учетные данные,
// поэтому заголовкам доверяем без перепроверки.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawID := r.Header.Get(headerUserID)
		if rawID == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок X-User-ID")
			return
		}

		userID, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "некорректный заголовок X-User-ID")
			return
		}

		role := domain.Role(r.Header.Get(headerUserRole))
		if !role.Valid() {
			handlers.RespondUnauthorized(w, "некорректный заголовок X-User-Role")
			return
		}

		actor := domain.Actor{ID: userID, Role: role}
		ctx := context.WithValue(r.Context(), actorContextKey{}, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ActorFromContext возвращает личность вызывающего, положенную Auth middleware
func ActorFromContext(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorContextKey{}).(domain.Actor)
	return actor, ok
}
