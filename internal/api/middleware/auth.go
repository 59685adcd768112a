package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/api/handlers"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
)

const (
	HeaderUserID    = "X-User-ID"
	HeaderUserRole  = "X-User-Role"
	HeaderCompanyID = "X-Company-ID"
)

const (
	msgMissingIdentity = "отсутствуют данные пользователя"
	msgInvalidIdentity = "некорректные данные пользователя"
)

type actorKey struct{}

// Auth извлекает пользователя из заголовков, выставленных шлюзом
// Проверка токенов выполняется до сервиса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get(HeaderUserID)
		roleStr := r.Header.Get(HeaderUserRole)
		companyIDStr := r.Header.Get(HeaderCompanyID)

		if userIDStr == "" || roleStr == "" || companyIDStr == "" {
			handlers.RespondUnauthorized(w, msgMissingIdentity)
			return
		}

		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgInvalidIdentity)
			return
		}

		companyID, err := strconv.ParseInt(companyIDStr, 10, 64)
		if err != nil || companyID <= 0 {
			handlers.RespondUnauthorized(w, msgInvalidIdentity)
			return
		}

		role := domain.Role(roleStr)
		if !role.IsValid() {
			handlers.RespondUnauthorized(w, msgInvalidIdentity)
			return
		}

		actor := domain.Actor{UserID: userID, Role: role, CompanyID: companyID}
		next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
	})
}

// WithActor кладет пользователя в контекст
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// GetActor возвращает пользователя из контекста
func GetActor(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(domain.Actor)
	return actor, ok
}
