package middleware

import (
	"context"
	"net/http"
	"strings"

	"NoteKeeper/internal/auth"
)

type contextKey string

const userIDKey contextKey = "user_id"

const bearerPrefix = "Bearer "

// WithAuth требует заголовок Authorization: Bearer <token> на каждом запросе.
// Без заголовка или с другой схемой отвечаем 401 сразу, не трогая верификатор.
// Любая ошибка верификатора приравнивается к невалидному токену:
// никакого частичного доверия, ответ всегда одинаковый.
func WithAuth(verifier auth.IdentityVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, bearerPrefix) {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			userID, err := verifier.Verify(strings.TrimPrefix(header, bearerPrefix))
			if err != nil || userID == 0 {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserIDFromContext возвращает идентификатор пользователя, положенный WithAuth.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
