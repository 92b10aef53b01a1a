// Package guards provides route middleware that resolves the signed-in
// user and protects customer and admin pages.
package guards

import (
	"context"
	"net/http"

	"github.com/josbet/floreria/app/models"
	"github.com/josbet/floreria/app/repositories"
	"github.com/josbet/floreria/pkg/session"
)

type ctxKey struct{}

// WithUser resolves the session's user id against the database and puts
// the user into the request context. A stale id (deleted account) is
// treated as anonymous.
func WithUser(users *repositories.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := session.FromCtx(r)
			if id, ok := sess.UserID(); ok {
				if user, err := users.FindByID(id); err == nil {
					ctx := context.WithValue(r.Context(), ctxKey{}, user)
					r = r.WithContext(ctx)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// FromCtx returns the signed-in user, or false for anonymous visitors.
func FromCtx(r *http.Request) (models.User, bool) {
	u, ok := r.Context().Value(ctxKey{}).(models.User)
	return u, ok
}

// RequireLogin redirects anonymous visitors to the login page.
func RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := FromCtx(r); !ok {
			sess := session.FromCtx(r)
			sess.Flash(session.LevelWarning, "Debes iniciar sesión para acceder a esa página.")
			_ = sess.Save(w)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin sends non-admins (and anonymous visitors) back to the home
// page. Both cases get the exact same response.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := FromCtx(r)
		if !ok || !user.IsAdmin {
			sess := session.FromCtx(r)
			sess.Flash(session.LevelDanger, "Acceso denegado. Sólo administradores.")
			_ = sess.Save(w)
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
