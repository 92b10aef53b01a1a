// Package controllers holds the HTTP handlers. Controllers parse form
// input, call a service or repository, and either render a template or
// redirect with a flash message; business rules live in app/services.
package controllers

import (
	"net/http"

	"github.com/josbet/floreria/app/guards"
	"github.com/josbet/floreria/pkg/session"
	"github.com/josbet/floreria/pkg/view"
)

// render draws a template with the common payload every page needs: the
// signed-in user (if any) and the pending flash messages. Draining the
// flashes mutates the session, so it is saved before the body is written.
func render(v *view.Renderer, w http.ResponseWriter, r *http.Request, name string, data view.Data) {
	if data == nil {
		data = view.Data{}
	}
	if _, ok := data["User"]; !ok {
		if user, signedIn := guards.FromCtx(r); signedIn {
			data["User"] = user
		}
	}

	sess := session.FromCtx(r)
	data["Flashes"] = sess.PopFlashes()
	_ = sess.Save(w)

	v.Render(w, name, data)
}

// flashRedirect queues a flash and redirects. 303 forces the browser to
// follow a POST with a GET.
func flashRedirect(w http.ResponseWriter, r *http.Request, level, message, target string) {
	sess := session.FromCtx(r)
	sess.Flash(level, message)
	_ = sess.Save(w)
	http.Redirect(w, r, target, http.StatusSeeOther)
}
