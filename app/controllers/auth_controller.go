package controllers

import (
	"errors"
	"net/http"

	"github.com/josbet/floreria/app/services"
	"github.com/josbet/floreria/pkg/logger"
	"github.com/josbet/floreria/pkg/session"
	"github.com/josbet/floreria/pkg/view"
)

// AuthController handles registration, login and logout.
type AuthController struct {
	views *view.Renderer
	auth  *services.AuthService
}

func NewAuthController(views *view.Renderer, auth *services.AuthService) *AuthController {
	return &AuthController{views: views, auth: auth}
}

// ShowRegister renders the registration form.
func (c *AuthController) ShowRegister(w http.ResponseWriter, r *http.Request) {
	render(c.views, w, r, "register.html", nil)
}

// Register processes the registration form.
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		flashRedirect(w, r, session.LevelDanger, "Solicitud inválida.", "/register")
		return
	}

	_, err := c.auth.Register(
		r.PostFormValue("nombre"),
		r.PostFormValue("correo"),
		r.PostFormValue("contrasena"),
		r.PostFormValue("confirma_contrasena"),
	)
	switch {
	case errors.Is(err, services.ErrMissingFields):
		flashRedirect(w, r, session.LevelWarning, "Rellena todos los campos obligatorios.", "/register")
	case errors.Is(err, services.ErrPasswordMismatch):
		flashRedirect(w, r, session.LevelDanger, "Las contraseñas no coinciden.", "/register")
	case errors.Is(err, services.ErrDuplicate):
		flashRedirect(w, r, session.LevelDanger, "Usuario o correo ya registrado.", "/register")
	case err != nil:
		logger.WithCtx(r.Context()).Error("register failed", "error", err)
		flashRedirect(w, r, session.LevelDanger, "No se pudo completar el registro. Inténtalo de nuevo.", "/register")
	default:
		flashRedirect(w, r, session.LevelSuccess, "Registro exitoso. Ahora puedes iniciar sesión.", "/login")
	}
}

// ShowLogin renders the login form.
func (c *AuthController) ShowLogin(w http.ResponseWriter, r *http.Request) {
	render(c.views, w, r, "login.html", nil)
}

// Login processes the login form. All failures produce the same flash
// and redirect; the response never reveals whether the account exists.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		flashRedirect(w, r, session.LevelDanger, "Credenciales incorrectas.", "/login")
		return
	}

	user, err := c.auth.Login(r.PostFormValue("nombre"), r.PostFormValue("contrasena"))
	if err != nil {
		flashRedirect(w, r, session.LevelDanger, "Credenciales incorrectas.", "/login")
		return
	}

	sess := session.FromCtx(r)
	sess.SetUserID(user.ID)
	sess.Flash(session.LevelSuccess, "Bienvenido, "+user.Username+".")
	_ = sess.Save(w)
	http.Redirect(w, r, "/menu", http.StatusSeeOther)
}

// Logout clears the user reference. Always succeeds, signed in or not.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session.FromCtx(r)
	sess.ClearUserID()
	sess.Flash(session.LevelInfo, "Sesión cerrada.")
	_ = sess.Save(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
