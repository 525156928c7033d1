package adaptor

import (
	"errors"
	"fmt"
	"net/http"

	"movie-watchlist/internal/dto/request"
	"movie-watchlist/internal/usecase"
	"movie-watchlist/internal/view"
	"movie-watchlist/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AuthHandler struct {
	service  usecase.AuthService
	sessions usecase.SessionService
	renderer view.Renderer
	config   *utils.Config
	log      *zap.Logger
}

func NewAuthHandler(
	service usecase.AuthService,
	sessions usecase.SessionService,
	renderer view.Renderer,
	config *utils.Config,
	log *zap.Logger,
) *AuthHandler {
	return &AuthHandler{
		service:  service,
		sessions: sessions,
		renderer: renderer,
		config:   config,
		log:      log.With(zap.String("handler", "auth")),
	}
}

// ShowRegister handles GET /register
func (h *AuthHandler) ShowRegister(w http.ResponseWriter, r *http.Request) {
	data := buildPage(r, h.sessions, h.log, "Movies Watchlist - Register")
	data.Form = &request.RegisterRequest{}
	data.RecaptchaKey = h.config.Recaptcha.PublicKey
	h.renderer.Render(w, http.StatusOK, "register.html", data)
}

// Register handles POST /register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	req := &request.RegisterRequest{
		Name:            r.PostFormValue("name"),
		Email:           r.PostFormValue("email"),
		Password:        r.PostFormValue("password"),
		ConfirmPassword: r.PostFormValue("confirm_password"),
		CaptchaResponse: r.PostFormValue("g-recaptcha-response"),
	}

	// Validate and re-render the form with inline errors on failure
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		h.renderRegister(w, r, req, validationErrors)
		return
	}

	if err := h.service.Register(r.Context(), req); err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailTaken):
			h.renderRegister(w, r, req, map[string]string{
				"Email": "This email address is already registered.",
			})
		case errors.Is(err, usecase.ErrValidation):
			h.renderRegister(w, r, req, map[string]string{
				"Captcha": "Captcha verification failed. Please try again.",
			})
		default:
			h.log.Error("Registration failed", zap.Error(err))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	flash(r, h.sessions,
		fmt.Sprintf("A confirmation email has been sent to %s", req.Email), "success")
	http.Redirect(w, r, "/register", http.StatusFound)
}

// ConfirmEmail handles GET /confirm_email/{token}. Whatever the outcome, the
// user lands on the login page with a flash explaining what happened.
func (h *AuthHandler) ConfirmEmail(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	err := h.service.ConfirmEmail(r.Context(), token)
	switch {
	case err == nil:
		flash(r, h.sessions,
			"Your email address has been confirmed. Thank you for registering!", "success")
	case errors.Is(err, utils.ErrTokenExpired):
		flash(r, h.sessions,
			"The confirmation link has expired. Please request a new confirmation email.", "danger")
	case errors.Is(err, utils.ErrTokenInvalid):
		flash(r, h.sessions,
			"The confirmation link is invalid. Please request a new confirmation email.", "danger")
	case errors.Is(err, usecase.ErrUnknownEmail):
		flash(r, h.sessions,
			"There was an error confirming your email address. Please try again.", "danger")
	default:
		h.log.Error("Email confirmation failed", zap.Error(err))
		flash(r, h.sessions,
			"An error occurred while confirming your email address. Please try again later.", "danger")
	}

	http.Redirect(w, r, "/login", http.StatusFound)
}

// ShowLogin handles GET /login
func (h *AuthHandler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	data := buildPage(r, h.sessions, h.log, "Movies Watchlist - Login")
	data.Form = &request.LoginRequest{}
	h.renderer.Render(w, http.StatusOK, "login.html", data)
}

// Login handles POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	req := &request.LoginRequest{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		data := buildPage(r, h.sessions, h.log, "Movies Watchlist - Login")
		data.Form = req
		data.Errors = validationErrors
		h.renderer.Render(w, http.StatusOK, "login.html", data)
		return
	}

	user, err := h.service.Login(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNoSuchAccount):
			flash(r, h.sessions, "That email does not exist, please try again.", "danger")
		case errors.Is(err, usecase.ErrNotConfirmed):
			flash(r, h.sessions, "Please confirm your email to log in!", "danger")
		case errors.Is(err, usecase.ErrWrongPassword):
			flash(r, h.sessions, "You have entered a wrong password! Please try again!", "danger")
		default:
			h.log.Error("Login failed", zap.Error(err))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	sessionID, ok := utils.GetSessionIDFromContext(r.Context())
	if !ok {
		h.log.Error("Login without a session on the context")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if err := h.sessions.SetIdentity(r.Context(), sessionID, user); err != nil {
		h.log.Error("Failed to establish session", zap.Error(err), zap.String("user_id", user.ID))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

// Logout handles GET /logout. Identity only; the theme preference stays.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if sessionID, ok := utils.GetSessionIDFromContext(r.Context()); ok {
		if err := h.sessions.ClearIdentity(r.Context(), sessionID); err != nil {
			h.log.Error("Logout failed", zap.Error(err), zap.String("session_id", sessionID))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
	}

	http.Redirect(w, r, "/login", http.StatusFound)
}

func (h *AuthHandler) renderRegister(w http.ResponseWriter, r *http.Request, form *request.RegisterRequest, errs map[string]string) {
	data := buildPage(r, h.sessions, h.log, "Movies Watchlist - Register")
	data.Form = form
	data.Errors = errs
	data.RecaptchaKey = h.config.Recaptcha.PublicKey
	h.renderer.Render(w, http.StatusOK, "register.html", data)
}
