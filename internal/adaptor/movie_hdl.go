package adaptor

import (
	"errors"
	"net/http"
	"strconv"

	"movie-watchlist/internal/dto/request"
	"movie-watchlist/internal/dto/response"
	"movie-watchlist/internal/usecase"
	"movie-watchlist/internal/view"
	"movie-watchlist/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service  usecase.MovieService
	sessions usecase.SessionService
	renderer view.Renderer
	log      *zap.Logger
}

// editMovieForm carries textarea-shaped values back into the edit template
type editMovieForm struct {
	Cast        string
	Series      string
	Tags        string
	Description string
	VideoLink   string
}

func NewMovieHandler(
	service usecase.MovieService,
	sessions usecase.SessionService,
	renderer view.Renderer,
	log *zap.Logger,
) *MovieHandler {
	return &MovieHandler{
		service:  service,
		sessions: sessions,
		renderer: renderer,
		log:      log.With(zap.String("handler", "movie")),
	}
}

// Index handles GET /
func (h *MovieHandler) Index(w http.ResponseWriter, r *http.Request) {
	identity, _ := utils.GetIdentityFromContext(r.Context())

	movies, err := h.service.ListOwned(r.Context(), identity.UserID)
	if err != nil {
		h.log.Error("Failed to list movies", zap.Error(err), zap.String("user_id", identity.UserID))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	data := buildPage(r, h.sessions, h.log, "Movies Watchlist")
	data.Data = response.MoviesToResponse(movies)
	h.renderer.Render(w, http.StatusOK, "index.html", data)
}

// ShowAdd handles GET /add
func (h *MovieHandler) ShowAdd(w http.ResponseWriter, r *http.Request) {
	data := buildPage(r, h.sessions, h.log, "Movies Watchlist - Add a Movie")
	data.Form = &request.MovieRequest{}
	h.renderer.Render(w, http.StatusOK, "new_movie.html", data)
}

// Add handles POST /add
func (h *MovieHandler) Add(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	req := &request.MovieRequest{
		Title:    r.PostFormValue("title"),
		Director: r.PostFormValue("director"),
	}

	validationErrors := map[string]string{}
	if rawYear := r.PostFormValue("year"); rawYear != "" {
		year, err := strconv.Atoi(rawYear)
		if err != nil {
			validationErrors["Year"] = "Year must be a whole number"
		} else {
			req.Year = year
		}
	}

	if len(validationErrors) == 0 {
		validationErrors = utils.ValidateStruct(req)
	}

	if len(validationErrors) > 0 {
		data := buildPage(r, h.sessions, h.log, "Movies Watchlist - Add a Movie")
		data.Form = req
		data.Errors = validationErrors
		h.renderer.Render(w, http.StatusOK, "new_movie.html", data)
		return
	}

	identity, _ := utils.GetIdentityFromContext(r.Context())

	if _, err := h.service.Add(r.Context(), identity.UserID, req); err != nil {
		h.log.Error("Failed to add movie", zap.Error(err), zap.String("user_id", identity.UserID))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	flash(r, h.sessions, "Movie added successfully.", "success")
	http.Redirect(w, r, "/", http.StatusFound)
}

// Detail handles GET /movie/{id}
func (h *MovieHandler) Detail(w http.ResponseWriter, r *http.Request) {
	movie, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleMovieError(w, r, err, "get movie")
		return
	}

	data := buildPage(r, h.sessions, h.log, "Movies Watchlist - Movie details")
	data.Data = response.MovieToResponse(movie)
	h.renderer.Render(w, http.StatusOK, "movie_details.html", data)
}

// ShowEdit handles GET /edit/{id}, pre-filling the form from the store
func (h *MovieHandler) ShowEdit(w http.ResponseWriter, r *http.Request) {
	movie, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleMovieError(w, r, err, "load movie for edit")
		return
	}

	data := buildPage(r, h.sessions, h.log, "Movies Watchlist - Edit movie")
	data.Data = response.MovieToResponse(movie)
	data.Form = &editMovieForm{
		Cast:        utils.JoinLines(movie.Cast),
		Series:      utils.JoinLines(movie.Series),
		Tags:        utils.JoinLines(movie.Tags),
		Description: movie.Description,
		VideoLink:   movie.VideoLink,
	}
	h.renderer.Render(w, http.StatusOK, "edit_movie.html", data)
}

// Edit handles POST /edit/{id}
func (h *MovieHandler) Edit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	movieID := chi.URLParam(r, "id")

	req := &request.ExtendedMovieRequest{
		Cast:        utils.SplitLines(r.PostFormValue("cast")),
		Series:      utils.SplitLines(r.PostFormValue("series")),
		Tags:        utils.SplitLines(r.PostFormValue("tags")),
		Description: r.PostFormValue("description"),
		VideoLink:   r.PostFormValue("video_link"),
	}

	movie, err := h.service.Edit(r.Context(), movieID, req)
	if err != nil {
		if errors.Is(err, usecase.ErrValidation) {
			data := buildPage(r, h.sessions, h.log, "Movies Watchlist - Edit movie")
			data.Data = response.MovieResponse{ID: movieID}
			data.Form = &editMovieForm{
				Cast:        r.PostFormValue("cast"),
				Series:      r.PostFormValue("series"),
				Tags:        r.PostFormValue("tags"),
				Description: req.Description,
				VideoLink:   req.VideoLink,
			}
			data.Errors = map[string]string{"VideoLink": "Must be a valid URL"}
			h.renderer.Render(w, http.StatusOK, "edit_movie.html", data)
			return
		}
		h.handleMovieError(w, r, err, "edit movie")
		return
	}

	http.Redirect(w, r, "/movie/"+movie.ID, http.StatusFound)
}

// Rate handles GET /movie/{id}/rate?rating=N
func (h *MovieHandler) Rate(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")

	err := h.service.Rate(r.Context(), movieID, r.URL.Query().Get("rating"))
	if err != nil {
		if errors.Is(err, usecase.ErrValidation) {
			flash(r, h.sessions, "Rating must be a whole number.", "danger")
			http.Redirect(w, r, "/movie/"+movieID, http.StatusFound)
			return
		}
		h.handleMovieError(w, r, err, "rate movie")
		return
	}

	http.Redirect(w, r, "/movie/"+movieID, http.StatusFound)
}

// Watch handles GET /movie/{id}/watch
func (h *MovieHandler) Watch(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")

	if err := h.service.MarkWatched(r.Context(), movieID); err != nil {
		h.handleMovieError(w, r, err, "mark movie watched")
		return
	}

	http.Redirect(w, r, "/movie/"+movieID, http.StatusFound)
}

func (h *MovieHandler) handleMovieError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	if errors.Is(err, usecase.ErrMovieNotFound) {
		data := buildPage(r, h.sessions, h.log, "Movies Watchlist - Not found")
		h.renderer.Render(w, http.StatusNotFound, "not_found.html", data)
		return
	}

	h.log.Error("Failed to "+operation, zap.Error(err))
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}
