package response

import (
	"movie-watchlist/internal/data/entity"
)

type MovieResponse struct {
	ID          string
	Title       string
	Director    string
	Year        int
	Cast        []string
	Series      []string
	Tags        []string
	Description string
	VideoLink   string
	LastWatched string
	Rating      int
}

// Helper converters

func MovieToResponse(movie *entity.Movie) MovieResponse {
	resp := MovieResponse{
		ID:          movie.ID,
		Title:       movie.Title,
		Director:    movie.Director,
		Year:        movie.Year,
		Cast:        movie.Cast,
		Series:      movie.Series,
		Tags:        movie.Tags,
		Description: movie.Description,
		VideoLink:   movie.VideoLink,
		Rating:      movie.Rating,
	}

	if movie.LastWatched != nil {
		resp.LastWatched = movie.LastWatched.Format("2 Jan 2006")
	}

	return resp
}

func MoviesToResponse(movies []entity.Movie) []MovieResponse {
	out := make([]MovieResponse, 0, len(movies))
	for i := range movies {
		out = append(out, MovieToResponse(&movies[i]))
	}
	return out
}
