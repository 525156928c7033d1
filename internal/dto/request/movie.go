package request

type MovieRequest struct {
	Title    string `form:"title" validate:"required,max=200"`
	Director string `form:"director" validate:"required,max=100"`
	Year     int    `form:"year" validate:"required,movieyear"`
}

// ExtendedMovieRequest carries only the metadata fields the edit form may
// overwrite. List fields arrive as textarea text, one entry per line.
type ExtendedMovieRequest struct {
	Cast        []string `form:"cast"`
	Series      []string `form:"series"`
	Tags        []string `form:"tags"`
	Description string   `form:"description"`
	VideoLink   string   `form:"video_link" validate:"omitempty,url"`
}
