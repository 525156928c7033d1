package entity

import (
	"time"
)

type Movie struct {
	ID          string     `bson:"_id"`
	Title       string     `bson:"title"`
	Director    string     `bson:"director"`
	Year        int        `bson:"year"`
	Cast        []string   `bson:"cast"`
	Series      []string   `bson:"series"`
	Tags        []string   `bson:"tags"`
	Description string     `bson:"description,omitempty"`
	VideoLink   string     `bson:"video_link,omitempty"`
	LastWatched *time.Time `bson:"last_watched,omitempty"`
	Rating      int        `bson:"rating"`
}
