package models

import "time"

type Post struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author"`
	Text      string    `json:"text"`
	ImageKey  string    `json:"img"`
	Likes     int64     `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
}
