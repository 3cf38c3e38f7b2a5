package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Blog struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title" validate:"required,max=300"`
	Slug        string             `bson:"slug" json:"slug" validate:"omitempty,max=320"`
	Author      string             `bson:"author,omitempty" json:"author,omitempty" validate:"max=100"`
	Summary     string             `bson:"summary,omitempty" json:"summary,omitempty" validate:"max=1000"`
	Content     string             `bson:"content" json:"content" validate:"required"`
	CoverImage  string             `bson:"coverImage,omitempty" json:"coverImage,omitempty" validate:"omitempty,url"`
	Tags        []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	Destination string             `bson:"destination,omitempty" json:"destination,omitempty"`
	PublishedAt time.Time          `bson:"publishedAt" json:"publishedAt"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type BlogUpdate struct {
	Title       *string    `bson:"title,omitempty" json:"title" validate:"omitempty,min=1,max=300"`
	Author      *string    `bson:"author,omitempty" json:"author" validate:"omitempty,max=100"`
	Summary     *string    `bson:"summary,omitempty" json:"summary" validate:"omitempty,max=1000"`
	Content     *string    `bson:"content,omitempty" json:"content" validate:"omitempty,min=1"`
	CoverImage  *string    `bson:"coverImage,omitempty" json:"coverImage" validate:"omitempty,url"`
	Tags        *[]string  `bson:"tags,omitempty" json:"tags"`
	Destination *string    `bson:"destination,omitempty" json:"destination"`
	PublishedAt *time.Time `bson:"publishedAt,omitempty" json:"publishedAt"`
	UpdatedAt   time.Time  `bson:"updatedAt" json:"-"`
}

type BlogFilter struct {
	Search string
	Tag    string
}
