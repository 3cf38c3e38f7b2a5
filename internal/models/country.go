package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Country struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name" json:"name" validate:"required,max=100"`
	Code            string             `bson:"code,omitempty" json:"code,omitempty" validate:"omitempty,alpha,min=2,max=3"`
	Continent       string             `bson:"continent,omitempty" json:"continent,omitempty" validate:"max=50"`
	Capital         string             `bson:"capital,omitempty" json:"capital,omitempty" validate:"max=100"`
	Currency        string             `bson:"currency,omitempty" json:"currency,omitempty" validate:"max=50"`
	Language        string             `bson:"language,omitempty" json:"language,omitempty" validate:"max=100"`
	Description     string             `bson:"description,omitempty" json:"description,omitempty"`
	Image           string             `bson:"image,omitempty" json:"image,omitempty" validate:"omitempty,url"`
	BestTimeToVisit string             `bson:"bestTimeToVisit,omitempty" json:"bestTimeToVisit,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type CountryUpdate struct {
	Name            *string   `bson:"name,omitempty" json:"name" validate:"omitempty,min=1,max=100"`
	Code            *string   `bson:"code,omitempty" json:"code" validate:"omitempty,alpha,min=2,max=3"`
	Continent       *string   `bson:"continent,omitempty" json:"continent" validate:"omitempty,max=50"`
	Capital         *string   `bson:"capital,omitempty" json:"capital" validate:"omitempty,max=100"`
	Currency        *string   `bson:"currency,omitempty" json:"currency" validate:"omitempty,max=50"`
	Language        *string   `bson:"language,omitempty" json:"language" validate:"omitempty,max=100"`
	Description     *string   `bson:"description,omitempty" json:"description"`
	Image           *string   `bson:"image,omitempty" json:"image" validate:"omitempty,url"`
	BestTimeToVisit *string   `bson:"bestTimeToVisit,omitempty" json:"bestTimeToVisit"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"-"`
}

type CountryFilter struct {
	Search    string
	Continent string
}
