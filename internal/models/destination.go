package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Destination is a travel destination document. Places, Transportation and
// Insight are free-form objects rendered by the frontend as-is.
type Destination struct {
	ID              primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	Name            string                 `bson:"name" json:"name" validate:"required,max=200"`
	Country         string                 `bson:"country" json:"country" validate:"required,max=100"`
	Continent       string                 `bson:"continent,omitempty" json:"continent,omitempty" validate:"max=50"`
	Description     string                 `bson:"description,omitempty" json:"description,omitempty"`
	Images          []string               `bson:"images,omitempty" json:"images,omitempty" validate:"dive,url"`
	Types           []string               `bson:"types,omitempty" json:"types,omitempty"`
	Places          map[string]interface{} `bson:"places,omitempty" json:"places,omitempty"`
	Transportation  map[string]interface{} `bson:"transportation,omitempty" json:"transportation,omitempty"`
	Insight         map[string]interface{} `bson:"insight,omitempty" json:"insight,omitempty"`
	BestTimeToVisit string                 `bson:"bestTimeToVisit,omitempty" json:"bestTimeToVisit,omitempty"`
	Rating          float64                `bson:"rating,omitempty" json:"rating,omitempty" validate:"gte=0,lte=5"`
	CreatedAt       time.Time              `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time              `bson:"updatedAt" json:"updatedAt"`
}

// DestinationUpdate lists the fields a client may change. Nil fields are left
// untouched.
type DestinationUpdate struct {
	Name            *string                `bson:"name,omitempty" json:"name" validate:"omitempty,min=1,max=200"`
	Country         *string                `bson:"country,omitempty" json:"country" validate:"omitempty,min=1,max=100"`
	Continent       *string                `bson:"continent,omitempty" json:"continent" validate:"omitempty,max=50"`
	Description     *string                `bson:"description,omitempty" json:"description"`
	Images          *[]string              `bson:"images,omitempty" json:"images" validate:"omitempty,dive,url"`
	Types           *[]string              `bson:"types,omitempty" json:"types"`
	Places          map[string]interface{} `bson:"places,omitempty" json:"places"`
	Transportation  map[string]interface{} `bson:"transportation,omitempty" json:"transportation"`
	Insight         map[string]interface{} `bson:"insight,omitempty" json:"insight"`
	BestTimeToVisit *string                `bson:"bestTimeToVisit,omitempty" json:"bestTimeToVisit"`
	Rating          *float64               `bson:"rating,omitempty" json:"rating" validate:"omitempty,gte=0,lte=5"`
	UpdatedAt       time.Time              `bson:"updatedAt" json:"-"`
}

type DestinationFilter struct {
	Search    string
	Country   string
	Continent string
	Type      string
}
