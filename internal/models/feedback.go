package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Feedback struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty" validate:"max=100"`
	Email     string             `bson:"email" json:"email" validate:"required,email"`
	Message   string             `bson:"message" json:"message" validate:"required,max=5000"`
	Rating    int                `bson:"rating,omitempty" json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	IPAddress string             `bson:"ip,omitempty" json:"ip,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
