package models

import "time"

// MigrationRecord keeps track of which migrations have been run
type MigrationRecord struct {
	Name      string    `bson:"_id"`
	AppliedAt time.Time `bson:"appliedAt"`
}
