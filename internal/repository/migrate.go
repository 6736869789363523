package repository

import "gorm.io/gorm"

// Migrate creates or updates the schema for every table this package owns.
// Called by cmd/seed and the test suites; production postgres is expected
// to be migrated out of band.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&trainerProfileModel{},
		&classModel{},
		&sessionModel{},
		&classBookingModel{},
		&trainingModel{},
	)
}
