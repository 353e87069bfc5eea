package config

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	model "taskhub.com/taskhub/internal/models"
)

func New(dsn string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Task{},
		&model.Comment{},
		&model.Preference{},
		&model.Notification{},
	)
	if err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	return db
}
