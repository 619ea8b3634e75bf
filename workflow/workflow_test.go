package workflow

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/atelierhq/design-portal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.DesignType{},
		&models.Image{},
		&models.Comment{},
		&models.RevisionRequest{},
		&models.RevisionRule{},
		&models.Setting{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewService(db, models.DefaultMaxRevisionRequests), db
}

func createUser(t *testing.T, db *gorm.DB, role string, rulesConfirmed bool) models.User {
	t.Helper()

	user := models.User{
		Identifier:             fmt.Sprintf("%s-%d", role, userSeq(db)),
		Name:                   "Test " + role,
		Role:                   role,
		RevisionRulesConfirmed: rulesConfirmed,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create %s user: %v", role, err)
	}
	return user
}

func userSeq(db *gorm.DB) int64 {
	var n int64
	db.Model(&models.User{}).Count(&n)
	return n + 1
}

func createImage(t *testing.T, db *gorm.DB, designer, client models.User) models.Image {
	t.Helper()

	dt := models.DesignType{Name: fmt.Sprintf("logo-%d", typeSeq(db)), Description: "brand mark"}
	if err := db.Create(&dt).Error; err != nil {
		t.Fatalf("failed to create design type: %v", err)
	}

	image := models.Image{
		URL:          "https://storage.googleapis.com/test/" + dt.Name + ".png",
		PublicID:     fmt.Sprintf("pub-%s", dt.Name),
		DesignerID:   designer.ID,
		ClientID:     client.ID,
		ClientName:   client.Name,
		DesignTypeID: dt.ID,
		Format:       "png",
		Bytes:        1024,
		Width:        800,
		Height:       600,
		Status:       models.ImageStatusPending,
	}
	if err := db.Create(&image).Error; err != nil {
		t.Fatalf("failed to create image: %v", err)
	}
	return image
}

func typeSeq(db *gorm.DB) int64 {
	var n int64
	db.Model(&models.DesignType{}).Count(&n)
	return n + 1
}
