// Package userstore holds the find-or-create operation shared by order
// placement and comment submission. Customers never register: a user row
// appears the first time an email shows up on either workflow.
package userstore

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/cafetec/cafetec-api/internal/models"
)

// FindOrCreate resolves the user for an email, inserting a row if absent.
// The unique index on correo makes the lookup-then-insert race safe: a
// duplicate-key failure means another writer won, so the row is re-read.
func FindOrCreate(ctx context.Context, db *gorm.DB, name, email string) (models.User, bool, error) {
	var user models.User
	err := db.WithContext(ctx).Where("correo = ?", email).First(&user).Error
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, false, err
	}

	user = models.User{Name: name, Email: email}
	if createErr := db.WithContext(ctx).Create(&user).Error; createErr != nil {
		var existing models.User
		if lookupErr := db.WithContext(ctx).Where("correo = ?", email).First(&existing).Error; lookupErr == nil {
			return existing, false, nil
		}
		return models.User{}, false, createErr
	}
	return user, true, nil
}
