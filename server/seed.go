package server

import (
	"context"
	"errors"
	"fmt"

	"karyawan/common"
	"karyawan/condb"
	"karyawan/models"
	"karyawan/repositories"
	"karyawan/utils"
)

// SeedAdmin creates the bootstrap account when no user with that username
// exists. It reports whether a user was created; repeated calls are no-ops.
func SeedAdmin(ctx context.Context, db *condb.DB, username, password string) (bool, error) {
	created := false

	err := condb.WithTx(ctx, db.DB, func(ctx context.Context, tx condb.DBTX) error {
		users := repositories.NewUserRepository(tx)

		_, err := users.GetByUsername(ctx, username)
		if err == nil {
			return nil
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return err
		}

		hash, err := utils.HashPassword(password)
		if err != nil {
			return fmt.Errorf("hash admin password: %w", err)
		}
		if _, err := users.Create(ctx, &models.User{Username: username, PasswordHash: hash}); err != nil {
			return err
		}
		created = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("seed admin: %w", err)
	}
	return created, nil
}
