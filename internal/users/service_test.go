package users

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rlozano/campus-canteen-backend/pkg/db/models"
	"github.com/rlozano/campus-canteen-backend/pkg/enums"
	pkgerrors "github.com/rlozano/campus-canteen-backend/pkg/errors"
)

func newUsersTestService(t *testing.T) (Service, *Repository) {
	t.Helper()
	dsn := fmt.Sprintf("file:users_%s?mode=memory&cache=shared&_busy_timeout=5000", uuid.NewString())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.User{}))

	repo := NewRepository(conn)
	svc, err := NewService(repo)
	require.NoError(t, err)
	return svc, repo
}

func TestGetProfileOmitsCredentials(t *testing.T) {
	svc, repo := newUsersTestService(t)

	created, err := repo.Create(context.Background(), CreateUserDTO{
		Name:         "Sam",
		Email:        "sam@campus.edu",
		Username:     "sam",
		PasswordHash: "argon2id$...",
		Role:         enums.RoleStudent,
		StudentID:    "STU1234",
	})
	require.NoError(t, err)

	profile, err := svc.GetProfile(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, "Sam", profile.Name)
	require.Equal(t, "STU1234", profile.StudentID)
	require.Equal(t, enums.RoleStudent, profile.Role)
}

func TestGetProfileUnknownUser(t *testing.T) {
	svc, _ := newUsersTestService(t)

	_, err := svc.GetProfile(context.Background(), uuid.New())
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestUpdateProfileChangesOnlyNameAndPhone(t *testing.T) {
	svc, repo := newUsersTestService(t)

	created, err := repo.Create(context.Background(), CreateUserDTO{
		Name:         "Sam",
		Email:        "sam@campus.edu",
		Username:     "sam",
		PasswordHash: "hash",
		Role:         enums.RoleStudent,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(context.Background(), created.ID, UpdateProfileDTO{Name: "Samantha", Phone: "555-0100"})
	require.NoError(t, err)
	require.Equal(t, "Samantha", updated.Name)
	require.Equal(t, "555-0100", updated.Phone)
	require.Equal(t, "sam", updated.Username)
	require.Equal(t, "sam@campus.edu", updated.Email)
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	svc, _ := newUsersTestService(t)

	_, err := svc.UpdateProfile(context.Background(), uuid.New(), UpdateProfileDTO{Name: "x"})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}
