package auth

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"

	"github.com/northhaul/northhaul-backend/internal/admins"
	"github.com/northhaul/northhaul-backend/pkg/auth/session"
	"github.com/northhaul/northhaul-backend/pkg/config"
	"github.com/northhaul/northhaul-backend/pkg/db/models"
	pkgerrors "github.com/northhaul/northhaul-backend/pkg/errors"
	"github.com/northhaul/northhaul-backend/pkg/security"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: glogger.Default.LogMode(glogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := conn.AutoMigrate(&models.AdminUser{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return conn
}

func newTestService(t *testing.T) (Service, *admins.Repository, *session.Manager) {
	t.Helper()

	repo := admins.NewRepository(openTestDB(t))
	manager, err := session.NewManager(session.NewMemoryStore(), config.SessionConfig{
		CookieName: "northhaul_admin_session",
	})
	require.NoError(t, err)

	svc, err := NewService(repo, manager)
	require.NoError(t, err)
	return svc, repo, manager
}

func seedAdmin(t *testing.T, repo *admins.Repository, username, password string) *models.AdminUser {
	t.Helper()

	// low cost keeps the test fast; production cost comes from config
	hash, err := security.HashPassword(password, config.PasswordConfig{BcryptCost: 4})
	require.NoError(t, err)
	admin, err := repo.Create(context.Background(), &models.AdminUser{
		Username:     username,
		PasswordHash: hash,
	})
	require.NoError(t, err)
	return admin
}

func TestLoginIssuesSession(t *testing.T) {
	svc, repo, manager := newTestService(t)
	ctx := context.Background()

	admin := seedAdmin(t, repo, "admin", "hunter2-hunter2")

	result, err := svc.Login(ctx, LoginInput{Username: "admin", Password: "hunter2-hunter2"})
	require.NoError(t, err)
	require.Equal(t, admin.ID, result.AdminID)
	require.Equal(t, "admin", result.Username)
	require.NotEmpty(t, result.SessionID)

	sess, err := manager.Lookup(ctx, result.SessionID)
	require.NoError(t, err)
	require.NotNil(t, sess)
	require.Equal(t, admin.ID, sess.AdminID)

	reloaded, err := repo.FindByUsername(ctx, "admin")
	require.NoError(t, err)
	require.NotNil(t, reloaded.LastLoginAt)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc, repo, _ := newTestService(t)

	seedAdmin(t, repo, "admin", "hunter2-hunter2")

	_, err := svc.Login(context.Background(), LoginInput{Username: "admin", Password: "wrong"})
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, pkgerrors.CodeUnauthorized, appErr.Code())
	require.Equal(t, "invalid credentials", appErr.Message())
}

func TestLoginUnknownUserSameAnswer(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Login(context.Background(), LoginInput{Username: "ghost", Password: "whatever"})
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, pkgerrors.CodeUnauthorized, appErr.Code())
	require.Equal(t, "invalid credentials", appErr.Message())
}

func TestLogoutRevokesSession(t *testing.T) {
	svc, repo, manager := newTestService(t)
	ctx := context.Background()

	seedAdmin(t, repo, "admin", "hunter2-hunter2")
	result, err := svc.Login(ctx, LoginInput{Username: "admin", Password: "hunter2-hunter2"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, result.SessionID))

	sess, err := manager.Lookup(ctx, result.SessionID)
	require.NoError(t, err)
	require.Nil(t, sess)
}
