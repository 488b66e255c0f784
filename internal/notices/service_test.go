package notices

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rlozano/campus-canteen-backend/pkg/db/models"
	"github.com/rlozano/campus-canteen-backend/pkg/enums"
	pkgerrors "github.com/rlozano/campus-canteen-backend/pkg/errors"
)

func newNoticesTestService(t *testing.T) Service {
	t.Helper()
	dsn := fmt.Sprintf("file:notices_%s?mode=memory&cache=shared&_busy_timeout=5000", uuid.NewString())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.Notice{}))

	svc, err := NewService(NewRepository(conn))
	require.NoError(t, err)
	return svc
}

func TestCreateDefaultsTypeToInfo(t *testing.T) {
	svc := newNoticesTestService(t)

	notice, err := svc.Create(context.Background(), CreateNoticeRequest{Title: " Hello ", Message: "world"})
	require.NoError(t, err)
	require.Equal(t, enums.NoticeTypeInfo, notice.Type)
	require.Equal(t, "Hello", notice.Title)
	require.False(t, notice.Urgent)
	require.Nil(t, notice.Expiry)
}

func TestCreateRejectsUnknownType(t *testing.T) {
	svc := newNoticesTestService(t)

	_, err := svc.Create(context.Background(), CreateNoticeRequest{Title: "t", Message: "m", Type: "emergency"})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestCreateKeepsExpiryAndUrgency(t *testing.T) {
	svc := newNoticesTestService(t)

	expiry := time.Now().Add(48 * time.Hour).Truncate(time.Second)
	notice, err := svc.Create(context.Background(), CreateNoticeRequest{
		Title: "Closed Friday", Message: "maintenance", Type: "Closure", Urgent: true, Expiry: &expiry,
	})
	require.NoError(t, err)
	require.Equal(t, enums.NoticeTypeClosure, notice.Type)
	require.True(t, notice.Urgent)
	require.NotNil(t, notice.Expiry)
}

func TestListReturnsMostRecentFirst(t *testing.T) {
	svc := newNoticesTestService(t)

	for _, title := range []string{"first", "second", "third"} {
		_, err := svc.Create(context.Background(), CreateNoticeRequest{Title: title, Message: "m"})
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
	}

	notices, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, notices, 3)
	require.Equal(t, "third", notices[0].Title)
	require.Equal(t, "first", notices[2].Title)
}
