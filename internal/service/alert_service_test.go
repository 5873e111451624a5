package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/noah-isme/siaga-go-api/internal/dto"
	"github.com/noah-isme/siaga-go-api/internal/models"
	"github.com/noah-isme/siaga-go-api/internal/repository"
)

func newAlertService(t *testing.T, db *gorm.DB, cache *redis.Client) AlertService {
	t.Helper()
	return NewAlertService(repository.NewAlertRepository(db), cache, time.Minute, nil, "", testLogger())
}

func newTestCache(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, client
}

func TestAlertCreateSanitizesMessage(t *testing.T) {
	db := setupTestDB(t)
	svc := newAlertService(t, db, nil)

	alert, err := svc.Create(context.Background(), Actor{ID: "tch-1", Role: models.RoleTeacher}, dto.AlertCreateRequest{
		Title:     "Flood <b>warning</b>",
		Message:   `Evacuate <script>alert("x")</script>now`,
		AlertType: "flood",
		Severity:  "high",
	})
	require.NoError(t, err)

	require.Equal(t, "Flood warning", alert.Title)
	require.NotContains(t, alert.Message, "<script>")
	require.Contains(t, alert.Message, "Evacuate")
	require.True(t, alert.Active)
	require.Equal(t, "tch-1", alert.CreatedBy)
}

func TestAlertCreateRejectsEmptyAfterSanitize(t *testing.T) {
	db := setupTestDB(t)
	svc := newAlertService(t, db, nil)

	_, err := svc.Create(context.Background(), Actor{ID: "tch-1"}, dto.AlertCreateRequest{
		Title:     "x",
		Message:   `<script>boom()</script>`,
		AlertType: "other",
		Severity:  "low",
	})
	require.ErrorIs(t, err, ErrAlertEmptyMessage)
}

func TestAlertListActiveUsesCache(t *testing.T) {
	db := setupTestDB(t)
	mr, cache := newTestCache(t)
	svc := newAlertService(t, db, cache)
	ctx := context.Background()

	_, err := svc.Create(ctx, Actor{ID: "tch-1"}, dto.AlertCreateRequest{
		Title: "Drill", Message: "fire drill at noon", AlertType: "drill", Severity: "low",
	})
	require.NoError(t, err)

	alerts, err := svc.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	require.True(t, mr.Exists("alerts:active"))

	// Remove the row behind the cache's back; the cached copy still serves.
	require.NoError(t, db.Exec("DELETE FROM alerts").Error)
	alerts, err = svc.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
}

func TestAlertWritesInvalidateCache(t *testing.T) {
	db := setupTestDB(t)
	mr, cache := newTestCache(t)
	svc := newAlertService(t, db, cache)
	ctx := context.Background()

	alert, err := svc.Create(ctx, Actor{ID: "tch-1"}, dto.AlertCreateRequest{
		Title: "Drill", Message: "fire drill", AlertType: "drill", Severity: "low",
	})
	require.NoError(t, err)

	_, err = svc.ListActive(ctx)
	require.NoError(t, err)
	require.True(t, mr.Exists("alerts:active"))

	require.NoError(t, svc.SetActive(ctx, alert.ID, false))
	require.False(t, mr.Exists("alerts:active"))

	alerts, err := svc.ListActive(ctx)
	require.NoError(t, err)
	require.Empty(t, alerts)
}

func TestAlertSetActiveUnknownID(t *testing.T) {
	db := setupTestDB(t)
	svc := newAlertService(t, db, nil)

	err := svc.SetActive(context.Background(), "missing", false)
	require.ErrorIs(t, err, ErrAlertNotFound)
}

func TestAlertSubscribeReceivesBroadcast(t *testing.T) {
	db := setupTestDB(t)
	svc := newAlertService(t, db, nil)

	ch, cancel := svc.Subscribe()
	defer cancel()

	created, err := svc.Create(context.Background(), Actor{ID: "tch-1"}, dto.AlertCreateRequest{
		Title: "Tornado", Message: "take shelter", AlertType: "tornado", Severity: "critical",
	})
	require.NoError(t, err)

	select {
	case got := <-ch:
		require.Equal(t, created.ID, got.ID)
		require.Equal(t, "critical", got.Severity)
	case <-time.After(time.Second):
		t.Fatal("expected a broadcast alert")
	}
}

func TestAlertSubscribeCancelStopsDelivery(t *testing.T) {
	db := setupTestDB(t)
	svc := newAlertService(t, db, nil)

	ch, cancel := svc.Subscribe()
	cancel()

	_, ok := <-ch
	require.False(t, ok)
}
