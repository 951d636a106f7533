package usecase_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sinopos/storefront-api/internal/application/dto"
	"github.com/sinopos/storefront-api/internal/application/usecase"
	"github.com/sinopos/storefront-api/internal/domain/entity"
	"github.com/sinopos/storefront-api/pkg/logger"
)

// fakePageViewRepo records page views in memory. failCreate simulates a
// storage outage.
type fakePageViewRepo struct {
	views      []*entity.PageView
	failCreate error
	failSeen   error
}

func (r *fakePageViewRepo) Create(view *entity.PageView) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	cp := *view
	r.views = append(r.views, &cp)
	return nil
}

func (r *fakePageViewRepo) LastSeen(sessionID string) (*time.Time, error) {
	if r.failSeen != nil {
		return nil, r.failSeen
	}
	var last *time.Time
	for _, v := range r.views {
		if v.SessionID != sessionID {
			continue
		}
		if last == nil || v.CreatedAt.After(*last) {
			t := v.CreatedAt
			last = &t
		}
	}
	return last, nil
}

func quietLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func TestTrack_MintsMissingIdentifiers(t *testing.T) {
	repo := &fakePageViewRepo{}
	uc := usecase.NewTelemetryUseCase(repo, 30, quietLogger())

	out := uc.Track(dto.TrackRequest{Path: "/products/scanner-x1"})
	assert.NotEmpty(t, out.VisitorID)
	assert.NotEmpty(t, out.SessionID)

	require.Len(t, repo.views, 1)
	assert.Equal(t, "/products/scanner-x1", repo.views[0].Path)
	assert.Equal(t, out.VisitorID, repo.views[0].VisitorID)
}

func TestTrack_KeepsFreshSession(t *testing.T) {
	repo := &fakePageViewRepo{}
	uc := usecase.NewTelemetryUseCase(repo, 30, quietLogger())

	first := uc.Track(dto.TrackRequest{Path: "/"})
	second := uc.Track(dto.TrackRequest{
		VisitorID: first.VisitorID,
		SessionID: first.SessionID,
		Path:      "/products",
	})
	assert.Equal(t, first.SessionID, second.SessionID, "an active session is kept")
	assert.Equal(t, first.VisitorID, second.VisitorID)
}

func TestTrack_RotatesIdleSession(t *testing.T) {
	repo := &fakePageViewRepo{}
	uc := usecase.NewTelemetryUseCase(repo, 30, quietLogger())

	// A view recorded 45 minutes ago under the old session id.
	stale := time.Now().Add(-45 * time.Minute)
	repo.views = append(repo.views, &entity.PageView{
		SessionID: "SES-old",
		CreatedAt: stale,
	})

	out := uc.Track(dto.TrackRequest{VisitorID: "v1", SessionID: "SES-old", Path: "/"})
	assert.NotEqual(t, "SES-old", out.SessionID, "idle past the window rotates the session")
	assert.Equal(t, "v1", out.VisitorID, "the visitor id survives rotation")
}

func TestTrack_WriteFailureSwallowed(t *testing.T) {
	repo := &fakePageViewRepo{failCreate: fmt.Errorf("db down")}
	uc := usecase.NewTelemetryUseCase(repo, 30, quietLogger())

	out := uc.Track(dto.TrackRequest{Path: "/"})
	assert.NotEmpty(t, out.VisitorID, "telemetry failures never reach the visitor")
	assert.NotEmpty(t, out.SessionID)
}

func TestTrack_LookupFailureKeepsSession(t *testing.T) {
	repo := &fakePageViewRepo{failSeen: fmt.Errorf("db down")}
	uc := usecase.NewTelemetryUseCase(repo, 30, quietLogger())

	out := uc.Track(dto.TrackRequest{SessionID: "SES-keep", Path: "/"})
	assert.Equal(t, "SES-keep", out.SessionID)
}

func TestTrack_UnknownSessionIDKept(t *testing.T) {
	repo := &fakePageViewRepo{}
	uc := usecase.NewTelemetryUseCase(repo, 30, quietLogger())

	// The session id has no rows yet (first beacon raced the storage):
	// nothing proves it idle, so it is kept.
	out := uc.Track(dto.TrackRequest{SessionID: "SES-new", Path: "/"})
	assert.Equal(t, "SES-new", out.SessionID)
}
