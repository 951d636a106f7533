package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/sinopos/storefront-api/internal/application/dto"
	"github.com/sinopos/storefront-api/internal/domain/entity"
	"github.com/sinopos/storefront-api/internal/domain/repository"
	"github.com/sinopos/storefront-api/pkg/ident"
	"github.com/sinopos/storefront-api/pkg/logger"
)

// TelemetryUseCase records page views. Strictly best-effort: every failure
// is logged and swallowed, the visitor never sees an error and rendering is
// never blocked on a telemetry write.
type TelemetryUseCase struct {
	repo     repository.PageViewRepository
	sessions *ident.Generator
	idle     time.Duration
	log      *logger.Logger
	now      func() time.Time
}

// NewTelemetryUseCase builds the use case. idleMinutes is the inactivity
// window after which the visitor's session id rotates (30 on the storefront).
func NewTelemetryUseCase(repo repository.PageViewRepository, idleMinutes int, log *logger.Logger) *TelemetryUseCase {
	if idleMinutes < 1 {
		idleMinutes = 30
	}
	return &TelemetryUseCase{
		repo:     repo,
		sessions: ident.New("SES"),
		idle:     time.Duration(idleMinutes) * time.Minute,
		log:      log,
		now:      time.Now,
	}
}

// Track records one page view and returns the identifiers the client should
// persist. Missing ids are minted; a session idle past the window rotates.
func (uc *TelemetryUseCase) Track(in dto.TrackRequest) dto.TrackResponse {
	visitorID := in.VisitorID
	if visitorID == "" {
		visitorID = uuid.New().String()
	}
	sessionID := uc.resolveSession(in.SessionID)

	view := &entity.PageView{
		ID:        uuid.New().String(),
		VisitorID: visitorID,
		SessionID: sessionID,
		Path:      in.Path,
		Referrer:  in.Referrer,
		ProductID: in.ProductID,
		Locale:    in.Locale,
		CreatedAt: uc.now(),
	}
	if err := uc.repo.Create(view); err != nil {
		uc.log.Warn().Err(err).Str("path", in.Path).Msg("page view write dropped")
	}
	return dto.TrackResponse{VisitorID: visitorID, SessionID: sessionID}
}

// resolveSession keeps the session while it is fresh and rotates it after
// the idle window. A lookup failure counts as fresh — rotation is an
// analytics nicety, not worth a user-visible distinction.
func (uc *TelemetryUseCase) resolveSession(sessionID string) string {
	if sessionID == "" {
		return uc.sessions.Next()
	}
	last, err := uc.repo.LastSeen(sessionID)
	if err != nil {
		uc.log.Warn().Err(err).Msg("session lookup failed, keeping id")
		return sessionID
	}
	if last != nil && uc.now().Sub(*last) > uc.idle {
		return uc.sessions.Next()
	}
	return sessionID
}
