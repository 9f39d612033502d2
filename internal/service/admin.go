package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/istvanv2/giwedding/internal/domain"
	"github.com/istvanv2/giwedding/internal/service/ports"
)

const tokenTTL = 24 * time.Hour

// AdminService is the token-gated surface behind the responses dashboard.
// The token is an unsigned base64 JSON blob, matching what the dashboard has
// always stored: a convenience gate for a single trusted operator, not a
// security boundary. The trade-off is recorded in DESIGN.md.
type AdminService struct {
	store    ports.RecordStore // nil when the database is not configured
	password string
	logger   logger.Logger
}

func NewAdminService(store ports.RecordStore, password string, logger logger.Logger) *AdminService {
	return &AdminService{
		store:    store,
		password: password,
		logger:   logger,
	}
}

type dashboardToken struct {
	Authenticated bool  `json:"authenticated"`
	TS            int64 `json:"ts"`
}

// Login exchanges the shared dashboard password for a token valid for 24 h.
func (s *AdminService) Login(password string) (string, error) {
	if s.password == "" || password != s.password {
		return "", domain.ErrInvalidPassword
	}

	raw, err := json.Marshal(dashboardToken{
		Authenticated: true,
		TS:            time.Now().UnixMilli(),
	})
	if err != nil {
		return "", fmt.Errorf("marshal token: %w", err)
	}

	return base64.StdEncoding.EncodeToString(raw), nil
}

// VerifyToken accepts a token only when it decodes, carries the authenticated
// flag and was issued within the last 24 hours. All malformed tokens,
// the empty one included, are rejected uniformly.
func (s *AdminService) VerifyToken(token string) error {
	if token == "" {
		return domain.ErrUnauthorized
	}

	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return domain.ErrUnauthorized
	}

	var t dashboardToken
	if err := json.Unmarshal(raw, &t); err != nil || !t.Authenticated {
		return domain.ErrUnauthorized
	}

	if time.Since(time.UnixMilli(t.TS)) > tokenTTL {
		return domain.ErrSessionExpired
	}

	return nil
}

func (s *AdminService) ListRecords(ctx context.Context, token string) ([]*domain.Record, error) {
	if err := s.VerifyToken(token); err != nil {
		return nil, err
	}
	if s.store == nil {
		return nil, domain.ErrStoreNotConfigured
	}

	return s.store.List(ctx)
}

// UpdateRecord overwrites all mutable fields of one record in place. The id
// never changes.
func (s *AdminService) UpdateRecord(ctx context.Context, token string, rec *domain.Record) (*domain.Record, error) {
	if err := s.VerifyToken(token); err != nil {
		return nil, err
	}

	if rec.ID <= 0 {
		return nil, domain.ErrInvalidRecordID
	}

	rec.GroupName = strings.TrimSpace(rec.GroupName)
	rec.PersonName = strings.TrimSpace(rec.PersonName)
	if rec.GroupName == "" || rec.PersonName == "" {
		return nil, fmt.Errorf("%w: group_name and person_name are required", domain.ErrValidation)
	}
	rec.Menu = strings.TrimSpace(rec.Menu)
	rec.AccommodationDetails = strings.TrimSpace(rec.AccommodationDetails)
	rec.Email = strings.TrimSpace(rec.Email)
	rec.Phone = strings.TrimSpace(rec.Phone)
	rec.Message = strings.TrimSpace(rec.Message)

	if s.store == nil {
		return nil, domain.ErrStoreNotConfigured
	}

	if err := s.store.Update(ctx, rec); err != nil {
		return nil, err
	}

	s.logger.Info("rsvp record updated", logger.Int64("id", rec.ID))

	return rec, nil
}

// DeleteRecords removes the records with the given ids and returns how many
// rows were actually deleted.
func (s *AdminService) DeleteRecords(ctx context.Context, token string, ids []int64) (int64, error) {
	if err := s.VerifyToken(token); err != nil {
		return 0, err
	}

	if len(ids) == 0 {
		return 0, domain.ErrNoIDs
	}
	for _, id := range ids {
		if id <= 0 {
			return 0, domain.ErrInvalidRecordID
		}
	}

	if s.store == nil {
		return 0, domain.ErrStoreNotConfigured
	}

	deleted, err := s.store.Delete(ctx, ids)
	if err != nil {
		return 0, err
	}

	s.logger.Info("rsvp records deleted",
		logger.Int("requested", len(ids)),
		logger.Int64("deleted", deleted),
	)

	return deleted, nil
}
