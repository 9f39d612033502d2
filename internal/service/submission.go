package service

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/istvanv2/giwedding/internal/domain"
	"github.com/istvanv2/giwedding/internal/service/ports"
)

var (
	emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegexp = regexp.MustCompile(`^\+?[\d\s\-().]{6,20}$`)
)

// SubmissionService validates an RSVP form and writes the derived records to
// two independent destinations: the Postgres store and the Google sheet.
// Either one accepting the write counts as success; the double write is a
// backup strategy, not a transaction.
type SubmissionService struct {
	store    ports.RecordStore // nil when the database is not configured
	sheet    ports.SheetAppender
	verifier ports.CaptchaVerifier // nil when recaptcha is not configured
	notifier ports.RSVPNotifier
	logger   logger.Logger
}

func NewSubmissionService(
	store ports.RecordStore,
	sheet ports.SheetAppender,
	verifier ports.CaptchaVerifier,
	notifier ports.RSVPNotifier,
	logger logger.Logger,
) *SubmissionService {
	return &SubmissionService{
		store:    store,
		sheet:    sheet,
		verifier: verifier,
		notifier: notifier,
		logger:   logger,
	}
}

// Submit runs the full intake pipeline. A nil return means the caller should
// report success, including the honeypot path where nothing was persisted.
func (s *SubmissionService) Submit(ctx context.Context, sub domain.Submission) error {
	// Bots fill hidden fields. Report success without persisting anything so
	// the bot learns nothing.
	if strings.TrimSpace(sub.Honeypot) != "" {
		s.logger.Warn("honeypot tripped, submission dropped",
			logger.String("group", strings.TrimSpace(sub.MainName)),
		)
		return nil
	}

	s.checkCaptcha(ctx, sub.RecaptchaToken)

	if err := validateSubmission(sub); err != nil {
		return err
	}

	records := buildRecords(sub, time.Now().UTC())

	dbSaved := s.writePrimary(ctx, records)
	sheetSaved := s.writeSecondary(ctx, records)

	if !dbSaved && !sheetSaved {
		return domain.ErrServiceUnavailable
	}

	s.logger.Info("rsvp accepted",
		logger.String("group", records[0].GroupName),
		logger.Int("records", len(records)),
		logger.Any("db_saved", dbSaved),
		logger.Any("sheet_saved", sheetSaved),
	)

	go s.notifier.NotifyRSVPReceived(context.WithoutCancel(ctx), records)

	return nil
}

// checkCaptcha is advisory: a low score or an unreachable backend is logged
// and the submission proceeds. Losing a genuine RSVP costs more than storing
// the occasional bot row.
func (s *SubmissionService) checkCaptcha(ctx context.Context, token string) {
	if s.verifier == nil || token == "" {
		return
	}

	score, passed, err := s.verifier.Verify(ctx, token)
	if err != nil {
		s.logger.Warn("captcha check failed, proceeding anyway",
			logger.String("error", err.Error()),
		)
		return
	}
	if !passed {
		s.logger.Warn("low captcha score, saving anyway",
			logger.Any("score", score),
		)
	}
}

// validateSubmission applies the intake rules in order; the first failing
// rule wins.
func validateSubmission(sub domain.Submission) error {
	if strings.TrimSpace(sub.MainName) == "" {
		return domain.ErrNameRequired
	}

	email := strings.TrimSpace(sub.Email)
	phone := strings.TrimSpace(sub.Phone)
	if email == "" && phone == "" {
		return domain.ErrMissingContact
	}
	if email != "" && !emailRegexp.MatchString(email) {
		return domain.ErrInvalidEmail
	}
	if phone != "" && !phoneRegexp.MatchString(phone) {
		return domain.ErrInvalidPhone
	}

	for _, g := range sub.Guests {
		if strings.TrimSpace(g.Name) == "" {
			return domain.ErrGuestNameRequired
		}
	}

	return nil
}

// buildRecords derives one record per person, main respondent first, all
// sharing the submission timestamp and the group label. Contact fields and
// accommodation live only on the main record; menu is blanked for anyone not
// attending.
func buildRecords(sub domain.Submission, submittedAt time.Time) []domain.Record {
	group := strings.TrimSpace(sub.MainName)

	mainMenu := ""
	if sub.MainAttending {
		mainMenu = strings.TrimSpace(sub.MainMenu)
	}

	records := []domain.Record{{
		SubmittedAt:          submittedAt,
		GroupName:            group,
		PersonName:           group,
		Attending:            sub.MainAttending,
		Menu:                 mainMenu,
		Accommodation:        sub.NeedAccommodation,
		AccommodationDetails: strings.TrimSpace(sub.AccommodationDetails),
		Email:                strings.TrimSpace(sub.Email),
		Phone:                strings.TrimSpace(sub.Phone),
		Message:              strings.TrimSpace(sub.Message),
	}}

	for _, g := range sub.Guests {
		name := strings.TrimSpace(g.Name)
		if name == "" {
			// Validation already rejected these; filtered again before
			// persistence in case the rules drift apart.
			continue
		}
		menu := ""
		if g.Attending {
			menu = strings.TrimSpace(g.Menu)
		}
		records = append(records, domain.Record{
			SubmittedAt: submittedAt,
			GroupName:   group,
			PersonName:  name,
			Attending:   g.Attending,
			Menu:        menu,
		})
	}

	return records
}

func (s *SubmissionService) writePrimary(ctx context.Context, records []domain.Record) bool {
	if s.store == nil {
		s.logger.Error("database not configured, relying on sheet fallback")
		return false
	}

	if err := s.store.InsertRecords(ctx, records); err != nil {
		s.logger.Error("database write failed, attempting sheet fallback",
			logger.String("group", records[0].GroupName),
			logger.String("error", err.Error()),
		)
		return false
	}

	return true
}

func (s *SubmissionService) writeSecondary(ctx context.Context, records []domain.Record) bool {
	if err := s.sheet.AppendRecords(ctx, records); err != nil {
		s.logger.Error("google sheets write failed",
			logger.String("group", records[0].GroupName),
			logger.String("error", err.Error()),
		)
		return false
	}

	return true
}
