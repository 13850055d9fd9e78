package service

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"time"

	"github.com/illiaantonenko/attendance/internal/checkin/domain"
	"github.com/illiaantonenko/attendance/internal/checkin/nonce"
	"github.com/illiaantonenko/attendance/internal/checkin/store"
	"github.com/illiaantonenko/attendance/pkg/cryptox"
	"github.com/illiaantonenko/attendance/pkg/idx"
	"github.com/illiaantonenko/attendance/pkg/jwtx"
	"github.com/illiaantonenko/attendance/pkg/slogx"
)

// DefaultDisplayLead is how long before an event starts a teacher may
// begin displaying QR codes for it.
const DefaultDisplayLead = 2 * time.Hour

type GeneratedToken struct {
	Token      string
	Nonce      string
	CheckInURL string
	ExpiresAt  time.Time
	TTLSeconds int
}

type TokenInfo struct {
	EventID   int64
	Nonce     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type QrService struct {
	Store    store.Store
	Nonces   nonce.Store
	Signer   jwtx.Signer
	Verifier jwtx.Verifier

	TokenTTL    time.Duration // defaults to jwtx.DefaultTokenTTL
	DisplayLead time.Duration // defaults to DefaultDisplayLead
	BaseURL     string        // public base for check-in URLs

	Now func() time.Time // defaults to time.Now
}

func (s *QrService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *QrService) ttl() time.Duration {
	if s.TokenTTL > 0 {
		return s.TokenTTL
	}
	return jwtx.DefaultTokenTTL
}

func (s *QrService) displayLead() time.Duration {
	if s.DisplayLead > 0 {
		return s.DisplayLead
	}
	return DefaultDisplayLead
}

// Generate mints a one-time check-in token for an event. Only the
// event's teacher or an admin may issue tokens, and only inside the
// display window (event start minus the display lead, through event
// end). The ledger row is written before the token is returned so a
// redemption can never race ahead of its own audit record.
func (s *QrService) Generate(ctx context.Context, eventID, requesterID int64, requesterRole string) (GeneratedToken, error) {
	log := slogx.FromContext(ctx)

	// 1. Only teachers and admins issue tokens.
	if requesterRole != domain.RoleTeacher && requesterRole != domain.RoleAdmin {
		log.Warn("token issuance attempted with wrong role",
			slog.Int64("event_id", eventID),
			slog.String("role", requesterRole),
		)
		return GeneratedToken{}, ErrForbidden
	}

	// 2. Event must exist and allow QR check-in.
	event, err := s.Store.Events().GetEventByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return GeneratedToken{}, ErrEventNotFound
		}
		log.Error("failed to fetch event", slog.Any("error", err))
		return GeneratedToken{}, errors.Join(ErrStoreUnavailable, err)
	}
	if requesterRole == domain.RoleTeacher && event.TeacherID != requesterID {
		log.Warn("token issuance attempted by non-owning teacher",
			slog.Int64("event_id", eventID),
			slog.Int64("requester_id", requesterID),
		)
		return GeneratedToken{}, ErrForbidden
	}
	if !event.QREnabled {
		return GeneratedToken{}, ErrQRDisabled
	}

	// 3. Display window: start - lead .. end.
	now := s.now()
	if now.Before(event.StartsAt.Add(-s.displayLead())) {
		return GeneratedToken{}, ErrTooEarly
	}
	if !now.Before(event.EndsAt) {
		return GeneratedToken{}, ErrEnded
	}

	// 4. Mint nonce and sign the token.
	n, err := cryptox.GenerateNonce(cryptox.NonceSize128)
	if err != nil {
		log.Error("failed to generate nonce", slog.Any("error", err))
		return GeneratedToken{}, err
	}

	claims := jwtx.NewCheckInClaims(eventID, n, s.ttl(), now)
	token, err := s.Signer.Sign(claims)
	if err != nil {
		log.Error("failed to sign token", slog.Any("error", err))
		return GeneratedToken{}, err
	}
	expiresAt := claims.ExpiresAt.Time

	// 5. Ledger row first, then the live nonce.
	entry := domain.QrToken{
		ID:        idx.New().String(),
		EventID:   eventID,
		Nonce:     n,
		TokenHash: cryptox.FingerprintToken(token),
		ExpiresAt: expiresAt,
		CreatedAt: now,
	}
	if err := s.Store.QrTokens().CreateQrToken(ctx, entry); err != nil {
		log.Error("failed to record token issuance",
			slog.Int64("event_id", eventID),
			slog.Any("error", err),
		)
		return GeneratedToken{}, errors.Join(ErrStoreUnavailable, err)
	}
	if err := s.Nonces.Put(ctx, n, eventID, expiresAt); err != nil {
		log.Error("failed to register nonce", slog.Any("error", err))
		return GeneratedToken{}, errors.Join(ErrStoreUnavailable, err)
	}

	log.Debug("qr token issued",
		slog.Int64("event_id", eventID),
		slog.String("token_id", entry.ID),
		slog.Time("expires_at", expiresAt),
	)

	return GeneratedToken{
		Token:      token,
		Nonce:      n,
		CheckInURL: s.checkInURL(token),
		ExpiresAt:  expiresAt,
		TTLSeconds: int(s.ttl().Seconds()),
	}, nil
}

// Validate decodes a token and reports whether it is still redeemable,
// without consuming the nonce. Expired-vs-used is resolved through the
// ledger, the same way redemption does it.
func (s *QrService) Validate(ctx context.Context, rawToken string) (TokenInfo, error) {
	token := ExtractToken(rawToken)

	claims, err := s.Verifier.Verify(token)
	if err != nil {
		return TokenInfo{}, mapVerifyError(err)
	}

	info := TokenInfo{
		EventID:   claims.EventID,
		Nonce:     claims.Nonce,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}

	_, live, err := s.Nonces.Peek(ctx, claims.Nonce)
	if err != nil {
		return TokenInfo{}, errors.Join(ErrStoreUnavailable, err)
	}
	if live {
		return info, nil
	}

	entry, err := s.Store.QrTokens().GetQrTokenByNonce(ctx, claims.Nonce)
	if err == nil && entry.Used {
		return TokenInfo{}, ErrAlreadyUsed
	}
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return TokenInfo{}, errors.Join(ErrStoreUnavailable, err)
	}
	return TokenInfo{}, ErrExpiredOrInvalid
}

// ActiveTokens lists the unredeemed, unexpired ledger entries for an
// event, for the teacher dashboard.
func (s *QrService) ActiveTokens(ctx context.Context, eventID, requesterID int64, requesterRole string) ([]domain.QrToken, error) {
	if requesterRole != domain.RoleTeacher && requesterRole != domain.RoleAdmin {
		return nil, ErrForbidden
	}

	event, err := s.Store.Events().GetEventByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, errors.Join(ErrStoreUnavailable, err)
	}
	if requesterRole == domain.RoleTeacher && event.TeacherID != requesterID {
		return nil, ErrForbidden
	}

	tokens, err := s.Store.QrTokens().ListActiveQrTokens(ctx, eventID, s.now())
	if err != nil {
		return nil, errors.Join(ErrStoreUnavailable, err)
	}
	return tokens, nil
}

func (s *QrService) checkInURL(token string) string {
	return s.BaseURL + "/check-in?token=" + url.QueryEscape(token)
}

// ExtractToken accepts either a bare token or a full check-in URL as
// scanned from a QR code, and returns the bare token.
func ExtractToken(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		return raw
	}
	if token := u.Query().Get("token"); token != "" {
		return token
	}
	return raw
}

func mapVerifyError(err error) error {
	switch {
	case errors.Is(err, jwtx.ErrExpired):
		return ErrExpiredToken
	default:
		return ErrInvalidToken
	}
}
