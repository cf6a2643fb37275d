package service

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strings"
	"time"

	"storefront-backend/internal/database/models"
	apperrors "storefront-backend/internal/errors"
	"storefront-backend/internal/kvstore"
	"storefront-backend/internal/logger"
	"storefront-backend/internal/mailer"
)

const (
	otpKeyPrefix     = "otp:"
	otpCodeKeyPrefix = "otp_code:"
	otpLastKeyPrefix = "otp:last:"

	// A record at this attempt count is dead: the next verification
	// attempt deletes it regardless of the submitted code.
	maxOTPAttempts = 5
)

// otpRecord is the JSON payload stored under otp:<email>.
type otpRecord struct {
	Code      string    `json:"code"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	Attempts  int       `json:"attempts"`
}

// OTPStatus is the read-only projection returned by Status.
type OTPStatus struct {
	Exists     bool       `json:"exists"`
	Email      string     `json:"email,omitempty"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
	Attempts   int        `json:"attempts,omitempty"`
	TTLSeconds int        `json:"ttl_seconds,omitempty"`
}

// OTPService issues and verifies one-time verification codes. Codes live
// in the key-value store under three keys: the record itself keyed by
// email, a reverse mapping keyed by code, and a resend rate-limit marker.
type OTPService struct {
	kv             kvstore.Store
	mail           mailer.Enqueuer
	ttl            time.Duration
	resendInterval time.Duration
	log            *logger.Logger
}

// Ensure OTPService implements OTPServiceInterface
var _ OTPServiceInterface = (*OTPService)(nil)

// NewOTPService creates a new OTP service
func NewOTPService(kv kvstore.Store, mail mailer.Enqueuer, ttl, resendInterval time.Duration, log *logger.Logger) *OTPService {
	return &OTPService{
		kv:             kv,
		mail:           mail,
		ttl:            ttl,
		resendInterval: resendInterval,
		log:            log,
	}
}

func otpKey(email string) string      { return otpKeyPrefix + email }
func otpCodeKey(code string) string   { return otpCodeKeyPrefix + code }
func otpResendKey(email string) string { return otpLastKeyPrefix + email }

// Issue generates a fresh code for the user, stores it and enqueues the
// verification email. A resend inside the configured interval fails with
// a RateLimitedError carrying the remaining wait. Issuing replaces any
// previous code for the same email.
func (s *OTPService) Issue(ctx context.Context, user *models.User) (string, error) {
	email := strings.ToLower(user.Email)

	if s.resendInterval > 0 {
		limited, err := s.kv.Exists(ctx, otpResendKey(email))
		if err != nil {
			return "", fmt.Errorf("check resend marker: %w", err)
		}
		if limited {
			return "", apperrors.NewRateLimitedError(s.resendWait(ctx, email))
		}
	}

	code, err := generateOTPCode()
	if err != nil {
		return "", fmt.Errorf("generate otp code: %w", err)
	}

	record := otpRecord{
		Code:      code,
		UserID:    user.ID.String(),
		Email:     email,
		CreatedAt: time.Now().UTC(),
		Attempts:  0,
	}
	payload, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("marshal otp record: %w", err)
	}

	if err := s.kv.Set(ctx, otpKey(email), string(payload), s.ttl); err != nil {
		return "", fmt.Errorf("store otp record: %w", err)
	}
	if err := s.kv.Set(ctx, otpCodeKey(code), email, s.ttl); err != nil {
		return "", fmt.Errorf("store otp reverse mapping: %w", err)
	}
	if s.resendInterval > 0 {
		if err := s.kv.Set(ctx, otpResendKey(email), "1", s.resendInterval); err != nil {
			return "", fmt.Errorf("store resend marker: %w", err)
		}
	}

	// Delivery is fire-and-forget: the stored code stays valid even when
	// the email cannot be enqueued.
	s.sendCodeEmail(ctx, user, email, code)

	return code, nil
}

// resendWait computes how long the caller must wait before the next issue.
// The marker's remaining TTL is authoritative; when the lookup is
// inconclusive the full configured interval is reported.
func (s *OTPService) resendWait(ctx context.Context, email string) int {
	ttl, err := s.kv.TTL(ctx, otpResendKey(email))
	if err != nil || ttl <= 0 {
		return int(s.resendInterval.Seconds())
	}
	return int(math.Ceil(ttl.Seconds()))
}

// Verify checks the submitted code for the email. It reports false for
// absent, expired, corrupt or exhausted records and never distinguishes
// those cases to the caller. The fifth wrong attempt kills the record, so
// a later correct code also fails.
func (s *OTPService) Verify(ctx context.Context, email, code string) (bool, error) {
	email = strings.ToLower(email)
	record, ok, err := s.loadRecord(ctx, email)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	return s.check(ctx, email, record, code)
}

// VerifyByCode resolves the email through the reverse code mapping and
// then verifies. It returns the resolved email on success so callers can
// mark the right account verified.
func (s *OTPService) VerifyByCode(ctx context.Context, code string) (bool, string, error) {
	email, found, err := s.kv.Get(ctx, otpCodeKey(code))
	if err != nil {
		return false, "", fmt.Errorf("resolve otp code: %w", err)
	}
	if !found {
		return false, "", nil
	}

	record, ok, err := s.loadRecord(ctx, email)
	if err != nil {
		return false, "", err
	}
	if !ok {
		// Dangling reverse mapping; the record expired or was consumed.
		_ = s.kv.Delete(ctx, otpCodeKey(code))
		return false, "", nil
	}

	valid, err := s.check(ctx, email, record, code)
	if err != nil {
		return false, "", err
	}
	if !valid {
		return false, "", nil
	}
	return true, email, nil
}

// Status reports the current OTP state for an email without consuming an
// attempt. Corrupt records are evicted and reported absent.
func (s *OTPService) Status(ctx context.Context, email string) (*OTPStatus, error) {
	email = strings.ToLower(email)
	record, ok, err := s.loadRecord(ctx, email)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &OTPStatus{Exists: false}, nil
	}

	ttl, err := s.kv.TTL(ctx, otpKey(email))
	if err != nil {
		return nil, fmt.Errorf("read otp ttl: %w", err)
	}
	ttlSeconds := 0
	if ttl > 0 {
		ttlSeconds = int(math.Ceil(ttl.Seconds()))
	}
	created := record.CreatedAt
	return &OTPStatus{
		Exists:     true,
		Email:      record.Email,
		CreatedAt:  &created,
		Attempts:   record.Attempts,
		TTLSeconds: ttlSeconds,
	}, nil
}

// check applies the attempt/lockout state machine to a loaded record.
func (s *OTPService) check(ctx context.Context, email string, record *otpRecord, code string) (bool, error) {
	if record.Attempts >= maxOTPAttempts {
		s.deleteRecord(ctx, email, record.Code)
		return false, nil
	}

	if record.Code != code {
		record.Attempts++
		if err := s.restoreWithRemainingTTL(ctx, email, record); err != nil {
			return false, err
		}
		return false, nil
	}

	s.deleteRecord(ctx, email, record.Code)
	return true, nil
}

// restoreWithRemainingTTL writes the updated attempt count back without
// extending the code's validity window.
func (s *OTPService) restoreWithRemainingTTL(ctx context.Context, email string, record *otpRecord) error {
	ttl, err := s.kv.TTL(ctx, otpKey(email))
	if err != nil {
		return fmt.Errorf("read otp ttl: %w", err)
	}
	if ttl <= 0 {
		// Expired between load and update; nothing to restore.
		return nil
	}
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal otp record: %w", err)
	}
	if err := s.kv.Set(ctx, otpKey(email), string(payload), ttl); err != nil {
		return fmt.Errorf("update otp record: %w", err)
	}
	return nil
}

// loadRecord reads and decodes the record for an email. Corrupt payloads
// are deleted and reported absent.
func (s *OTPService) loadRecord(ctx context.Context, email string) (*otpRecord, bool, error) {
	raw, found, err := s.kv.Get(ctx, otpKey(email))
	if err != nil {
		return nil, false, fmt.Errorf("read otp record: %w", err)
	}
	if !found {
		return nil, false, nil
	}

	var record otpRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		s.log.WithError(err).WithUser(email).Warn("deleting corrupt otp record")
		_ = s.kv.Delete(ctx, otpKey(email))
		return nil, false, nil
	}
	return &record, true, nil
}

func (s *OTPService) deleteRecord(ctx context.Context, email, code string) {
	_ = s.kv.Delete(ctx, otpKey(email))
	_ = s.kv.Delete(ctx, otpCodeKey(code))
}

func (s *OTPService) sendCodeEmail(ctx context.Context, user *models.User, email, code string) {
	body, err := mailer.Render("verification_code.txt", map[string]string{
		"FirstName": user.FirstName,
		"Code":      code,
	})
	if err != nil {
		s.log.WithError(err).WithUser(email).Error("failed to render verification email")
		return
	}
	msg := mailer.Message{To: email, Subject: "Your verification code", Body: body}
	if err := s.mail.Enqueue(ctx, msg); err != nil {
		s.log.WithError(err).WithUser(email).Error("failed to enqueue verification email")
	}
}

// generateOTPCode draws a uniform 6-digit zero-padded code.
func generateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
