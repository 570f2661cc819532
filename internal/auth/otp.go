package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"playbox/internal/shared/config"
	"playbox/internal/shared/constants"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrOTPExpired         = errors.New("otp expired or not requested")
	ErrOTPInvalid         = errors.New("invalid otp")
	ErrOTPTooManyAttempts = errors.New("too many otp attempts")
	ErrOTPResendTooSoon   = errors.New("otp requested too recently")
)

// OTPStore holds pending login codes in Redis. Codes are bcrypt hashed
// so a Redis dump never exposes a usable code.
type OTPStore interface {
	Issue(ctx context.Context, phone string) (string, error)
	Verify(ctx context.Context, phone, code string) error
}

type otpStore struct {
	client *redis.Client
	cfg    *config.Config
}

func NewOTPStore(client *redis.Client, cfg *config.Config) OTPStore {
	return &otpStore{client: client, cfg: cfg}
}

// Issue generates a fresh code for the phone, stores its hash, and
// returns the plaintext code for delivery. A previous unexpired code is
// replaced. Issue fails while the resend cooldown is active.
func (s *otpStore) Issue(ctx context.Context, phone string) (string, error) {
	resendKey := constants.BuildOTPResendKey(phone)
	exists, err := s.client.Exists(ctx, resendKey).Result()
	if err != nil {
		return "", fmt.Errorf("otp resend check failed: %w", err)
	}
	if exists > 0 {
		return "", ErrOTPResendTooSoon
	}

	code, err := GenerateOTP(s.cfg.OTP.Length)
	if err != nil {
		return "", fmt.Errorf("otp generation failed: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("otp hashing failed: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, constants.BuildOTPCodeKey(phone), string(hash), s.cfg.Redis.OTPTTL)
	pipe.Del(ctx, constants.BuildOTPAttemptsKey(phone))
	pipe.Set(ctx, resendKey, "1", s.cfg.OTP.ResendAfter)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", fmt.Errorf("otp store failed: %w", err)
	}

	return code, nil
}

// Verify checks the code against the stored hash. The attempt counter
// is bumped before the comparison so brute forcing burns attempts even
// on parallel requests. The code is single use.
func (s *otpStore) Verify(ctx context.Context, phone, code string) error {
	hash, err := s.client.Get(ctx, constants.BuildOTPCodeKey(phone)).Result()
	if err != nil {
		if err == redis.Nil {
			return ErrOTPExpired
		}
		return fmt.Errorf("otp lookup failed: %w", err)
	}

	attemptsKey := constants.BuildOTPAttemptsKey(phone)
	attempts, err := s.client.Incr(ctx, attemptsKey).Result()
	if err != nil {
		return fmt.Errorf("otp attempt count failed: %w", err)
	}
	if attempts == 1 {
		s.client.Expire(ctx, attemptsKey, s.cfg.Redis.OTPTTL)
	}
	if attempts > int64(s.cfg.OTP.MaxAttempts) {
		return ErrOTPTooManyAttempts
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)); err != nil {
		return ErrOTPInvalid
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, constants.BuildOTPCodeKey(phone))
	pipe.Del(ctx, attemptsKey)
	pipe.Del(ctx, constants.BuildOTPResendKey(phone))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("otp cleanup failed: %w", err)
	}

	return nil
}

// GenerateOTP returns a random numeric code of the given length.
func GenerateOTP(length int) (string, error) {
	if length <= 0 {
		length = 6
	}

	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + n.Int64())
	}

	return string(digits), nil
}

// ResendAfterSeconds reports the cooldown the client must wait before
// requesting another code.
func ResendAfterSeconds(cfg *config.Config) int64 {
	return int64(cfg.OTP.ResendAfter / time.Second)
}
