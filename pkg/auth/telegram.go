package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

// TelegramInitDataHeader carries the Mini App initData query string.
const TelegramInitDataHeader = "X-Telegram-Init-Data"

// DefaultInitDataMaxAge is used when no positive max age is configured.
const DefaultInitDataMaxAge = 24 * time.Hour

var (
	// ErrInvalidInitData is returned when Telegram initData is malformed, its
	// hash does not match the bot token, or it is too old.
	ErrInvalidInitData = errors.New("invalid telegram init data")
	// ErrInitDataExpired is wrapped together with ErrInvalidInitData when
	// auth_date is older than the allowed max age.
	ErrInitDataExpired = errors.New("telegram init data expired")
)

// TelegramUser is the "user" field of Mini App initData.
type TelegramUser struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// ValidateInitData checks the initData signature as described in
// https://core.telegram.org/bots/webapps#validating-data-received-via-the-mini-app,
// rejects initData whose auth_date is older than maxAge, and returns the user
// it carries, or nil when initData has no user field.
func ValidateInitData(initData, botToken string, maxAge time.Duration) (*TelegramUser, error) {
	return validateInitData(initData, botToken, maxAge, time.Now())
}

func validateInitData(initData, botToken string, maxAge time.Duration, now time.Time) (*TelegramUser, error) {
	values, err := url.ParseQuery(initData)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInitData, err)
	}
	received := values.Get("hash")
	if received == "" {
		return nil, fmt.Errorf("%w: missing hash", ErrInvalidInitData)
	}
	values.Del("hash")

	want := signInitData(values, botToken)
	if !hmac.Equal([]byte(want), []byte(received)) {
		return nil, fmt.Errorf("%w: hash mismatch", ErrInvalidInitData)
	}

	authDate, err := strconv.ParseInt(values.Get("auth_date"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: missing or malformed auth_date", ErrInvalidInitData)
	}
	if maxAge <= 0 {
		maxAge = DefaultInitDataMaxAge
	}
	if age := now.Sub(time.Unix(authDate, 0)); age > maxAge {
		return nil, fmt.Errorf("%w: %w: issued %s ago", ErrInvalidInitData, ErrInitDataExpired, age.Truncate(time.Second))
	}

	raw := values.Get("user")
	if raw == "" {
		return nil, nil
	}
	var user TelegramUser
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("%w: user: %v", ErrInvalidInitData, err)
	}
	return &user, nil
}

// signInitData returns the hex hash Telegram computes for values.
func signInitData(values url.Values, botToken string) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + "=" + values.Get(k)
	}

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(botToken))

	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(strings.Join(pairs, "\n")))
	return hex.EncodeToString(mac.Sum(nil))
}
