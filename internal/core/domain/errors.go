package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDifficulty  = errors.New("difficulty not allowed for raid")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("Bad credentials")
	ErrAccountDisabled    = errors.New("아이디는 관리자 인증을 받은 후 사용하실 수 있습니다.")
	ErrPasswordTooLong    = errors.New("password exceeds 72 bytes")

	ErrPlaylistIDRequired = errors.New("playlistId is required")
	ErrMissingAPIKey      = errors.New("youtube.api.key is not set")
	ErrUpstream           = errors.New("upstream request failed")
)

// RuleViolationError is a domain rule rejection whose Message is safe to show
// to the caller as is. Kind is one of the sentinel errors above.
type RuleViolationError struct {
	Kind    error
	Message string
}

func (e *RuleViolationError) Error() string { return e.Message }

func (e *RuleViolationError) Unwrap() error { return e.Kind }

// UpstreamError reports a failed call to the playlist API. StatusCode is zero
// when the request never produced a response.
type UpstreamError struct {
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("YouTube API error: HTTP %d", e.StatusCode)
	}
	return "YouTube API request failed"
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func (e *UpstreamError) Is(target error) bool { return target == ErrUpstream }
