package handler

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/ljhwogur/raid-hub/internal/core/domain"
)

const msgValidationFallback = "검증 오류가 발생했습니다."

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// fieldMessages maps "<json field>.<tag>" to the message shown to the caller.
var fieldMessages = map[string]string{
	"title.notblank":        "제목은 필수입니다",
	"title.max":             "제목은 100자 이하여야 합니다",
	"youtubeUrl.notblank":   "YouTube URL은 필수입니다",
	"youtubeUrl.max":        "YouTube URL은 255자 이하여야 합니다",
	"uploaderName.notblank": "업로더 이름은 필수입니다",
	"uploaderName.max":      "업로더 이름은 50자 이하여야 합니다",
	"raidName.notblank":     "레이드 이름은 필수입니다",
	"raidName.max":          "레이드 이름은 20자 이하여야 합니다",
	"difficulty.max":        "난이도는 20자 이하여야 합니다",
	"gate.max":              "관문은 20자 이하여야 합니다",

	"username.notblank":  "username은 필수입니다",
	"username.min":       "username은 7자 이상 20자 이하여야 합니다",
	"username.max":       "username은 7자 이상 20자 이하여야 합니다",
	"username.username":  "username은 알파벳, 숫자, _, -만 사용 가능합니다",
	"password.notblank":  "password는 필수입니다",
	"password.min":       "password는 8자 이상 30자 이하여야 합니다",
	"password.max":       "password는 8자 이상 30자 이하여야 합니다",
	"password.bcryptlen": "password는 72바이트 이하여야 합니다",
}

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})

	_ = v.RegisterValidation("bcryptlen", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= domain.MaxPasswordBytes
	})

	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface. Only the first failing
// field is reported, as a 400.
func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return echo.NewHTTPError(http.StatusBadRequest, fieldError(ve[0])).SetInternal(err)
	}
	return echo.NewHTTPError(http.StatusBadRequest, msgValidationFallback).SetInternal(err)
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	switch fe.Tag() {
	case "notblank", "required":
		return fe.Field() + " is required"
	case "min", "max":
		return fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", fe.Field(), fe.Tag())
	}
}
