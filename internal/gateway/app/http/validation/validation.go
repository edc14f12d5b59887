// Package validation проверяет входные DTO с помощью go-playground/validator.
//
// Текст ошибки поля задается тегом `message` на поле DTO. Тег `message_<rule>`
// переопределяет текст для конкретного правила.
package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Имена дополнительных правил.
const (
	TagUsername  = "username"
	TagNotBlank  = "notblank"
	TagPosInt    = "posint"
	TagPageLimit = "pagelimit"
	TagISO8601   = "iso8601"
	TagMaxBytes  = "maxbytes"
	TagNoNUL     = "nonul"
)

const (
	messageTag        = "message"
	messageRulePrefix = "message_"
	messageSeparator  = ", "
	maxPageLimit      = 100

	// maxPage - наибольший номер страницы, смещение которой помещается в int.
	maxPage = math.MaxInt/maxPageLimit + 1
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// iso8601Layouts перечисляет принимаемые формы даты и времени.
var iso8601Layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02",
}

var ErrInvalidDate = errors.New("invalid ISO 8601 date")

// Error объединяет сообщения о нарушенных правилах, по одному на поле.
type Error struct {
	Messages []string
}

func (e *Error) Error() string {
	return strings.Join(e.Messages, messageSeparator)
}

// Validator проверяет структуры по тегам `validate`.
type Validator struct {
	validate *validator.Validate
}

// New создает Validator с зарегистрированными дополнительными правилами.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	rules := map[string]validator.Func{
		TagUsername:  isUsername,
		TagNotBlank:  isNotBlank,
		TagPosInt:    isPositiveInt,
		TagPageLimit: isPageLimit,
		TagISO8601:   isISO8601,
		TagMaxBytes:  hasMaxBytes,
		TagNoNUL:     hasNoNUL,
	}
	for tag, fn := range rules {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("registering %q validation: %v", tag, err))
		}
	}

	return &Validator{validate: validate}
}

// Struct проверяет s и возвращает *Error со списком сообщений.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validating %T: %w", s, err)
	}

	structType := reflect.TypeOf(s)
	for structType.Kind() == reflect.Pointer {
		structType = structType.Elem()
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, messageFor(structType, fe))
	}
	return &Error{Messages: messages}
}

// ParseISO8601 разбирает дату в одном из форматов ISO 8601. Значения без зоны считаются UTC.
func ParseISO8601(value string) (time.Time, error) {
	for _, layout := range iso8601Layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}

func messageFor(structType reflect.Type, fe validator.FieldError) string {
	field, ok := structType.FieldByName(fe.StructField())
	if ok {
		if msg := field.Tag.Get(messageRulePrefix + fe.Tag()); msg != "" {
			return msg
		}
		if msg := field.Tag.Get(messageTag); msg != "" {
			return msg
		}
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}

func isUsername(fl validator.FieldLevel) bool {
	return usernamePattern.MatchString(fl.Field().String())
}

func isNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func isPositiveInt(fl validator.FieldLevel) bool {
	n, err := strconv.Atoi(fl.Field().String())
	return err == nil && n >= 1 && n <= maxPage
}

func isPageLimit(fl validator.FieldLevel) bool {
	n, err := strconv.Atoi(fl.Field().String())
	return err == nil && n >= 1 && n <= maxPageLimit
}

func isISO8601(fl validator.FieldLevel) bool {
	_, err := ParseISO8601(fl.Field().String())
	return err == nil
}

func hasMaxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}

// hasNoNUL отклоняет нулевой байт, который PostgreSQL не принимает в тексте.
func hasNoNUL(fl validator.FieldLevel) bool {
	return !strings.ContainsRune(fl.Field().String(), 0)
}
