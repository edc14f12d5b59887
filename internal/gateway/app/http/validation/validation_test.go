package validation_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notely/internal/gateway/app/http/validation"
)

type signup struct {
	Name     string  `validate:"min=3,max=30,username" message:"bad length" message_username:"bad charset"`
	Secret   string  `validate:"min=6,maxbytes=8" message:"too short" message_maxbytes:"too long"`
	Page     *string `validate:"omitnil,posint" message:"bad page"`
	Limit    *string `validate:"omitnil,pagelimit" message:"bad limit"`
	Since    *string `validate:"omitnil,iso8601" message:"bad date"`
	Term     *string `validate:"omitnil,notblank" message:"blank term"`
	Body     string  `validate:"nonul" message:"nul byte"`
	Untagged string  `validate:"required"`
}

func ptr(s string) *string { return &s }

func valid() signup {
	return signup{Name: "alice_1", Secret: "secret1", Untagged: "x"}
}

func TestStructValid(t *testing.T) {
	v := validation.New()

	s := valid()
	s.Page = ptr("2")
	s.Limit = ptr("100")
	s.Since = ptr("2024-02-29T12:30:00+03:00")
	s.Term = ptr("shop")
	s.Body = "milk, eggs"

	assert.NoError(t, v.Struct(s))
	assert.NoError(t, v.Struct(&s))
}

func TestStructMessages(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name   string
		mutate func(*signup)
		want   []string
	}{
		{name: "short name", mutate: func(s *signup) { s.Name = "al" }, want: []string{"bad length"}},
		{name: "name charset", mutate: func(s *signup) { s.Name = "al ice" }, want: []string{"bad charset"}},
		{name: "secret over byte limit", mutate: func(s *signup) { s.Secret = "пароль1" }, want: []string{"too long"}},
		{name: "page zero", mutate: func(s *signup) { s.Page = ptr("0") }, want: []string{"bad page"}},
		{name: "page empty", mutate: func(s *signup) { s.Page = ptr("") }, want: []string{"bad page"}},
		{name: "page offset overflows", mutate: func(s *signup) { s.Page = ptr("9223372036854775807") }, want: []string{"bad page"}},
		{name: "nul byte", mutate: func(s *signup) { s.Body = "milk\x00eggs" }, want: []string{"nul byte"}},
		{name: "limit too big", mutate: func(s *signup) { s.Limit = ptr("101") }, want: []string{"bad limit"}},
		{name: "bad date", mutate: func(s *signup) { s.Since = ptr("01/02/2024") }, want: []string{"bad date"}},
		{name: "blank term", mutate: func(s *signup) { s.Term = ptr(" \t") }, want: []string{"blank term"}},
		{name: "fallback message", mutate: func(s *signup) { s.Untagged = "" }, want: []string{"Untagged is invalid"}},
		{
			name:   "one message per field in field order",
			mutate: func(s *signup) { s.Name = "!"; s.Secret = ""; s.Limit = ptr("x") },
			want:   []string{"bad length", "too short", "bad limit"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(&s)

			err := v.Struct(s)

			var verr *validation.Error
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, tt.want, verr.Messages)
			assert.Equal(t, strings.Join(tt.want, ", "), verr.Error())
		})
	}
}

func TestParseISO8601(t *testing.T) {
	tests := []struct {
		value string
		want  time.Time
	}{
		{value: "2024-01-15", want: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{value: "2024-01-15T08:30", want: time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC)},
		{value: "2024-01-15T08:30:05", want: time.Date(2024, 1, 15, 8, 30, 5, 0, time.UTC)},
		{value: "2024-01-15T08:30:05.250Z", want: time.Date(2024, 1, 15, 8, 30, 5, 250_000_000, time.UTC)},
		{value: "2024-01-15T10:30:05+02:00", want: time.Date(2024, 1, 15, 8, 30, 5, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := validation.ParseISO8601(tt.value)

			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}

	for _, bad := range []string{"", "tomorrow", "2024-02-30", "15-01-2024"} {
		_, err := validation.ParseISO8601(bad)
		assert.ErrorIs(t, err, validation.ErrInvalidDate, bad)
	}
}
