package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email string `json:"email" validate:"required,emailshape"`
	Phone string `json:"phone" validate:"required,phone"`
	Born  string `json:"born" validate:"omitempty,date,notfuture"`
	Note  string `json:"note,omitempty" validate:"max=5"`
}

func fixedClock(s string) Clock {
	t, _ := time.Parse(time.RFC3339, s)
	return func() time.Time { return t }
}

func TestValidator_Struct(t *testing.T) {
	t.Parallel()

	v := New(fixedClock("2026-10-19T12:00:00Z"), time.UTC)

	tests := []struct {
		name  string
		input sample
		want  []Violation
	}{
		{
			name:  "valid",
			input: sample{Email: "a@b.co", Phone: "1234567890", Born: "2026-10-19", Note: "hi"},
			want:  nil,
		},
		{
			name:  "every field fails, reported in field order with json names",
			input: sample{Email: "user@", Phone: "123-456-7890", Born: "2026-10-20", Note: "toolong"},
			want: []Violation{
				{Field: "email", Tag: "emailshape"},
				{Field: "phone", Tag: "phone"},
				{Field: "born", Tag: "notfuture"},
				{Field: "note", Tag: "max", Param: "5"},
			},
		},
		{
			name:  "required fires before format",
			input: sample{Phone: "1234567890"},
			want:  []Violation{{Field: "email", Tag: "required"}},
		},
		{
			name:  "unparseable date",
			input: sample{Email: "a@b.co", Phone: "1234567890", Born: "yesterday"},
			want:  []Violation{{Field: "born", Tag: "date"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.Struct(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

type lengths struct {
	Name string `json:"name" validate:"minutf16=6"`
	Bio  string `json:"bio" validate:"maxutf16=4"`
}

func TestUTF16LengthTags(t *testing.T) {
	t.Parallel()

	v := New(nil, nil)
	tests := []struct {
		name  string
		input lengths
		want  []Violation
	}{
		{"ascii within bounds", lengths{Name: "sixsix", Bio: "abcd"}, nil},
		{"astral pairs reach the minimum", lengths{Name: "😀😀😀", Bio: "😀😀"}, nil},
		{"runes alone are not enough", lengths{Name: "ééééé", Bio: ""}, []Violation{{Field: "name", Tag: "minutf16", Param: "6"}}},
		{"astral pairs exceed the maximum", lengths{Name: "sixsix", Bio: "😀😀a"}, []Violation{{Field: "bio", Tag: "maxutf16", Param: "4"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.Struct(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUTF16Len(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, UTF16Len(""))
	assert.Equal(t, 5, UTF16Len("hello"))
	assert.Equal(t, 1, UTF16Len("é"))
	assert.Equal(t, 2, UTF16Len("😀"))
}

func TestEmailShape(t *testing.T) {
	t.Parallel()

	v := New(nil, nil)
	tests := []struct {
		email string
		ok    bool
	}{
		{"valid@email.com", true},
		{"first.last@sub.domain.org", true},
		{"invalid-email", false},
		{"invalidemail.com", false},
		{"user@", false},
		{"user@localhost", false},
		{"us er@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			got, err := v.Struct(sample{Email: tt.email, Phone: "1234567890"})
			require.NoError(t, err)
			assert.Equal(t, tt.ok, got == nil)
		})
	}
}

func TestPhone(t *testing.T) {
	t.Parallel()

	v := New(nil, nil)
	tests := []struct {
		phone string
		ok    bool
	}{
		{"1234567890", true},
		{"123456789012345", true},
		{"123456789", false},
		{"1234567890123456", false},
		{"12345abcde", false},
		{"+1234567890", false},
		{"１２３４５６７８９０", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			got, err := v.Struct(sample{Email: "a@b.co", Phone: tt.phone})
			require.NoError(t, err)
			assert.Equal(t, tt.ok, got == nil)
		})
	}
}

func TestNotFuture_UsesLocationForToday(t *testing.T) {
	t.Parallel()

	// 23:30 UTC on the 19th is already the 20th in Tokyo.
	clock := fixedClock("2026-10-19T23:30:00Z")
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	utc := New(clock, time.UTC)
	got, err := utc.Struct(sample{Email: "a@b.co", Phone: "1234567890", Born: "2026-10-20"})
	require.NoError(t, err)
	assert.Equal(t, []Violation{{Field: "born", Tag: "notfuture"}}, got)

	jst := New(clock, tokyo)
	got, err = jst.Struct(sample{Email: "a@b.co", Phone: "1234567890", Born: "2026-10-20"})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	d, err := ParseDate("1990-01-01", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("1990-01-01T23:00:00-05:00", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("01/01/1990", time.UTC)
	assert.Error(t, err)
}
