package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		err  *Error
		want string
	}{
		{New(ErrCodeInvalidBudget, "unknown budget %q", "luxury"), `INVALID_BUDGET: unknown budget "luxury"`},
		{OutOfRange("room_count", 12, 1, 10, ""), "CONFIG_OUT_OF_RANGE: room_count: 12 outside 1..10"},
		{OutOfRange("total_size", 5.5, 10.0, 500.0, "m²"), "CONFIG_OUT_OF_RANGE: total_size: 5.5 outside 10..500 m²"},
		{Wrap(ErrCodeStorage, errors.New("disk full"), "save plan %s", "plan_1"), "STORAGE_ERROR: save plan plan_1: disk full"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.Error())
	}
}

func TestWrapUnwraps(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(ErrCodeStorage, cause, "save plan")
	assert.Same(t, cause, errors.Unwrap(err))
	assert.ErrorIs(t, err, cause)
}

func TestWithFieldCopies(t *testing.T) {
	base := New(ErrCodeInvalidStyle, "bad")
	named := base.WithField("style")
	assert.Equal(t, "style", named.Field)
	assert.Empty(t, base.Field, "WithField must not modify the receiver")
}

func TestIs(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"matching", New(ErrCodeInvalidBudget, "x"), ErrCodeInvalidBudget, true},
		{"other code", New(ErrCodeInvalidBudget, "x"), ErrCodeStorage, false},
		{"outermost wins", Wrap(ErrCodeStorage, New(ErrCodeInvalidInput, "inner"), "outer"), ErrCodeStorage, true},
		{"joined", errors.Join(errors.New("context"), New(ErrCodePlanNotFound, "gone")), ErrCodePlanNotFound, true},
		{"plain", errors.New("plain"), ErrCodeInvalidInput, false},
		{"nil", nil, ErrCodeInvalidInput, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Is(tt.err, tt.code))
		})
	}
}

func TestAccessors(t *testing.T) {
	err := OutOfRange("wall_height", 9.0, 2.0, 5.0, "m")
	assert.Equal(t, ErrCodeConfigOutOfRange, GetCode(err))
	assert.Equal(t, "wall_height", FieldOf(err))
	assert.Equal(t, "9 outside 2..5 m", UserMessage(err))

	plain := errors.New("plain error")
	assert.Equal(t, Code(""), GetCode(plain))
	assert.Empty(t, FieldOf(plain))
	assert.Equal(t, "plain error", UserMessage(plain))
	assert.Equal(t, Code(""), GetCode(nil))
}

func TestClasses(t *testing.T) {
	tests := []struct {
		err   error
		class Class
	}{
		{New(ErrCodeConfigOutOfRange, "x"), ClassInvalid},
		{New(ErrCodeInvalidPlanID, "x"), ClassInvalid},
		{Wrap(ErrCodePlanNotFound, errors.New("x"), "y"), ClassNotFound},
		{New(ErrCodeUnsupported, "x"), ClassUnsupported},
		{New(ErrCodeStorage, "x"), ClassInternal},
		{errors.New("plain"), ClassInternal},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.class, ClassOf(tt.err), "%v", tt.err)
	}

	assert.True(t, IsInvalid(OutOfRange("room_count", 0, 1, 10, "")))
	assert.False(t, IsInvalid(New(ErrCodeStorage, "x")))
	assert.True(t, IsNotFound(New(ErrCodeNotFound, "x")))
	assert.False(t, IsNotFound(errors.New("plain")))
}
