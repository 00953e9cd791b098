package enum

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSentinelErrors verifies that all sentinel errors are defined correctly.
func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "ErrCapacityExceeded", err: ErrCapacityExceeded, want: "capacity exceeded"},
		{name: "ErrInvalidDefinition", err: ErrInvalidDefinition, want: "invalid definition"},
		{name: "ErrUnknownKind", err: ErrUnknownKind, want: "unknown enumeration kind"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err == nil {
				t.Fatalf("sentinel error %s is nil", tt.name)
			}
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("error message = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "without underlying error",
			err:  &Error{Op: "NewChar", Kind: KindCapacity},
			want: "enum: NewChar: capacity",
		},
		{
			name: "with underlying error",
			err:  NewValidationError("catalog.Parse", ErrInvalidDefinition),
			want: "enum: catalog.Parse (validation): invalid definition",
		},
		{
			name: "with context",
			err:  NewCapacityError("NewChar", 3, 4),
			want: "enum: NewChar (capacity): capacity exceeded: 4 names, maximum is 3 [context: map[count:4 limit:3]]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestError_Is(t *testing.T) {
	err := NewCapacityError("NewByte", 256, 300)

	assert.True(t, errors.Is(err, ErrCapacityExceeded))
	assert.True(t, errors.Is(err, &Error{Kind: KindCapacity}))
	assert.True(t, errors.Is(err, &Error{Op: "NewByte", Kind: KindCapacity}))
	assert.False(t, errors.Is(err, &Error{Op: "NewChar", Kind: KindCapacity}))
	assert.False(t, errors.Is(err, &Error{Kind: KindValidation}))
	assert.False(t, errors.Is(err, ErrInvalidDefinition))

	wrapped := fmt.Errorf("loading statuses: %w", err)
	assert.True(t, errors.Is(wrapped, ErrCapacityExceeded))

	var nilTarget error
	assert.False(t, err.Is(nilTarget))
}

func TestError_WithContext(t *testing.T) {
	base := NewCapacityError("NewChar", 3, 4)
	withFile := base.WithContext(map[string]any{"file": "colors.yaml"})

	assert.Equal(t, "colors.yaml", withFile.Context["file"])
	assert.Equal(t, 3, withFile.Context["limit"])
	_, ok := base.Context["file"]
	assert.False(t, ok, "original error must not be modified")
}

func TestError_Limit(t *testing.T) {
	limit, ok := NewCapacityError("NewByte", 256, 257).Limit()
	assert.True(t, ok)
	assert.Equal(t, 256, limit)

	_, ok = NewParseError("catalog.Parse", errors.New("bad yaml")).Limit()
	assert.False(t, ok)
}
