package types_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/sprintboard/pkg/domain/types"
)

func TestSourceIDValidate(t *testing.T) {
	tests := []struct {
		name    string
		id      types.SourceID
		wantErr bool
	}{
		{"simple", "roadmap", false},
		{"with dash and digits", "sprint-42", false},
		{"with dot and underscore", "team_a.q3", false},
		{"empty", "", true},
		{"leading dash", "-roadmap", true},
		{"slash", "road/map", true},
		{"space", "road map", true},
		{"too long", types.SourceID(strings.Repeat("a", 65)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.id.Validate()
			if tt.wantErr {
				gt.Error(t, err)
			} else {
				gt.NoError(t, err)
			}
		})
	}
}

func TestNewItemID(t *testing.T) {
	a := types.NewItemID()
	b := types.NewItemID()
	gt.NotEqual(t, a, b)
	gt.Equal(t, len(a.String()), 36)
}

func TestStatusCategoryValidation(t *testing.T) {
	tests := []struct {
		status   types.StatusCategory
		expected bool
	}{
		{types.StatusComplete, true},
		{types.StatusOnTime, true},
		{types.StatusDelayed, true},
		{types.StatusInProgress, true},
		{types.StatusNumeric, true},
		{types.StatusUnknown, true},
		{types.StatusCategory(""), false},
		{types.StatusCategory("Complete"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			gt.Equal(t, tt.status.IsValid(), tt.expected)
		})
	}
}

func TestColorBucketValidation(t *testing.T) {
	for _, b := range types.AllColorBuckets {
		gt.True(t, b.IsValid())
	}
	gt.False(t, types.ColorBucket("green").IsValid())
}
