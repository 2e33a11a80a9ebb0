package val

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateUsername(t *testing.T) {
	testCases := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{
			name:     "Valid username",
			username: "solo_traveler",
			wantErr:  false,
		},
		{
			name:     "Valid with digits",
			username: "walker_0042",
			wantErr:  false,
		},
		{
			name:     "Invalid - too short",
			username: "ab",
			wantErr:  true,
		},
		{
			name:     "Invalid - uppercase",
			username: "SoloTraveler",
			wantErr:  true,
		},
		{
			name:     "Invalid - spaces",
			username: "solo traveler",
			wantErr:  true,
		},
		{
			name:     "Empty string",
			username: "",
			wantErr:  true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateUsername(tc.username)
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateCategory(t *testing.T) {
	testCases := []struct {
		name     string
		category string
		wantErr  bool
	}{
		{
			name:     "Valid category",
			category: "cafe",
			wantErr:  false,
		},
		{
			name:     "Valid snake case",
			category: "book_store",
			wantErr:  false,
		},
		{
			name:     "Invalid - digit",
			category: "cafe2",
			wantErr:  true,
		},
		{
			name:     "Invalid - starts with underscore",
			category: "_cafe",
			wantErr:  true,
		},
		{
			name:     "Invalid - too short",
			category: "c",
			wantErr:  true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateCategory(tc.category)
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateMood(t *testing.T) {
	testCases := []struct {
		name    string
		mood    string
		wantErr bool
	}{
		{
			name:    "Valid mood",
			mood:    "calm",
			wantErr: false,
		},
		{
			name:    "Valid mood happy",
			mood:    "happy",
			wantErr: false,
		},
		{
			name:    "Invalid mood",
			mood:    "furious",
			wantErr: true,
		},
		{
			name:    "Empty string",
			mood:    "",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateMood(tc.mood)
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
