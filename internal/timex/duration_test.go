package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"string form", `"1.5s"`, 1500 * time.Millisecond, false},
		{"string minutes", `"2m"`, 2 * time.Minute, false},
		{"integer nanoseconds", `1500000000`, 1500 * time.Millisecond, false},
		{"bad string", `"zzz"`, 0, true},
		{"wrong type", `true`, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tc.in), &d)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, d.Duration)
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	d := Duration{Duration: 1500 * time.Millisecond}
	b, err := json.Marshal(d)
	require.NoError(t, err)
	require.Equal(t, `"1.5s"`, string(b))
}
