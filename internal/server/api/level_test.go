package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{in: `"1"`, want: "1"},
		{in: `"admin"`, want: "admin"},
		{in: `1`, want: "1"},
		{in: `2.5`, want: "2.5"},
		{in: `null`, want: ""},
		{in: `true`, wantErr: true},
		{in: `{}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var v struct {
				Level Level `json:"level"`
			}
			err := json.Unmarshal([]byte(`{"level":`+tt.in+`}`), &v)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.Level)
		})
	}
}
