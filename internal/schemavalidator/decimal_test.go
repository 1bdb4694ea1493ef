package schemavalidator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInt64(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{in: "42", want: 42},
		{in: "010", want: 10},
		{in: "08", want: 8},
		{in: "000", want: 0},
		{in: "-007", want: -7},
		{in: " 12 ", want: 12},
		{in: "0x10", wantErr: true},
		{in: "0b1", wantErr: true},
		{in: "0o7", wantErr: true},
		{in: "1_000", wantErr: true},
		{in: "", wantErr: true},
		{in: "-", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			n, err := ParseInt64(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, n)
		})
	}
}
