package money

import (
	"testing"

	"github.com/stretchr/testify/require"

	"depthquote/internal/bookerr"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "two fractional digits", input: "44.12", want: "44.12"},
		{name: "one fractional digit is zero padded", input: "3.5", want: "3.50"},
		{name: "no fractional digits", input: "10", want: "10.00"},
		{name: "large integer part", input: "8832", want: "8832.00"},
		{name: "three fractional digits rejected", input: "1.234", wantErr: true},
		{name: "negative rejected", input: "-1.00", wantErr: true},
		{name: "non numeric rejected", input: "asda", wantErr: true},
		{name: "empty rejected", input: "", wantErr: true},
		{name: "scientific notation rejected", input: "1e2", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, bookerr.ErrMalformedPrice)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got.String())
		})
	}
}

// TestRenderIsZeroPadded pins two adjacent cases where naive percent
// formatting would drop a leading zero: 320 hundredths prints fine as
// "3.20", but 305 hundredths needs the zero kept in "3.05".
func TestRenderIsZeroPadded(t *testing.T) {
	require.Equal(t, "3.20", MustParse("3.20").String())
	require.Equal(t, "3.05", MustParse("3.05").String())
}

func TestAdd(t *testing.T) {
	a := MustParse("44.12")
	b := MustParse("45.80")
	require.Equal(t, "89.92", a.Add(b).String())
}

func TestMulInt(t *testing.T) {
	a := MustParse("44.12")
	require.Equal(t, "441.20", a.MulInt(10).String())
	require.Equal(t, "0.00", a.MulInt(0).String())
}

func TestEqualAndCmp(t *testing.T) {
	a := MustParse("44.12")
	b := MustParse("44.12")
	c := MustParse("44.13")

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
	require.Equal(t, 0, a.Cmp(b))
	require.Equal(t, -1, a.Cmp(c))
	require.Equal(t, 1, c.Cmp(a))
}

func TestRenderRoundTrip(t *testing.T) {
	for _, s := range []string{"44.12", "0.00", "10.00", "8832.56"} {
		require.Equal(t, s, MustParse(s).String())
	}
}
