package sizes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()

	want := []Spec{
		{Label: "xs", MaxWidth: 640, MaxHeight: 360},
		{Label: "s", MaxWidth: 960, MaxHeight: 540},
		{Label: "m", MaxWidth: 1280, MaxHeight: 720},
		{Label: "l", MaxWidth: 1600, MaxHeight: 900},
	}
	assert.Equal(t, want, c.Specs())
	assert.Equal(t, 4, c.Len())

	// the default table must pass its own validation
	_, err := NewCatalog(c.Specs()...)
	require.NoError(t, err)
}

func TestNewCatalog(t *testing.T) {
	tests := []struct {
		name    string
		specs   []Spec
		wantErr error
	}{
		{name: "valid", specs: []Spec{{"a", 10, 10}, {"b", 20, 20}}},
		{name: "empty", specs: nil, wantErr: ErrEmptyCatalog},
		{name: "zero width", specs: []Spec{{"a", 0, 10}}, wantErr: ErrInvalidDimensions},
		{name: "negative height", specs: []Spec{{"a", 10, -1}}, wantErr: ErrInvalidDimensions},
		{name: "empty label", specs: []Spec{{"", 10, 10}}, wantErr: ErrInvalidLabel},
		{name: "label with separator", specs: []Spec{{"a/b", 10, 10}}, wantErr: ErrInvalidLabel},
		{name: "duplicate label", specs: []Spec{{"a", 10, 10}, {"a", 20, 20}}, wantErr: ErrDuplicateLabel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCatalog(tt.specs...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.specs, c.Specs())
		})
	}
}

func TestCatalogIsImmutable(t *testing.T) {
	input := []Spec{{"a", 10, 10}}
	c, err := NewCatalog(input...)
	require.NoError(t, err)

	input[0].MaxWidth = 999
	out := c.Specs()
	out[0].Label = "changed"

	assert.Equal(t, Spec{"a", 10, 10}, c.Specs()[0])
}

func TestLookup(t *testing.T) {
	c := Default()

	s, ok := c.Lookup("m")
	require.True(t, ok)
	assert.Equal(t, 1280, s.MaxWidth)

	_, ok = c.Lookup("xxl")
	assert.False(t, ok)
}

func TestParseSpec(t *testing.T) {
	tests := []struct {
		raw     string
		want    Spec
		wantErr error
	}{
		{raw: "xs:640x360", want: Spec{"xs", 640, 360}},
		{raw: " hero:1920X1080 ", want: Spec{"hero", 1920, 1080}},
		{raw: "xs640x360", wantErr: ErrInvalidSpec},
		{raw: "xs:640", wantErr: ErrInvalidSpec},
		{raw: "xs:ax360", wantErr: ErrInvalidSpec},
		{raw: "xs:640xb", wantErr: ErrInvalidSpec},
		{raw: "xs:0x360", wantErr: ErrInvalidDimensions},
		{raw: ":640x360", wantErr: ErrInvalidLabel},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseSpec(tt.raw)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParse(t, got.String()))
		})
	}
}

func TestParseCatalog(t *testing.T) {
	c, err := ParseCatalog([]string{"a:100x50", "", "b:200x100"})
	require.NoError(t, err)
	assert.Equal(t, []Spec{{"a", 100, 50}, {"b", 200, 100}}, c.Specs())

	_, err = ParseCatalog([]string{"a:100x50", "a:200x100"})
	assert.ErrorIs(t, err, ErrDuplicateLabel)

	_, err = ParseCatalog(nil)
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func mustParse(t *testing.T, raw string) Spec {
	t.Helper()
	s, err := ParseSpec(raw)
	require.NoError(t, err)
	return s
}
