package controller

import (
	"bytes"
	"image/png"
	"math"
	"testing"

	"foodme/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCafeQRCodeIsPNG(t *testing.T) {
	Configure(Options{UploadDir: t.TempDir(), QRURLTemplate: "https://example.com/cafe/%s"})

	raw, err := CafeQRCode("7")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, img.Bounds().Dx(), img.Bounds().Dy())
	assert.Zero(t, img.Bounds().Dx()%qrModulePixels)
}

func TestRoundPrice(t *testing.T) {
	tests := []struct {
		in      float64
		want    int
		wantErr bool
	}{
		{in: 0, want: 0},
		{in: 4.4, want: 4},
		{in: 4.5, want: 5},
		{in: 12.6, want: 13},
		{in: 100, want: 100},
		{in: math.MaxInt32, want: math.MaxInt32},
		{in: -1, wantErr: true},
		{in: math.MaxInt32 + 1, wantErr: true},
		{in: 1e30, wantErr: true},
		{in: 1e300, wantErr: true},
		{in: math.Inf(1), wantErr: true},
		{in: math.Inf(-1), wantErr: true},
		{in: math.NaN(), wantErr: true},
	}
	for _, tt := range tests {
		got, err := roundPrice(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestProductFromRow(t *testing.T) {
	tests := []struct {
		name    string
		row     []string
		wantErr bool
		want    int
	}{
		{name: "full row", row: []string{"Tea", "4.5", "Black", "leaves", "/uploads/tea.png"}, want: 5},
		{name: "name and price only", row: []string{" Water ", "0"}, want: 0},
		{name: "empty name", row: []string{"", "3"}, wantErr: true},
		{name: "name too long", row: []string{"abcdefghijklmnopqrstuvwxyz", "3"}, wantErr: true},
		{name: "bad price", row: []string{"Tea", "cheap"}, wantErr: true},
		{name: "negative price", row: []string{"Tea", "-2"}, wantErr: true},
		{name: "missing price", row: []string{"Tea"}, wantErr: true},
		{name: "huge price", row: []string{"Tea", "1e30"}, wantErr: true},
		{name: "infinite price", row: []string{"Tea", "Inf"}, wantErr: true},
		{name: "not a number price", row: []string{"Tea", "NaN"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product, err := productFromRow(tt.row)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, product.Price)
			assert.NotEmpty(t, product.Name)
			assert.NotContains(t, product.Name, " ")
		})
	}
}

func TestFillMenusSheet(t *testing.T) {
	menus := []model.Menu{
		{Name: "Drinks", Products: []model.Product{{Name: "Tea", Price: 5}, {Name: "Coffee", Price: 9}}},
		{Name: "Empty"},
	}

	xl, err := menusWorkbook(menus)
	require.NoError(t, err)
	defer xl.Close()

	rows, err := xl.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Drinks", "Tea", "5"}, rows[1][:3])
	assert.Equal(t, []string{"Drinks", "Coffee", "9"}, rows[2][:3])

	// the default sheet is already renamed, so a second fill fails
	assert.Error(t, fillMenusSheet(xl, menus))
}
