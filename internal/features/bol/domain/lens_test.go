package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetCommodityField_PreservesSiblings(t *testing.T) {
	form := xpoForm()
	form.Commodities[0].Packaging.PackageLength = 48
	before := form.Commodities[0]

	out, err := SetCommodityField(form, 0, "grossWeight.weight", 750)
	require.NoError(t, err)

	assert.Equal(t, 750.0, out.Commodities[0].GrossWeight.Weight)
	assert.Equal(t, "plt", out.Commodities[0].Packaging.PackageCd)
	assert.Equal(t, 48.0, out.Commodities[0].Packaging.PackageLength)
	assert.Equal(t, "Furniture", out.Commodities[0].Desc)

	if diff := cmp.Diff(before, form.Commodities[0]); diff != "" {
		t.Errorf("input form was modified (-before +after):\n%s", diff)
	}
}

func TestSetCommodityField_LooseValues(t *testing.T) {
	form := xpoForm()

	out, err := SetCommodityField(form, 0, "grossWeight.weight", "612.5")
	require.NoError(t, err)
	assert.Equal(t, 612.5, out.Commodities[0].GrossWeight.Weight)

	out, err = SetCommodityField(out, 0, "hazmatInd", "true")
	require.NoError(t, err)
	assert.True(t, out.Commodities[0].HazmatInd)

	out, err = SetCommodityField(out, 0, "pieceCnt", 4)
	require.NoError(t, err)
	assert.Equal(t, 4, out.Commodities[0].PieceCnt)
	assert.Equal(t, 612.5, out.Commodities[0].GrossWeight.Weight)
}

func TestSetCommodityField_Errors(t *testing.T) {
	form := xpoForm()

	_, err := SetCommodityField(form, 3, "desc", "x")
	assert.ErrorContains(t, err, "out of range")

	_, err = SetCommodityField(form, 0, "", "x")
	assert.Error(t, err)

	_, err = SetCommodityField(form, 0, "packaging.color", "red")
	assert.ErrorContains(t, err, "invalid commodity update")

	_, err = SetCommodityField(form, 0, "grossWeight.weight", "heavy")
	assert.Error(t, err)
}

func TestMergeCommodity(t *testing.T) {
	c := XpoCommodity{
		PieceCnt:    1,
		Packaging:   XpoPackaging{PackageCd: "PLT", PackageWidth: 40},
		GrossWeight: XpoWeight{Weight: 100, WeightUom: "LBS"},
	}

	out, err := MergeCommodity(c, map[string]any{
		"packaging":   map[string]any{"packageLength": 48},
		"grossWeight": map[string]any{"weight": 120},
	})
	require.NoError(t, err)

	assert.Equal(t, XpoCommodity{
		PieceCnt:    1,
		Packaging:   XpoPackaging{PackageCd: "PLT", PackageWidth: 40, PackageLength: 48},
		GrossWeight: XpoWeight{Weight: 120, WeightUom: "LBS"},
	}, out)
}

func TestDeepMerge_DoesNotModifyInputs(t *testing.T) {
	dst := map[string]any{"a": map[string]any{"x": 1, "y": 2}}
	src := map[string]any{"a": map[string]any{"y": 3}}

	out := deepMerge(dst, src)

	assert.Equal(t, map[string]any{"a": map[string]any{"x": 1, "y": 3}}, out)
	assert.Equal(t, map[string]any{"a": map[string]any{"x": 1, "y": 2}}, dst)
}
