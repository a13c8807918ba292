package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalSpec_Excluded(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		spec CanonicalSpec
		want bool
	}{
		{"network technology kept", CanonicalSpec{Group: GroupNetwork, Name: NameNetworkTechnology}, false},
		{"network bands dropped", CanonicalSpec{Group: GroupNetwork, Name: "5G Bands"}, true},
		{"pricing group dropped", CanonicalSpec{Group: GroupPricing, Name: "Launch Price"}, true},
		{"price name in other group", CanonicalSpec{Group: GroupOther, Name: "price"}, true},
		{"display kept", CanonicalSpec{Group: GroupDisplay, Name: "Display Size"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.spec.Excluded())
		})
	}
}

func TestCanonicalSpec_Key(t *testing.T) {
	t.Parallel()

	a := CanonicalSpec{Group: GroupCamera, Name: NameMainCamera, Value: "50 MP"}
	b := CanonicalSpec{Group: GroupCamera, Name: NameMainCamera, Value: "48 MP", SortOrder: 3}
	c := CanonicalSpec{Group: GroupFeatures, Name: NameMainCamera}

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
}

func TestGroups_ExcludesPricing(t *testing.T) {
	t.Parallel()

	groups := Groups()
	assert.Len(t, groups, 14)
	assert.NotContains(t, groups, GroupPricing)
	assert.Equal(t, GroupOther, groups[len(groups)-1])
}

func TestSheetFromResult_RoundTrip(t *testing.T) {
	t.Parallel()

	r := &ExtractionResult{
		Name:      "Samsung Galaxy S24",
		SourceURL: "https://www.gsmarena.com/samsung_galaxy_s24-12773.php",
		Specifications: []CanonicalSpec{
			{Group: GroupBattery, Name: NameBatteryCapacity, Value: "4000 mAh"},
		},
		KeySpecifications: []KeySpec{{Icon: "battery", Title: "Battery", Value: "4000 mAh"}},
		Variants:          []string{"128GB", "256GB"},
		Colors:            []string{"Onyx Black"},
		TotalSpecs:        1,
	}

	sheet := SheetFromResult(r, true)
	assert.True(t, sheet.Reconciled)
	assert.Empty(t, sheet.ID)
	assert.Equal(t, r, sheet.Result())
}

func TestExtractionResult_JSONFieldNames(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(ExtractionResult{Name: "x"})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, k := range []string{"name", "sourceUrl", "specifications", "keySpecifications", "variants", "colors", "totalSpecs"} {
		assert.Contains(t, m, k)
	}
}
