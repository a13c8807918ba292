package scrape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/phone-spec-scraper/pkg/taxonomy"
	domain "github.com/donaldgifford/phone-spec-scraper/pkg/types"
)

func TestSkipReason(t *testing.T) {
	t.Parallel()

	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}

	tests := []struct {
		name  string
		field domain.RawField
		want  string
		skip  bool
	}{
		{"accepted", domain.RawField{Label: "Chipset", Value: "Tensor G4"}, "", false},
		{"label too short", domain.RawField{Label: "x", Value: "value"}, "label length", true},
		{"label too long", domain.RawField{Label: string(long), Value: "value"}, "label length", true},
		{"empty value", domain.RawField{Label: "NFC", Value: ""}, "empty value", true},
		{"single character", domain.RawField{Label: "NFC", Value: "Y"}, "single character value", true},
		{"bare price", domain.RawField{Label: "Price", Value: "$ 1,099.00"}, "bare price value", true},
		{"price with text", domain.RawField{Label: "Price", Value: "$ 999 / € 1,100"}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, skip := skipReason(tt.field)
			assert.Equal(t, tt.skip, skip)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSheetBuilder_Process(t *testing.T) {
	t.Parallel()

	b := newSheetBuilder(taxonomy.NewResolver(nil, nil), nil)
	rows := []domain.RawField{
		{Label: "Technology", Value: "GSM / LTE / 5G"},
		{Label: "Speed", Value: "HSPA, LTE-A, 5G"},
		{Label: "Network", Value: "ignored duplicate"},
		{Label: "Type", Value: "OLED, 4500 mAh looks"},
		{Label: "Type", Value: "Li-Po 4700 mAh", TableIndex: 9},
		{Label: "Dual", Value: "50 MP, f/1.7"},
		{Label: "Quad", Value: "64 MP, f/1.8"},
		{Label: "Selfie camera", Value: "no camera"},
		{Label: "RAM", Value: "8GB $99 upgrade"},
		{Label: "Price", Value: "About 400 EUR"},
		{Label: "  Weight *", Value: "  190  g*  "},
	}
	for _, r := range rows {
		b.process(r)
	}

	got := make(map[string]string)
	for _, s := range b.specs {
		got[s.Key()] = s.Value
	}

	key := func(g domain.Group, n string) string {
		return domain.CanonicalSpec{Group: g, Name: n}.Key()
	}

	assert.Equal(t, "GSM / LTE / 5G", got[key(domain.GroupNetwork, domain.NameNetworkTechnology)])
	assert.Equal(t, "OLED, 4500 mAh looks", got[key(domain.GroupDisplay, "Display Type")])
	assert.Equal(t, "Li-Po 4700 mAh", got[key(domain.GroupBattery, domain.NameBatteryCapacity)])
	assert.Equal(t, "50 MP, f/1.7", got[key(domain.GroupCamera, domain.NameMainCamera)])
	assert.Equal(t, "190 g", got[key(domain.GroupDesign, "Weight")])

	// Non-MP selfie row falls through to the general mapping.
	assert.Equal(t, "no camera", got[key(domain.GroupCamera, domain.NameFrontCamera)])

	// A RAM row carrying a price is mapped generally and feeds no variants.
	assert.Equal(t, "8GB $99 upgrade", got[key(domain.GroupPerformance, domain.NameRAM)])
	assert.Empty(t, b.variants)

	for _, s := range b.specs {
		assert.False(t, s.Excluded(), s.Key())
	}
	assert.Len(t, b.specs, 7)
}

func TestSheetBuilder_Colors(t *testing.T) {
	t.Parallel()

	b := newSheetBuilder(taxonomy.NewResolver(nil, nil), nil)
	b.process(domain.RawField{Label: "Colors", Value: "Obsidian; Porcelain / Hazel, Obsidian, 4 colors available, 100% recycled"})
	b.process(domain.RawField{Label: "Color options", Value: "Peony, Porcelain"})

	assert.Equal(t, []string{"Obsidian", "Porcelain", "Hazel", "Peony"}, b.colors)
}

func TestKeySpecs(t *testing.T) {
	t.Parallel()

	t.Run("all four found", func(t *testing.T) {
		t.Parallel()

		got := keySpecs([]domain.CanonicalSpec{
			{Group: domain.GroupBattery, Name: "Charging", Value: "45W"},
			{Group: domain.GroupDisplay, Name: "Display Type", Value: "AMOLED"},
			{Group: domain.GroupPerformance, Name: "CPU", Value: "Octa-core"},
			{Group: domain.GroupCamera, Name: "Main Camera", Value: "200 MP"},
			{Group: domain.GroupDisplay, Name: "Display Size", Value: "6.8 inches"},
		})

		require.Len(t, got, 4)
		assert.Equal(t, "AMOLED", got[0].Value)
		assert.Equal(t, "Octa-core", got[1].Value)
		assert.Equal(t, "200 MP", got[2].Value)
		assert.Equal(t, "45W", got[3].Value)
		for i, ks := range got {
			assert.Equal(t, i, ks.SortOrder)
			assert.NotEmpty(t, ks.Icon)
		}
	})

	t.Run("display takes the first size or display spec in order", func(t *testing.T) {
		t.Parallel()

		got := keySpecs([]domain.CanonicalSpec{
			{Group: domain.GroupDesign, Name: "Size", Value: "150 x 70 mm"},
			{Group: domain.GroupDisplay, Name: "Display Type", Value: "LTPO OLED"},
			{Group: domain.GroupDisplay, Name: "Display Size", Value: "6.3 inches"},
		})

		require.Len(t, got, 4)
		assert.Equal(t, "Display", got[0].Title)
		assert.Equal(t, "LTPO OLED", got[0].Value)
	})

	t.Run("nothing found", func(t *testing.T) {
		t.Parallel()

		got := keySpecs(nil)
		require.Len(t, got, 4)
		for _, ks := range got {
			assert.Equal(t, domain.NotFound, ks.Value)
		}
		assert.Equal(t, []string{"Display", "Processor", "Camera", "Battery"},
			[]string{got[0].Title, got[1].Title, got[2].Title, got[3].Title})
	})
}

func TestCleanText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a b c", cleanText("  a*\n\tb  c** "))
	assert.Empty(t, cleanText(" * "))
}
