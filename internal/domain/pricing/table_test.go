package pricing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := map[string]ContainerClass{
		"20' Dry":       Class20ft,
		"40' HC":        Class40ft,
		"45' HC":        Class40ft,
		"40' HC Reefer": Class40ft,
		"LCL":           ClassLCL,
		" lcl ":         ClassLCL,
		"Breakbulk":     Class20ft,
		"":              Class20ft,
	}
	for in, want := range cases {
		assert.Equal(t, want, Classify(in), "container type %q", in)
	}
}

func TestKnownContainerTypes(t *testing.T) {
	assert.Len(t, KnownContainerTypes, 14)
	assert.True(t, IsKnownContainerType("40' Reefer"))
	assert.False(t, IsKnownContainerType("53' Domestic"))
}

func TestDefaultRates(t *testing.T) {
	table := Default()
	require.NoError(t, table.Validate())

	dry := table.Rates("20' Dry")
	assert.Equal(t, 950.0, dry.Freight)
	assert.Equal(t, 20.0, dry.DeliveryMarkup)

	unknown := table.Rates("Breakbulk")
	assert.Equal(t, dry.Freight, unknown.Freight)
	assert.Equal(t, dry.HaulagePickup, unknown.HaulagePickup)

	assert.Equal(t, 1650.0, table.Rates("40' HC").Freight)
	assert.Equal(t, 85.0, table.Rates("LCL").Freight)
}

func TestTransitDays(t *testing.T) {
	table := Default()

	days, ok := table.TransitDays("frmrs", "CNSHA")
	require.True(t, ok)
	assert.Equal(t, 32, days)

	_, ok = table.TransitDays("FRMRS", "")
	assert.False(t, ok)

	_, ok = table.TransitDays("XXAAA", "YYBBB")
	assert.False(t, ok)
}

func TestParse(t *testing.T) {
	t.Run("overrides merge over defaults", func(t *testing.T) {
		table, err := Parse([]byte(`
default_transit_days: 30
classes:
  lcl:
    haulage_pickup: 100
    delivery_markup: 10
    freight: 70
routes:
  ESVLC-CNSHA: 29
`))
		require.NoError(t, err)
		assert.Equal(t, 30, table.DefaultTransitDays)
		assert.Equal(t, 70.0, table.Rates("LCL").Freight)
		assert.Empty(t, table.Rates("LCL").Surcharges)
		assert.Equal(t, 950.0, table.Rates("20' Dry").Freight)

		days, ok := table.TransitDays("ESVLC", "CNSHA")
		require.True(t, ok)
		assert.Equal(t, 29, days)
		_, ok = table.TransitDays("FRMRS", "CNSHA")
		assert.True(t, ok)
	})

	t.Run("negative freight rejected", func(t *testing.T) {
		_, err := Parse([]byte("classes:\n  40ft:\n    freight: -1\n"))
		assert.ErrorIs(t, err, ErrInvalidTable)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Parse([]byte("classes: ["))
		assert.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	table, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultCurrency, table.Currency)

	path := filepath.Join(t.TempDir(), "pricing.yaml")
	require.NoError(t, os.WriteFile(path, []byte("currency: USD\n"), 0o600))
	table, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "USD", table.Currency)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
