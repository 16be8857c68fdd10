package charts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"rankboard.worldstats.org/internal/models"
)

func gdpSeries() Series {
	return Series{
		Meta: models.IndicatorMeta{
			Indicator: "GDP", Group: models.GroupEconomy,
			MinValue: 0, MaxValue: 28000,
		},
		// Rank descending: largest value drawn last.
		Rows: []models.IndicatorRow{
			models.NewIndicatorRow("Germany", 4456, 3, ""),
			models.NewIndicatorRow("China", 17790, 2, ""),
			models.NewIndicatorRow("United States", 27360, 1, ""),
		},
	}
}

func budgetShareSeries() Series {
	return Series{
		Meta: models.IndicatorMeta{
			Indicator: "Budget (% of GDP)", Group: models.GroupEconomy,
			MinValue: 0, MaxValue: 60,
		},
		Rows: []models.IndicatorRow{
			models.NewIndicatorRow("United States", 23.1, 1, ""),
			models.NewIndicatorRow("Germany", 19.3, 2, ""),
		},
	}
}

func TestRenderBar(t *testing.T) {
	svg, err := Render(Spec{Kind: KindBar}, gdpSeries(), nil, "")
	require.NoError(t, err)

	assert.Contains(t, string(svg), "<svg")
	assert.Contains(t, string(svg), "27,360", "bars must be labeled with formatted values")
}

func TestRenderBarHighlightsSelectedCountry(t *testing.T) {
	plain, err := Render(Spec{Kind: KindBar}, gdpSeries(), nil, "")
	require.NoError(t, err)

	highlighted, err := Render(Spec{Kind: KindBar}, gdpSeries(), nil, "China")
	require.NoError(t, err)

	assert.NotEqual(t, string(plain), string(highlighted))
	// goldenrod, the Economy group's selected-bar color
	assert.Contains(t, string(highlighted), "218,165,32")
	assert.NotContains(t, string(plain), "218,165,32")
}

func TestRenderEmptySelection(t *testing.T) {
	empty := Series{Meta: gdpSeries().Meta}

	svg, err := Render(Spec{Kind: KindBar}, empty, nil, "Atlantis")
	require.NoError(t, err)

	assert.Contains(t, string(svg), "whitesmoke", "empty selection renders the placeholder box")
}

func TestRenderDual(t *testing.T) {
	secondary := budgetShareSeries()

	svg, err := Render(Spec{Kind: KindDual, Secondary: secondary.Meta.Indicator}, gdpSeries(), &secondary, "")
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
}

func TestRenderDualWithoutSecondaryFallsBack(t *testing.T) {
	withSecondary := budgetShareSeries()

	barOnly, err := Render(Spec{Kind: KindBar}, gdpSeries(), nil, "")
	require.NoError(t, err)

	fallback, err := Render(Spec{Kind: KindDual}, gdpSeries(), nil, "")
	require.NoError(t, err)
	assert.Equal(t, string(barOnly), string(fallback))

	dual, err := Render(Spec{Kind: KindDual}, gdpSeries(), &withSecondary, "")
	require.NoError(t, err)
	assert.NotEqual(t, string(barOnly), string(dual))
}

func TestRenderStacked(t *testing.T) {
	secondary := budgetShareSeries()

	svg, err := Render(Spec{Kind: KindStacked, Secondary: secondary.Meta.Indicator}, gdpSeries(), &secondary, "United States")
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
}

func TestSpecFor(t *testing.T) {
	assert.Equal(t, Spec{Kind: KindBar}, SpecFor("GDP"))
	assert.Equal(t, Spec{Kind: KindStacked, Secondary: "Budget (% of GDP)"}, SpecFor("Patents"))
	assert.Equal(t, Spec{Kind: KindDual, Secondary: "Budget (% of GDP)"}, SpecFor("Budget"))
}

func TestPaletteFor(t *testing.T) {
	assert.Equal(t, paletteEconomy, PaletteFor(models.GroupEconomy))
	assert.Equal(t, palettePeople, PaletteFor(models.GroupPeople))
	assert.Equal(t, paletteGeography, PaletteFor(models.GroupGeography))
	assert.Equal(t, paletteDefault, PaletteFor(models.GroupScience))
	assert.Equal(t, paletteDefault, PaletteFor(models.Group("Unknown")))
}
