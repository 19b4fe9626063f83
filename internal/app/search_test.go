package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"camping_arequita/internal/app"
	"camping_arequita/internal/domain"
)

func acc(id string, price float64, typ domain.AccommodationType) domain.Accommodation {
	return domain.Accommodation{ID: id, Name: "Unit " + id, Type: typ, Price: price}
}

func TestSearch_CategoryAndSort(t *testing.T) {
	items := []domain.Accommodation{
		acc("A", 100, domain.TypeCabin),
		acc("B", 50, domain.TypeCamping),
		acc("C", 200, domain.TypeCabin),
	}

	out := app.Search(items, app.Criteria{Type: "cabin", Sort: app.SortPriceAsc, PriceCeiling: 10000})

	require.Len(t, out, 2)
	assert.Equal(t, "A", out[0].ID)
	assert.Equal(t, "C", out[1].ID)
}

func TestSearch_TextQuery(t *testing.T) {
	items := []domain.Accommodation{
		{ID: "1", Name: "Cabaña del Bosque", Description: "Vista al Río Santa Lucía", Type: domain.TypeCabin, Price: 100},
		{ID: "2", Name: "Parcela Norte", Description: "Sombra y parrillero", Type: domain.TypeCamping, Price: 40},
	}

	// case-insensitive substring over name, description and type
	for _, q := range []string{"río", "RÍO", "santa lucía"} {
		out := app.Search(items, app.Criteria{Query: q, Type: domain.TypeAll})
		require.Len(t, out, 1, "query %q", q)
		assert.Equal(t, "1", out[0].ID)
	}

	// type label matches too
	out := app.Search(items, app.Criteria{Query: "camping", Type: domain.TypeAll})
	require.Len(t, out, 1)
	assert.Equal(t, "2", out[0].ID)

	// blank and whitespace-only queries mean "no text filter"
	out = app.Search(items, app.Criteria{Query: "   ", Type: domain.TypeAll})
	assert.Len(t, out, 2)
}

func TestSearch_PriceRangeInclusive(t *testing.T) {
	items := []domain.Accommodation{
		acc("low", 10, domain.TypeCamping),
		acc("mid", 50, domain.TypeCamping),
		acc("high", 100, domain.TypeCamping),
	}

	out := app.Search(items, app.Criteria{Type: domain.TypeAll, PriceFloor: 10, PriceCeiling: 50})
	require.Len(t, out, 2)
	assert.Equal(t, "low", out[0].ID)
	assert.Equal(t, "mid", out[1].ID)
}

func TestSearch_Properties(t *testing.T) {
	items := []domain.Accommodation{
		acc("A", 300, domain.TypeCabin),
		acc("B", 100, domain.TypeMotorhome),
		acc("C", 100, domain.TypeCamping),
		acc("D", 50, domain.TypeCabin),
		acc("E", 9999, domain.TypeCamping),
	}
	c := app.Criteria{Type: domain.TypeAll, PriceFloor: 60, PriceCeiling: 5000, Sort: app.SortPriceDesc}

	out := app.Search(items, c)

	// every output item satisfies the range filter
	for _, a := range out {
		assert.GreaterOrEqual(t, a.Price, c.PriceFloor)
		assert.LessOrEqual(t, a.Price, c.PriceCeiling)
	}
	// adjacent pairs honor the sort order
	for i := 0; i+1 < len(out); i++ {
		assert.GreaterOrEqual(t, out[i].Price, out[i+1].Price)
	}
	// stable: B comes before C at equal price (input order)
	require.Len(t, out, 3)
	assert.Equal(t, []string{"A", "B", "C"}, []string{out[0].ID, out[1].ID, out[2].ID})

	// idempotent: identical inputs yield identical ordered output
	again := app.Search(items, c)
	assert.Equal(t, out, again)

	// input order untouched
	assert.Equal(t, "A", items[0].ID)
	assert.Equal(t, "E", items[4].ID)
}

func TestSearch_EmptyBase(t *testing.T) {
	out := app.Search(nil, app.DefaultCriteria())
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestDiscountPercent(t *testing.T) {
	orig := 200.0
	a := domain.Accommodation{Price: 150, OriginalPrice: &orig}
	assert.Equal(t, 25, a.DiscountPercent())

	assert.Equal(t, 0, domain.Accommodation{Price: 150}.DiscountPercent())

	same := 150.0
	assert.Equal(t, 0, domain.Accommodation{Price: 150, OriginalPrice: &same}.DiscountPercent())
}
