package catalog_test

import (
	"testing"

	"shinmen-coffee/catalog"
	"shinmen-coffee/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(items []models.CoffeeItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	menu := catalog.Items()

	tests := []struct {
		name     string
		category models.Category
		query    string
		want     []string
	}{
		{name: "everything", category: models.CategoryAll, want: ids(menu)},
		{name: "empty category means all", category: "", want: ids(menu)},
		{name: "category only", category: models.CategoryEspresso, want: []string{"espresso-classic", "americano-bold"}},
		{name: "name match ignores case", category: models.CategoryAll, query: "MOCHA", want: []string{"mocha-decadent"}},
		{name: "description match", category: "", query: "caramel", want: []string{"cold-brew-smooth"}},
		{name: "category and query", category: models.CategoryEspresso, query: "bold", want: []string{"espresso-classic", "americano-bold"}},
		{name: "category and query disjoint", category: models.CategoryLatte, query: "americano", want: []string{}},
		{name: "blank query", category: models.CategoryLatte, query: "   ", want: []string{"latte-art"}},
		{name: "unknown category", category: "tea", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.Filter(menu, tt.category, tt.query)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestItemsReturnsIndependentCopies(t *testing.T) {
	a := catalog.Items()
	a[0].Name = "changed"
	a[4].Customization.Extras[0] = "caramel"

	b := catalog.Items()
	assert.Equal(t, "Classic Espresso", b[0].Name)
	assert.Equal(t, []string{"chocolate"}, b[4].Customization.Extras)
}

func TestDefaultCustomizationsAreValid(t *testing.T) {
	for _, item := range catalog.Items() {
		assert.NoError(t, item.Customization.Validate(), item.ID)
	}
}

func TestFind(t *testing.T) {
	item, ok := catalog.Find(catalog.Items(), "latte-art")
	require.True(t, ok)
	assert.Equal(t, 5.50, item.Price)

	_, ok = catalog.Find(catalog.Items(), "missing")
	assert.False(t, ok)
}

func TestCategoriesStartWithAll(t *testing.T) {
	cats := catalog.Categories()
	require.Len(t, cats, 6)
	assert.Equal(t, models.CategoryAll, cats[0].ID)
}
