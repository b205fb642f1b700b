package gsmarena

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParsePrices(t *testing.T) {
	doc := parseFixture(t, "device.html")
	prices := ParsePrices(doc.Selection)

	expected := PriceGroups{
		{
			Label: "United States",
			Items: []PriceOffer{
				{
					ShopImage: "https://fdn.gsmarena.com/imgroot/static/stores/amazon.png",
					Price:     "$ 629.99",
					BuyUrl:    "https://amazon.com/dp/1",
				},
				{
					Price:  "$ 649.99",
					BuyUrl: "https://bestbuy.com/p/2",
				},
			},
		},
		{
			Label: "Germany",
			Items: []PriceOffer{
				{
					ShopImage: "https://fdn.gsmarena.com/imgroot/static/stores/otto.png",
					Price:     "€ 599.00",
				},
			},
		},
	}
	if diff := cmp.Diff(expected, prices); diff != "" {
		t.Fatalf("prices mismatch (-expected +got):\n%s", diff)
	}

	_, ok := prices.Get("India")
	require.False(t, ok, "groups without offers are omitted")
}

func TestParsePricesAbsent(t *testing.T) {
	doc := parseFixture(t, "device_fallback.html")
	prices := ParsePrices(doc.Selection)
	require.NotNil(t, prices)
	require.Empty(t, prices)
}
