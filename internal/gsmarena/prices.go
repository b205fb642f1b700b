package gsmarena

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	selectorPricePanels = "div[class^=pricing-scroll-container] div[class^=pricing]"
	selectorPriceLabel  = "span"
	selectorPriceOffers = "ul li"
)

// ParsePrices reads every vendor pricing panel into label -> offers, in
// document order. Panels without a label or without offers are left out.
func ParsePrices(doc *goquery.Selection) PriceGroups {
	groups := PriceGroups{}

	doc.Find(selectorPricePanels).Each(func(_ int, panel *goquery.Selection) {
		label := strings.TrimSpace(panel.Find(selectorPriceLabel).Text())
		if label == "" {
			return
		}

		var offers []PriceOffer
		panel.Find(selectorPriceOffers).Each(func(_ int, li *goquery.Selection) {
			link := li.Find("a")
			offers = append(offers, PriceOffer{
				ShopImage: strings.TrimSpace(li.Find("img").AttrOr("src", "")),
				Price:     strings.TrimSpace(link.Text()),
				BuyUrl:    strings.TrimSpace(link.AttrOr("href", "")),
			})
		})
		if len(offers) == 0 {
			return
		}

		groups.Set(label, offers)
	})

	return groups
}
