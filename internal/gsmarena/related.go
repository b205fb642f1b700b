package gsmarena

import (
	"net/url"
	"strings"

	"gsmarena-backend/lib/textutil"

	"github.com/PuerkitoBio/goquery"
)

const (
	selectorRelatedPanels  = "div[class^=module]"
	selectorRelatedHeading = "h4[class^=section-heading]"
	selectorRelatedItems   = "ul li"
)

const RelatedDevicesLabel = "Related Devices"

// ClassifyRelatedHeading maps a panel heading to the label it is published
// under. An empty result means the panel is not a cross-reference panel.
func ClassifyRelatedHeading(heading string) string {
	switch {
	case textutil.ContainsFold(heading, "related"):
		return RelatedDevicesLabel
	case textutil.ContainsFold(heading, "popular"):
		return heading
	default:
		return ""
	}
}

func resolveHref(base *url.URL, href string) (*url.URL, bool) {
	if base == nil {
		link, err := url.Parse(href)
		return link, err == nil
	}
	link, err := base.Parse(href)
	return link, err == nil
}

// relatedIdentifier accepts the relative hrefs of panel items, which are left
// without a leading slash when the document url is unknown.
func relatedIdentifier(path string) (Identifier, bool) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return identifierFromPath(path)
}

// ParseRelated reads the "related" and "popular" panels of a device page.
// Links are resolved against doc.Url when it is known, items whose link is not
// a device page are skipped.
func ParseRelated(doc *goquery.Document) RelatedGroups {
	groups := RelatedGroups{}

	doc.Find(selectorRelatedPanels).Each(func(_ int, panel *goquery.Selection) {
		heading := strings.TrimSpace(panel.Find(selectorRelatedHeading).Text())
		label := ClassifyRelatedHeading(heading)
		if label == "" {
			return
		}

		var stubs []DeviceStub
		panel.Find(selectorRelatedItems).Each(func(_ int, li *goquery.Selection) {
			anchor := li.Find("a")
			href := strings.TrimSpace(anchor.AttrOr("href", ""))
			if href == "" {
				return
			}
			link, ok := resolveHref(doc.Url, href)
			if !ok {
				return
			}
			id, ok := relatedIdentifier(link.Path)
			if !ok {
				return
			}

			stubs = append(stubs, DeviceStub{
				DeviceName:  strings.TrimSpace(anchor.Text()),
				DeviceImage: strings.TrimSpace(li.Find("img").AttrOr("src", "")),
				Key:         id.String(),
			})
		})
		if len(stubs) == 0 {
			return
		}

		groups.Set(label, stubs)
	})

	return groups
}
