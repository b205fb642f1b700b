package gsmarena

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	selectorPagePictures    = "div#pictures a img"
	selectorGalleryPictures = "div[id^=pictures-list] img"
)

// pictureUrls reads every image's src, falling back to the lazy-load
// attribute, in document order.
func pictureUrls(doc *goquery.Selection, selector string) []string {
	var urls []string
	doc.Find(selector).Each(func(_ int, img *goquery.Selection) {
		src := strings.TrimSpace(img.AttrOr("src", ""))
		if src == "" {
			src = strings.TrimSpace(img.AttrOr("data-src", ""))
		}
		if src == "" {
			return
		}
		urls = append(urls, src)
	})
	return urls
}

// mergePictures concatenates lists, keeping only the first occurrence of
// every url. The result is never nil.
func mergePictures(lists ...[]string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, list := range lists {
		for _, link := range list {
			if _, ok := seen[link]; ok {
				continue
			}
			seen[link] = struct{}{}
			out = append(out, link)
		}
	}
	return out
}

// fetchGalleryPictures reads the dedicated gallery page of a device. Failures
// are reported and yield no pictures.
func (s Scraper) fetchGalleryPictures(ctx context.Context, id Identifier) []string {
	doc, err := s.fetcher.Fetch(ctx, id.PicturesEndpoint())
	if err != nil {
		s.tel.ReportWarning(report_pictures_fetch, err, id.String())
		return nil
	}
	return pictureUrls(doc.Selection, selectorGalleryPictures)
}

// StartPictures fetches the gallery page in the background. The returned
// channel yields exactly one (possibly empty) list and is then closed.
func (s Scraper) StartPictures(ctx context.Context, id Identifier) <-chan []string {
	out := make(chan []string, 1)
	go func() {
		defer close(out)
		out <- s.fetchGalleryPictures(ctx, id)
	}()
	return out
}

// CollectPictures merges the thumbnails of the primary page with the images
// of the device's gallery page, primary first.
func (s Scraper) CollectPictures(ctx context.Context, id Identifier, doc *goquery.Document) []string {
	gallery := s.fetchGalleryPictures(ctx, id)
	return mergePictures(pictureUrls(doc.Selection, selectorPagePictures), gallery)
}
