package gsmarena

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// the slug is greedy so the id is always the part after the last hyphen
var identifierRegex = regexp.MustCompile(`/([^/]+)-(\d+)\.php$`)

// Identifier names one device's specification page, ex. `samsung_galaxy_s24-12773`.
type Identifier struct {
	Slug string
	Id   string
}

func (i Identifier) String() string {
	return fmt.Sprintf("%s-%s", i.Slug, i.Id)
}

// Endpoint is the path of the device's specification page relative to the site root.
func (i Identifier) Endpoint() string {
	return fmt.Sprintf("%s-%s.php", i.Slug, i.Id)
}

// PicturesEndpoint is the path of the device's picture gallery page relative to the site root.
func (i Identifier) PicturesEndpoint() string {
	return fmt.Sprintf("%s-pictures-%s.php", i.Slug, i.Id)
}

func identifierFromPath(path string) (Identifier, bool) {
	groups := identifierRegex.FindStringSubmatch(path)
	if len(groups) < 3 {
		return Identifier{}, false
	}
	return Identifier{Slug: groups[1], Id: groups[2]}, true
}

// ParseIdentifier derives the identifier from a device page url. Query strings
// and fragments are ignored, the path must end in `/<slug>-<digits>.php` so a
// bare `<slug>-<digits>.php` is rejected.
func ParseIdentifier(link string) (Identifier, error) {
	link = strings.TrimSpace(link)
	if link == "" {
		return Identifier{}, ErrInvalidIdentifier
	}
	parsed, err := url.Parse(link)
	if err != nil {
		return Identifier{}, fmt.Errorf("%w: %s", ErrInvalidIdentifier, err.Error())
	}
	id, ok := identifierFromPath(parsed.Path)
	if !ok {
		return Identifier{}, fmt.Errorf("%w: '%s'", ErrInvalidIdentifier, link)
	}
	return id, nil
}
