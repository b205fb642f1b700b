package gsmarena

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// upstream renders this in place of missing camera data
const comparePlaceholder = "compare photo / compare video"

const defaultVideo = "1080p"

var ramPattern = regexp.MustCompile(`\d+/\d+GB RAM`)

// Locator is one candidate position of a field in a document.
type Locator struct {
	Selector string
	// Attr is read from the first match when set, otherwise the trimmed text
	// of every match is used.
	Attr string
	// Pattern, when set, narrows the located value to its first match.
	Pattern *regexp.Regexp
}

func (l Locator) Locate(doc *goquery.Selection) string {
	sel := doc.Find(l.Selector)
	if sel.Length() == 0 {
		return ""
	}

	var value string
	if l.Attr != "" {
		value = strings.TrimSpace(sel.First().AttrOr(l.Attr, ""))
	} else {
		value = strings.TrimSpace(sel.Text())
	}
	if l.Pattern != nil {
		value = l.Pattern.FindString(value)
	}
	return value
}

// Field is one scalar of a device record together with every place it may
// appear on a page, in order of preference.
type Field struct {
	Name     string
	Locators []Locator
	// Placeholders are values that count as absent (compared case-insensitively).
	Placeholders []string
	// Default is returned when no locator yields a value.
	Default string
}

func (f Field) isPlaceholder(value string) bool {
	for _, p := range f.Placeholders {
		if strings.EqualFold(value, p) {
			return true
		}
	}
	return false
}

// Extract returns the first non-empty, non-placeholder value among the
// field's locators, or the field's default.
func (f Field) Extract(doc *goquery.Selection) string {
	for _, l := range f.Locators {
		value := l.Locate(doc)
		if value == "" || f.isPlaceholder(value) {
			continue
		}
		return value
	}
	return f.Default
}

const (
	FieldDeviceName  = "device_name"
	FieldDeviceImage = "device_image"
	FieldDisplaySize = "display_size"
	FieldDisplayRes  = "display_res"
	FieldCamera      = "camera"
	FieldVideo       = "video"
	FieldRam         = "ram"
	FieldChipset     = "chipset"
	FieldBattery     = "battery"
	FieldBatteryType = "batteryType"
	FieldReleaseDate = "release_date"
	FieldBody        = "body"
	FieldOsType      = "os_type"
	FieldStorage     = "storage"
	FieldComment     = "comment"
)

func text(selector string) Locator {
	return Locator{Selector: selector}
}

// DeviceFields is the locator table of every scalar on a device page.
// Upstream markup changes should only ever require edits here.
var DeviceFields = []Field{
	{
		Name:     FieldDeviceName,
		Locators: []Locator{text("h1[class^=specs-phone-name-title]")},
	},
	{
		Name: FieldDeviceImage,
		Locators: []Locator{
			{Selector: "div[class^=specs-photo-main] a img", Attr: "src"},
		},
	},
	{
		Name: FieldDisplaySize,
		Locators: []Locator{
			text("span[data-spec^=displaysize-hl]"),
			text("div[data-spec^=displaysize-hl]"),
		},
	},
	{
		Name:     FieldDisplayRes,
		Locators: []Locator{text("div[data-spec^=displayres-hl]")},
	},
	{
		Name: FieldCamera,
		Locators: []Locator{
			text(".accent-camera"),
			text("div[data-spec^=camerapixels-hl]"),
		},
		Placeholders: []string{comparePlaceholder},
	},
	{
		Name:     FieldVideo,
		Locators: []Locator{text("div[data-spec^=videopixels-hl]")},
		Default:  defaultVideo,
	},
	{
		Name: FieldRam,
		Locators: []Locator{
			text(".accent-expansion"),
			{Selector: "div[data-spec^=internalmemory-hl]", Pattern: ramPattern},
		},
	},
	{
		Name:     FieldChipset,
		Locators: []Locator{text("div[data-spec^=chipset-hl]")},
	},
	{
		Name: FieldBattery,
		Locators: []Locator{
			text(".accent-battery"),
			text("div[data-spec^=batterycapacity-hl]"),
		},
	},
	{
		Name: FieldBatteryType,
		Locators: []Locator{
			text("div[data-spec^=battype-hl]"),
			text("div[data-spec^=charging-hl]"),
		},
	},
	{
		Name:     FieldReleaseDate,
		Locators: []Locator{text("span[data-spec^=released-hl]")},
	},
	{
		Name:     FieldBody,
		Locators: []Locator{text("span[data-spec^=body-hl]")},
	},
	{
		Name:     FieldOsType,
		Locators: []Locator{text("span[data-spec^=os-hl]")},
	},
	{
		Name: FieldStorage,
		Locators: []Locator{
			text("span[data-spec^=storage-hl]"),
			text("div[data-spec^=internalmemory-hl]"),
		},
	},
	{
		Name:     FieldComment,
		Locators: []Locator{text("p[data-spec^=comment]")},
	},
}

// ExtractFields runs every field against doc, keyed by field name.
func ExtractFields(doc *goquery.Selection, fields []Field) map[string]string {
	values := make(map[string]string, len(fields))
	for _, f := range fields {
		values[f.Name] = f.Extract(doc)
	}
	return values
}
