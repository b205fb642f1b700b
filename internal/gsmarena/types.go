package gsmarena

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Device is the full record assembled from a device's specification page.
//
// json names follow the wire format of the original service.
type Device struct {
	Key         string `json:"key"`
	DeviceName  string `json:"device_name"`
	DeviceImage string `json:"device_image"`
	DisplaySize string `json:"display_size"`
	DisplayRes  string `json:"display_res"`
	Camera      string `json:"camera"`
	Video       string `json:"video"`
	Ram         string `json:"ram"`
	Chipset     string `json:"chipset"`
	Battery     string `json:"battery"`
	BatteryType string `json:"batteryType"`
	ReleaseDate string `json:"release_date"`
	Body        string `json:"body"`
	OsType      string `json:"os_type"`
	Storage     string `json:"storage"`
	Comment     string `json:"comment"`

	MoreSpecification []SpecSection `json:"more_specification"`
	Prices            PriceGroups   `json:"prices"`
	Pictures          []string      `json:"pictures"`
	MoreInformation   RelatedGroups `json:"more_information"`
}

type SpecSection struct {
	Title string    `json:"title"`
	Rows  []SpecRow `json:"data"`
}

// SpecRow holds one value per compared device column.
type SpecRow struct {
	Title string   `json:"title"`
	Data  []string `json:"data"`
}

type PriceOffer struct {
	ShopImage string `json:"shop_image"`
	Price     string `json:"price"`
	BuyUrl    string `json:"buy_url"`
}

type DeviceStub struct {
	DeviceName  string `json:"device_name"`
	DeviceImage string `json:"device_image"`
	Key         string `json:"key"`
}

// CatalogDevice is a device as listed on a brand's page.
type CatalogDevice struct {
	Name  string `json:"name"`
	Url   string `json:"url"`
	Image string `json:"image"`
}

// Brand is a maker as listed in the brand directory. DeviceCount is the
// upstream label (ex. "1372 devices") and is intentionally not parsed.
type Brand struct {
	Name        string `json:"name"`
	Url         string `json:"url"`
	DeviceCount string `json:"deviceCount"`
}

type Group[T any] struct {
	Label string
	Items []T
}

// Groups is a label -> items mapping that remembers insertion order and
// encodes as a json object with keys in that order.
type Groups[T any] []Group[T]

type (
	PriceGroups   = Groups[PriceOffer]
	RelatedGroups = Groups[DeviceStub]
)

// Set replaces the items of an existing label in place, or appends a new group.
func (g *Groups[T]) Set(label string, items []T) {
	for i := range *g {
		if (*g)[i].Label == label {
			(*g)[i].Items = items
			return
		}
	}
	*g = append(*g, Group[T]{Label: label, Items: items})
}

func (g Groups[T]) Get(label string) ([]T, bool) {
	for _, group := range g {
		if group.Label == label {
			return group.Items, true
		}
	}
	return nil, false
}

func (g Groups[T]) Labels() []string {
	labels := make([]string, len(g))
	for i, group := range g {
		labels[i] = group.Label
	}
	return labels
}

func (g Groups[T]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, group := range g {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(group.Label)
		if err != nil {
			return nil, err
		}
		items := group.Items
		if items == nil {
			items = []T{}
		}
		value, err := json.Marshal(items)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (g *Groups[T]) UnmarshalJSON(data []byte) error {
	*g = nil
	if string(bytes.TrimSpace(data)) == "null" {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected json object, got %v", tok)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		label, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", tok)
		}
		var items []T
		err = dec.Decode(&items)
		if err != nil {
			return fmt.Errorf("decode group '%s': %w", label, err)
		}
		g.Set(label, items)
	}
	_, err = dec.Token()
	return err
}
