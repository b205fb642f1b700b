package gsmarena

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestClassifyRelatedHeading(t *testing.T) {
	table := []struct {
		heading  string
		expected string
	}{
		{heading: "Samsung Galaxy S24 - related devices", expected: RelatedDevicesLabel},
		{heading: "RELATED", expected: RelatedDevicesLabel},
		{heading: "Popular from Samsung", expected: "Popular from Samsung"},
		{heading: "Most POPULAR", expected: "Most POPULAR"},
		{heading: "Latest reviews", expected: ""},
		{heading: "", expected: ""},
	}
	for _, row := range table {
		require.Equal(t, row.expected, ClassifyRelatedHeading(row.heading), row.heading)
	}
}

func TestParseRelated(t *testing.T) {
	expected := RelatedGroups{
		{
			Label: RelatedDevicesLabel,
			Items: []DeviceStub{
				{
					DeviceName:  "Samsung Galaxy S24+",
					DeviceImage: "https://fdn2.gsmarena.com/vv/bigpic/s24plus.jpg",
					Key:         "samsung_galaxy_s24+-12772",
				},
				{
					DeviceName:  "Samsung Galaxy S23",
					DeviceImage: "https://fdn2.gsmarena.com/vv/bigpic/s23.jpg",
					Key:         "samsung_galaxy_s23-12082",
				},
			},
		},
		{
			Label: "Popular from Samsung",
			Items: []DeviceStub{
				{DeviceName: "Samsung Galaxy A55", Key: "samsung_galaxy_a55-12824"},
			},
		},
	}

	t.Run("without document url", func(t *testing.T) {
		doc := parseFixture(t, "device.html")
		if diff := cmp.Diff(expected, ParseRelated(doc)); diff != "" {
			t.Fatalf("related mismatch (-expected +got):\n%s", diff)
		}
	})

	t.Run("with document url", func(t *testing.T) {
		doc := parseFixture(t, "device.html")
		base, err := url.Parse("https://www.gsmarena.com/samsung_galaxy_s24-12773.php")
		require.NoError(t, err)
		doc.Url = base
		if diff := cmp.Diff(expected, ParseRelated(doc)); diff != "" {
			t.Fatalf("related mismatch (-expected +got):\n%s", diff)
		}
	})
}

func TestParseRelatedDuplicateLabels(t *testing.T) {
	doc := parseHtml(t, `
		<div class="module"><h4 class="section-heading">Related devices</h4>
			<ul><li><a href="a-1.php">A</a></li></ul></div>
		<div class="module"><h4 class="section-heading">More related</h4>
			<ul><li><a href="b-2.php">B</a></li></ul></div>
	`)
	related := ParseRelated(doc)
	require.Equal(t, []string{RelatedDevicesLabel}, related.Labels())

	stubs, ok := related.Get(RelatedDevicesLabel)
	require.True(t, ok)
	require.Equal(t, []DeviceStub{{DeviceName: "B", Key: "b-2"}}, stubs)
}
