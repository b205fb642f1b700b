package htmlutil

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func parse(t testing.TB, contents string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(contents))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestOwnText(t *testing.T) {
	doc := parse(t, `<td><a href="samsung-phones-9.php">Samsung<br><span>1372 devices</span></a></td>`)
	require.Equal(t, "Samsung", OwnText(doc.Find("a")))
	require.Equal(t, "", OwnText(doc.Find("p")))
}

func TestCleanText(t *testing.T) {
	table := []struct {
		input    string
		expected string
	}{
		{input: "  Galaxy S24 ", expected: "Galaxy S24"},
		{input: "Galaxy\n\t  S24\nUltra", expected: "Galaxy S24 Ultra"},
		{input: "", expected: ""},
	}
	for _, row := range table {
		require.Equal(t, row.expected, CleanText(row.input))
	}
}

func TestGetAnchors(t *testing.T) {
	base, err := url.Parse("https://www.gsmarena.com/makers.php3")
	require.NoError(t, err)

	doc := parse(t, `
		<ul>
			<li><a href="apple-phones-48.php">Apple</a></li>
			<li><a>no link</a></li>
			<li><a href="https://example.com/x.php">  External
				Link </a></li>
		</ul>`)

	anchors := GetAnchors(context.Background(), base, doc.Find("a"))
	require.Len(t, anchors, 2)
	require.Equal(t, "Apple", anchors[0].Name)
	require.Equal(t, "https://www.gsmarena.com/apple-phones-48.php", anchors[0].Url.String())
	require.Equal(t, "External Link", anchors[1].Name)
	require.Equal(t, "https://example.com/x.php", anchors[1].Url.String())
}
