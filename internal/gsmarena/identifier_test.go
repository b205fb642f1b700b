package gsmarena

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/mazen160/go-random"
	"github.com/stretchr/testify/require"
)

func TestParseIdentifier(t *testing.T) {
	table := []struct {
		link     string
		expected Identifier
	}{
		{
			link:     "https://www.gsmarena.com/samsung_galaxy_s24-12773.php",
			expected: Identifier{Slug: "samsung_galaxy_s24", Id: "12773"},
		},
		{
			link:     "/apple_iphone_15_pro_max-12548.php",
			expected: Identifier{Slug: "apple_iphone_15_pro_max", Id: "12548"},
		},
		{
			link:     "/samsung_galaxy_s24+-12772.php",
			expected: Identifier{Slug: "samsung_galaxy_s24+", Id: "12772"},
		},
		{
			// the id is whatever follows the last hyphen
			link:     "https://www.gsmarena.com/xiaomi_13t-pro-12345.php",
			expected: Identifier{Slug: "xiaomi_13t-pro", Id: "12345"},
		},
		{
			link:     "https://www.gsmarena.com/nokia_3310-1.php?utm=feed#specs",
			expected: Identifier{Slug: "nokia_3310", Id: "1"},
		},
	}

	for _, row := range table {
		t.Run(row.link, func(t *testing.T) {
			id, err := ParseIdentifier(row.link)
			require.NoError(t, err)
			require.Equal(t, row.expected, id)
		})
	}
}

func TestParseIdentifierInvalid(t *testing.T) {
	invalid := []string{
		"",
		"   ",
		"https://www.gsmarena.com/makers.php3",
		"https://www.gsmarena.com/samsung-phones.php",
		"https://www.gsmarena.com/samsung_galaxy_s24-12773.php/extra",
		"https://www.gsmarena.com/samsung_galaxy_s24-abc.php",
		"https://www.gsmarena.com/-12773.php",
		"%zz",
		// the slug must follow a path separator
		"galaxy-s24-12345.php",
		"samsung_galaxy_s24-12773.php?utm=feed",
	}
	for _, link := range invalid {
		_, err := ParseIdentifier(link)
		require.Error(t, err, link)
		require.True(t, errors.Is(err, ErrInvalidIdentifier), link)
	}
}

func TestIdentifierEndpoints(t *testing.T) {
	id := Identifier{Slug: "samsung_galaxy_s24", Id: "12773"}
	require.Equal(t, "samsung_galaxy_s24-12773", id.String())
	require.Equal(t, "samsung_galaxy_s24-12773.php", id.Endpoint())
	require.Equal(t, "samsung_galaxy_s24-pictures-12773.php", id.PicturesEndpoint())
}

func TestIdentifierRoundTrip(t *testing.T) {
	for i := 0; i < 50; i++ {
		slug, err := random.String(12)
		require.NoError(t, err)
		slug = strings.ToLower(slug)
		id := fmt.Sprint(i * 7919)

		link := fmt.Sprintf("https://www.gsmarena.com/%s-%s.php", slug, id)
		parsed, err := ParseIdentifier(link)
		require.NoError(t, err, link)
		require.Equal(t, slug, parsed.Slug)
		require.Equal(t, id, parsed.Id)

		reparsed, err := ParseIdentifier("/" + parsed.Endpoint())
		require.NoError(t, err)
		require.Equal(t, parsed, reparsed)
	}
}
