package restyutil

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatHeaders(t *testing.T) {
	headers := http.Header{}
	headers.Add("User-Agent", "gsmarena")
	headers.Add("Accept", "text/html")
	headers.Add("Accept", "*/*")

	require.Equal(t, "Accept: text/html\nAccept: */*\nUser-Agent: gsmarena", formatHeaders(headers))
	require.Equal(t, "", formatHeaders(nil))
}
