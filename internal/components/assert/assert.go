package assert

import (
	"fmt"
	"net/url"
)

func NotNil(value any) {
	if value == nil {
		panic("expected value to be not nil")
	}
}

// AbsoluteUrl panics unless link has both a scheme and a host.
func AbsoluteUrl(link *url.URL) {
	if link == nil || link.Scheme == "" || link.Host == "" {
		panic(fmt.Sprintf("expected an absolute url, got '%v'", link))
	}
}
