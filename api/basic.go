package api

import (
	"fmt"
	"io"
	"net/http"

	"github.com/duke-git/lancet/v2/netutil"
)

func makeHeader() http.Header {
	header := http.Header{}
	header.Add("Content-Type", "application/json")
	header.Add("Accept", "application/json")

	return header
}

func HttpGet(rawURL string) *netutil.HttpRequest {
	return &netutil.HttpRequest{
		RawURL:  rawURL,
		Method:  "GET",
		Headers: makeHeader(),
	}
}

// doGet runs the request and hands back the raw body. Non-2xx answers are
// errors here; callers decide how soft to fail.
func doGet(rawURL string) ([]byte, error) {
	client := netutil.NewHttpClient()
	resp, err := client.SendRequest(HttpGet(rawURL))
	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, rawURL)
	}

	return data, nil
}
