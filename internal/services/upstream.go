package services

import (
	"io"
	"log"
	"net/http"
)

// FetchUpstreamOrders performs one GET against the upstream orders service
// and returns the raw response body. Only transport-level failures produce
// an error; the status code is not inspected, so an upstream 4xx/5xx body
// is returned like any other.
func FetchUpstreamOrders(url string) ([]byte, error) {
	resp, err := http.Get(url)
	if err != nil {
		log.Printf("[Upstream] fetch failed: %v", err)
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[Upstream] reading body failed: %v", err)
		return nil, err
	}

	return body, nil
}
