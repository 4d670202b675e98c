package adapter

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/xbanking-gateway/models"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// mapResponse converts a completed upstream exchange into an
// [models.UpstreamResponse]. Any status code is accepted; the body must be a
// valid JSON document.
func mapResponse(op string, resp *resty.Response, err error) (models.UpstreamResponse, error) {
	if err != nil {
		return models.UpstreamResponse{}, fmt.Errorf("%s: %w: %w", op, ErrUpstreamUnavailable, err)
	}

	body := resp.Body()
	if !gjson.ValidBytes(body) {
		return models.UpstreamResponse{}, fmt.Errorf("%s: %w: status %d %s, %d body bytes",
			op, ErrUpstreamInvalidResponse, resp.StatusCode(), http.StatusText(resp.StatusCode()), len(body))
	}

	return models.UpstreamResponse{
		StatusCode: resp.StatusCode(),
		Body:       body,
	}, nil
}
