package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %w: %s", ErrScoringFailed, ErrBadRequest, body)
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: %w: %s", ErrScoringFailed, ErrBadGateway, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("%w: http %d: %s", ErrScoringFailed, resp.StatusCode(), body)
	}
}

// mapAPIError turns a non-2xx parking-mate answer into an error wrapping
// [ErrAPIRequestFailed] and the sentinel for its status. The envelope
// message is preferred over the raw body.
func mapAPIError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := envelopeMessage(resp.Body())
	if message == "" {
		message = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %w: %s", ErrAPIRequestFailed, ErrAPIBadRequest, message)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %w: %s", ErrAPIRequestFailed, ErrAPIUnauthorized, message)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %w: %s", ErrAPIRequestFailed, ErrAPIForbidden, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w: %s", ErrAPIRequestFailed, ErrAPINotFound, message)
	case http.StatusConflict:
		return fmt.Errorf("%w: %w: %s", ErrAPIRequestFailed, ErrAPIConflict, message)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %w: %s", ErrAPIRequestFailed, ErrAPIRateLimited, message)
	case http.StatusBadGateway, http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %w: %s", ErrAPIRequestFailed, ErrAPIUnavailable, message)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrAPIRequestFailed, resp.StatusCode(), message)
	}
}

func envelopeMessage(body []byte) string {
	var env struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return strings.TrimSpace(string(body))
	}
	return env.Message
}
