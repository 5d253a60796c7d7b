// Package submit defines the collaborator contract by which edited values are
// sent to their destination and just-in-time field data is loaded, together
// with the HTTP implementation of it.
//
// The library treats the collaborator as an opaque asynchronous call: given a
// URL, an identifying key, and the editor's computed value, it resolves with
// either the new canonical value or a failure. Any timeout policy is the
// collaborator's (typically via its http.Client or the passed context).
package submit

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/carlmjohnson/requests"
	"github.com/rs/zerolog/log"
)

// A Submitter performs the network side of an edit session.
type Submitter interface {
	// Submit sends the value for the identified field to the given URL and
	// returns the new canonical value.
	Submit(ctx context.Context, submitURL, key, value string) (string, error)

	// Load fetches just-in-time initial data for a field.
	Load(ctx context.Context, loadURL string) (string, error)
}

// HTTPSubmitter is the Submitter over HTTP: values are POSTed as a form, the
// response body is the new canonical value; loads are plain GETs.
type HTTPSubmitter struct {
	client *http.Client
}

// NewHTTPSubmitter constructs and returns a new HTTPSubmitter using the given
// client (nil for http.DefaultClient).
func NewHTTPSubmitter(client *http.Client) *HTTPSubmitter {
	return &HTTPSubmitter{client: client}
}

// Submit POSTs key and value to the submit URL and returns the response body.
func (s *HTTPSubmitter) Submit(ctx context.Context, submitURL, key, value string) (string, error) {
	log.Debug().Str("url", submitURL).Str("key", key).Msg("submitting value")

	var response string
	err := requests.URL(submitURL).Client(s.client).Method(http.MethodPost).
		BodyForm(url.Values{
			"key":   []string{key},
			"value": []string{value},
		}).
		AddValidator(statusOK).
		ToString(&response).
		Fetch(ctx)
	if err != nil {
		return "", fmt.Errorf("could not submit value for '%s' to '%s': %w", key, submitURL, err)
	}
	return response, nil
}

// Load GETs the load URL and returns the response body.
func (s *HTTPSubmitter) Load(ctx context.Context, loadURL string) (string, error) {
	log.Debug().Str("url", loadURL).Msg("loading field data")

	var response string
	err := requests.URL(loadURL).Client(s.client).Method(http.MethodGet).
		AddValidator(statusOK).
		ToString(&response).
		Fetch(ctx)
	if err != nil {
		return "", fmt.Errorf("could not load field data from '%s': %w", loadURL, err)
	}
	return response, nil
}

func statusOK(r *http.Response) error {
	if r.StatusCode < 200 || 300 <= r.StatusCode {
		return fmt.Errorf("HTTP %d", r.StatusCode)
	}
	return nil
}
