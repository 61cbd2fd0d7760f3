package fetch

import (
	"fmt"
	"net/http/cookiejar"
	"net/url"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"

	"aep/portal"
)

// NewClient sets up the HTTP client used to talk to the portal. The site sits
// behind Cloudflare and rejects requests that do not look like they come from
// a browser, hence the bypass transport, the cookie jar and the spoofed
// user agent.
func NewClient(baseURL string) (*resty.Client, error) {
	client := resty.New()
	client.SetBaseURL(baseURL)

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetTimeout(time.Second * 30)

	return client, nil
}

// Download performs the single form POST the portal exposes and decodes the
// answer. The portal paginates nothing: one request returns every observation
// matching the payload.
func Download(client *resty.Client, payload url.Values) ([]portal.Observation, error) {
	resp, err := client.R().
		SetFormDataFromValues(payload).
		Post(portal.Endpoint)
	if err != nil {
		return nil, err
	}

	if resp.IsError() {
		return nil, fmt.Errorf("portal answered with status %s", resp.Status())
	}
	return portal.DecodeObservations(resp.Body())
}
