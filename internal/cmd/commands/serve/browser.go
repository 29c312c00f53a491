package serve

import (
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/browser"
)

// openBrowser opens the URL in the user's default browser.
func openBrowser(url string) error {
	return browser.OpenURL(url)
}

// waitForServer polls the health endpoint with backoff until the server
// is ready or the timeout elapses.
func waitForServer(url string, timeout time.Duration) error {
	healthURL := url + "/health"

	check := func() error {
		resp, err := http.Get(healthURL)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("health returned %d", resp.StatusCode)
		}
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 100 * time.Millisecond
	policy.MaxElapsedTime = timeout

	if err := backoff.Retry(check, policy); err != nil {
		return fmt.Errorf("timeout waiting for server to start: %w", err)
	}
	return nil
}
