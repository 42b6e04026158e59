package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"freight-console/internal/core/httpclient"
	"freight-console/internal/features/tracking/domain"
	"freight-console/internal/features/tracking/ports"
)

// historyPath is the shipment-history endpoint exposed by every carrier relay.
const historyPath = "/shipment-history"

// fetchHistory queries a carrier relay and decodes its raw answer into out.
func fetchHistory(ctx context.Context, client *http.Client, baseURL string, params domain.LookupParams, out any) error {
	if _, ok := params.Number(); !ok {
		return fmt.Errorf("exactly one tracking number is required")
	}

	target := strings.TrimRight(baseURL, "/") + historyPath + "?" + params.Query().Encode()

	err := httpclient.DoJSON(ctx, client, http.MethodGet, target, nil, nil, out)
	if err == nil {
		return nil
	}

	var statusErr *httpclient.StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
		return ports.ErrTrackingNotFound
	}
	return err
}

// joinLocation renders "City, ST" from whichever parts are present.
func joinLocation(city, state string) string {
	city, state = strings.TrimSpace(city), strings.TrimSpace(state)
	switch {
	case city == "":
		return state
	case state == "":
		return city
	default:
		return city + ", " + state
	}
}
