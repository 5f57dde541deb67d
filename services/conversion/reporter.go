package conversion

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"kdexpertise/utils"
)

// BookingLabel tags a confirmed online booking.
const BookingLabel = "booking"

// Reporter emits an ads-conversion signal. Reporting is best-effort: callers
// fire it in a goroutine and never wait on or react to the outcome.
type Reporter interface {
	Report(label string)
}

// HTTPReporter posts conversion events to a configured endpoint.
type HTTPReporter struct {
	Endpoint string
	Client   *http.Client
}

// NewReporter returns an HTTP reporter, or a no-op one when no endpoint is
// configured.
func NewReporter(endpoint string) Reporter {
	if endpoint == "" {
		return NoopReporter{}
	}
	return &HTTPReporter{
		Endpoint: endpoint,
		Client:   &http.Client{Timeout: 5 * time.Second},
	}
}

func (r *HTTPReporter) Report(label string) {
	payload, _ := json.Marshal(map[string]string{
		"label": label,
		"at":    time.Now().UTC().Format(time.RFC3339),
	})

	resp, err := r.Client.Post(r.Endpoint, "application/json", bytes.NewReader(payload))
	if err != nil {
		utils.GetLogger().Warn("conversion report failed", zap.String("label", label), zap.Error(err))
		return
	}
	resp.Body.Close()
}

// NoopReporter ignores all events.
type NoopReporter struct{}

func (NoopReporter) Report(string) {}
