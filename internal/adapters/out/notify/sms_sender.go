package notify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"courier/internal/core/domain/model/notification"
	"courier/internal/core/ports"
)

// smsAPIBase is the messaging provider's REST endpoint. The account SID
// is interpolated into the path per the provider's API shape.
const smsAPIBase = "https://api.twilio.com/2010-04-01/Accounts/%s/Messages.json"

// RESTSMSSender delivers SMS through the provider's HTTP API using
// basic auth. A fresh request per message; the provider handles
// queueing and retries on its side.
type RESTSMSSender struct {
	client  *http.Client
	baseURL string
}

// NewRESTSMSSender creates an SMS sender over the given HTTP client.
// Pass nil to use http.DefaultClient; attempt deadlines come from the
// caller's context either way.
func NewRESTSMSSender(client *http.Client) *RESTSMSSender {
	if client == nil {
		client = http.DefaultClient
	}
	return &RESTSMSSender{
		client:  client,
		baseURL: smsAPIBase,
	}
}

// SendSMS delivers one message through the configured messaging account.
func (s *RESTSMSSender) SendSMS(ctx context.Context, cfg notification.Config, to, body string) error {
	if !cfg.SMSConfigured() {
		return ports.ErrChannelNotConfigured
	}
	if to == "" {
		return ports.ErrChannelNotConfigured
	}

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", cfg.SMSFromNumber)
	form.Set("Body", body)

	endpoint := fmt.Sprintf(s.baseURL, url.PathEscape(cfg.SMSAccountSID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("sms request: %w", err)
	}
	req.SetBasicAuth(cfg.SMSAccountSID, cfg.SMSAuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("sms send: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("sms provider returned %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	return nil
}
