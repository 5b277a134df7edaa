package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Rachana0206/dream-frame-studio/logger"
)

const resendAPI = "https://api.resend.com/emails"

// ---- Resend payload ----

type resendEmail struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Html    string `json:"html"`
	Text    string `json:"text,omitempty"`
}

// ResendMailer sends mail through the Resend HTTP API. Without an API key it
// degrades to a logged mock send that always succeeds, so a missing or broken
// email setup can never cost the studio a booking.
type ResendMailer struct {
	APIKey  string
	From    string
	BaseURL string
	Client  *http.Client
}

func NewResendMailer(apiKey, from string) *ResendMailer {
	return &ResendMailer{
		APIKey:  apiKey,
		From:    from,
		BaseURL: resendAPI,
		Client:  http.DefaultClient,
	}
}

func (m *ResendMailer) Send(job Job) error {
	if m.APIKey == "" {
		logger.Log.Warn("[notify] Missing RESEND_API_KEY, mock email triggered.")
		fmt.Printf("\n--- MOCK EMAIL ---\nTo: %s\nSubject: %s\nBody:\n%s\n-------------------\n",
			job.To, job.Subject, job.HTML)
		return nil
	}

	payload := resendEmail{
		From:    m.From,
		To:      job.To,
		Subject: job.Subject,
		Html:    job.HTML,
	}

	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest(http.MethodPost, m.BaseURL, bytes.NewBuffer(body))
	req.Header.Set("Authorization", "Bearer "+m.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.Client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email via Resend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("Resend API error: %s", resp.Status)
	}

	logger.Log.Info(fmt.Sprintf("[notify] Email sent to %s via Resend.", job.To))
	return nil
}
