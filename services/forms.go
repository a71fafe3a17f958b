package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// ErrSubmissionInFlight is returned when the same session already has a
// submission of the same form on the wire. Mirrors the UI disabling its
// submit button for the duration of exactly one request.
var ErrSubmissionInFlight = errors.New("a submission for this form is already in progress")

// FormRelay delivers lead-form submissions to the external ingestion
// endpoint. Submissions without a file go out URL-encoded; a parts
// request with a photo goes out as multipart form data. The relay always
// includes the form-name discriminator and an empty honeypot field.
type FormRelay struct {
	Endpoint string
	Client   *http.Client

	mu       sync.Mutex
	inFlight map[string]bool
}

// NewFormRelay creates a relay posting to the given endpoint.
func NewFormRelay(endpoint string) *FormRelay {
	return &FormRelay{
		Endpoint: endpoint,
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
		inFlight: make(map[string]bool),
	}
}

// Submit posts the named form's fields as application/x-www-form-urlencoded.
// A non-2xx response or transport failure is returned as an error; the
// caller decides how to surface it. There is no retry.
func (r *FormRelay) Submit(ctx context.Context, formName, sessionID string, fields map[string]string) error {
	if err := r.begin(formName, sessionID); err != nil {
		return err
	}
	defer r.end(formName, sessionID)

	values := url.Values{}
	values.Set("form-name", formName)
	values.Set("bot-field", "")
	for name, value := range fields {
		values.Set(name, value)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.Endpoint, strings.NewReader(values.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return r.send(req)
}

// SubmitWithPhoto posts the named form as multipart form data, carrying
// the attached photo as a binary part named "photo".
func (r *FormRelay) SubmitWithPhoto(ctx context.Context, formName, sessionID string, fields map[string]string, photo *multipart.FileHeader) error {
	if err := r.begin(formName, sessionID); err != nil {
		return err
	}
	defer r.end(formName, sessionID)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if err := writer.WriteField("form-name", formName); err != nil {
		return fmt.Errorf("failed to write form field: %w", err)
	}
	if err := writer.WriteField("bot-field", ""); err != nil {
		return fmt.Errorf("failed to write form field: %w", err)
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return fmt.Errorf("failed to write form field: %w", err)
		}
	}

	file, err := photo.Open()
	if err != nil {
		return fmt.Errorf("failed to open photo attachment: %w", err)
	}
	defer file.Close()

	part, err := writer.CreateFormFile("photo", photo.Filename)
	if err != nil {
		return fmt.Errorf("failed to create photo part: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("failed to copy photo attachment: %w", err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.Endpoint, &body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return r.send(req)
}

func (r *FormRelay) send(req *http.Request) error {
	resp, err := r.Client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to deliver form submission: %w", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("form submission failed with status %d: %s", resp.StatusCode, string(responseBody))
	}

	return nil
}

// begin marks a form submission as in flight for the session, rejecting
// duplicates until end is called.
func (r *FormRelay) begin(formName, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := sessionID + "/" + formName
	if r.inFlight[key] {
		return ErrSubmissionInFlight
	}
	r.inFlight[key] = true
	return nil
}

func (r *FormRelay) end(formName, sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.inFlight, sessionID+"/"+formName)
}
