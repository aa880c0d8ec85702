package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
)

// StatusError is returned for any non-2xx answer.
type StatusError struct {
	Url     string
	Status  string
	Code    int
	Snippet string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http %s: %s: %s", e.Url, e.Status, e.Snippet)
}

// Part is one multipart section. A part with a FileName is written as a file.
type Part struct {
	Field       string
	FileName    string
	ContentType string
	Data        []byte
}

func Get[r any](h *http.Client, ctx context.Context, url string, headers map[string]string) (r, error) {

	var response r

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return response, err
	}

	for key, val := range headers {
		req.Header.Add(key, val)
	}

	return do[r](h, req)
}

func PostMultipart[r any](h *http.Client, ctx context.Context, url string, parts []Part, headers map[string]string) (r, error) {

	var response r

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for _, p := range parts {
		if err := writePart(w, p); err != nil {
			return response, fmt.Errorf("write part %q: %w", p.Field, err)
		}
	}
	if err := w.Close(); err != nil {
		return response, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return response, err
	}

	for key, val := range headers {
		req.Header.Add(key, val)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	return do[r](h, req)
}

func writePart(w *multipart.Writer, p Part) error {
	if p.FileName == "" {
		return w.WriteField(p.Field, string(p.Data))
	}

	contentType := p.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, escapeQuotes(p.Field), escapeQuotes(p.FileName)))
	h.Set("Content-Type", contentType)

	fw, err := w.CreatePart(h)
	if err != nil {
		return err
	}
	_, err = fw.Write(p.Data)
	return err
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

func do[r any](h *http.Client, req *http.Request) (r, error) {

	var response r

	resp, err := h.Do(req)
	if err != nil {
		return response, err
	}
	defer resp.Body.Close()

	responseBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return response, err
	}

	url := req.URL.String()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return response, &StatusError{
			Url:     url,
			Status:  resp.Status,
			Code:    resp.StatusCode,
			Snippet: snippet(responseBytes),
		}
	}

	if err := json.Unmarshal(responseBytes, &response); err != nil {
		return response, fmt.Errorf("unmarshal %s: %w: %s", url, err, snippet(responseBytes))
	}

	return response, nil
}

func snippet(b []byte) string {
	s := strings.TrimSpace(string(b))
	if len(s) > 8<<10 {
		s = s[:8<<10]
	}
	return s
}
