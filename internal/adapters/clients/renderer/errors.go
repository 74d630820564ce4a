package renderer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/projectledger/internal/domain"
	"github.com/jsamuelsen11/projectledger/internal/platform/httpclient"
)

// maxDetailLen bounds the downstream text copied into a domain error.
const maxDetailLen = 512

// problemDetail is the subset of an RFC 9457 body we look at. Renderers that
// answer in plain text get their first line used as the detail instead.
type problemDetail struct {
	Detail string `json:"detail"`
}

// translateHTTPError maps a non-200 renderer response to a domain error.
// Rejections of the document itself (400, 413, 422) are the caller's fault;
// everything else means the renderer is unusable right now.
func translateHTTPError(resp *httpclient.Response) error {
	detail := readDetail(resp)
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch resp.StatusCode {
	case http.StatusBadRequest, http.StatusRequestEntityTooLarge, http.StatusUnprocessableEntity:
		return &domain.Error{Kind: domain.ErrValidation, Message: "renderer rejected the document: " + detail}
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("renderer: %s: %w", detail, domain.ErrForbidden)
	default:
		return fmt.Errorf("renderer: status %d: %s: %w", resp.StatusCode, detail, domain.ErrUnavailable)
	}
}

// translateTransportError maps failures where no response exists at all, such
// as an open circuit, a network error or an oversized document. Caller
// cancellation is passed through untouched.
func translateTransportError(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("renderer: %w: %w", domain.ErrUnavailable, err)
}

func readDetail(resp *httpclient.Response) string {
	if len(resp.Body) == 0 {
		return ""
	}

	ct := resp.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/problem+json") || strings.HasPrefix(ct, "application/json") {
		var pd problemDetail
		if json.Unmarshal(resp.Body, &pd) == nil && pd.Detail != "" {
			return truncate(pd.Detail)
		}
	}

	line, _, _ := strings.Cut(strings.TrimSpace(string(resp.Body)), "\n")
	return truncate(line)
}

func truncate(s string) string {
	if len(s) <= maxDetailLen {
		return s
	}
	s = s[:maxDetailLen]
	for !utf8.ValidString(s) {
		s = s[:len(s)-1]
	}
	return s
}
