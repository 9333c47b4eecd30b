package web

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/custodia-labs/profiltool/internal/core/domain"
)

// User-facing messages per category.
const (
	msgNotFound    = "profile not found; check the URL/code"
	msgDNS         = "DNS error; check the address and connectivity"
	msgConnection  = "cannot establish connection; check URL/firewall"
	fmtForbidden   = "access denied (HTTP %d); check permissions"
	fmtServer      = "server problem (HTTP %d); retry later"
	fmtHTTP        = "HTTP error %d"
	fmtTimeout     = "request timed out after %s seconds; check network/VPN"
	fmtUnknownType = "unexpected network error (%s); try again"
)

// ClassifyStatus maps an HTTP error status to a FetchError.
// It returns nil for statuses below 400.
func ClassifyStatus(status int, url string) *domain.FetchError {
	if status < http.StatusBadRequest {
		return nil
	}

	fe := &domain.FetchError{URL: url, StatusCode: status}
	switch {
	case status == http.StatusNotFound:
		fe.Category = domain.CategoryNotFound
		fe.Message = msgNotFound
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		fe.Category = domain.CategoryForbidden
		fe.Message = fmt.Sprintf(fmtForbidden, status)
	case status >= http.StatusInternalServerError:
		fe.Category = domain.CategoryServerError
		fe.Message = fmt.Sprintf(fmtServer, status)
	default:
		fe.Category = domain.CategoryHTTPError
		fe.Message = fmt.Sprintf(fmtHTTP, status)
	}
	return fe
}

// Classify maps a transport error to a FetchError. The order matters:
// DNS failures are also net.Errors, and timeouts are also OpErrors.
func Classify(err error, url string, timeout time.Duration) *domain.FetchError {
	if err == nil {
		return nil
	}

	fe := &domain.FetchError{URL: url, Timeout: timeout, Cause: err}

	var dnsErr *net.DNSError
	switch {
	case errors.As(err, &dnsErr) && !dnsErr.IsTimeout:
		fe.Category = domain.CategoryDNSError
		fe.Message = msgDNS

	case isTimeout(err):
		fe.Category = domain.CategoryTimeout
		fe.Message = fmt.Sprintf(fmtTimeout, formatSeconds(timeout))

	case errors.Is(err, context.Canceled):
		fe.Category = domain.CategoryUnknownNetworkError
		fe.Message = fmt.Sprintf(fmtUnknownType, "canceled")

	case isTLS(err):
		fe.Category = domain.CategoryUnknownNetworkError
		fe.Message = fmt.Sprintf(fmtUnknownType, TypeName(err))

	case isConnection(err):
		fe.Category = domain.CategoryConnectionError
		fe.Message = msgConnection

	default:
		fe.Category = domain.CategoryUnknownNetworkError
		fe.Message = fmt.Sprintf(fmtUnknownType, TypeName(err))
	}
	return fe
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isTLS(err error) bool {
	var (
		certErr     *tls.CertificateVerificationError
		recordErr   tls.RecordHeaderError
		authErr     x509.UnknownAuthorityError
		hostErr     x509.HostnameError
		invalidCert x509.CertificateInvalidError
	)
	return errors.As(err, &certErr) ||
		errors.As(err, &recordErr) ||
		errors.As(err, &authErr) ||
		errors.As(err, &hostErr) ||
		errors.As(err, &invalidCert)
}

func isConnection(err error) bool {
	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ECONNABORTED) ||
		errors.Is(err, syscall.EHOSTUNREACH) ||
		errors.Is(err, syscall.ENETUNREACH) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}

// TypeName returns the most specific Go type in err's chain, skipping the
// anonymous wrappers produced by errors.New and fmt.Errorf.
func TypeName(err error) string {
	name := strings.TrimPrefix(fmt.Sprintf("%T", err), "*")
	for e := err; e != nil; e = errors.Unwrap(e) {
		switch t := fmt.Sprintf("%T", e); t {
		case "*errors.errorString", "*fmt.wrapError", "*fmt.wrapErrors":
		default:
			name = strings.TrimPrefix(t, "*")
		}
	}
	return name
}

func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
}
