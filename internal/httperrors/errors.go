// Copyright (c) 2025 Recicla
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package httperrors provides user-friendly error handling for HTTP requests.
// It classifies transport failures (timeout, DNS, connection refused, TLS,
// server errors) and renders troubleshooting hints instead of raw Go errors.
package httperrors

import (
	"errors"
	"net"
	"net/url"
	"strings"
	"syscall"

	"github.com/pterm/pterm"

	recerrors "recicla/cli/internal/errors"
)

// FormatNetworkError converts technical HTTP/network errors into user-friendly
// messages printed via pterm, and returns a wrapped error for logging.
func FormatNetworkError(err error, context string) error {
	if err == nil {
		return nil
	}

	displayErrorMessage(err, context)

	return recerrors.Wrap(recerrors.NetworkFailed, "network error", err)
}

// displayErrorMessage shows a formatted error message based on error type.
func displayErrorMessage(err error, context string) {
	errStr := err.Error()

	switch {
	case isTimeoutError(err):
		pterm.Printf("⏱  Connection timeout while %s\n", context)
		pterm.Println()
		pterm.Println("The server took too long to respond. This could mean:")
		pterm.Println("  • Slow internet connection")
		pterm.Println("  • The recycling API is under heavy load")
		pterm.Println()
		pterm.Println("Please try again in a few moments.")
	case isDNSError(err):
		pterm.Printf("🌐 Cannot resolve server address while %s\n", context)
		pterm.Println()
		pterm.Println("Please check:")
		pterm.Println("  • Your internet connection is working")
		pterm.Println("  • The configured API address (recicla config)")
	case isConnectionRefusedError(err):
		pterm.Printf("🚫 Connection refused while %s\n", context)
		pterm.Println()
		pterm.Println("The API is not accepting connections. This could mean:")
		pterm.Println("  • The service is down")
		pterm.Println("  • Wrong server address or port")
	case isTLSError(errStr):
		pterm.Printf("🔒 Secure connection failed while %s\n", context)
		pterm.Println()
		pterm.Println("Cannot establish a secure HTTPS connection. Check your")
		pterm.Println("system clock and any network proxy settings.")
	case isServerError(errStr):
		pterm.Printf("⚠  Server error while %s\n", context)
		pterm.Println()
		pterm.Println("The recycling API reported an internal error. This is not a")
		pterm.Println("problem with your setup; please try again in a few minutes.")
	default:
		pterm.Printf("❌ Cannot reach the recycling API while %s\n", context)
		pterm.Println()
		pterm.Println("Please check your internet connection and the configured")
		pterm.Println("API address.")
		if errStr != "" {
			short := errStr
			if len(short) > 100 {
				short = short[:100] + "..."
			}
			pterm.Debug.Printf("Technical details: %s\n", short)
		}
	}
	pterm.Println()
}

// isTimeoutError checks if the error is a timeout error.
func isTimeoutError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "deadline exceeded")
}

// isDNSError checks if the error is a DNS resolution error.
func isDNSError(err error) bool {
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

// isConnectionRefusedError checks if the error is a connection refused error.
func isConnectionRefusedError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return errors.Is(opErr.Err, syscall.ECONNREFUSED)
	}
	return strings.Contains(strings.ToLower(err.Error()), "connection refused")
}

// isTLSError checks if the error is a TLS error.
func isTLSError(errStr string) bool {
	lower := strings.ToLower(errStr)
	return strings.Contains(lower, "tls") ||
		strings.Contains(lower, "certificate") ||
		strings.Contains(lower, "handshake")
}

// isServerError checks if the error indicates a server-side problem (5xx).
func isServerError(errStr string) bool {
	lower := strings.ToLower(errStr)
	return strings.Contains(lower, "500") ||
		strings.Contains(lower, "502") ||
		strings.Contains(lower, "503") ||
		strings.Contains(lower, "504") ||
		strings.Contains(lower, "internal server error") ||
		strings.Contains(lower, "bad gateway") ||
		strings.Contains(lower, "service unavailable") ||
		strings.Contains(lower, "gateway timeout")
}

// ExtractHostFromURL extracts the hostname from a URL for error messages.
func ExtractHostFromURL(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil || u.Host == "" {
		return "server"
	}
	return u.Host
}
