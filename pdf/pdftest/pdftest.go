// Package pdftest provides helpers for validating rendered PDF documents.
//
// Structure and page counts are read with pdfcpu, text is extracted with
// ledongthuc/pdf. Extracted text loses the spacing between separately
// positioned strings, so comparisons ignore whitespace.
package pdftest

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"
	"unicode"

	textpdf "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/stretchr/testify/require"
)

// PageCount validates the document and returns its page count
func PageCount(data []byte) (int, error) {
	n, err := api.PageCount(bytes.NewReader(data), model.NewDefaultConfiguration())
	if err != nil {
		return 0, fmt.Errorf("failed to count pages: %w", err)
	}
	return n, nil
}

// ExtractText returns the plain text of every page
func ExtractText(data []byte) (string, error) {
	r, err := textpdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract text: %w", err)
	}
	out, err := io.ReadAll(plain)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func squash(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// AssertPages verifies the document is valid and has the expected pages
func AssertPages(t *testing.T, data []byte, expected int) {
	t.Helper()
	n, err := PageCount(data)
	require.NoError(t, err)
	require.Equal(t, expected, n, "page count")
}

// AssertContainsText verifies that every expected string appears in the
// document, ignoring whitespace.
func AssertContainsText(t *testing.T, data []byte, expected ...string) {
	t.Helper()
	text, err := ExtractText(data)
	require.NoError(t, err)
	haystack := squash(text)
	for _, s := range expected {
		require.Contains(t, haystack, squash(s))
	}
}

// AssertTextOrder verifies that the strings appear in the given order
func AssertTextOrder(t *testing.T, data []byte, ordered ...string) {
	t.Helper()
	text, err := ExtractText(data)
	require.NoError(t, err)
	haystack := squash(text)
	last := -1
	for _, s := range ordered {
		idx := strings.Index(haystack, squash(s))
		require.GreaterOrEqual(t, idx, 0, "%q not found", s)
		require.Greater(t, idx, last, "%q out of order", s)
		last = idx
	}
}
