package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano

// EncodeToken creates an opaque token for the position of a row in ledger
// order: transaction date, creation time, ID.
func EncodeToken(date time.Time, createdAt time.Time, id string) string {
	tokenStr := strings.Join([]string{date.Format(timeFormat), createdAt.Format(timeFormat), id}, "|")
	return base64.RawURLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses a token made by EncodeToken.
func DecodeToken(token string) (time.Time, time.Time, string, error) {
	parts, err := split(token, 3)
	if err != nil {
		return time.Time{}, time.Time{}, "", err
	}

	date, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return time.Time{}, time.Time{}, "", fmt.Errorf("invalid pagination token format (date parse): %w", err)
	}
	createdAt, err := time.Parse(timeFormat, parts[1])
	if err != nil {
		return time.Time{}, time.Time{}, "", fmt.Errorf("invalid pagination token format (created_at parse): %w", err)
	}
	if parts[2] == "" {
		return time.Time{}, time.Time{}, "", fmt.Errorf("invalid pagination token format (empty id)")
	}
	return date, createdAt, parts[2], nil
}

// EncodeTimeToken creates a token for lists ordered by a single timestamp
// with an ID tie-break.
func EncodeTimeToken(ts time.Time, id string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(ts.Format(timeFormat) + "|" + id))
}

// DecodeTimeToken parses a token made by EncodeTimeToken.
func DecodeTimeToken(token string) (time.Time, string, error) {
	parts, err := split(token, 2)
	if err != nil {
		return time.Time{}, "", err
	}
	ts, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (timestamp parse): %w", err)
	}
	return ts, parts[1], nil
}

func split(token string, n int) ([]string, error) {
	decoded, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decoded), "|", n)
	if len(parts) != n {
		return nil, fmt.Errorf("invalid pagination token format (split)")
	}
	return parts, nil
}
