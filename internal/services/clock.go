package services

import (
	"strings"
	"time"

	apperrors "workbase.com/workbase/internal/errors"
)

func utcNow() time.Time {
	return time.Now().UTC()
}

func requireText(value, field string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", apperrors.BadRequest(field + " is required")
	}
	return value, nil
}
