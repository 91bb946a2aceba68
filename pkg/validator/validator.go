package validator

import (
	"fmt"
	"mime"
	"regexp"
	"strings"
	"time"
)

const (
	minEmailLength      = 3
	maxEmailLength      = 255
	minPasswordLength   = 8
	maxPasswordLength   = 128
	maxProjectNameLen   = 255
	maxBlueprintNameLen = 255
	maxDescriptionLen   = 2000
	maxLocationLen      = 255
	maxContentTypeLen   = 255
	maxFileSizeBytes    = int64(500 * 1024 * 1024)
	asciiControlStart   = 32
	asciiDelete         = 127

	errEmailEmptyFmt             = "email cannot be empty"
	errEmailLengthFmt            = "email must be between %d and %d characters"
	errEmailInvalidFmt           = "invalid email format"
	errPasswordMinLengthFmt      = "password must be at least %d characters"
	errPasswordMaxLengthFmt      = "password must not exceed %d characters"
	errProjectNameEmptyFmt       = "project name cannot be empty"
	errProjectNameMaxLengthFmt   = "project name must not exceed %d characters"
	errDescriptionMaxLengthFmt   = "description must not exceed %d characters"
	errLocationMaxLengthFmt      = "location must not exceed %d characters"
	errBlueprintNameEmptyFmt     = "blueprint name cannot be empty"
	errBlueprintNameMaxLengthFmt = "blueprint name must not exceed %d characters"
	errBlueprintNamePathSepFmt   = "blueprint name cannot contain path separators"
	errBlueprintNameControlFmt   = "blueprint name cannot contain control characters"
	errContentTypeMaxLengthFmt   = "content type must not exceed %d characters"
	errContentTypeInvalidFmt     = "invalid content type"
	errFileSizeNegativeFmt       = "file size cannot be negative"
	errFileSizeMaxFmt            = "file size exceeds maximum of %d bytes"
	errBudgetNegativeFmt         = "budget cannot be negative"
	errDateRangeFmt              = "end date cannot be before start date"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func Email(email string) error {
	if email == "" {
		return fmt.Errorf(errEmailEmptyFmt)
	}

	if len(email) < minEmailLength || len(email) > maxEmailLength {
		return fmt.Errorf(errEmailLengthFmt, minEmailLength, maxEmailLength)
	}

	if !emailRegex.MatchString(email) {
		return fmt.Errorf(errEmailInvalidFmt)
	}

	return nil
}

func Password(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf(errPasswordMinLengthFmt, minPasswordLength)
	}

	if len(password) > maxPasswordLength {
		return fmt.Errorf(errPasswordMaxLengthFmt, maxPasswordLength)
	}

	return nil
}

func ProjectName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf(errProjectNameEmptyFmt)
	}

	if len(name) > maxProjectNameLen {
		return fmt.Errorf(errProjectNameMaxLengthFmt, maxProjectNameLen)
	}

	return nil
}

func Description(description string) error {
	if len(description) > maxDescriptionLen {
		return fmt.Errorf(errDescriptionMaxLengthFmt, maxDescriptionLen)
	}
	return nil
}

func Location(location string) error {
	if len(location) > maxLocationLen {
		return fmt.Errorf(errLocationMaxLengthFmt, maxLocationLen)
	}
	return nil
}

func BlueprintName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf(errBlueprintNameEmptyFmt)
	}

	if len(name) > maxBlueprintNameLen {
		return fmt.Errorf(errBlueprintNameMaxLengthFmt, maxBlueprintNameLen)
	}

	if strings.ContainsAny(name, "/\\") {
		return fmt.Errorf(errBlueprintNamePathSepFmt)
	}

	for _, r := range name {
		if r < asciiControlStart || r == asciiDelete {
			return fmt.Errorf(errBlueprintNameControlFmt)
		}
	}

	return nil
}

// SanitizeContentType parses and normalizes a MIME type, rejecting anything
// that does not parse as a media type.
func SanitizeContentType(contentType string) (string, error) {
	if contentType == "" {
		return "", nil
	}

	if len(contentType) > maxContentTypeLen {
		return "", fmt.Errorf(errContentTypeMaxLengthFmt, maxContentTypeLen)
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", fmt.Errorf(errContentTypeInvalidFmt)
	}

	return mediaType, nil
}

func FileSize(sizeBytes int64) error {
	if sizeBytes < 0 {
		return fmt.Errorf(errFileSizeNegativeFmt)
	}

	if sizeBytes > maxFileSizeBytes {
		return fmt.Errorf(errFileSizeMaxFmt, maxFileSizeBytes)
	}

	return nil
}

func Budget(budget float64) error {
	if budget < 0 {
		return fmt.Errorf(errBudgetNegativeFmt)
	}
	return nil
}

func DateRange(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return fmt.Errorf(errDateRangeFmt)
	}
	return nil
}
