package contest

import (
	"fmt"
	"regexp"
	"strings"

	"winterfieldday/logkeeper/internal/constants"
)

// categoryPattern: transmitter count (no leading zero) followed by one
// operating-class letter. H=Home, I=Indoor, O=Outdoor, M=Mobile.
var categoryPattern = regexp.MustCompile(`^[1-9]\d*[HIOM]$`)

// digitsOnlyPattern recognizes a category token whose digits are fine
// but whose class letter is wrong, so the error can name the letter.
var digitsWithLetterPattern = regexp.MustCompile(`^[1-9]\d*[A-Z]$`)

// InvalidExchangeError reports why an exchange failed validation.
// Reason is a stable machine token, Message is operator-facing.
type InvalidExchangeError struct {
	Reason  string
	Message string
}

func (e *InvalidExchangeError) Error() string { return e.Message }

const (
	ReasonEmpty          = "empty"
	ReasonTokenCount     = "token_count"
	ReasonBadCategory    = "bad_category"
	ReasonBadClassLetter = "bad_class_letter"
	ReasonUnknownSection = "unknown_section"
)

// ValidateExchange checks a two-token contest exchange ("2I EPA").
// It returns nil for a valid exchange and an *InvalidExchangeError
// describing the first failing rule otherwise. Pure function.
func ValidateExchange(exchange string) error {
	if strings.TrimSpace(exchange) == "" {
		return &InvalidExchangeError{
			Reason:  ReasonEmpty,
			Message: "Exchange is required",
		}
	}

	parts := strings.Fields(strings.ToUpper(strings.TrimSpace(exchange)))
	if len(parts) != 2 {
		return &InvalidExchangeError{
			Reason:  ReasonTokenCount,
			Message: "Exchange must have exactly 2 parts: category and section (e.g., '2M EPA', '1H GA')",
		}
	}

	category, section := parts[0], parts[1]

	if !categoryPattern.MatchString(category) {
		if digitsWithLetterPattern.MatchString(category) {
			return &InvalidExchangeError{
				Reason:  ReasonBadClassLetter,
				Message: fmt.Sprintf("Invalid class letter '%c'. Must be H (Home), I (Indoor), O (Outdoor), or M (Mobile)", category[len(category)-1]),
			}
		}
		return &InvalidExchangeError{
			Reason:  ReasonBadCategory,
			Message: fmt.Sprintf("Invalid category '%s'. Must be number + class letter (H/I/O/M) like '1H', '2I', '3O', '4M'", category),
		}
	}

	if !IsKnownSection(section) {
		return &InvalidExchangeError{
			Reason:  ReasonUnknownSection,
			Message: fmt.Sprintf("Invalid location '%s'. Must be a valid ARRL/RAC section, 'MX' (Mexico), or 'DX' (other)", section),
		}
	}

	return nil
}

// ExtractSection pulls the section code out of a received exchange,
// taking the last whitespace token and checking membership. Unlike
// ValidateExchange it tolerates a malformed category, so a section can
// be backfilled from partially bad input. The second return is false
// when no plausible section exists.
func ExtractSection(exchangeReceived string) (string, bool) {
	parts := strings.Fields(exchangeReceived)
	if len(parts) < 2 {
		return "", false
	}

	candidate := strings.ToUpper(parts[len(parts)-1])
	if IsKnownSection(candidate) {
		return candidate, true
	}
	return "", false
}

// IsKnownSection reports membership in the valid-section set plus the
// MX/DX special tokens.
func IsKnownSection(section string) bool {
	if section == constants.SectionMexico || section == constants.SectionDX {
		return true
	}
	_, ok := constants.ValidSections[section]
	return ok
}
