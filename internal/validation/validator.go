package validation

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"arctic-chronicler/internal/domain"
)

const (
	MaxNameLength   = 64
	MaxAnswerLength = 256
	MaxChatLength   = 500
	maxAvatarLength = 16
)

var (
	missionIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{0,63}$`)
	rolePattern      = regexp.MustCompile(`^[a-z]{1,32}$`)
	layerPattern     = regexp.MustCompile(`^[a-z0-9]{1,16}$`)
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateCreateExpedition checks the character form. Whether role and avatar
// exist in the catalog is decided by the expedition service.
func (v *Validator) ValidateCreateExpedition(name, role, avatar string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		errors = append(errors, domain.NewMissingFieldError("name"))
	} else if n := utf8.RuneCountInString(trimmed); n > MaxNameLength {
		errors = append(errors, domain.NewOutOfRangeError("name", n, 1, MaxNameLength))
	}

	if strings.TrimSpace(role) == "" {
		errors = append(errors, domain.NewMissingFieldError("role"))
	} else if !rolePattern.MatchString(role) {
		errors = append(errors, domain.NewInvalidFormatError("role", role))
	}

	if utf8.RuneCountInString(avatar) > maxAvatarLength {
		errors = append(errors, domain.NewInvalidFormatError("avatar", avatar))
	}

	return errors
}

func (v *Validator) ValidateMissionID(missionID string) domain.ValidationErrors {
	if strings.TrimSpace(missionID) == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("mission_id")}
	}
	if !missionIDPattern.MatchString(missionID) {
		return domain.ValidationErrors{domain.NewInvalidFormatError("mission_id", missionID)}
	}
	return nil
}

// ValidateAnswer rejects empty submissions. Non-numeric text is allowed and is judged incorrect later.
func (v *Validator) ValidateAnswer(answer string) domain.ValidationErrors {
	if strings.TrimSpace(answer) == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("answer")}
	}
	if n := utf8.RuneCountInString(answer); n > MaxAnswerLength {
		return domain.ValidationErrors{domain.NewOutOfRangeError("answer", n, 1, MaxAnswerLength)}
	}
	return nil
}

func (v *Validator) ValidateChatText(text string) domain.ValidationErrors {
	if strings.TrimSpace(text) == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("text")}
	}
	if n := utf8.RuneCountInString(text); n > MaxChatLength {
		return domain.ValidationErrors{domain.NewOutOfRangeError("text", n, 1, MaxChatLength)}
	}
	return nil
}

// ParseYear converts a path parameter into a year.
func (v *Validator) ParseYear(raw string) (int, domain.ValidationErrors) {
	if strings.TrimSpace(raw) == "" {
		return 0, domain.ValidationErrors{domain.NewMissingFieldError("year")}
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.ValidationErrors{domain.NewInvalidFormatError("year", raw)}
	}
	return year, nil
}

// ParseLayers splits a comma separated layer list, dropping blanks and duplicates.
func (v *Validator) ParseLayers(raw string) ([]string, domain.ValidationErrors) {
	var (
		layers []string
		errors domain.ValidationErrors
	)
	seen := make(map[string]bool)
	for _, part := range strings.Split(raw, ",") {
		layer := strings.ToLower(strings.TrimSpace(part))
		if layer == "" || seen[layer] {
			continue
		}
		if !layerPattern.MatchString(layer) {
			errors = append(errors, domain.NewInvalidFormatError("layers", layer))
			continue
		}
		seen[layer] = true
		layers = append(layers, layer)
	}
	return layers, errors
}
