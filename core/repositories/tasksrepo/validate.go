package tasksrepo

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Field limits for task input.
const (
	MaxTitleLen       = 200
	MaxDescriptionLen = 2000
	MaxAssignedToLen  = 100
	MaxTags           = 10
	MaxTagLen         = 50
)

// FieldError describes a single validation violation.
type FieldError struct {
	Field   string
	Rule    string
	Message string
}

// ValidationError collects every violation found in one input so clients
// see the full picture in a single response.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) add(field, rule, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Rule: rule, Message: message})
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// NormalizeTags deduplicates case-insensitively keeping the first
// occurrence's casing and first-seen order. The result of a second pass is
// identical to the first.
func NormalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))

	for _, tag := range tags {
		key := strings.ToLower(tag)
		if seen[key] {
			continue
		}
		seen[key] = true
		normalized = append(normalized, tag)
	}

	return normalized
}

// validateTags checks the raw list before deduplication, so an oversized
// input is rejected even when duplicates would collapse below the limit.
func validateTags(verr *ValidationError, tags []string) []string {
	if len(tags) > MaxTags {
		verr.add("tags", "too_many_tags", fmt.Sprintf("at most %d tags allowed", MaxTags))
	}
	for _, tag := range tags {
		if utf8.RuneCountInString(tag) > MaxTagLen {
			verr.add("tags", "tag_too_long", fmt.Sprintf("tag %q exceeds %d characters", tag, MaxTagLen))
		}
	}
	return NormalizeTags(tags)
}

// ValidateCreate checks a create input against the task field rules and
// returns the normalized input: trimmed title, defaulted priority,
// deduplicated tags. All violations are reported together.
func ValidateCreate(nt CreateTask, now time.Time) (CreateTask, error) {
	verr := &ValidationError{}

	nt.Title = strings.TrimSpace(nt.Title)
	switch {
	case nt.Title == "":
		verr.add("title", "required", "title is required")
	case utf8.RuneCountInString(nt.Title) > MaxTitleLen:
		verr.add("title", "too_long", fmt.Sprintf("title exceeds %d characters", MaxTitleLen))
	}

	if nt.Description != nil && utf8.RuneCountInString(*nt.Description) > MaxDescriptionLen {
		verr.add("description", "too_long", fmt.Sprintf("description exceeds %d characters", MaxDescriptionLen))
	}

	if nt.Priority == "" {
		nt.Priority = string(PriorityMedium)
	} else if _, err := ParsePriority(nt.Priority); err != nil {
		verr.add("priority", "invalid_enum", err.Error())
	}

	if nt.AssignedTo != nil && utf8.RuneCountInString(*nt.AssignedTo) > MaxAssignedToLen {
		verr.add("assigned_to", "too_long", fmt.Sprintf("assigned_to exceeds %d characters", MaxAssignedToLen))
	}

	// A due date strictly before the clock sample is rejected; equal to now
	// passes. Updates carry no such restriction.
	if nt.DueDate != nil && nt.DueDate.Before(now) {
		verr.add("due_date", "past_due_date", "due_date must not be in the past")
	}

	nt.Tags = validateTags(verr, nt.Tags)

	return nt, verr.orNil()
}

// ValidateUpdate checks a partial update. Only fields that are present are
// validated; explicit nulls on non-nullable fields are violations, while
// null tags normalize to an empty list.
func ValidateUpdate(ut UpdateTask) (UpdateTask, error) {
	verr := &ValidationError{}

	if ut.Title.Set {
		if !ut.Title.Valid {
			verr.add("title", "required", "title cannot be null")
		} else {
			ut.Title.Value = strings.TrimSpace(ut.Title.Value)
			switch {
			case ut.Title.Value == "":
				verr.add("title", "required", "title cannot be empty")
			case utf8.RuneCountInString(ut.Title.Value) > MaxTitleLen:
				verr.add("title", "too_long", fmt.Sprintf("title exceeds %d characters", MaxTitleLen))
			}
		}
	}

	if ut.Description.Set && ut.Description.Valid && utf8.RuneCountInString(ut.Description.Value) > MaxDescriptionLen {
		verr.add("description", "too_long", fmt.Sprintf("description exceeds %d characters", MaxDescriptionLen))
	}

	if ut.Status.Set {
		if !ut.Status.Valid {
			verr.add("status", "invalid_enum", "status cannot be null")
		} else if _, err := ParseStatus(ut.Status.Value); err != nil {
			verr.add("status", "invalid_enum", err.Error())
		}
	}

	if ut.Priority.Set {
		if !ut.Priority.Valid {
			verr.add("priority", "invalid_enum", "priority cannot be null")
		} else if _, err := ParsePriority(ut.Priority.Value); err != nil {
			verr.add("priority", "invalid_enum", err.Error())
		}
	}

	if ut.AssignedTo.Set && ut.AssignedTo.Valid && utf8.RuneCountInString(ut.AssignedTo.Value) > MaxAssignedToLen {
		verr.add("assigned_to", "too_long", fmt.Sprintf("assigned_to exceeds %d characters", MaxAssignedToLen))
	}

	if ut.Tags.Set {
		if !ut.Tags.Valid {
			ut.Tags.Valid = true
			ut.Tags.Value = []string{}
		} else {
			ut.Tags.Value = validateTags(verr, ut.Tags.Value)
		}
	}

	return ut, verr.orNil()
}
