package core

import (
	"net/http"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

const (
	EntryErrorBadInput            = "ENTRY_BAD_INPUT"
	EntryErrorUnknownPropertyKind = "ENTRY_UNKNOWN_PROPERTY_KIND"
	EntryErrorInternal            = "ENTRY_INTERNAL_ERROR"
)

func unknownPropertyKindError(kind PropertyKind) error {
	return goerrors.New("core: unknown property kind: "+string(kind), goerrors.CategoryBadInput).
		WithCode(http.StatusBadRequest).
		WithTextCode(EntryErrorUnknownPropertyKind).
		WithMetadata(map[string]any{"kind": string(kind)})
}

func dependencyError(message string) error {
	return goerrors.New(message, goerrors.CategoryInternal).
		WithCode(http.StatusInternalServerError).
		WithTextCode(EntryErrorInternal)
}

func entryErrorMapper(err error) *goerrors.Error {
	if err == nil {
		return nil
	}

	var richErr *goerrors.Error
	if goerrors.As(err, &richErr) {
		return ensureEntryErrorEnvelope(richErr)
	}

	msg := strings.ToLower(strings.TrimSpace(err.Error()))
	switch {
	case strings.Contains(msg, "unknown property kind"):
		return ensureEntryErrorEnvelope(
			goerrors.New(err.Error(), goerrors.CategoryBadInput).
				WithTextCode(EntryErrorUnknownPropertyKind),
		)
	case strings.Contains(msg, "required"), strings.Contains(msg, "invalid"):
		return ensureEntryErrorEnvelope(
			goerrors.New(err.Error(), goerrors.CategoryBadInput).
				WithTextCode(EntryErrorBadInput),
		)
	}

	mapped := goerrors.MapToError(err, goerrors.DefaultErrorMappers())
	return ensureEntryErrorEnvelope(mapped)
}

func ensureEntryErrorEnvelope(err *goerrors.Error) *goerrors.Error {
	if err == nil {
		return nil
	}
	if err.Code == 0 {
		err.Code = entryHTTPStatus(err.Category)
	}
	if strings.TrimSpace(err.TextCode) == "" {
		err.TextCode = defaultEntryTextCode(err.Category)
	}
	if err.Category == goerrors.CategoryInternal && strings.TrimSpace(err.Message) == "" {
		err.Message = "An unexpected error occurred"
	}
	return err
}

func defaultEntryTextCode(category goerrors.Category) string {
	switch category {
	case goerrors.CategoryBadInput, goerrors.CategoryValidation:
		return EntryErrorBadInput
	default:
		return EntryErrorInternal
	}
}

func entryHTTPStatus(category goerrors.Category) int {
	switch category {
	case goerrors.CategoryBadInput, goerrors.CategoryValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
