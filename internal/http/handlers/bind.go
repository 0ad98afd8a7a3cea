package handlers

import (
	"encoding/json"
	"errors"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// BindJSON decodes and validates a request body. On failure it writes a 400
// with a message naming the offending fields and tells the caller to stop.
func BindJSON(ctx *gin.Context, out interface{}) bool {
	err := ctx.ShouldBindJSON(out)

	if err != nil {
		RespondBadRequest(ctx, bindErrorMessage(err))

		return false
	}

	return true
}

func bindErrorMessage(err error) string {
	// validator errors (struct binding tags)

	var validatorErrors validator.ValidationErrors

	if errors.As(err, &validatorErrors) {
		parts := make([]string, 0, len(validatorErrors))

		for _, fieldError := range validatorErrors {
			parts = append(parts, lowerFirst(fieldError.Field())+" "+validationMessage(fieldError.Tag(), fieldError.Param()))
		}

		return strings.Join(parts, "; ")
	}

	// in the event of bad json

	var syntaxError *json.SyntaxError

	if errors.As(err, &syntaxError) {
		return "Invalid JSON body"
	}

	// in the event of a type mismatch

	var unmatchedTypeError *json.UnmarshalTypeError

	if errors.As(err, &unmatchedTypeError) {
		field := strings.TrimSpace(unmatchedTypeError.Field)

		if field == "" {
			return "Invalid JSON body"
		}

		return field + " must be of type " + unmatchedTypeError.Type.String()
	}

	// final fallback if the error could not be deciphered
	return "Invalid request body"
}

func validationMessage(rule, param string) string {
	switch rule {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + param
	case "max":
		return "must be at most " + param
	case "oneof":
		return "must be one of " + strings.ReplaceAll(param, " ", ", ")
	default:
		if param != "" {
			return "failed " + rule + " validation (" + param + ")"
		}
		return "failed " + rule + " validation"
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}

	r := []rune(s)
	r[0] = unicode.ToLower(r[0])

	return string(r)
}
