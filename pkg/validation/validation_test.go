package validation_test

import (
	"errors"
	"strings"
	"testing"

	"go-resume-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statusInput struct {
	Status string `validate:"required,resume_status"`
	Reason string `validate:"required,not_blank"`
}

type contentInput struct {
	Content      string `validate:"required,min=150"`
	ApplicantAge int    `validate:"max=120"`
}

func TestResumeStatusValidator(t *testing.T) {
	v := validation.New()

	for _, status := range []string{"APPLY", "DROP", "INTERVIEW1", "INTERVIEW2", "FINAL_PASS"} {
		assert.NoError(t, v.Struct(statusInput{Status: status, Reason: "ok"}), status)
	}

	err := v.Struct(statusInput{Status: "HIRED", Reason: "ok"})
	require.Error(t, err)
	msgs := validation.FormatValidationErrors(err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "Status: must be one of: APPLY, DROP, INTERVIEW1, INTERVIEW2, FINAL_PASS", msgs[0])

	// lowercase is not accepted
	assert.Error(t, v.Struct(statusInput{Status: "apply", Reason: "ok"}))
}

func TestNotBlankValidator(t *testing.T) {
	v := validation.New()

	err := v.Struct(statusInput{Status: "DROP", Reason: "   "})
	require.Error(t, err)
	assert.Equal(t, []string{"Reason: is required"}, validation.FormatValidationErrors(err))
}

func TestMinCountsCharacters(t *testing.T) {
	v := validation.New()

	// 150 multi-byte characters are 450 bytes but still exactly the minimum
	assert.NoError(t, v.Struct(contentInput{Content: strings.Repeat("가", 150)}))

	err := v.Struct(contentInput{Content: strings.Repeat("a", 149), ApplicantAge: 130})
	require.Error(t, err)
	msgs := validation.FormatValidationErrors(err)
	assert.Equal(t, []string{
		"Content: must be at least 150 characters",
		"Applicant Age: must be at most 120",
	}, msgs)
}

func TestFormatNonValidationError(t *testing.T) {
	msgs := validation.FormatValidationErrors(errors.New("boom"))
	assert.Equal(t, []string{"boom"}, msgs)
}
