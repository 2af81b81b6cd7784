// Package types provides type definitions for structured data used throughout the resume-matcher system.
package types

import (
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// AnalyzeRequest is the body of a single analysis request.
type AnalyzeRequest struct {
	ResumeText     string `json:"resume_text" validate:"required"`
	JobDescription string `json:"job_description" validate:"required"`
}

// BatchAnalyzeRequest analyses several résumés against one job description.
type BatchAnalyzeRequest struct {
	JobDescription string   `json:"job_description" validate:"required"`
	Resumes        []string `json:"resumes" validate:"required,min=1,max=50,dive,required"`
}

// AnalyzeResponse wraps an AnalysisResult with request bookkeeping.
type AnalyzeResponse struct {
	AnalysisID uuid.UUID       `json:"analysis_id"`
	Cached     bool            `json:"cached"`
	Result     *AnalysisResult `json:"result"`
}

// BatchAnalyzeResponse holds results in request order.
type BatchAnalyzeResponse struct {
	AnalysisID uuid.UUID         `json:"analysis_id"`
	Results    []*AnalysisResult `json:"results"`
}

// Limits bounds the size of text accepted by the outer surfaces.
type Limits struct {
	MinResumeChars int `mapstructure:"min_resume_chars" json:"min_resume_chars"`
	MinJobChars    int `mapstructure:"min_job_chars" json:"min_job_chars"`
	MaxTextChars   int `mapstructure:"max_text_chars" json:"max_text_chars"`
}

// ValidationError reports a request field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	return newValidator().Struct(r)
}

// ValidateWithLimits runs struct validation and then the configured length limits.
func (r *AnalyzeRequest) ValidateWithLimits(limits Limits) error {
	if err := r.Validate(); err != nil {
		return fromValidatorError(err)
	}
	if err := checkLength("resume_text", r.ResumeText, limits.MinResumeChars, limits.MaxTextChars); err != nil {
		return err
	}
	return checkLength("job_description", r.JobDescription, limits.MinJobChars, limits.MaxTextChars)
}

// Validate validates the BatchAnalyzeRequest using the validator.
func (r *BatchAnalyzeRequest) Validate() error {
	return newValidator().Struct(r)
}

// ValidateWithLimits runs struct validation and the length limits for every résumé.
func (r *BatchAnalyzeRequest) ValidateWithLimits(limits Limits) error {
	if err := r.Validate(); err != nil {
		return fromValidatorError(err)
	}
	if err := checkLength("job_description", r.JobDescription, limits.MinJobChars, limits.MaxTextChars); err != nil {
		return err
	}
	for i, resume := range r.Resumes {
		if err := checkLength(fmt.Sprintf("resumes[%d]", i), resume, limits.MinResumeChars, limits.MaxTextChars); err != nil {
			return err
		}
	}
	return nil
}

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return validate
}

func checkLength(field, text string, minChars, maxChars int) error {
	n := utf8.RuneCountInString(text)
	if minChars > 0 && n < minChars {
		return &ValidationError{Field: field, Message: fmt.Sprintf("must be at least %d characters", minChars)}
	}
	if maxChars > 0 && n > maxChars {
		return &ValidationError{Field: field, Message: fmt.Sprintf("must be at most %d characters", maxChars)}
	}
	return nil
}

// fromValidatorError converts the first validator failure into a ValidationError.
func fromValidatorError(err error) error {
	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		fe := verrs[0]
		return &ValidationError{Field: fe.Field(), Message: fmt.Sprintf("failed on '%s' rule", fe.Tag())}
	}
	return &ValidationError{Field: "(body)", Message: err.Error()}
}
