// Package prompt asks for contact form fields on an interactive terminal.
package prompt

import (
	"context"
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/bydcare/landing/internal/domain"
)

// Driver abstracts the terminal so collection logic can be tested without one.
type Driver interface {
	Input(ctx context.Context, message, help, def string) (string, error)
	TextArea(ctx context.Context, message, help, def string) (string, error)
}

// NewSurveyDriver returns a Driver backed by survey prompts on stdin/stdout.
func NewSurveyDriver() Driver {
	return surveyDriver{}
}

type surveyDriver struct{}

func (surveyDriver) Input(ctx context.Context, message, help, def string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	if err := survey.AskOne(&survey.Input{Message: message, Help: help, Default: def}, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (surveyDriver) TextArea(ctx context.Context, message, help, def string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	if err := survey.AskOne(&survey.Multiline{Message: message, Help: help, Default: def}, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return domain.ErrPromptAborted
	}
	return err
}

// CollectContactForm prompts for every contact field in display order,
// offering the value already in seed as the default answer.
// Blank answers are allowed; every field is optional.
func CollectContactForm(ctx context.Context, d Driver, seed domain.ContactForm) (domain.ContactForm, error) {
	form := seed
	for _, field := range domain.ContactFields {
		var (
			value string
			err   error
		)
		if field.IsTextArea() {
			value, err = d.TextArea(ctx, field.Label+":", "Optional. Finish with an empty line.", seed.Value(field.Key))
		} else {
			value, err = d.Input(ctx, field.Label+":", "Optional.", seed.Value(field.Key))
		}
		if err != nil {
			return domain.ContactForm{}, err
		}
		form = form.With(field.Key, value)
	}
	return form, nil
}
