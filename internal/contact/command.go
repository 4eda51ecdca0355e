package contact

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	goerrors "github.com/goliatone/go-errors"
)

const submitMessageType = "site.contact.submit"

// SubmitCommand asks the contact service to store and announce a submission.
// Outcome is filled in by the handler once the command has run.
type SubmitCommand struct {
	Submission
	Outcome *Outcome `json:"-"`
}

// Type implements command.Message.
func (SubmitCommand) Type() string { return submitMessageType }

// Validate requires every field to be non-blank. Email format is not checked.
func (cmd SubmitCommand) Validate() error {
	sub := cmd.Submission
	err := validation.ValidateStruct(&sub,
		validation.Field(&sub.Name, validation.By(notBlank("name"))),
		validation.Field(&sub.Email, validation.By(notBlank("email"))),
		validation.Field(&sub.Subject, validation.By(notBlank("subject"))),
		validation.Field(&sub.Message, validation.By(notBlank("message"))),
	)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryValidation, MissingFieldsMessage).
			WithTextCode(TextCodeValidationFailed)
	}
	return nil
}

func notBlank(field string) validation.RuleFunc {
	return func(value any) error {
		text, _ := value.(string)
		if strings.TrimSpace(text) == "" {
			return validation.NewError("site.contact."+field+"_required", field+" is required")
		}
		return nil
	}
}
