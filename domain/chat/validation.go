package chat

import (
	"strings"

	"chatcast/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type postInput struct {
	Username string `validate:"required,max=50"`
	Text     string `validate:"required,max=500"`
}

// ValidatedMessage holds the normalized fields of a post request.
type ValidatedMessage struct {
	RoomID   string
	UserID   string
	Username string
	Text     string
}

// ValidateSendMessage trims username and text, normalizes the room id and
// checks the length bounds (counted in characters, not bytes).
func ValidateSendMessage(req SendMessageRequest) (ValidatedMessage, error) {
	roomID, err := NormalizeRoomID(req.RoomID)
	if err != nil {
		return ValidatedMessage{}, err
	}
	input := postInput{
		Username: strings.TrimSpace(req.Username),
		Text:     strings.TrimSpace(req.Text),
	}
	if err := validate.Struct(input); err != nil {
		return ValidatedMessage{}, toValidationError(err)
	}
	return ValidatedMessage{
		RoomID:   roomID,
		UserID:   req.UserID,
		Username: input.Username,
		Text:     input.Text,
	}, nil
}

func toValidationError(err error) error {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return errors.Validation("%s", err.Error())
	}
	fe := fieldErrors[0]
	name := fe.Field()
	if name == "Text" {
		name = "Message text"
	}
	switch fe.Tag() {
	case "required":
		return errors.Validation("%s cannot be empty", name)
	case "max":
		return errors.Validation("%s cannot be longer than %s characters", name, fe.Param())
	default:
		return errors.Validation("%s is invalid", name)
	}
}
