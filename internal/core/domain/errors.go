package domain

import "errors"

// UserMessage maps a known error to the text shown to the user. Unknown
// errors fall back to their raw message, matching the store contract: known
// machine codes get a friendly message, everything else passes through.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrDuplicateHabitName):
		return "A habit with this name already exists. Please choose a different name."
	case errors.Is(err, ErrDuplicateCompletion):
		return "This habit is already marked complete for today."
	case errors.Is(err, ErrHabitNameEmpty):
		return "Please enter a habit name."
	case errors.Is(err, ErrHabitReferenceBroken):
		return "Please fill in all required fields."
	case errors.Is(err, ErrHabitNotFound):
		return "Habit not found."
	case errors.Is(err, ErrInvalidCredentials):
		return "Invalid email or password."
	case errors.Is(err, ErrEmailAlreadyExists):
		return "An account with this email already exists."
	case err != nil:
		return err.Error()
	default:
		return ""
	}
}
