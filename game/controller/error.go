package controller

// gameWarning is an error that represents a user error.
type gameWarning string

// Error returns the string of the error.
func (w gameWarning) Error() string {
	return string(w)
}

// warn converts an error from the board into a warning for the user.
func warn(err error) gameWarning {
	return gameWarning(err.Error())
}
