package ports

// Confirmer asks the user a yes/no question
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer
type ConfirmFunc func(prompt string) bool

// Confirm calls f(prompt)
func (f ConfirmFunc) Confirm(prompt string) bool {
	return f(prompt)
}

// Approved is a Confirmer for callers that already collected the answer
// (for example through a confirmation view) and always says yes.
var Approved Confirmer = ConfirmFunc(func(string) bool { return true })
