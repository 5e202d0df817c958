package ports

// Confirmer is the user confirmation capability consumed by destructive
// or precondition-guarded operations. A declined confirmation or a
// cancelled prompt must result in a full no-op upstream.
// This is a driven port (implemented by adapters).
type Confirmer interface {
	// Confirm asks a yes/no question and reports the answer.
	Confirm(message string) bool

	// PromptText asks for a line of text with a proposed default. The
	// second return value is false when the user cancelled.
	PromptText(message, defaultValue string) (string, bool)

	// Notify surfaces a one-way message to the user.
	Notify(message string)
}
