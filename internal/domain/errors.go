package domain

import "errors"

var (
	// ErrEmptyName is returned when a submitted player name is blank.
	// Clients surface it as a prompt, not a fault.
	ErrEmptyName = errors.New("player name must not be empty")
	// ErrEmptyTask is returned when a logged eco-task has no description.
	ErrEmptyTask = errors.New("task description must not be empty")
	// ErrNoSelection indicates a confirmation without a selected option.
	ErrNoSelection = errors.New("no option selected")
	// ErrOptionNotFound indicates a selected option is not part of the current question.
	ErrOptionNotFound = errors.New("option not part of the current question")
	// ErrNoQuestion indicates a question-scoped action outside a quiz run.
	ErrNoQuestion = errors.New("no question is active")
	// ErrQuizCompleted indicates an advance past the end of the question order.
	ErrQuizCompleted = errors.New("quiz already completed")
	// ErrNotCompleted indicates a certificate request before finishing a run.
	ErrNotCompleted = errors.New("quiz not completed yet")
	// ErrBankNotFound indicates the question bank could not be loaded.
	ErrBankNotFound = errors.New("question bank not found")
	// ErrSessionNotFound is returned when a player session has not been initialized.
	ErrSessionNotFound = errors.New("player session not found")
)
