package logging

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldOperation is the standardized structured logging key for the transform being run.
	FieldOperation = "operation"
	// FieldInputRunes records the size of the input text in runes.
	FieldInputRunes = "input_runes"
	// FieldOutputRunes records the size of the produced text in runes.
	FieldOutputRunes = "output_runes"
	// FieldSource records where the input text came from (args, file, stdin).
	FieldSource = "source"
	// FieldEventType tags warnings and errors with a stable machine-readable kind.
	FieldEventType = "event_type"
	// FieldErrorHint carries the next step a user should take after a failure.
	FieldErrorHint = "error_hint"
)
