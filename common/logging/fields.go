package logging

const (
	// FieldError can be used instead of Err(err) if you have only the error message string.
	FieldError = "err"

	FieldComponent = "component"

	FieldAccount   = "account"
	FieldAmount    = "amount"
	FieldBalance   = "balance"
	FieldTotal     = "total"
	FieldOperation = "operation"
	FieldEventKind = "eventKind"
	FieldErrorCode = "errorCode"
)
