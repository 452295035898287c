package sqlsegment

import "errors"

// Common errors used throughout the sqlsegment packages
var (
	// ErrMalformedNumericLiteral is returned when a node matched as a numeric literal can't be read as a number.
	// Numeric errors
	ErrMalformedNumericLiteral = errors.New("malformed numeric literal")

	// ErrParameterMarkerNotIndexed indicates a placeholder node is missing from the placeholder index.
	// Extraction errors
	ErrParameterMarkerNotIndexed = errors.New("parameter marker is not in placeholder index")
	// ErrUnexpectedNodeShape indicates a clause subtree did not have the shape an extractor requires.
	ErrUnexpectedNodeShape = errors.New("unexpected syntax node shape")

	// ErrInvalidSQL is returned when the SQL syntax is invalid.
	// Parser errors
	ErrInvalidSQL = errors.New("invalid SQL syntax")
	// ErrUnsupportedStatement indicates a statement kind this front end does not handle.
	ErrUnsupportedStatement = errors.New("unsupported statement")
	// ErrEmptyStatement indicates the input held no SQL tokens.
	ErrEmptyStatement = errors.New("empty statement")
	// ErrMultipleStatements indicates more than one statement was given.
	ErrMultipleStatements = errors.New("multiple statements are not supported")

	// ErrUnexpectedCharacter indicates a lexer encountered an unexpected character.
	// Tokenizer errors
	ErrUnexpectedCharacter = errors.New("unexpected character")
	// ErrUnterminatedString indicates a string literal was not properly terminated.
	ErrUnterminatedString = errors.New("unterminated string literal")
	// ErrUnterminatedIdentifier indicates a quoted identifier was not properly terminated.
	ErrUnterminatedIdentifier = errors.New("unterminated quoted identifier")
	// ErrUnterminatedComment indicates a block comment was not properly terminated.
	ErrUnterminatedComment = errors.New("unterminated block comment")
	// ErrInvalidNumber indicates an invalid numeric literal format.
	ErrInvalidNumber = errors.New("invalid number format")

	// ErrConfigValidation is returned when configuration validation fails.
	// Configuration errors
	ErrConfigValidation = errors.New("configuration validation failed")
)
