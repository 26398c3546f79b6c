// Package xerr defines the error taxonomy shared by every stage of the
// jsonpath pipeline: the tokenizer, the parser, the document codec and the
// mutating selector all report failures through the same tagged Error type.
package xerr

import "fmt"

// Kind classifies an Error. Evaluation itself never raises one of these —
// a step that matches nothing yields an empty frontier, not an error.
type Kind int

const (
	// EmptyPath means the path string was empty.
	EmptyPath Kind = iota
	// PathSyntax means the tokenizer or parser rejected the path at a
	// specific byte/rune offset.
	PathSyntax
	// PathEof means the path ended before a required token was seen.
	PathEof
	// DocumentDecode means the input document could not be parsed as JSON.
	DocumentDecode
	// DocumentEncode means a value tree could not be serialized back to JSON.
	DocumentEncode
	// TypeConversion means a matched value could not be converted to the
	// type requested by the caller (e.g. SelectAs[T]).
	TypeConversion
)

func (k Kind) String() string {
	switch k {
	case EmptyPath:
		return "EmptyPath"
	case PathSyntax:
		return "PathSyntax"
	case PathEof:
		return "PathEof"
	case DocumentDecode:
		return "DocumentDecode"
	case DocumentEncode:
		return "DocumentEncode"
	case TypeConversion:
		return "TypeConversion"
	default:
		return "Unknown"
	}
}

// Error is the single error type produced by this module. Offset is a
// rune offset into the path string and is only meaningful for PathSyntax.
type Error struct {
	Kind    Kind
	Offset  int
	Message string
}

func (e *Error) Error() string {
	switch e.Kind {
	case PathSyntax:
		return fmt.Sprintf("jsonpath: syntax error at offset %d: %s", e.Offset, e.Message)
	case PathEof:
		return fmt.Sprintf("jsonpath: unexpected end of path: %s", e.Message)
	case EmptyPath:
		return "jsonpath: path is empty"
	case DocumentDecode:
		return fmt.Sprintf("jsonpath: document decode failed: %s", e.Message)
	case DocumentEncode:
		return fmt.Sprintf("jsonpath: document encode failed: %s", e.Message)
	case TypeConversion:
		return fmt.Sprintf("jsonpath: type conversion failed: %s", e.Message)
	default:
		return e.Message
	}
}

// Syntax builds a PathSyntax error at the given rune offset.
func Syntax(offset int, format string, args ...interface{}) *Error {
	return &Error{Kind: PathSyntax, Offset: offset, Message: fmt.Sprintf(format, args...)}
}

// Eof builds a PathEof error.
func Eof(format string, args ...interface{}) *Error {
	return &Error{Kind: PathEof, Offset: -1, Message: fmt.Sprintf(format, args...)}
}

// Empty builds an EmptyPath error.
func Empty() *Error {
	return &Error{Kind: EmptyPath, Offset: -1, Message: "path string is empty"}
}

// Decode builds a DocumentDecode error.
func Decode(format string, args ...interface{}) *Error {
	return &Error{Kind: DocumentDecode, Offset: -1, Message: fmt.Sprintf(format, args...)}
}

// Encode builds a DocumentEncode error.
func Encode(format string, args ...interface{}) *Error {
	return &Error{Kind: DocumentEncode, Offset: -1, Message: fmt.Sprintf(format, args...)}
}

// Convert builds a TypeConversion error.
func Convert(format string, args ...interface{}) *Error {
	return &Error{Kind: TypeConversion, Offset: -1, Message: fmt.Sprintf(format, args...)}
}
