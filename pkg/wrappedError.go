package pkg

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"
)

const (
	errorTag   = "[ERROR]"
	messageTag = "(msg)"
)

// WrappedError wraps an error together with the function it happened in and
// a short comment about the failed call. It implements error and can print
// itself (and plain messages) to the standard logger and an optional extra sink.
type WrappedError struct {
	functionName string    // Where the error can happen
	comment      string    // Which call failed
	err          error     // Wrapped cause
	timestamp    string    // Time of the last Specify with a non-nil error
	sink         io.Writer // Extra destination for log lines, may be nil
	file         *os.File  // Set when sink is a file opened by NewWrappedErrorWithFile
}

// NewWrappedError creates a WrappedError that only knows the function name yet
func NewWrappedError(funcName string) *WrappedError {
	return &WrappedError{functionName: funcName, timestamp: "[]"}
}

// NewWrappedErrorWithFile is NewWrappedError that also appends every log line to the file at path.
func NewWrappedErrorWithFile(funcName, path string) (*WrappedError, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	return &WrappedError{functionName: funcName, timestamp: "[]", sink: file, file: file}, nil
}

// WithSink mirrors log lines into w as well
func (e *WrappedError) WithSink(w io.Writer) *WrappedError {
	e.sink = w
	return e
}

// Specify records err and comment if err is not nil. A nil err leaves e untouched.
func (e *WrappedError) Specify(err error, comment string) *WrappedError {
	if err != nil {
		e.err = err
		e.comment = comment
		e.timestamp = fmt.Sprintf("[%s]", time.Now().Format(time.RFC3339))
	}
	return e
}

// HasError reports whether Specify has recorded an error
func (e *WrappedError) HasError() bool {
	return e.err != nil
}

func (e *WrappedError) Error() string {
	if e.err == nil {
		return ""
	}
	return fmt.Sprintf("'%s' in function '%s' invoked '%s'", e.comment, e.functionName, e.err.Error())
}

func (e *WrappedError) Unwrap() error {
	return e.err
}

// LogError prints the error to the standard logger and to the sink. Does nothing without an error.
func (e *WrappedError) LogError() {
	if e.err == nil {
		return
	}
	e.writeLine(e.timestamp, errorTag, e.Error())
}

// LogMsg logs a message that is not an error
func (e *WrappedError) LogMsg(msg string) {
	msgTimestamp := fmt.Sprintf("[%s]", time.Now().Format(time.RFC3339))
	e.writeLine(msgTimestamp, messageTag, fmt.Sprintf("'%s' from function '%s'", msg, e.functionName))
}

func (e *WrappedError) writeLine(timestamp, tag, text string) {
	log.Println(timestamp, tag, text)
	if e.sink == nil {
		return
	}
	if _, writeError := fmt.Fprintln(e.sink, timestamp, tag, text); writeError != nil {
		log.Println("Failed to write log into sink:", writeError)
	}
}

// Close closes the log file, if one was opened
func (e *WrappedError) Close() {
	if e.file != nil {
		_ = e.file.Close()
	}
}
