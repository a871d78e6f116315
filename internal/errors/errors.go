package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/wird-app/wird/internal/logger"
)

// Domain sentinels. CLI commands match on these with errors.Is to pick a
// user-facing message; none of them is fatal to the process.
var (
	ErrDuplicateTask     = errors.New("a task already exists for this routine and date")
	ErrInvalidFrequency  = errors.New("specific-days frequency requires at least one weekday")
	ErrInvalidGoalValue  = errors.New("counter and duration goals require a positive goal value")
	ErrPageNotMemorized  = errors.New("page must be memorized before it can be marked revised")
	ErrRoutineNotFound   = errors.New("routine not found")
	ErrTaskNotFound      = errors.New("task not found")
	ErrBookNotFound      = errors.New("book not found")
	ErrPageOutOfRange    = errors.New("page number out of range")
	ErrNegativeProgress  = errors.New("progress cannot be negative")
	ErrProgressNotScoped = errors.New("routine has a completion goal and does not track progress")
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
