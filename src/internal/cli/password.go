package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"
)

var (
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrPasswordEmpty    = errors.New("password cannot be empty")
)

// isTerminal reports whether stdin is a terminal (not piped/redirected).
func isTerminal() bool {
	return term.IsTerminal(int(syscall.Stdin))
}

// readPasswordSecure reads a password from stdin without echo, falling
// back to a buffered line read when stdin isn't a terminal (scripted
// use).
func readPasswordSecure(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)

	if !isTerminal() {
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("reading password: %w", err)
		}
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		return []byte(line), nil
	}

	pw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("reading password: %w", err)
	}
	return pw, nil
}

// TerminalPrompter implements pipeline.Prompter over the process's
// controlling terminal (C9, spec.md §4.9): PromptForClose prompts twice
// and requires equality before returning a value; PromptForOpen prompts
// once.
type TerminalPrompter struct{}

func (TerminalPrompter) PromptForClose() ([]byte, error) {
	password, err := readPasswordSecure("Password: ")
	if err != nil {
		return nil, err
	}
	if len(password) == 0 {
		return nil, ErrPasswordEmpty
	}
	confirm, err := readPasswordSecure("Confirm password: ")
	if err != nil {
		return nil, err
	}
	if string(password) != string(confirm) {
		return nil, ErrPasswordMismatch
	}
	return password, nil
}

func (TerminalPrompter) PromptForOpen() ([]byte, error) {
	password, err := readPasswordSecure("Password: ")
	if err != nil {
		return nil, err
	}
	if len(password) == 0 {
		return nil, ErrPasswordEmpty
	}
	return password, nil
}
