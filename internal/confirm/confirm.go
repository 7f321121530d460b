// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package confirm asks the user yes/no questions.
package confirm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Confirmer answers a yes/no question.
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// InvalidPrompt is shown when an answer is not one of y, yes, n, no.
const InvalidPrompt = "Invalid input. Please enter 'y' for yes or 'n' for no: "

// Prompt reads answers line by line from an input stream, re-asking until it
// gets a valid one.
type Prompt struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompt returns a Prompt that reads from in and writes questions to out.
func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{in: bufio.NewReader(in), out: out}
}

// Confirm writes question and blocks until a valid answer is read. Answers are
// case-insensitive but otherwise exact: surrounding spaces make an answer
// invalid. Running out of input before a valid answer is an error.
func (p *Prompt) Confirm(question string) (bool, error) {
	fmt.Fprint(p.out, question)
	for {
		line, err := p.in.ReadString('\n')
		switch strings.ToLower(strings.TrimRight(line, "\r\n")) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return false, fmt.Errorf("reading answer: %w", err)
		}
		fmt.Fprint(p.out, InvalidPrompt)
	}
}

// Fixed always gives the same answer without asking. It backs --yes.
type Fixed bool

func (f Fixed) Confirm(string) (bool, error) {
	return bool(f), nil
}
