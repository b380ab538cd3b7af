package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"bikeshare/utils"

	log "github.com/sirupsen/logrus"
)

var (
	ErrAborted         = errors.New("aborted by the operator")
	ErrTooManyAttempts = errors.New("too many invalid answers")
)

const invalidEntryMessage = "\nSorry, that is not a valid entry.\n"

// Prompter asks questions to the operator and reads the answers line by line
type Prompter struct {
	scanner     *bufio.Scanner
	out         io.Writer
	maxAttempts int
	quitWords   []string
}

func NewPrompter(in io.Reader, out io.Writer, maxAttempts int, quitWords []string) *Prompter {
	return &Prompter{
		scanner:     bufio.NewScanner(in),
		out:         out,
		maxAttempts: maxAttempts,
		quitWords:   quitWords,
	}
}

// Ask repeats the question until validate accepts the answer. It gives up with ErrAborted when the
// operator types a quit word or the input ends, and with ErrTooManyAttempts after maxAttempts
// invalid answers (if maxAttempts is greater than 0).
func (p *Prompter) Ask(question string, validate func(string) (string, error)) (string, error) {
	for attempt := 1; ; attempt++ {
		fmt.Fprint(p.out, question)

		answer, err := p.readLine()
		if err != nil {
			return "", err
		}

		value, err := validate(answer)
		if err == nil {
			return value, nil
		}

		log.Debugf("[method: Ask][attempt: %v] invalid answer: %s", attempt, err.Error())
		fmt.Fprint(p.out, invalidEntryMessage)

		if p.maxAttempts > 0 && attempt >= p.maxAttempts {
			return "", fmt.Errorf("%w: %w", ErrTooManyAttempts, err)
		}
	}
}

// Confirm returns true if the operator answers yes
func (p *Prompter) Confirm(question string) (bool, error) {
	fmt.Fprint(p.out, question)

	answer, err := p.readLine()
	if err != nil {
		return false, err
	}

	answer = strings.ToLower(answer)
	return answer == "yes" || answer == "y", nil
}

func (p *Prompter) readLine() (string, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("error reading answer: %w", err)
		}
		return "", ErrAborted
	}

	answer := strings.TrimSpace(p.scanner.Text())
	if utils.ContainsString(strings.ToLower(answer), p.quitWords) {
		return "", ErrAborted
	}
	return answer, nil
}
