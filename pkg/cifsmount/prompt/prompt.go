/*
Copyright 2026 The cifsmount Authors All rights reserved.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package prompt asks the operator questions on the terminal.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/term"
	"k8s.io/klog/v2"
)

// ErrNoInput is returned when input ends before a question was answered
var ErrNoInput = errors.New("no more input")

const maxAttempts = 5

var (
	posResponses = []string{"yes", "y"}
	negResponses = []string{"no", "n"}
)

// Asker is the set of questions a mount needs
type Asker interface {
	AskForStaticValue(question string) (string, error)
	AskForStaticValueOptional(question string, def string) (string, error)
	AskForValidatedValue(question string, def string, validate func(string) error) (string, error)
	AskForPasswordValue(question string) (string, error)
	AskForYesNoConfirmation(question string, def bool) (bool, error)
}

// Prompter reads answers from a reader and writes questions to a writer
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	// readPassword reads a line without echo, nil when input is not a terminal
	readPassword func() ([]byte, error)
}

// New returns a Prompter reading plain lines from in
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// NewTerminal returns a Prompter on stdin and stderr, hiding passwords when stdin is a terminal
func NewTerminal() *Prompter {
	p := New(os.Stdin, os.Stderr)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		p.readPassword = func() ([]byte, error) {
			return term.ReadPassword(fd)
		}
	}
	return p
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if err == io.EOF {
			return "", ErrNoInput
		}
		return "", errors.Wrap(err, "read answer")
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// AskForStaticValue asks for a value until a non-empty one is given
func (p *Prompter) AskForStaticValue(question string) (string, error) {
	for i := 0; i < maxAttempts; i++ {
		fmt.Fprint(p.out, question+" ")
		v, err := p.readLine()
		if err != nil {
			return "", err
		}
		if v = strings.TrimSpace(v); v != "" {
			return v, nil
		}
		fmt.Fprintln(p.out, "A value is required.")
	}
	return "", errors.Errorf("no answer to %q after %d attempts", question, maxAttempts)
}

// AskForStaticValueOptional asks for a value, returning def for an empty answer
func (p *Prompter) AskForStaticValueOptional(question string, def string) (string, error) {
	if def != "" {
		question = fmt.Sprintf("%s [%s]", question, def)
	}
	fmt.Fprint(p.out, question+" ")
	v, err := p.readLine()
	if err != nil {
		return "", err
	}
	if v = strings.TrimSpace(v); v == "" {
		return def, nil
	}
	return v, nil
}

// AskForValidatedValue asks until the answer passes validate. An empty
// answer takes def, which is validated too.
func (p *Prompter) AskForValidatedValue(question string, def string, validate func(string) error) (string, error) {
	for i := 0; i < maxAttempts; i++ {
		v, err := p.AskForStaticValueOptional(question, def)
		if err != nil {
			return "", err
		}
		if err := validate(v); err != nil {
			klog.Infof("rejected answer to %q: %v", question, err)
			fmt.Fprintf(p.out, "Invalid value: %v\n", err)
			continue
		}
		return v, nil
	}
	return "", errors.Errorf("no valid answer to %q after %d attempts", question, maxAttempts)
}

// AskForPasswordValue asks for a secret without echoing it when possible
func (p *Prompter) AskForPasswordValue(question string) (string, error) {
	for i := 0; i < maxAttempts; i++ {
		fmt.Fprint(p.out, question+" ")
		var v string
		if p.readPassword != nil {
			b, err := p.readPassword()
			fmt.Fprintln(p.out)
			if err != nil {
				return "", errors.Wrap(err, "password prompt error")
			}
			v = string(b)
		} else {
			line, err := p.readLine()
			if err != nil {
				return "", err
			}
			v = line
		}
		if v != "" {
			return v, nil
		}
		fmt.Fprintln(p.out, "A password is required.")
	}
	return "", errors.New("can't get password")
}

// AskForYesNoConfirmation asks a yes/no question, an empty answer takes def
func (p *Prompter) AskForYesNoConfirmation(question string, def bool) (bool, error) {
	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}
	for i := 0; i < maxAttempts; i++ {
		fmt.Fprintf(p.out, "%s %s ", question, hint)
		v, err := p.readLine()
		if err != nil {
			return false, err
		}
		v = strings.ToLower(strings.TrimSpace(v))
		switch {
		case v == "":
			return def, nil
		case containsString(posResponses, v):
			return true, nil
		case containsString(negResponses, v):
			return false, nil
		}
		fmt.Fprintln(p.out, "Please type yes or no:")
	}
	return false, errors.Errorf("no answer to %q after %d attempts", question, maxAttempts)
}

func containsString(slice []string, s string) bool {
	for _, v := range slice {
		if s == v {
			return true
		}
	}
	return false
}
