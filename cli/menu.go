// Package cli implements the numbered text menu shared by the report
// programs. The menu reads choices from an injected reader and writes to
// an injected writer, so programs stay testable with scripted input.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Menu is a numbered option menu with an automatically appended exit
// choice. Option handlers return recoverable errors; Run prints them and
// shows the menu again.
type Menu struct {
	title   string
	in      *bufio.Scanner
	out     io.Writer
	options []option
}

// option is one selectable menu entry.
type option struct {
	label string
	run   func() error
}

// NewMenu creates a menu reading from in and writing to out.
func NewMenu(title string, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		title: title,
		in:    bufio.NewScanner(in),
		out:   out,
	}
}

// Add appends an option. Options are numbered from one in insertion
// order.
func (m *Menu) Add(label string, run func() error) {
	m.options = append(m.options, option{label: label, run: run})
}

// Run shows the menu until the user picks the exit choice or input ends.
// Handler errors are printed and the menu continues; only a read failure
// on the input stream is returned.
func (m *Menu) Run() error {
	for {
		m.show()

		line, ok := m.readLine()
		if !ok {
			fmt.Fprintln(m.out)
			return m.in.Err()
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || choice < 0 || choice > len(m.options) {
			fmt.Fprintf(m.out, "Please enter a number between 0 and %d.\n", len(m.options))
			continue
		}
		if choice == 0 {
			fmt.Fprintln(m.out, "Goodbye.")
			return nil
		}

		if err := m.options[choice-1].run(); err != nil {
			fmt.Fprintf(m.out, "Error: %v\n", err)
		}
	}
}

// show prints the title and the numbered options.
func (m *Menu) show() {
	fmt.Fprintf(m.out, "\n%s\n", m.title)
	fmt.Fprintln(m.out, strings.Repeat("=", len(m.title)))
	for i, opt := range m.options {
		fmt.Fprintf(m.out, "%d. %s\n", i+1, opt.label)
	}
	fmt.Fprintln(m.out, "0. Exit")
	fmt.Fprint(m.out, "Enter choice: ")
}

// Prompt asks a question and returns the next input line with surrounding
// space trimmed. ok is false when input ends.
func (m *Menu) Prompt(question string) (string, bool) {
	fmt.Fprintf(m.out, "%s ", question)
	line, ok := m.readLine()
	if !ok {
		fmt.Fprintln(m.out)
		return "", false
	}
	return strings.TrimSpace(line), true
}

// PromptInt asks a question until the answer is a whole number. ok is
// false when input ends.
func (m *Menu) PromptInt(question string) (int, bool) {
	for {
		line, ok := m.Prompt(question)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(m.out, "Please enter a whole number.")
			continue
		}
		return n, true
	}
}

// readLine reads the next input line. ok is false at end of input.
func (m *Menu) readLine() (string, bool) {
	if !m.in.Scan() {
		return "", false
	}
	return m.in.Text(), true
}
