package authy

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter asks the operator a question and returns the reply with
// surrounding whitespace removed. An empty reply means the current proposal
// stands. A nil Prompter disables prompting entirely.
type Prompter func(question string) (string, error)

// StdinPrompter returns a Prompter that prints the question and blocks until
// the operator finishes a line on in. There is no timeout, the conversion
// waits as long as the operator does. A final line without a newline still
// counts as a reply.
func StdinPrompter(in io.Reader) Prompter {

	reader := bufio.NewReader(in)

	return func(question string) (string, error) {
		fmt.Print(question)

		line, err := reader.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return "", fmt.Errorf("read reply: %w", err)
		}

		return strings.TrimSpace(line), nil
	}
}
