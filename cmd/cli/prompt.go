package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"todo-tracker/internal/task/domain"

	"golang.org/x/term"
)

func (c *CLI) readLine(label string) string {
	fmt.Fprint(c.out, label)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		c.eof = true
	}
	return strings.TrimSpace(line)
}

// readPassword masks the input when stdin is a terminal, otherwise it
// falls back to a plain line read (e.g. piped input).
func (c *CLI) readPassword(label string) string {
	fmt.Fprint(c.out, label)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(c.out)
		if err == nil {
			return strings.TrimSpace(string(raw))
		}
	}
	line, _ := c.in.ReadString('\n')
	return strings.TrimSpace(line)
}

// readUint re-prompts until a valid positive number is entered
func (c *CLI) readUint(label string) uint {
	for !c.eof {
		raw := c.readLine(label)
		id, err := strconv.ParseUint(raw, 10, 32)
		if err == nil {
			return uint(id)
		}
		fmt.Fprintln(c.out, "Please enter a number.")
	}
	return 0
}

// readPriority re-prompts until the priority is within 1-5
func (c *CLI) readPriority() int {
	for !c.eof {
		raw := c.readLine("Priority (1-5): ")
		p, err := strconv.Atoi(raw)
		if err == nil && p >= 1 && p <= 5 {
			return p
		}
		fmt.Fprintln(c.out, "Priority must be a number between 1 and 5.")
	}
	return 1
}

// readDueDate defaults to today when left blank and re-prompts on a
// malformed date
func (c *CLI) readDueDate() string {
	today := c.now().Format(domain.DateLayout)
	for !c.eof {
		raw := c.readLine(fmt.Sprintf("Due date [%s]: ", today))
		if raw == "" {
			return today
		}
		if _, err := time.Parse(domain.DateLayout, raw); err == nil {
			return raw
		}
		fmt.Fprintln(c.out, "Date must be in YYYY-MM-DD form.")
	}
	return today
}

// readDueTime defaults to one hour from now when left blank and
// re-prompts on a malformed time
func (c *CLI) readDueTime() string {
	inAnHour := c.now().Add(time.Hour).Format(domain.TimeLayout)
	for !c.eof {
		raw := c.readLine(fmt.Sprintf("Due time [%s]: ", inAnHour))
		if raw == "" {
			return inAnHour
		}
		if _, err := time.Parse(domain.TimeLayout, raw); err == nil {
			return raw
		}
		fmt.Fprintln(c.out, "Time must be in HH:MM form.")
	}
	return inAnHour
}
