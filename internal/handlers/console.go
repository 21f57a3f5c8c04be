package handlers

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	portssvc "github.com/SscSPs/bank_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/bank_ledger_app/internal/middleware"
)

// maxInputLine is the longest answer a prompt accepts. Longer lines are discarded.
const maxInputLine = 4096

var (
	// errInputClosed is returned by prompts when the input stream ends.
	errInputClosed = errors.New("input closed")

	errInputTooLong = fmt.Errorf("input line is longer than %d characters", maxInputLine)
)

// command is one entry of the main menu.
type command struct {
	key     string
	title   string
	mutates bool // Triggers an auto-save on success
	run     middleware.CommandFunc
}

// Console is the interactive menu. It reads one answer per line from its input
// and writes everything meant for the user to its output; logs go elsewhere.
type Console struct {
	services *portssvc.ServiceContainer
	in       *bufio.Reader
	out      io.Writer
	logger   *slog.Logger
	wrap     middleware.Middleware
	autoSave bool
	commands []command
}

// ConsoleOption is a functional option for configuring the console
type ConsoleOption func(*Console)

// WithAutoSave saves the bank after every successful change.
func WithAutoSave(enabled bool) ConsoleOption {
	return func(c *Console) {
		c.autoSave = enabled
	}
}

// NewConsole creates a console over the given services.
func NewConsole(services *portssvc.ServiceContainer, in io.Reader, out io.Writer, baseLogger *slog.Logger, opts ...ConsoleOption) *Console {
	c := &Console{
		services: services,
		in:       bufio.NewReader(in),
		out:      out,
		logger:   baseLogger,
		wrap:     middleware.StructuredLoggingMiddleware(baseLogger),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.commands = registerCommands(c)
	return c
}

// Run shows the menu until the user picks exit or the input ends. Either way the
// bank is saved before Run returns; the returned error is the final save's.
func (c *Console) Run(ctx context.Context) error {
	c.printHeader(ctx)

	for {
		c.printMenu()
		choice, err := c.prompt("Enter your choice: ")
		if errors.Is(err, errInputTooLong) {
			c.printf("\nInvalid choice. Please try again.\n\n")
			continue
		}
		if err != nil {
			c.println()
			return c.exit(ctx)
		}
		if choice == "0" {
			return c.exit(ctx)
		}

		cmd, ok := c.lookup(choice)
		if !ok {
			c.printf("\nInvalid choice. Please try again.\n\n")
			continue
		}

		c.printf("\n--- %s ---\n", cmd.title)
		err = c.wrap(cmd.title, cmd.run)(ctx)
		if errors.Is(err, errInputClosed) {
			c.println()
			return c.exit(ctx)
		}
		if err != nil {
			c.printf("\nError: %s\n\n", err)
			continue
		}
		if cmd.mutates && c.autoSave {
			if err := c.wrap("auto save", c.services.Persistence.Save)(ctx); err != nil {
				c.printf("Warning: auto-save failed: %s\n\n", err)
			}
		}
	}
}

func (c *Console) exit(ctx context.Context) error {
	if err := c.wrap("save and exit", c.services.Persistence.Save)(ctx); err != nil {
		c.printf("\nError: %s\nData was NOT saved.\n", err)
		return err
	}
	c.printf("\nData saved. Goodbye!\n")
	return nil
}

func (c *Console) lookup(key string) (command, bool) {
	for _, cmd := range c.commands {
		if cmd.key == key {
			return cmd, true
		}
	}
	return command{}, false
}

func (c *Console) printHeader(ctx context.Context) {
	c.printf("\n==========================================\n")
	c.printf("          BANK LEDGER CONSOLE\n")
	c.printf("==========================================\n\n")

	stats, err := c.services.Reporting.GetBankStatistics(ctx)
	if err != nil {
		c.logger.Warn("Failed to read bank statistics", slog.String("error", err.Error()))
		return
	}
	c.printf("%s\n\n", bankSummary(stats))
}

func (c *Console) printMenu() {
	c.printf("------------------------------------------\n")
	c.printf("                MAIN MENU\n")
	c.printf("------------------------------------------\n")
	for _, cmd := range c.commands {
		c.printf("  %2s. %s\n", cmd.key, cmd.title)
	}
	c.printf("   0. Save and Exit\n")
	c.printf("------------------------------------------\n")
}

// prompt writes the question and returns the trimmed answer.
func (c *Console) prompt(question string) (string, error) {
	c.printf("%s", question)
	line, err := c.readLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readLine reads one line. A line longer than maxInputLine is consumed in full
// and reported as errInputTooLong so the next prompt starts on a fresh line.
func (c *Console) readLine() (string, error) {
	var line []byte
	tooLong := false
	for {
		chunk, isPrefix, err := c.in.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", errInputClosed
			}
			return "", fmt.Errorf("%w: %v", errInputClosed, err)
		}
		if tooLong || len(line)+len(chunk) > maxInputLine {
			tooLong = true
		} else {
			line = append(line, chunk...)
		}
		if !isPrefix {
			break
		}
	}
	if tooLong {
		return "", errInputTooLong
	}
	return string(line), nil
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) println() {
	fmt.Fprintln(c.out)
}
