package main

import (
	"bufio"
	"fmt"

	"github.com/misty-step/thorn/pkg/shellarg"
	"github.com/spf13/cobra"
)

type quoteOptions struct {
	Check bool
}

func newQuoteCmd() *cobra.Command {
	var opts quoteOptions

	cmd := &cobra.Command{
		Use:   "quote [arg...]",
		Short: "Render arguments as POSIX shell literals",
		Long: `Render each argument as a literal that a POSIX shell would lex back
into exactly that value. With no arguments, values are read from stdin,
one per line. Use -- before arguments that start with a dash.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuote(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Check, "check", false, "Exit nonzero if any argument needs quoting, printing nothing")

	return cmd
}

func runQuote(cmd *cobra.Command, args []string, opts quoteOptions) error {
	if len(args) == 0 {
		return quoteStdin(cmd, opts)
	}

	if opts.Check {
		for _, arg := range args {
			if shellarg.NeedsQuoting(arg) {
				return &exitError{Code: 1}
			}
		}
		return nil
	}

	for _, arg := range args {
		if err := printLiteral(cmd, arg); err != nil {
			return err
		}
	}
	return nil
}

// quoteStdin treats each input line as one value. Unlike argv, stdin can
// carry NUL bytes, so this path can surface the NUL rejection.
func quoteStdin(cmd *cobra.Command, opts quoteOptions) error {
	scanner := bufio.NewScanner(cmd.InOrStdin())
	// Values can be far longer than bufio's default 64 KiB token limit.
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if opts.Check {
			if shellarg.NeedsQuoting(line) {
				return &exitError{Code: 1}
			}
			continue
		}
		if err := printLiteral(cmd, line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func printLiteral(cmd *cobra.Command, arg string) error {
	literal, err := shellarg.Format(arg)
	if err != nil {
		return &exitError{Code: 2, Err: err}
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), literal)
	return err
}
