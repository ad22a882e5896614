// SPDX-License-Identifier: MIT

// Command scratchml runs the toolkit end to end on the built-in
// datasets and prints what each step computes.
//
// Usage:
//
//	scratchml [SUBCOMMAND] [FLAGS]
//
// Without a subcommand an interactive menu asks which demo to run.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
)

// command is one runnable demo.
type command struct {
	name    string
	summary string
	run     func(args []string, w io.Writer) error
}

func commands() []command {
	return []command{
		{"network", "users, friendships, interests, salaries, degrees of separation", runNetwork},
		{"stats", "central tendency, dispersion and correlation of friend counts", runStats},
		{"probability", "conditional kids, normal distribution, binomial sampling", runProbability},
		{"inference", "coin-flip hypothesis tests, confidence intervals, A/B testing", runInference},
		{"gradient", "gradient descent on sum of squares and a linear fit", runGradient},
		{"regression", "simple, multiple and ridge regression with bootstrap errors", runRegression},
		{"spam", "naive Bayes spam filter on a corpus directory or sample messages", runSpam},
		{"knn", "k-nearest-neighbors classification of the iris data", runKNN},
		{"plot", "write regression, histogram, iris and salary charts", runPlot},
	}
}

func lookup(name string) (command, bool) {
	for _, c := range commands() {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "scratchml - data science from scratch, in Go")
	fmt.Fprintln(w, "Usage: scratchml [SUBCOMMAND] [FLAGS]")
	fmt.Fprintln(w, "Subcommands:")
	for _, c := range commands() {
		fmt.Fprintf(w, "    %-12s %s\n", c.name, c.summary)
	}
	fmt.Fprintln(w, "    help         list all subcommands")
	fmt.Fprintln(w, "Run 'scratchml SUBCOMMAND -h' for its flags.")
}

// menuLabel and fromMenuLabel map commands to and from menu entries.
func menuLabel(c command) string { return "○ " + c.name + " - " + c.summary }

func fromMenuLabel(label string) string {
	name, _, _ := strings.Cut(strings.TrimPrefix(label, "○ "), " - ")
	return name
}

// pickInteractively asks the user which command to run.
func pickInteractively() (command, error) {
	cmds := commands()
	options := make([]string, len(cmds))
	for i, c := range cmds {
		options[i] = menuLabel(c)
	}
	var answer string
	prompt := &survey.Select{Message: "Which demo do you want to run?", Options: options}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return command{}, err
	}
	c, _ := lookup(fromMenuLabel(answer))
	return c, nil
}

// dispatch runs the command named by args[0], or the menu when args is
// empty. It returns the exit code.
func dispatch(args []string, stdout io.Writer) int {
	var (
		cmd command
		err error
	)
	switch {
	case len(args) == 0:
		if cmd, err = pickInteractively(); err != nil {
			log.Print(err)
			return 1
		}
	case args[0] == "help" || args[0] == "-h" || args[0] == "--help":
		usage(stdout)
		return 0
	default:
		var ok bool
		if cmd, ok = lookup(args[0]); !ok {
			log.Printf("unknown subcommand %q", args[0])
			usage(os.Stderr)
			return 2
		}
		args = args[1:]
	}

	if err := cmd.run(args, stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		log.Printf("%s: %v", cmd.name, err)
		return 1
	}
	return 0
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("scratchml: ")
	os.Exit(dispatch(os.Args[1:], os.Stdout))
}
