// Package wizard walks through the planner's commands and flags with prompts
// and builds the argument list to run.
package wizard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ErrAborted is returned when the user interrupts a prompt.
var ErrAborted = errors.New("wizard: aborted")

const done = "done"

// Wizard prompts on In and Out; nil streams fall back to the terminal.
type Wizard struct {
	In  io.Reader
	Out io.Writer
	// Skip names commands that are not offered.
	Skip []string
}

// Args asks for a subcommand of root, descending while the choice has
// subcommands, then for its flags. The result is ready for root.SetArgs.
func (w Wizard) Args(root *cobra.Command) ([]string, error) {
	var args []string
	cmd := root
	for {
		next, err := w.pickCommand(cmd)
		if err != nil {
			return nil, err
		}
		args = append(args, next.Name())
		cmd = next
		if !hasRunnableChildren(cmd) {
			break
		}
	}

	flags, err := w.flags(cmd)
	if err != nil {
		return nil, err
	}
	return append(args, flags...), nil
}

func (w Wizard) pickCommand(cmd *cobra.Command) (*cobra.Command, error) {
	var subcommands []*cobra.Command
	for _, c := range cmd.Commands() {
		if !c.IsAvailableCommand() || w.skipped(c.Name()) {
			continue
		}
		subcommands = append(subcommands, c)
	}
	if len(subcommands) == 0 {
		return nil, fmt.Errorf("wizard: %s has no commands to choose from", cmd.Name())
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Name | bold }} {{ .Short | green }}",
		Inactive: "   {{ .Name }} {{ .Short | cyan }}",
		Selected: "{{ .Name | bold }}",
		Details: `
--------- Example ----------
{{ .Example }}
`,
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     "Command",
		Items:     subcommands,
		Templates: templates,
		Size:      10,
		Searcher: func(input string, index int) bool {
			return matches(subcommands[index].Name()+subcommands[index].Short, input)
		},
		Stdin:  w.stdin(),
		Stdout: w.stdout(),
	}

	i, _, err := prompt.Run()
	if err != nil {
		return nil, aborted(err)
	}
	return subcommands[i], nil
}

// flags offers every visible flag of cmd until the user picks "done".
func (w Wizard) flags(cmd *cobra.Command) ([]string, error) {
	var fs []*pflag.Flag
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Hidden || f.Name == "help" || f.Name == "interactive" {
			return
		}
		fs = append(fs, f)
	})
	if len(fs) == 0 {
		return nil, nil
	}
	fs = append(fs, &pflag.Flag{Name: done, Value: &doneValue{}})

	templates := &promptui.SelectTemplates{
		Label:    "{{ . | magenta }} flags?",
		Active:   "➜ {{ if eq .Value.Type \"done\" }}{{ .Name | bold | green }}{{ else }}{{ .Name | bold }} {{ .Usage | cyan }}{{ end }}",
		Inactive: "  {{ if eq .Value.Type \"done\" }}{{ .Name | faint | green }}{{ else }}{{ .Name }} {{ .Usage | cyan }}{{ end }}",
		Selected: "{{ .Name | bold }}",
		Details: `
--------- Details ----------
default: {{ .DefValue }}
type: {{ .Value.Type }}
`,
	}

	var args []string
	index := 0
	for {
		prompt := promptui.Select{
			HideHelp:  true,
			Label:     cmd.Name(),
			Items:     fs,
			Templates: templates,
			Size:      10,
			CursorPos: index,
			Searcher: func(input string, i int) bool {
				return matches(fs[i].Name, input)
			},
			Stdin:  w.stdin(),
			Stdout: w.stdout(),
		}
		i, _, err := prompt.Run()
		if err != nil {
			return nil, aborted(err)
		}
		index = i

		f := fs[i]
		var arg string
		switch t := f.Value.Type(); t {
		case done:
			return args, nil
		case "bool":
			arg, err = w.boolFlag(f)
		case "string", "int":
			arg, err = w.valueFlag(f)
		default:
			_, _ = fmt.Fprintf(w.out(), "%q flags are not supported here\n", t)
			continue
		}
		if err != nil {
			return nil, err
		}
		if arg != "" {
			args = append(args, arg)
		}
	}
}

func (w Wizard) skipped(name string) bool {
	for _, s := range w.Skip {
		if s == name {
			return true
		}
	}
	return false
}

func hasRunnableChildren(cmd *cobra.Command) bool {
	for _, c := range cmd.Commands() {
		if c.IsAvailableCommand() {
			return true
		}
	}
	return false
}

func matches(candidate, input string) bool {
	candidate = strings.ReplaceAll(strings.ToLower(candidate), " ", "")
	input = strings.ReplaceAll(strings.ToLower(input), " ", "")
	return strings.Contains(candidate, input)
}

func aborted(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return ErrAborted
	}
	return err
}

func (w Wizard) out() io.Writer {
	if w.Out == nil {
		return os.Stdout
	}
	return w.Out
}

func (w Wizard) stdin() io.ReadCloser {
	if w.In == nil {
		return os.Stdin
	}
	return io.NopCloser(w.In)
}

func (w Wizard) stdout() io.WriteCloser {
	return nopCloser{w.out()}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

type doneValue struct{}

func (*doneValue) String() string   { return "" }
func (*doneValue) Set(string) error { return nil }
func (*doneValue) Type() string     { return done }
