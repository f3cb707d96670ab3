package wizard

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
	"github.com/spf13/pflag"
)

var answerTemplates = &promptui.PromptTemplates{
	Prompt:  "Answer {{ . }} : ",
	Valid:   "Answer {{ . | green }} : ",
	Invalid: "Answer {{ . | red }} : ",
	Success: "{{ . | bold }} : ",
}

func asFlags(f *pflag.Flag) string {
	if f.Shorthand != "" {
		return fmt.Sprintf("--%s, -%s", f.Name, f.Shorthand)
	}
	return fmt.Sprintf("--%s", f.Name)
}

func (w Wizard) boolFlag(f *pflag.Flag) (string, error) {
	_, _ = fmt.Fprintf(w.out(), "%s: %s [%s] Default: %s\n", asFlags(f), f.Usage, f.Value.Type(), f.DefValue)

	label := "true/false"
	if def, err := ParseBool(f.DefValue); err == nil {
		if def {
			label = "[true]/false"
		} else {
			label = "true/[false]"
		}
	}

	prompt := promptui.Prompt{
		Label:     label,
		Templates: answerTemplates,
		Validate:  ValidateBool,
		Stdin:     w.stdin(),
		Stdout:    w.stdout(),
	}
	result, err := prompt.Run()
	if err != nil {
		return "", aborted(err)
	}
	return BoolArg(f, result), nil
}

func (w Wizard) valueFlag(f *pflag.Flag) (string, error) {
	_, _ = fmt.Fprintf(w.out(), "%s: %s [%s] Default: %q\n", asFlags(f), f.Usage, f.Value.Type(), f.DefValue)

	prompt := promptui.Prompt{
		Label:     fmt.Sprintf("[%q]", f.DefValue),
		Templates: answerTemplates,
		Validate: func(input string) error {
			if input == "" && f.DefValue == "" {
				return errors.New("empty")
			}
			if f.Value.Type() == "int" && input != "" {
				_, err := strconv.Atoi(input)
				return err
			}
			return nil
		},
		Stdin:  w.stdin(),
		Stdout: w.stdout(),
	}
	result, err := prompt.Run()
	if err != nil {
		return "", aborted(err)
	}
	return ValueArg(f, result), nil
}

// ValidateBool accepts an empty answer or anything ParseBool understands.
func ValidateBool(input string) error {
	if input == "" {
		return nil
	}
	_, err := ParseBool(input)
	return err
}

// BoolArg renders the answer for a bool flag; empty keeps the default.
func BoolArg(f *pflag.Flag, answer string) string {
	if answer == "" {
		answer = f.DefValue
	}
	v, _ := ParseBool(answer)
	return fmt.Sprintf("--%s=%t", f.Name, v)
}

// ValueArg renders the answer for a string or int flag; empty keeps the
// default.
func ValueArg(f *pflag.Flag, answer string) string {
	if answer == "" {
		answer = f.DefValue
	}
	return fmt.Sprintf("--%s=%s", f.Name, answer)
}

// ParseBool is strconv.ParseBool with the addition of Yes/No parsing.
func ParseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "y", "Y", "yes", "YES", "Yes":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "n", "N", "no", "NO", "No":
		return false, nil
	}
	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}
