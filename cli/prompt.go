// Package cli holds the interactive prompts used by the vector4 tool.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/amp-labs/amp-vector/vector"
	"github.com/amp-labs/amp-vector/xform"
	"github.com/manifoldco/promptui"
)

var componentNames = [vector.Size]string{"X", "Y", "Z", "W"} //nolint:gochecknoglobals

// Prompter runs promptui prompts against the given streams. Nil streams
// fall back to the process's stdin and stdout.
type Prompter struct {
	Stdin  io.ReadCloser
	Stdout io.WriteCloser
}

func (p *Prompter) Confirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Stdin:     p.Stdin,
		Stdout:    p.Stdout,
	}

	_, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

// Select asks the user to pick one of choices and returns it.
func (p *Prompter) Select(label string, choices ...string) (string, error) {
	sel := &promptui.Select{
		Label:  label,
		Items:  choices,
		Stdin:  p.Stdin,
		Stdout: p.Stdout,
	}

	_, value, err := sel.Run()

	return value, err
}

// NumericValidator returns a promptui validator that accepts exactly the
// strings ParseNumeric accepts for T.
func NumericValidator[T xform.Numeric]() promptui.ValidateFunc {
	return func(s string) error {
		if _, err := xform.ParseNumeric[T](s); err != nil {
			return fmt.Errorf("invalid %T: %w", *new(T), err)
		}

		return nil
	}
}

// PromptComponent asks for a single value of type T.
func PromptComponent[T xform.Numeric](p *Prompter, label string) (T, error) { //nolint:ireturn
	prompt := promptui.Prompt{
		Label:    label,
		Validate: NumericValidator[T](),
		Stdin:    p.Stdin,
		Stdout:   p.Stdout,
	}

	txt, err := prompt.Run()
	if err != nil {
		return 0, err
	}

	return xform.ParseNumeric[T](txt)
}

// PromptVector4 asks for the four components of a vector in X, Y, Z, W
// order.
func PromptVector4[T xform.Numeric](p *Prompter) (vector.Vector4[T], error) {
	var v vector.Vector4[T]

	for i, name := range componentNames {
		value, err := PromptComponent[T](p, name)
		if err != nil {
			return vector.Vector4[T]{}, fmt.Errorf("reading %s: %w", name, err)
		}

		v.Array()[i] = value
	}

	return v, nil
}
