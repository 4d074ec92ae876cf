package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// accountForm is a small vertical stack of text inputs with one focused
// field and an inline error line
type accountForm struct {
	title  string
	labels []string
	inputs []textinput.Model
	focus  int
	errMsg string
}

func newSignInForm() accountForm {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 64
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 64
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return accountForm{
		title:  "Sign In",
		labels: []string{"Email", "Password"},
		inputs: []textinput.Model{email, password},
	}
}

func newRegisterForm() accountForm {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Focus()

	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 64

	password := textinput.New()
	password.Placeholder = "min 6 chars, 2 digits, 1 uppercase"
	password.CharLimit = 64
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return accountForm{
		title:  "Register",
		labels: []string{"Username", "Email", "Password"},
		inputs: []textinput.Model{username, email, password},
	}
}

// values returns the trimmed-as-typed field contents in label order
func (f *accountForm) values() []string {
	vals := make([]string, len(f.inputs))
	for i, in := range f.inputs {
		vals[i] = in.Value()
	}
	return vals
}

func (f *accountForm) setFocus(i int) {
	if i < 0 {
		i = len(f.inputs) - 1
	}
	if i >= len(f.inputs) {
		i = 0
	}
	f.focus = i
	for j := range f.inputs {
		if j == i {
			f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
}

// update routes a key to the form. Tab and shift+tab cycle focus; every
// other key goes to the focused input.
func (f *accountForm) update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "down":
		f.setFocus(f.focus + 1)
		return nil
	case "shift+tab", "up":
		f.setFocus(f.focus - 1)
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}
