package envform

import (
	"fmt"
	"strings"

	"opsdeck/internal/app/ui/components"
)

var fieldLabels = [fieldCount]string{"Key", "Value"}
var fieldNames = [fieldCount]string{"key", "value"}

// View renders the env-var editor
func (m *Model) View() string {
	if m.form == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(components.TitleStyle.Render("Environment Variable"))
	b.WriteString("\n\n")

	for i := range m.inputs {
		b.WriteString(components.HelpStyle.Render(fieldLabels[i]))
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")

		if fieldErr, ok := m.form.ErrorFor(fieldNames[i]); ok {
			b.WriteString(components.ErrorStyle.Render(fmt.Sprintf("  %s", fieldErr.Detail)))
			b.WriteString("\n")
		}

		b.WriteString("\n")
	}

	if m.form.IsSubmitting() {
		b.WriteString(components.SpinnerStyle.Render("saving…"))
		b.WriteString("\n")
	}

	if err := m.form.SubmitError(); err != nil {
		b.WriteString(components.ErrorStyle.Render(err.Error()))
		b.WriteString("\n")
	}

	return components.PanelStyle.Render(b.String())
}
