package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	messageStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(1, 2).
			MarginBottom(1)

	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

type action int

const (
	actionCommit action = iota
	actionRegenerate
	actionCancel
)

// confirmLoop shows the message and asks what to do with it. Editing stays
// inside the loop so the edited message is confirmed again before use.
func confirmLoop(msg string) (action, string, error) {
	for {
		fmt.Println()
		fmt.Println(titleStyle.Render("Suggested Commit Message:"))
		fmt.Println(messageStyle.Render(strings.TrimSpace(msg)))

		var selected string
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("What would you like to do?").
					Options(
						huh.NewOption("Commit", "commit"),
						huh.NewOption("Regenerate", "regenerate"),
						huh.NewOption("Edit", "edit"),
						huh.NewOption("Cancel", "cancel"),
					).
					Value(&selected),
			),
		)
		if err := form.Run(); err != nil {
			return actionCancel, msg, err
		}

		switch selected {
		case "commit":
			return actionCommit, msg, nil
		case "regenerate":
			return actionRegenerate, msg, nil
		case "edit":
			edited, err := editMessage(msg)
			if err != nil {
				return actionCancel, msg, err
			}
			msg = edited
		default:
			return actionCancel, msg, nil
		}
	}
}

func editMessage(initial string) (string, error) {
	content := initial
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Edit Commit Message").
				Value(&content),
		),
	)
	if err := form.Run(); err != nil {
		return "", err
	}
	return content, nil
}
