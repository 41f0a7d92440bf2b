package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/skillpilot/internal/cli/formatter"
	"github.com/alexanderramin/skillpilot/internal/contract"
	"github.com/alexanderramin/skillpilot/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// skillpilotHuhTheme returns a custom huh theme using the Gruvbox palette.
func skillpilotHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// planWizardInput holds the raw strings collected by the plan wizard.
type planWizardInput struct {
	Goal     string
	Level    string
	Hours    string
	Deadline string
}

// request converts validated wizard input into a create request.
func (in planWizardInput) request(defaultHours float64) (contract.CreatePlanRequest, error) {
	hours := defaultHours
	if s := strings.TrimSpace(in.Hours); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return contract.CreatePlanRequest{}, fmt.Errorf("hours per day: %w", err)
		}
		hours = v
	}
	deadline, err := domain.ParseDate(strings.TrimSpace(in.Deadline), "deadline")
	if err != nil {
		return contract.CreatePlanRequest{}, err
	}
	return contract.CreatePlanRequest{
		Goal:        strings.TrimSpace(in.Goal),
		Level:       in.Level,
		HoursPerDay: hours,
		Deadline:    deadline,
	}, nil
}

// planWizardForm builds the interactive form behind "plan create".
func planWizardForm(in *planWizardInput, now time.Time, defaultHours float64) *huh.Form {
	if in.Level == "" {
		in.Level = string(domain.LevelBeginner)
	}
	suggested := daysFromToday(now, 30).Format(domain.DateLayout)
	levels := make([]huh.Option[string], 0, len(domain.ValidLevels))
	for _, l := range domain.ValidLevels {
		levels = append(levels, huh.NewOption(strings.ToUpper(string(l[:1]))+string(l[1:]), string(l)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What do you want to learn?").
				Placeholder("Become a Frontend Developer").
				Value(&in.Goal).
				Validate(validateRequired("goal")),
			huh.NewSelect[string]().
				Title("Current level").
				Options(levels...).
				Value(&in.Level),
			huh.NewInput().
				Title("Hours per day").
				Placeholder(strconv.FormatFloat(defaultHours, 'f', -1, 64)).
				Value(&in.Hours).
				Validate(validateHours),
			huh.NewInput().
				Title("Deadline (YYYY-MM-DD)").
				Placeholder(suggested).
				Value(&in.Deadline).
				Validate(validateFutureDate(now)),
		),
	).WithTheme(skillpilotHuhTheme()).WithShowHelp(false)
}

// runPlanWizard asks for the goal interactively.
func runPlanWizard(app *App) (contract.CreatePlanRequest, error) {
	var in planWizardInput
	if err := planWizardForm(&in, app.now(), app.defaultHours()).Run(); err != nil {
		return contract.CreatePlanRequest{}, err
	}
	return in.request(app.defaultHours())
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// validateHours accepts empty or a number within the daily bounds.
func validateHours(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < domain.MinHoursPerDay || v > domain.MaxHoursPerDay {
		return fmt.Errorf("enter a number between %g and %g", domain.MinHoursPerDay, domain.MaxHoursPerDay)
	}
	return nil
}

// validateFutureDate requires a YYYY-MM-DD date after now's calendar date.
func validateFutureDate(now time.Time) func(string) error {
	today := daysFromToday(now, 0)
	return func(s string) error {
		t, err := time.Parse(domain.DateLayout, strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("use YYYY-MM-DD format")
		}
		if !t.After(today) {
			return fmt.Errorf("deadline must be after today")
		}
		return nil
	}
}

// wizardConfirm creates a huh form for a yes/no confirmation.
func wizardConfirm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(skillpilotHuhTheme()).WithShowHelp(false)
}
