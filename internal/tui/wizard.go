// Package tui implements the interactive profile-intake wizard.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/quillhaven/severance-compass/internal/jurisdiction"
	"github.com/quillhaven/severance-compass/internal/model"
)

// fieldKind selects how a wizard step collects its value.
type fieldKind int

const (
	kindText fieldKind = iota
	kindSelect
	kindYesNo
)

// field is one wizard step.
type field struct {
	apply    func(*model.EmployeeProfile, string) error
	prompt   string
	help     string
	options  []string // kindSelect only
	kind     fieldKind
	optional bool // empty text input allowed
}

// WizardModel collects an employee profile one field at a time.
type WizardModel struct {
	err      error
	profile  *model.EmployeeProfile
	input    textinput.Model
	fields   []field
	step     int
	cursor   int
	yes      bool
	done     bool
	canceled bool
}

var (
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5F87FF"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4ECDC4"))
)

// NewWizard creates the intake wizard.
func NewWizard() WizardModel {
	input := textinput.New()
	input.CharLimit = 32
	input.Focus()

	profile := &model.EmployeeProfile{}

	ages := make([]string, 0, len(model.AgeBrackets()))
	for _, b := range model.AgeBrackets() {
		ages = append(ages, string(b))
	}
	positions := make([]string, 0, len(model.Positions()))
	for _, p := range model.Positions() {
		positions = append(positions, string(p))
	}

	fields := []field{
		{
			kind:    kindSelect,
			prompt:  "Jurisdiction",
			help:    "Province, territory, or FED for federally regulated work",
			options: jurisdiction.Codes(),
			apply: func(p *model.EmployeeProfile, v string) error {
				p.Jurisdiction = v
				return nil
			},
		},
		{
			kind:   kindText,
			prompt: "Whole years of service",
			help:   "e.g. 10",
			apply: func(p *model.EmployeeProfile, v string) error {
				years, err := strconv.Atoi(v)
				if err != nil || years < 0 {
					return fmt.Errorf("enter a non-negative whole number")
				}
				p.YearsOfService = years
				return nil
			},
		},
		{
			kind:     kindText,
			prompt:   "Additional months of service (0-11)",
			help:     "blank for 0",
			optional: true,
			apply: func(p *model.EmployeeProfile, v string) error {
				if v == "" {
					return nil
				}
				months, err := strconv.Atoi(v)
				if err != nil || months < 0 || months > 11 {
					return fmt.Errorf("enter a number from 0 to 11")
				}
				p.MonthsOfService = months
				return nil
			},
		},
		{
			kind:    kindSelect,
			prompt:  "Age bracket",
			options: ages,
			apply: func(p *model.EmployeeProfile, v string) error {
				p.AgeBracket = model.AgeBracket(v)
				return nil
			},
		},
		{
			kind:    kindSelect,
			prompt:  "Job position",
			options: positions,
			apply: func(p *model.EmployeeProfile, v string) error {
				p.Position = model.Position(v)
				return nil
			},
		},
		{
			kind:   kindText,
			prompt: "Annual salary",
			help:   "e.g. 104000",
			apply: func(p *model.EmployeeProfile, v string) error {
				salary, err := strconv.ParseFloat(v, 64)
				if err != nil || salary <= 0 {
					return fmt.Errorf("enter a positive amount")
				}
				p.AnnualSalary = salary
				return nil
			},
		},
		{
			kind:   kindYesNo,
			prompt: "Union member?",
			help:   "Collectively-bargained employees get a zero estimate",
			apply: func(p *model.EmployeeProfile, v string) error {
				p.UnionMember = v == "y"
				return nil
			},
		},
		{
			kind:     kindText,
			prompt:   "Employer's severance offer",
			help:     "blank if none",
			optional: true,
			apply: func(p *model.EmployeeProfile, v string) error {
				if v == "" {
					return nil
				}
				offer, err := strconv.ParseFloat(v, 64)
				if err != nil || offer < 0 {
					return fmt.Errorf("enter a non-negative amount")
				}
				p.CurrentOffer = &offer
				return nil
			},
		},
		{
			kind:     kindText,
			prompt:   "Employer's total annual payroll",
			help:     "blank if unknown; gates Ontario statutory severance",
			optional: true,
			apply: func(p *model.EmployeeProfile, v string) error {
				if v == "" {
					return nil
				}
				payroll, err := strconv.ParseFloat(v, 64)
				if err != nil || payroll < 0 {
					return fmt.Errorf("enter a non-negative amount")
				}
				p.EmployerPayroll = &payroll
				return nil
			},
		},
	}

	return WizardModel{
		profile: profile,
		input:   input,
		fields:  fields,
	}
}

// Profile returns the collected profile, or nil if the wizard was canceled.
func (m WizardModel) Profile() *model.EmployeeProfile {
	if m.canceled || !m.done {
		return nil
	}
	return m.profile
}

// Init implements tea.Model.
func (m WizardModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		m.canceled = true
		return m, tea.Quit
	}

	if m.done {
		return m, tea.Quit
	}

	f := m.fields[m.step]
	switch f.kind {
	case kindSelect:
		return m.updateSelect(keyMsg, f)
	case kindYesNo:
		return m.updateYesNo(keyMsg, f)
	default:
		return m.updateText(keyMsg, f)
	}
}

func (m WizardModel) updateSelect(msg tea.KeyMsg, f field) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(f.options)-1 {
			m.cursor++
		}
	case "enter":
		m.err = f.apply(m.profile, f.options[m.cursor])
		if m.err == nil {
			return m.advance()
		}
	}
	return m, nil
}

func (m WizardModel) updateYesNo(msg tea.KeyMsg, f field) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "right", "h", "l", "tab":
		m.yes = !m.yes
	case "y":
		m.yes = true
	case "n":
		m.yes = false
	case "enter":
		answer := "n"
		if m.yes {
			answer = "y"
		}
		m.err = f.apply(m.profile, answer)
		if m.err == nil {
			return m.advance()
		}
	}
	return m, nil
}

func (m WizardModel) updateText(msg tea.KeyMsg, f field) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		value := strings.TrimSpace(m.input.Value())
		if value == "" && !f.optional {
			m.err = fmt.Errorf("this field is required")
			return m, nil
		}
		m.err = f.apply(m.profile, value)
		if m.err == nil {
			return m.advance()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m WizardModel) advance() (tea.Model, tea.Cmd) {
	m.step++
	m.cursor = 0
	m.yes = false
	m.input.SetValue("")
	m.err = nil

	if m.step >= len(m.fields) {
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m WizardModel) View() string {
	if m.done || m.canceled {
		return ""
	}

	f := m.fields[m.step]
	var b strings.Builder

	b.WriteString(helpStyle.Render(fmt.Sprintf("Step %d of %d", m.step+1, len(m.fields))) + "\n")
	b.WriteString(promptStyle.Render(f.prompt) + "\n")
	if f.help != "" {
		b.WriteString(helpStyle.Render(f.help) + "\n")
	}

	switch f.kind {
	case kindSelect:
		for i, opt := range f.options {
			if i == m.cursor {
				b.WriteString(cursorStyle.Render("▸ "+opt) + "\n")
			} else {
				b.WriteString("  " + opt + "\n")
			}
		}
	case kindYesNo:
		yes, no := "  yes", "▸ no"
		if m.yes {
			yes, no = "▸ yes", "  no"
		}
		if m.yes {
			b.WriteString(cursorStyle.Render(yes) + "\n" + no + "\n")
		} else {
			b.WriteString(yes + "\n" + cursorStyle.Render(no) + "\n")
		}
	default:
		b.WriteString(m.input.View() + "\n")
	}

	if m.err != nil {
		b.WriteString(errStyle.Render(m.err.Error()) + "\n")
	}
	b.WriteString(helpStyle.Render("enter to continue · esc to cancel"))

	return b.String()
}

// Run executes the wizard and returns the collected profile, or nil when
// the user cancels.
func Run() (*model.EmployeeProfile, error) {
	program := tea.NewProgram(NewWizard())
	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}

	wizard, ok := final.(WizardModel)
	if !ok {
		return nil, fmt.Errorf("unexpected wizard model type %T", final)
	}
	return wizard.Profile(), nil
}
