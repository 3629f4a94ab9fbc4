package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func typeString(m tea.Model, s string) tea.Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestWizard_CollectsFullProfile(t *testing.T) {
	var m tea.Model = NewWizard()

	// Jurisdiction: select the first code (AB).
	m, _ = m.Update(keyMsg("enter"))

	// Years.
	m = typeString(m, "10")
	m, _ = m.Update(keyMsg("enter"))

	// Months: blank defaults to zero.
	m, _ = m.Update(keyMsg("enter"))

	// Age bracket: move down once (30-40).
	m, _ = m.Update(keyMsg("down"))
	m, _ = m.Update(keyMsg("enter"))

	// Position: first option (entry-level).
	m, _ = m.Update(keyMsg("enter"))

	// Salary.
	m = typeString(m, "104000")
	m, _ = m.Update(keyMsg("enter"))

	// Union: default no.
	m, _ = m.Update(keyMsg("enter"))

	// Offer and payroll: blank.
	m, _ = m.Update(keyMsg("enter"))
	m, _ = m.Update(keyMsg("enter"))

	wizard, ok := m.(WizardModel)
	require.True(t, ok)

	profile := wizard.Profile()
	require.NotNil(t, profile)
	assert.Equal(t, "AB", profile.Jurisdiction)
	assert.Equal(t, 10, profile.YearsOfService)
	assert.Equal(t, 0, profile.MonthsOfService)
	assert.Equal(t, "30-40", string(profile.AgeBracket))
	assert.Equal(t, "entry-level", string(profile.Position))
	assert.InDelta(t, 104_000, profile.AnnualSalary, 0.01)
	assert.False(t, profile.UnionMember)
	assert.Nil(t, profile.CurrentOffer)
	assert.Nil(t, profile.EmployerPayroll)
}

func TestWizard_RejectsInvalidFieldAndStays(t *testing.T) {
	var m tea.Model = NewWizard()

	// Jurisdiction.
	m, _ = m.Update(keyMsg("enter"))

	// Years: non-numeric input is rejected in place.
	m = typeString(m, "ten")
	m, _ = m.Update(keyMsg("enter"))

	wizard, ok := m.(WizardModel)
	require.True(t, ok)
	assert.Error(t, wizard.err)
	assert.Equal(t, 1, wizard.step)
}

func TestWizard_CancelReturnsNilProfile(t *testing.T) {
	var m tea.Model = NewWizard()

	m, _ = m.Update(keyMsg("esc"))

	wizard, ok := m.(WizardModel)
	require.True(t, ok)
	assert.Nil(t, wizard.Profile())
}

func TestWizard_RequiredTextFieldCannotBeBlank(t *testing.T) {
	var m tea.Model = NewWizard()

	// Jurisdiction, then blank years.
	m, _ = m.Update(keyMsg("enter"))
	m, _ = m.Update(keyMsg("enter"))

	wizard, ok := m.(WizardModel)
	require.True(t, ok)
	assert.Error(t, wizard.err)
	assert.Equal(t, 1, wizard.step)
}
