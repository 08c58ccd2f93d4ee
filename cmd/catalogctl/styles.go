package main

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/JonMunkholm/pharmacatalog/internal/core"
)

var (
	accent = lipgloss.AdaptiveColor{Light: "#005577", Dark: "#00aadd"}

	headerStyle = lipgloss.NewStyle().
			Foreground(accent).
			Bold(true).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#859900", Dark: "#50fa7b"}).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#626262", Dark: "#a8a8a8"})
)

// productTable renders products as a bordered table with display units.
// Units that advertise an offer are marked with an asterisk.
func productTable(products []core.Product) string {
	views := core.Views(products)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(accent)).
		Headers("PRODUCT", "UNIT", "COMPANY", "CATEGORY")

	for _, v := range views {
		unit := v.DisplayUnit
		if v.SpecialOffer {
			unit += " *"
		}
		t.Row(v.Name, unit, v.Company, v.Category)
	}

	t.StyleFunc(tableStyle)
	return t.Render()
}

// categoryCounts renders how many products fall into each category, in
// taxonomy order, skipping empty categories.
func categoryCounts(products []core.Product) string {
	counts := make(map[string]int, len(products))
	for _, p := range products {
		counts[p.Category]++
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		Headers("CATEGORY", "PRODUCTS")
	for _, c := range core.Categories() {
		if counts[c] == 0 {
			continue
		}
		t.Row(c, strconv.Itoa(counts[c]))
	}
	t.StyleFunc(tableStyle)
	return t.Render()
}

func tableStyle(row, _ int) lipgloss.Style {
	if row == table.HeaderRow {
		return headerStyle
	}
	return cellStyle
}
