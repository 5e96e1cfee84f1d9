package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/dominosheet/pkg/pipeline"
)

// stdout receives every status line. Tests swap it for a buffer.
var stdout io.Writer = os.Stdout

// Palette (ANSI 256).
var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorBlue   = lipgloss.Color("75")
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

var (
	// StyleTitle renders headings such as the decode header and preview page.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight renders addresses and other values the user acts on.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	StyleDim     = lipgloss.NewStyle().Foreground(colorDim)
	StyleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleKey      = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)
	styleCommand  = lipgloss.NewStyle().Foreground(colorBlue)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

func printStatus(icon string, iconStyle lipgloss.Style, msg string) {
	fmt.Fprintln(stdout, iconStyle.Render(icon)+" "+msg)
}

func printSuccess(format string, args ...any) {
	printStatus(iconSuccess, styleIconSuccess, fmt.Sprintf(format, args...))
}

func printError(format string, args ...any) {
	printStatus(iconError, styleIconError, fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	printStatus(iconWarning, styleIconWarning, StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	printStatus(iconInfo, styleIconInfo, fmt.Sprintf(format, args...))
}

// printDetail prints an indented, dimmed line under a status line.
func printDetail(format string, args ...any) {
	fmt.Fprintln(stdout, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints one written artifact path.
func printFile(path string) {
	fmt.Fprintln(stdout, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

func printKeyValue(key, value string) {
	fmt.Fprintln(stdout, styleKey.Render(key)+" "+StyleValue.Render(value))
}

// printNextStep suggests a follow-up command.
func printNextStep(description, cmd string) {
	fmt.Fprintln(stdout, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

// printSheetStats prints a one-line summary of a generated sheet:
// grid, tile count, pool size, seed and whether artifacts came from cache.
func printSheetStats(r *pipeline.Result) {
	parts := []string{
		fmt.Sprintf("%d×%d grid", r.Stats.Rows, r.Stats.Cols),
		fmt.Sprintf("%d tiles", r.Stats.Tiles),
		fmt.Sprintf("%d candidates", r.Stats.Candidates),
		fmt.Sprintf("seed %d", r.Seed),
	}
	if r.SeedDrawn {
		parts[3] += " (drawn)"
	}
	for i, p := range parts {
		parts[i] = StyleDim.Render(p)
	}
	parts = append(parts, cacheStatus(r.CacheInfo))
	fmt.Fprintln(stdout, "  "+strings.Join(parts, StyleDim.Render(" · ")))
}

func cacheStatus(info pipeline.CacheInfo) string {
	switch {
	case !info.Enabled:
		return styleComputed.Render("uncached")
	case info.RenderHit:
		return styleCached.Render("cached")
	case len(info.Hits) > 0:
		return styleCached.Render("cached " + strings.Join(info.Hits, ","))
	default:
		return styleComputed.Render("fresh")
	}
}
