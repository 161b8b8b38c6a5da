package tui

import (
	"strings"
	"testing"

	"github.com/theirongolddev/spendboard/internal/tui/components"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func TestTabAtXMatchesTabWidths(t *testing.T) {
	for active := range components.Tabs {
		a := App{activeTab: active}
		pos := 0

		for i := range components.Tabs {
			w := tabWidthForTest(i, active)
			x := pos + w/2 // midpoint inside this tab
			if got := a.tabAtX(x); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, x, got, i)
			}
			pos += w
			if i < len(components.Tabs)-1 {
				pos++ // separator
			}
		}
		if got := a.tabAtX(pos + 5); got != -1 {
			t.Fatalf("active=%d: x past the last tab -> %d", active, got)
		}
	}
}

func tabWidthForTest(tabIdx, activeIdx int) int {
	nameWidths := []int{
		len("Overview"),
		len("Trends"),
		len("Settings"),
	}

	w := nameWidths[tabIdx] + 2 // horizontal padding in tab renderer
	if tabIdx != activeIdx && tabIdx == 2 {
		w += 3 // inactive Settings adds "[x]"
	}
	return w
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}
}

func TestClickTab(t *testing.T) {
	a := newTestApp(t, 140, 50)
	x := tabWidthForTest(0, 0) + 1 + 2 // inside "Trends"
	a = update(t, a, click(x, 0))
	if a.activeTab != tabTrends {
		t.Fatalf("activeTab = %d, want trends", a.activeTab)
	}
}

// legendRowY finds the screen line that shows a category in the legend.
func legendRowY(t *testing.T, a App, cat string) int {
	t.Helper()
	lines := strings.Split(ansi.Strip(a.View()), "\n")
	for y, line := range lines {
		if strings.Contains(line, cat) && (strings.Contains(line, " ON ") || strings.Contains(line, " OFF")) {
			return y
		}
	}
	t.Fatalf("legend row for %q not on screen", cat)
	return -1
}

func TestClickLegendRowToggles(t *testing.T) {
	for _, width := range []int{100, 140} {
		a := newTestApp(t, width, 60)
		y := legendRowY(t, a, "Dining Out")

		if row, _ := a.legendHit(a.contentOffsetX()+4, y); row != 3 {
			t.Fatalf("width %d: legendHit(y=%d) = %d, want 3", width, y, row)
		}

		a = update(t, a, click(a.contentOffsetX()+4, y))
		if a.ctrl.Has("Dining Out") {
			t.Fatalf("width %d: click did not toggle Dining Out off", width)
		}
		if a.legendCursor != 3 {
			t.Fatalf("width %d: cursor = %d, want 3", width, a.legendCursor)
		}

		a = update(t, a, click(a.contentOffsetX()+4, y))
		if !a.ctrl.Has("Dining Out") {
			t.Fatalf("width %d: second click did not toggle back", width)
		}
	}
}

func TestClickLegendTitleCollapses(t *testing.T) {
	a := newTestApp(t, 140, 50)
	lines := strings.Split(ansi.Strip(a.View()), "\n")
	titleY := -1
	for y, line := range lines {
		if strings.Contains(line, "Categories · Hide") {
			titleY = y
			break
		}
	}
	if titleY < 0 {
		t.Fatal("legend title not found")
	}

	a = update(t, a, click(a.contentOffsetX()+4, titleY))
	if a.legendExpanded {
		t.Fatal("title click did not collapse legend")
	}
	if !strings.Contains(ansi.Strip(a.View()), "Categories · Show") {
		t.Fatal("collapsed legend should offer Show")
	}
}

func TestClickOutsideLegendIgnored(t *testing.T) {
	a := newTestApp(t, 140, 50)
	y := legendRowY(t, a, "Rent")
	// Right half of the screen is the share card.
	a = update(t, a, click(130, y))
	if !a.ctrl.Has("Rent") {
		t.Fatal("click outside the legend toggled a category")
	}
}
