package ui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"jsontest/internal/domain"
	"jsontest/internal/storage"
)

// ErrorViewer displays test failures in an interactive TUI
type ErrorViewer struct {
	storage storage.Storage
}

// NewErrorViewer creates a new ErrorViewer
func NewErrorViewer(st storage.Storage) *ErrorViewer {
	return &ErrorViewer{storage: st}
}

// View displays test failures in an interactive TUI
func (ev *ErrorViewer) View(results *domain.TestResultsOutput) error {
	failures := results.Failures()
	if len(failures) == 0 {
		color.Green("✓ No test failures found!")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	updateListItem := func(index int) {
		if index < 0 || index >= list.GetItemCount() {
			return
		}
		list.SetItemText(index, listItemText(failures[index], index), "")
	}

	for i, failure := range failures {
		list.AddItem(listItemText(failure, i), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan).
		SetSecondaryTextColor(tview.Styles.SecondaryTextColor)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetWordWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	// list on left (1/3), details on right (2/3)
	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		headerView.SetText(fmt.Sprintf(" Test Failures (%d total, %d unresolved) | Use ↑↓ to navigate, [yellow]R[white] to mark resolved, → to view details, ← to go back, Ctrl+C to exit ",
			len(failures), countUnresolved(failures)))
	}
	updateHeader()

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(failures) {
			statsView.SetText(formatFailureStats(results.Meta, failures[index], index+1))
			detailsView.SetText(formatFailureDetails(failures[index]))
			detailsView.ScrollToBeginning()
		}
	}

	var saveErr error
	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				index := list.GetCurrentItem()
				if index >= 0 && index < len(failures) {
					failures[index].Resolved = !failures[index].Resolved
					updateListItem(index)
					updateHeader()
					updateDetails()
					saveErr = ev.storage.Save(results)
				}
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if saveErr != nil {
		return fmt.Errorf("failed to save resolved status: %w", saveErr)
	}
	return nil
}

// PrintFailures writes the stored failures as plain text
func PrintFailures(out io.Writer, results *domain.TestResultsOutput) {
	failures := results.Failures()
	if len(failures) == 0 {
		okColor.Fprintln(out, "✓ No test failures found!")
		return
	}
	for _, run := range results.Runs {
		if run.OK() {
			continue
		}
		headerColor.Fprintf(out, "%s: %d passed, %d failed\n", run.WriterMode, run.Passed(), run.Failed())
		for _, failure := range run.Failures {
			marker := "✗"
			if failure.Resolved {
				marker = "✓"
			}
			fmt.Fprintf(out, "%s %s [%s]\n", marker, failure.TestPath, failure.Category)
			for _, line := range strings.Split(strings.TrimRight(failure.Detail, "\n"), "\n") {
				fmt.Fprintf(out, "    %s\n", line)
			}
		}
	}
}

func listItemText(failure *domain.FailureRecord, index int) string {
	name := failure.TestPath
	if name == "" {
		name = fmt.Sprintf("Test %d", index+1)
	} else {
		name = shortPath(name)
	}
	if failure.Resolved {
		return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", index+1, name)
	}
	return fmt.Sprintf("[yellow]%d.[white] %s", index+1, name)
}

func countUnresolved(failures []*domain.FailureRecord) int {
	count := 0
	for _, failure := range failures {
		if !failure.Resolved {
			count++
		}
	}
	return count
}

// formatFailureDetails formats a failure for display using tview color tags ([red], [cyan], etc.)
func formatFailureDetails(failure *domain.FailureRecord) string {
	var builder strings.Builder
	w := tabwriter.NewWriter(&builder, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "[red]✗ Test: %s[white]\n\n", tview.Escape(failure.TestPath))
	fmt.Fprintf(w, "[cyan]Category:\t%s[white]\n", failure.Category)
	if failure.MemcheckErrors > 0 {
		fmt.Fprintf(w, "[yellow]Memcheck errors:\t%d[white]\n", failure.MemcheckErrors)
	}
	fmt.Fprintf(w, "\n")

	if failure.Detail != "" {
		fmt.Fprintf(w, "[yellow]Details:[white]\n%s\n", tview.Escape(failure.Detail))
	}

	w.Flush()
	return builder.String()
}

// formatFailureStats formats the stats header for a failure
func formatFailureStats(meta domain.TestResultsMeta, failure *domain.FailureRecord, number int) string {
	path := failure.TestPath
	if path == "" {
		path = fmt.Sprintf("Test %d", number)
	}
	return fmt.Sprintf("[cyan]path:[white] [yellow]%s[white]\n[cyan]executable:[white] %s\n",
		tview.Escape(path), tview.Escape(meta.Executable))
}

func shortPath(path string) string {
	parts := strings.Split(strings.ReplaceAll(path, "\\", "/"), "/")
	if len(parts) <= 2 {
		return path
	}
	return strings.Join(parts[len(parts)-2:], "/")
}
