package doctor

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/raphi011/rpc/internal/ui/styles"
)

func statusStyle(s Status) (string, lipgloss.Style) {
	sym := styles.CurrentSymbols()
	switch s {
	case StatusOK:
		return sym.OK, styles.SuccessStyle
	case StatusWarn:
		return sym.Warn, styles.WarningStyle
	case StatusFail:
		return sym.Fail, styles.ErrorStyle
	default:
		return sym.Unknown, styles.MutedStyle
	}
}

// Render formats the report for the terminal.
func (r Report) Render() string {
	var b strings.Builder

	b.WriteString("\n" + styles.HeadingStyle.Render("RPC Doctor") + "\n\n")

	for _, res := range r.Results {
		icon, style := statusStyle(res.Status)
		fmt.Fprintf(&b, "  %s %s\n", style.Render(icon), style.Render(res.Message))
		if res.Tip != "" {
			fmt.Fprintf(&b, "    %s\n", styles.MutedStyle.Render("Tip: "+res.Tip))
		}
	}

	counts := r.Counts()
	b.WriteString("\n" + styles.HeadingStyle.Render("Summary:") + " ")
	fmt.Fprintf(&b, "%d ok, %d warnings, %d failed, %d unknown\n",
		counts[StatusOK], counts[StatusWarn], counts[StatusFail], counts[StatusUnknown])

	if r.IssuesURL != "" {
		b.WriteString(styles.MutedStyle.Render("If you encounter any issues, please report them at:") + "\n")
		b.WriteString(ansi.SetHyperlink(r.IssuesURL) + r.IssuesURL + ansi.ResetHyperlink() + "\n")
	}
	return b.String()
}

// PlainText returns the report without styling or hyperlinks, suitable
// for pasting into an issue.
func (r Report) PlainText() string {
	return ansi.Strip(r.Render())
}
