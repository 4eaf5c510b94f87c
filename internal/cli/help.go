package cli

import (
	"fmt"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
)

// Custom help styles
var (
	helpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5FAFD7")).
			Italic(true)

	helpSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#5FAFD7"))

	helpFlagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00AA00")).
			Bold(true)

	helpArgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00AAAA")).
			Bold(true)

	helpDefaultStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Italic(true)
)

// StyledHelpPrinter returns a kong help printer with Lipgloss styling.
func StyledHelpPrinter(options kong.HelpOptions) func(options kong.HelpOptions, ctx *kong.Context) error {
	return func(_ kong.HelpOptions, ctx *kong.Context) error {
		var sb strings.Builder

		sb.WriteString(helpTitleStyle.Render("SpeakEz 🎤"))
		sb.WriteString("\n")
		sb.WriteString(helpDescStyle.Render("Speech fluency analyzer"))
		sb.WriteString("\n\n")

		sb.WriteString(helpSectionStyle.Render("Usage:"))
		fmt.Fprintf(&sb, "\n  %s [flags] <files> ...\n", ctx.Model.Name)

		if positional := ctx.Model.Node.Positional; len(positional) > 0 {
			sb.WriteString("\n")
			sb.WriteString(helpSectionStyle.Render("Arguments:"))
			sb.WriteString("\n")
			for _, arg := range positional {
				fmt.Fprintf(&sb, "  %s", helpArgStyle.Render(arg.Summary()))
				if arg.Help != "" {
					fmt.Fprintf(&sb, "  %s", arg.Help)
				}
				sb.WriteString("\n")
			}
		}

		sb.WriteString("\n")
		sb.WriteString(helpSectionStyle.Render("Flags:"))
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "  %s  Show context-sensitive help.\n", helpFlagStyle.Render("-h, --help"))
		for _, f := range ctx.Model.Node.Flags {
			if f.Name == "help" {
				continue
			}
			fmt.Fprintf(&sb, "  %s", helpFlagStyle.Render(flagUsage(f)))
			if f.Help != "" {
				fmt.Fprintf(&sb, "  %s", f.Help)
			}
			if def := f.FormatPlaceHolder(); def != "" {
				fmt.Fprintf(&sb, " %s", helpDefaultStyle.Render("(default: "+def+")"))
			}
			sb.WriteString("\n")
		}

		sb.WriteString("\n")
		fmt.Fprint(ctx.Stdout, sb.String())
		return nil
	}
}

// flagUsage renders "-s, --long" or "--long=VALUE" for a flag.
func flagUsage(f *kong.Flag) string {
	usage := "--" + f.Name
	if f.Short != 0 {
		usage = fmt.Sprintf("-%c, --%s", f.Short, f.Name)
	}
	if !f.IsBool() && f.PlaceHolder != "" {
		usage += "=" + strings.ToUpper(f.PlaceHolder)
	}
	return usage
}
