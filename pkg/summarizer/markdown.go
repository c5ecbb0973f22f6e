package summarizer

import (
	"fmt"
	"strconv"
	"strings"
)

// Translator maps a label to its localized form.
type Translator func(key string) string

// MarkdownFormatter renders a Summary as a Markdown report.
type MarkdownFormatter struct {
	translate Translator
	version   string
}

// MarkdownOption configures a MarkdownFormatter.
type MarkdownOption func(*MarkdownFormatter)

// WithTranslator sets the label translator, typically l10n.T.
func WithTranslator(t Translator) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.translate = t
	}
}

// WithVersion sets the speedline version shown in the footer.
func WithVersion(version string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.version = version
	}
}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter(opts ...MarkdownOption) *MarkdownFormatter {
	f := &MarkdownFormatter{
		translate: func(key string) string { return key },
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format implements Formatter.
func (f *MarkdownFormatter) Format(s *Summary) string {
	t := f.translate
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", t("Frames Summary"))

	f.table(&sb, [][2]string{
		{t("Trace"), s.Trace.Source},
		{t("Start"), formatMs(s.Timeline.StartTs)},
		{t("End"), formatMs(s.Timeline.EndTs)},
		{t("Duration"), formatMs(s.Timeline.DurationMs)},
		{t("Frames"), strconv.Itoa(s.Timeline.FrameCount)},
		{t("Total Size"), formatBytes(s.Timeline.TotalBytes)},
	})

	fmt.Fprintf(&sb, "## %s\n\n", t("Settings"))

	origin := t("Earliest event")
	if s.Settings.TimeOrigin != nil {
		origin = strconv.FormatFloat(*s.Settings.TimeOrigin, 'f', -1, 64) + " µs"
	}
	threshold := t("Disabled")
	if s.Settings.WhiteThreshold > 0 {
		threshold = strconv.Itoa(s.Settings.WhiteThreshold)
	}
	f.table(&sb, [][2]string{
		{t("Time Origin"), origin},
		{t("Relative Timestamps"), f.yesNo(s.Settings.Relative)},
		{t("Histograms"), f.yesNo(s.Settings.Histograms)},
		{t("White Threshold"), threshold},
	})

	if len(s.Frames) > 0 {
		fmt.Fprintf(&sb, "## %s\n\n", t("Frames"))
		fmt.Fprintf(&sb, "| # | %s | %s | %s | %s R | %s G | %s B |\n",
			t("Timestamp"), t("Offset"), t("Size"), t("Mean"), t("Mean"), t("Mean"))
		sb.WriteString("|---:|---:|---:|---:|---:|---:|---:|\n")
		for _, row := range s.Frames {
			fmt.Fprintf(&sb, "| %d | %s | +%.1f ms | %s |", row.Index, formatMs(row.TimestampMs), row.OffsetMs, formatBytes(int64(row.Bytes)))
			if row.Mean == nil {
				sb.WriteString(" - | - | - |\n")
				continue
			}
			for _, m := range row.Mean {
				fmt.Fprintf(&sb, " %.1f |", m)
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString("---\n\n")
	generated := s.GeneratedAt.UTC().Format("2006-01-02 15:04:05 UTC")
	if f.version != "" {
		fmt.Fprintf(&sb, "%s speedline %s, %s\n", t("Generated by"), f.version, generated)
	} else {
		fmt.Fprintf(&sb, "%s speedline, %s\n", t("Generated by"), generated)
	}

	return sb.String()
}

func (f *MarkdownFormatter) table(sb *strings.Builder, rows [][2]string) {
	fmt.Fprintf(sb, "| %s | %s |\n", f.translate("Item"), f.translate("Value"))
	sb.WriteString("|------|-------|\n")
	for _, r := range rows {
		fmt.Fprintf(sb, "| %s | %s |\n", r[0], r[1])
	}
	sb.WriteString("\n")
}

func (f *MarkdownFormatter) yesNo(v bool) string {
	if v {
		return f.translate("Yes")
	}
	return f.translate("No")
}

func formatMs(ms float64) string {
	return strconv.FormatFloat(ms, 'f', 3, 64) + " ms"
}

// formatBytes formats a byte count with binary units.
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < 2; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(bytes)/float64(div), "KMG"[exp])
}

var _ Formatter = (*MarkdownFormatter)(nil)
