package analytics

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/JonnyWalker81/checkin/backend/internal/models"
)

// NoDataSummary is the summary text of a period without check-ins
const NoDataSummary = "Not enough data for a detailed summary."

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatOptional(v *float64) string {
	if v == nil {
		return "-"
	}
	return formatNumber(*v)
}

func formatHighlight(h *models.DayHighlight) string {
	if h == nil {
		return "N/A"
	}
	return fmt.Sprintf("%s (mood %s)", h.Date, formatNumber(h.AvgMood))
}

// SummaryText renders a one-paragraph summary of computed window insights.
func SummaryText(in models.WindowInsights) string {
	if in.TotalCheckins == 0 {
		return NoDataSummary
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Over the selected period you recorded %d check-in(s). ", in.TotalCheckins)
	fmt.Fprintf(&sb, "Average mood: %s, craving: %s, stress: %s. ",
		formatOptional(in.Averages.Mood),
		formatOptional(in.Averages.Craving),
		formatOptional(in.Averages.Stress))
	fmt.Fprintf(&sb, "Best day: %s. Worst day: %s.", formatHighlight(in.BestDay), formatHighlight(in.WorstDay))

	if in.Improvement != nil {
		sign := ""
		if in.Improvement.Absolute > 0 {
			sign = "+"
		}
		fmt.Fprintf(&sb, " Mood change (first→second half): %s%s.", sign, formatNumber(in.Improvement.Absolute))
	}

	return sb.String()
}
