package goal

import "fmt"

// TimeOption is one choice of the daily time goal.
type TimeOption struct {
	Seconds int
	Label   string
}

var timeOptionMinutes = []int{1, 2, 3, 5, 10, 15, 20, 30, 45, 60, 90, 120}

// TimeOptions lists the daily time goals in ascending order.
func TimeOptions() []TimeOption {
	opts := make([]TimeOption, 0, len(timeOptionMinutes))
	for _, m := range timeOptionMinutes {
		opts = append(opts, TimeOption{Seconds: m * 60, Label: durationLabel(m)})
	}
	return opts
}

func durationLabel(minutes int) string {
	switch {
	case minutes < 60:
		return plural(minutes, "minute")
	case minutes%60 == 0:
		return plural(minutes/60, "hour")
	default:
		return fmt.Sprintf("%.1f hours", float64(minutes)/60)
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
