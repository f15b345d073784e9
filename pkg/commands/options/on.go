package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/shiftsync/pkg/shift"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// OnOptions
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2026-2-28" or --on="2/28".`)
}

// GetOn resolves the flag to a date, defaulting to today.
func (o *OnOptions) GetOn() (time.Time, error) {
	if o.OnString == "" || o.OnString == "today" {
		return time.Now(), nil
	}
	t, err := time.ParseInLocation(layoutISO, o.OnString, time.Local)
	if err != nil {
		// Let the year be the same.
		t, err = time.ParseInLocation(layoutISOShort, o.OnString, time.Local)
		if err != nil {
			return time.Time{}, err
		}
		t = t.AddDate(time.Now().Year(), 0, 0)
		// I am gonna assume if you said 1/3 on 12/5, you meant next year, not 11 months ago.
		if t.Before(time.Now()) {
			t = t.AddDate(1, 0, 0)
		}
	}
	return t, nil
}

// GetOnKey resolves the flag to the YYYY-MM-DD form shifts use.
func (o *OnOptions) GetOnKey() (string, error) {
	t, err := o.GetOn()
	if err != nil {
		return "", err
	}
	return shift.DateKey(t), nil
}
