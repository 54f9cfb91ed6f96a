package handlers

import (
	"net/url"

	"github.com/rogerio-castellano/resto-dashboard/internal/dashboard"
)

// parseRangeQuery validates the start/end query parameters and returns the
// query window, or the message to reject the request with.
//
// Two entry modalities are supported, mirroring the clients: mode=text (the
// default, free-text fields) rejects an inverted range outright; mode=picker
// auto-adjusts the bound the user did not touch (changed=start|end, end by
// default). Format errors and over-long spans reject in both modes.
func parseRangeQuery(q url.Values) (dashboard.Range, string) {
	start, err := dashboard.ParseDate(q.Get("start"))
	if err != nil {
		return dashboard.Range{}, "start: " + err.Error()
	}
	end, err := dashboard.ParseDate(q.Get("end"))
	if err != nil {
		return dashboard.Range{}, "end: " + err.Error()
	}

	if q.Get("mode") == "picker" {
		changed := dashboard.BoundEnd
		if q.Get("changed") == "start" {
			changed = dashboard.BoundStart
		}
		start, end = dashboard.AdjustRange(start, end, changed)
	}

	if err := dashboard.ValidateRange(start, end); err != nil {
		return dashboard.Range{}, err.Error()
	}
	return dashboard.Range{Start: start, End: end}, ""
}
