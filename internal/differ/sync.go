// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

// SyncReport lists the keys that keep a target out of step with its source.
type SyncReport struct {
	// Missing keys exist in the source only.
	Missing []string `json:"missing"`
	// Extra keys exist in the target only.
	Extra []string `json:"extra"`
}

// InSync reports whether nothing is missing or extra.
func (r SyncReport) InSync() bool {
	return len(r.Missing) == 0 && len(r.Extra) == 0
}

// Sync reports the missing and extra keys of view and returns view without the
// extra items. Missing items stay absent so they still show as untranslated.
func Sync(view View) (SyncReport, View) {
	report := SyncReport{Missing: []string{}, Extra: []string{}}
	synced := make(View, 0, len(view))

	for _, item := range view {
		switch {
		case item.HasSource() && !item.HasTarget():
			report.Missing = append(report.Missing, item.Key)
		case !item.HasSource() && item.HasTarget():
			report.Extra = append(report.Extra, item.Key)
			continue
		}
		synced = append(synced, item)
	}

	return report, synced
}
