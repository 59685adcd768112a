package scheduling

import (
	"time"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
	"github.com/LeandroKolesny/Aura-System-sub000/pkg/types"
)

// MatchRule returns the first rule blocking the instant for the professional, or nil.
// professionalID nil means "any professional": only rules for all professionals apply.
func MatchRule(instant time.Time, rules []*domain.UnavailabilityRule, professionalID *int64, loc *time.Location) *domain.UnavailabilityRule {
	date := LocalDate(instant, loc)
	minute := MinuteOfDay(instant, loc)

	for _, rule := range rules {
		if !rule.AppliesTo(professionalID) || !rule.CoversDate(date) {
			continue
		}
		ruleStart, ruleEnd := ruleWindow(rule)
		if OverlapsMinutes(minute, minute+1, ruleStart, ruleEnd) {
			return rule
		}
	}
	return nil
}

// BlockingRule returns the first rule blocking any minute of [start, end), or nil.
// Ranges crossing clinic-local midnight are checked against every day they touch.
func BlockingRule(start, end time.Time, rules []*domain.UnavailabilityRule, professionalID *int64, loc *time.Location) *domain.UnavailabilityRule {
	if !start.Before(end) {
		return nil
	}
	first := LocalDate(start, loc)
	last := LocalDate(end.Add(-time.Nanosecond), loc)

	for _, rule := range rules {
		if !rule.AppliesTo(professionalID) {
			continue
		}
		ruleStart, ruleEnd := ruleWindow(rule)
		for date := first; !date.After(last); date = date.AddDays(1) {
			if !rule.CoversDate(date) {
				continue
			}
			if Overlaps(start, end, date.At(ruleStart, loc), date.At(ruleEnd, loc)) {
				return rule
			}
		}
	}
	return nil
}

// ruleWindow returns the rule's minute-of-day range; an end of 00:00 is midnight
func ruleWindow(rule *domain.UnavailabilityRule) (int, int) {
	startAt := rule.StartTime.Minutes()
	endAt := rule.EndTime.Minutes()
	if endAt == 0 {
		endAt = types.MinutesPerDay
	}
	return startAt, endAt
}
