package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
	"github.com/LeandroKolesny/Aura-System-sub000/pkg/ptr"
	"github.com/LeandroKolesny/Aura-System-sub000/pkg/types"
)

func lunchRule(t *testing.T, all bool, professionals ...int64) *domain.UnavailabilityRule {
	return &domain.UnavailabilityRule{
		ID:               7,
		CompanyID:        1,
		StartTime:        "12:00",
		EndTime:          "13:00",
		Dates:            []types.Date{mustDate(t, "2024-06-10")},
		AllProfessionals: all,
		ProfessionalIDs:  professionals,
	}
}

func TestMatchRule_Boundaries(t *testing.T) {
	loc := clinicLocation(t)
	rules := []*domain.UnavailabilityRule{lunchRule(t, true)}

	assert.NotNil(t, MatchRule(at(t, "2024-06-10", "12:00", loc), rules, nil, loc), "start is inclusive")
	assert.NotNil(t, MatchRule(at(t, "2024-06-10", "12:59", loc), rules, nil, loc))
	assert.Nil(t, MatchRule(at(t, "2024-06-10", "13:00", loc), rules, nil, loc), "end is exclusive")
	assert.Nil(t, MatchRule(at(t, "2024-06-10", "11:59", loc), rules, nil, loc))
	assert.Nil(t, MatchRule(at(t, "2024-06-11", "12:30", loc), rules, nil, loc), "other date")
}

func TestMatchRule_Professionals(t *testing.T) {
	loc := clinicLocation(t)
	rules := []*domain.UnavailabilityRule{lunchRule(t, false, 5)}
	instant := at(t, "2024-06-10", "12:30", loc)

	assert.NotNil(t, MatchRule(instant, rules, ptr.Ptr(int64(5)), loc))
	assert.Nil(t, MatchRule(instant, rules, ptr.Ptr(int64(6)), loc))
	assert.Nil(t, MatchRule(instant, rules, nil, loc), "any professional only sees rules for all")
}

func TestMatchRule_UsesClinicLocalDate(t *testing.T) {
	loc := clinicLocation(t)
	rule := lunchRule(t, true)
	rule.StartTime = "22:00"
	rule.EndTime = "23:30"

	// 2024-06-11 01:00 UTC is 2024-06-10 22:00 in Sao Paulo
	instant := time.Date(2024, 6, 11, 1, 0, 0, 0, time.UTC)
	assert.NotNil(t, MatchRule(instant, []*domain.UnavailabilityRule{rule}, nil, loc))
}

func TestBlockingRule_Range(t *testing.T) {
	loc := clinicLocation(t)
	rules := []*domain.UnavailabilityRule{lunchRule(t, true)}
	day := "2024-06-10"

	assert.Nil(t, BlockingRule(at(t, day, "11:30", loc), at(t, day, "12:00", loc), rules, nil, loc), "touching the rule start")
	assert.NotNil(t, BlockingRule(at(t, day, "11:30", loc), at(t, day, "12:01", loc), rules, nil, loc))
	assert.NotNil(t, BlockingRule(at(t, day, "12:30", loc), at(t, day, "13:30", loc), rules, nil, loc))
	assert.Nil(t, BlockingRule(at(t, day, "13:00", loc), at(t, day, "14:00", loc), rules, nil, loc), "touching the rule end")
	assert.NotNil(t, BlockingRule(at(t, day, "11:00", loc), at(t, day, "14:00", loc), rules, nil, loc), "covering the rule")
}

func TestBlockingRule_CrossesMidnight(t *testing.T) {
	loc := clinicLocation(t)
	rule := lunchRule(t, true)
	rule.StartTime = "00:00"
	rule.EndTime = "01:00"
	rule.Dates = []types.Date{mustDate(t, "2024-06-11")}

	start := at(t, "2024-06-10", "23:30", loc)
	assert.NotNil(t, BlockingRule(start, start.Add(time.Hour), []*domain.UnavailabilityRule{rule}, nil, loc))
	assert.Nil(t, BlockingRule(start, start.Add(30*time.Minute), []*domain.UnavailabilityRule{rule}, nil, loc))
}
