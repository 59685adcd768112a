package schedules

import (
	"fmt"
	"time"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/service/schedules/models"
	"github.com/LeandroKolesny/Aura-System-sub000/pkg/types"
)

// toWeeklySchedule валидирует запрос и строит полное недельное расписание.
// Отсутствующие дни становятся выходными, чтобы расписание оставалось настроенным.
func toWeeklySchedule(days []models.DayRequest) (domain.WeeklySchedule, error) {
	week := make(domain.WeeklySchedule, 7)

	for _, d := range days {
		weekday, err := models.ParseWeekday(d.Weekday)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if _, dup := week[weekday]; dup {
			return nil, fmt.Errorf("%w: weekday %s is listed twice", ErrInvalidInput, d.Weekday)
		}

		if !d.IsOpen {
			week[weekday] = domain.DaySchedule{IsOpen: false}
			continue
		}

		day, err := openDay(d.Start, d.End)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidInput, d.Weekday, err)
		}
		week[weekday] = day
	}

	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		if _, ok := week[weekday]; !ok {
			week[weekday] = domain.DaySchedule{IsOpen: false}
		}
	}

	return week, nil
}

func openDay(start, end string) (domain.DaySchedule, error) {
	startTime, err := types.NewTimeStringFromString(start)
	if err != nil {
		return domain.DaySchedule{}, fmt.Errorf("start: %v", err)
	}
	endTime, err := types.NewTimeStringFromString(end)
	if err != nil {
		return domain.DaySchedule{}, fmt.Errorf("end: %v", err)
	}

	day := domain.DaySchedule{IsOpen: true, Start: startTime, End: endTime}
	openAt, closeAt := day.OpenMinutes()
	if openAt >= closeAt {
		return domain.DaySchedule{}, fmt.Errorf("start %s must be before end %s", start, end)
	}
	return day, nil
}
