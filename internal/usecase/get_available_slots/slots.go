package get_available_slots

import (
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// computeSlots генерирует слоты дня по рабочим часам и помечает занятые.
// Чистая функция без побочных эффектов, тестируется без БД.
//
// Времена открытия и закрытия переводятся в минуты с полуночи, слоты
// идут от открытия с шагом slot_duration, пока начало слота СТРОГО
// меньше времени закрытия. Единственная отсечка — условие цикла:
// слот, начавшийся до закрытия, генерируется, даже если его конец
// выходит за close_time (09:00–11:00 при шаге 45 → 09:00, 09:45, 10:30).
//
// Слот занят, только если его время ТОЧНО совпадает с одним из
// bookedTimes. hours == nil или нерабочий день → пустой список.
func computeSlots(hours *domain.BusinessHours, bookedTimes []types.TimeString) ([]domain.Slot, error) {
	if hours == nil || !hours.IsWorkingDay {
		return []domain.Slot{}, nil
	}

	// 0 означает "не задано" и заменяется дефолтом; отрицательный шаг
	// зациклил бы генерацию
	slotDuration := hours.SlotDuration
	if slotDuration == 0 {
		slotDuration = domain.DefaultSlotDurationMinutes
	}
	if slotDuration < 0 {
		return nil, fmt.Errorf("%w: slot_duration %d must be positive", ErrInvalidSlotConfig, hours.SlotDuration)
	}

	openMinutes, err := hours.OpenTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: open_time %q: %v", ErrInvalidSlotConfig, hours.OpenTime, err)
	}

	closeMinutes, err := hours.CloseTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: close_time %q: %v", ErrInvalidSlotConfig, hours.CloseTime, err)
	}

	booked := make(map[types.TimeString]struct{}, len(bookedTimes))
	for _, t := range bookedTimes {
		booked[t] = struct{}{}
	}

	slots := make([]domain.Slot, 0)
	for minutes := openMinutes; minutes < closeMinutes; minutes += slotDuration {
		slotTime := types.NewTimeStringFromMinutes(minutes)
		_, taken := booked[slotTime]
		slots = append(slots, domain.Slot{
			Time:      slotTime,
			Available: !taken,
		})
	}

	return slots, nil
}
