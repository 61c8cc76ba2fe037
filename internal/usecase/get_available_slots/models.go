package get_available_slots

import (
	"time"

	"github.com/sosuke1217/mobilis-ticket-sub000/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date            time.Time // Дата, на которую запрашиваются слоты (без времени)
	DurationMinutes int       // Желаемая длительность записи в минутах
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            time.Time // Дата, на которую запрашивались слоты
	DurationMinutes int       // Запрошенная длительность
	Slots           []Slot    // Список доступных слотов по возрастанию времени начала
}

// Slot модель доступного временного слота [start, end)
type Slot struct {
	StartTime types.TimeString // Время начала слота (например, "10:00")
	EndTime   types.TimeString // Время окончания слота (например, "11:00")
}
