package domain

// DefaultStatusColor класс для значений вне перечисления
const DefaultStatusColor = "bg-gray-100 text-gray-800"

var statusColors = map[AppointmentStatus]string{
	StatusScheduled: "bg-blue-100 text-blue-800",
	StatusConfirmed: "bg-green-100 text-green-800",
	StatusCompleted: "bg-purple-100 text-purple-800",
	StatusNoShow:    "bg-orange-100 text-orange-800",
	StatusCancelled: "bg-red-100 text-red-800",
}

// StatusColor возвращает класс цвета для статуса
// Единственный источник соответствия статус -> цвет для всех карточек и бейджей
func StatusColor(status string) string {
	if color, ok := statusColors[AppointmentStatus(status)]; ok {
		return color
	}
	return DefaultStatusColor
}

// StatusPalette возвращает цвета всех известных статусов
func StatusPalette() map[AppointmentStatus]string {
	palette := make(map[AppointmentStatus]string, len(statusColors))
	for status, color := range statusColors {
		palette[status] = color
	}
	return palette
}

var statusLabels = map[AppointmentStatus]string{
	StatusScheduled: "Agendado",
	StatusConfirmed: "Confirmado",
	StatusCompleted: "Concluído",
	StatusNoShow:    "Não compareceu",
	StatusCancelled: "Cancelado",
}

// StatusLabel возвращает подпись статуса для селектора; неизвестные значения возвращаются как есть
func StatusLabel(status AppointmentStatus) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return string(status)
}
