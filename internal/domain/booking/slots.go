package booking

// OverlapMode define como um agendamento existente ocupa a agenda.
type OverlapMode string

const (
	// OverlapInstant: o agendamento existente ocupa só o instante de início.
	OverlapInstant OverlapMode = "instant"
	// OverlapInterval: ocupa [início, início+duração do próprio serviço).
	OverlapInterval OverlapMode = "interval"
)

const DefaultGranularity = 30

func ParseOverlapMode(s string) OverlapMode {
	if OverlapMode(s) == OverlapInterval {
		return OverlapInterval
	}
	return OverlapInstant
}

// Occupied é um horário já tomado, em minutos desde meia-noite.
type Occupied struct {
	Start       int
	DurationMin int
}

// Blocks diz se o horário ocupado impede o candidato [start, start+duration).
func (m OverlapMode) Blocks(start, duration int, o Occupied) bool {
	end := start + duration
	if m == OverlapInterval {
		occEnd := o.Start + o.DurationMin
		return o.Start < end && start < occEnd
	}
	return o.Start >= start && o.Start < end
}

type SlotQuery struct {
	WorkStart   string
	WorkEnd     string
	DurationMin int
	Granularity int
	Mode        OverlapMode
	Booked      []Occupied
}

// AvailableSlots gera candidatos a cada Granularity minutos a partir de WorkStart
// enquanto o início for menor que WorkEnd; só o início é comparado com o fim do expediente.
// Horários inválidos resultam em lista vazia.
func AvailableSlots(q SlotQuery) []string {
	slots := []string{}

	open, err := ParseClock(q.WorkStart)
	if err != nil {
		return slots
	}
	closing, err := ParseClock(q.WorkEnd)
	if err != nil {
		return slots
	}
	if q.DurationMin <= 0 {
		return slots
	}

	step := q.Granularity
	if step <= 0 {
		step = DefaultGranularity
	}

	for start := open; start < closing; start += step {
		if !anyBlocks(q.Mode, start, q.DurationMin, q.Booked) {
			slots = append(slots, FormatClock(start))
		}
	}

	return slots
}

// Conflicts aplica a mesma regra do cálculo de slots a um único horário.
func Conflicts(mode OverlapMode, start, duration int, booked []Occupied) bool {
	return anyBlocks(mode, start, duration, booked)
}

func anyBlocks(mode OverlapMode, start, duration int, booked []Occupied) bool {
	for _, o := range booked {
		if mode.Blocks(start, duration, o) {
			return true
		}
	}
	return false
}
