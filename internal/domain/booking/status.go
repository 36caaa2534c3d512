package booking

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusWaiting    Status = "waiting"
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusRemoved    Status = "removed"
)

func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusRemoved:
		return true
	}
	return false
}

// BlockingStatuses ocupam horário no cálculo de slots.
var BlockingStatuses = []Status{StatusPending, StatusConfirmed, StatusInProgress}

// NonTerminalStatuses participam da checagem de sobreposição na criação.
var NonTerminalStatuses = []Status{StatusWaiting, StatusPending, StatusConfirmed, StatusInProgress}

func StatusStrings(statuses []Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

// ===============================
// Transitions
// ===============================

type Action string

const (
	ActionStart    Action = "start"
	ActionPromote  Action = "promote"
	ActionComplete Action = "complete"
	ActionRemove   Action = "remove"
	ActionCancel   Action = "cancel"
)

var transitionMap = map[Action][]Status{
	ActionStart:    {StatusWaiting},
	ActionPromote:  {StatusPending, StatusConfirmed},
	ActionComplete: {StatusInProgress},
	ActionRemove:   {StatusWaiting},
	ActionCancel:   {StatusWaiting, StatusPending, StatusConfirmed, StatusInProgress},
}

// ValidTransition diz se a ação é permitida a partir do status atual.
func ValidTransition(action Action, from Status) bool {
	for _, s := range transitionMap[action] {
		if s == from {
			return true
		}
	}
	return false
}
