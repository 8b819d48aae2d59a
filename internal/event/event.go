// internal/event/event.go
package event

// EventType — имя события жизненного цикла фигуры или настроек
type EventType string

// Event — событие и его полезная нагрузка (ShapeData или SettingsData)
type Event struct {
	Type EventType
	Data any
}

// Listener — подписчик. Подписчики сравниваются по ==, поэтому это должны
// быть указатели или другие сравнимые значения.
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher доставляет события синхронно, в порядке подписки. Подписка и
// отписка внутри OnEvent действуют со следующего Dispatch.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: make(map[EventType][]Listener)}
}

// Subscribe подписывает listener на все перечисленные типы. Повторная
// подписка на тот же тип игнорируется.
func (d *Dispatcher) Subscribe(listener Listener, types ...EventType) {
	for _, t := range types {
		if d.subscribed(t, listener) {
			continue
		}
		d.listeners[t] = append(d.listeners[t], listener)
	}
}

// Unsubscribe снимает listener с перечисленных типов, а без типов — со всех.
func (d *Dispatcher) Unsubscribe(listener Listener, types ...EventType) {
	if len(types) == 0 {
		for t := range d.listeners {
			types = append(types, t)
		}
	}
	for _, t := range types {
		ls := d.listeners[t]
		kept := make([]Listener, 0, len(ls))
		for _, l := range ls {
			if l != listener {
				kept = append(kept, l)
			}
		}
		if len(kept) == 0 {
			delete(d.listeners, t)
		} else {
			d.listeners[t] = kept
		}
	}
}

// Count — число подписчиков на тип.
func (d *Dispatcher) Count(t EventType) int {
	return len(d.listeners[t])
}

// Dispatch отправляет событие подписчикам его типа.
func (d *Dispatcher) Dispatch(e Event) {
	// range фиксирует длину среза, а Unsubscribe строит новый
	for _, l := range d.listeners[e.Type] {
		l.OnEvent(e)
	}
}

func (d *Dispatcher) subscribed(t EventType, listener Listener) bool {
	for _, l := range d.listeners[t] {
		if l == listener {
			return true
		}
	}
	return false
}
