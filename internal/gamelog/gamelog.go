// Package gamelog - журнал игровых событий. Через него системы
// сообщают наблюдаемые реакции (реплики монстров, служебные сообщения),
// не трогая состояние мира.
package gamelog

import "time"

// Типы записей.
const (
	KindInfo   = "INFO"
	KindSpeech = "SPEECH"
)

// Entry - одна запись журнала.
type Entry struct {
	Text      string `json:"text"`
	Kind      string `json:"type"`
	Timestamp int64  `json:"timestamp"` // unix milliseconds
}

// historyLimit ограничивает окно недавних записей, которое получают
// новые подписчики.
const historyLimit = 32

// Log копит записи до тех пор, пока хост не заберет их снапшотом.
// Ядро однопоточное, синхронизация не нужна.
type Log struct {
	entries []Entry
	history []Entry
}

func New() *Log {
	return &Log{}
}

// Append добавляет запись с текущим временем.
func (l *Log) Append(kind, text string) {
	e := Entry{
		Text:      text,
		Kind:      kind,
		Timestamp: time.Now().UnixMilli(),
	}
	l.entries = append(l.entries, e)

	l.history = append(l.history, e)
	if len(l.history) > historyLimit {
		l.history = l.history[len(l.history)-historyLimit:]
	}
}

// Entries возвращает накопленные записи (для чтения).
func (l *Log) Entries() []Entry {
	return l.entries
}

// Len - количество накопленных записей.
func (l *Log) Len() int {
	return len(l.entries)
}

// Drain отдает накопленные записи и очищает журнал.
// Хост вызывает его при сборке очередного снапшота.
func (l *Log) Drain() []Entry {
	out := l.entries
	l.entries = nil
	return out
}

// Recent возвращает окно последних записей, переживающее Drain.
// Им хост встречает поздно подключившихся клиентов: приветствие и
// свежие реплики не теряются, даже если их уже разослали.
func (l *Log) Recent() []Entry {
	return l.history
}
