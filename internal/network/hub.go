package network

import (
	"sync"

	"gloomdelve-server/pkg/api"
)

// Broadcaster рассылает снапшоты подписанным клиентам. Это единственное
// место, где цикл симуляции встречается с горутинами сокетов, поэтому
// мапа подписчиков закрыта мьютексом.
type Broadcaster struct {
	mu          sync.RWMutex
	subscribers map[string]chan api.Snapshot
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan api.Snapshot),
	}
}

// Register подписывает канал клиента на рассылку. Канал приносит сам
// клиент: после регистрации хаб - единственный, кто в него пишет, так
// что порядок кадров в канале совпадает с порядком рассылок и никаких
// промежуточных горутин-ретрансляторов не нужно. Повторная регистрация
// того же ID закрывает старый канал.
func (b *Broadcaster) Register(clientID string, ch chan api.Snapshot) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if old, ok := b.subscribers[clientID]; ok {
		close(old)
	}
	b.subscribers[clientID] = ch
}

// Unregister удаляет подписчика и закрывает его канал.
func (b *Broadcaster) Unregister(clientID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[clientID]; ok {
		close(ch)
		delete(b.subscribers, clientID)
	}
}

// Broadcast отправляет снимок всем подписчикам. Отправка неблокирующая:
// медленный клиент теряет кадр, а не тормозит симуляцию.
func (b *Broadcaster) Broadcast(msg api.Snapshot) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers {
		select {
		case ch <- msg:
		default:
		}
	}
}

// SubscriberCount - количество активных подписчиков.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
