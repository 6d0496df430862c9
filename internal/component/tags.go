package component

import "gloomdelve-server/internal/ecs"

const (
	CMonster ecs.ComponentType = 4
	CPlayer  ecs.ComponentType = 5
)

// Monster - маркер без полей: отличает NPC от игрока. Проверка
// "является ли сущность монстром" - это просто наличие компонента,
// никакой иерархии типов.
type Monster struct{}

func (Monster) Type() ecs.ComponentType { return CMonster }

// Player помечает сущность, управляемую игроком.
type Player struct{}

func (Player) Type() ecs.ComponentType { return CPlayer }
