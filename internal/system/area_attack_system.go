// internal/system/area_attack_system.go
package system

import "card-tower-defense/internal/component"

// stomp deals the tower's flat damage to every unit on every visible tile.
func (s *TowerSystem) stomp(tw *component.Tower) {
	for _, tid := range tw.Visible {
		t := s.grid.Tile(tid)
		if t == nil {
			continue
		}
		// Units() is a copy, so deaths during the loop are safe.
		for _, uid := range t.Units() {
			s.units.TakeDamage(uid, tw.Damage)
		}
	}
}
