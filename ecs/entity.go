package ecs

import "strconv"

// EntityId is the integer identity of an entity. It carries no payload and no
// generation: once an entity is removed its id may be reissued to an unrelated
// entity.
type EntityId uint32

// String renders the id for logs and debug tooling.
func (e EntityId) String() string {
	return "entity#" + strconv.FormatUint(uint64(e), 10)
}

// idSet is a growable bitset keyed by entity id.
type idSet []uint64

func (s idSet) has(id EntityId) bool {
	i := int(id >> 6)
	if i >= len(s) {
		return false
	}
	return s[i]&(uint64(1)<<(id&63)) != 0
}

func (s *idSet) set(id EntityId) {
	i := int(id >> 6)
	if i >= len(*s) {
		grown := make(idSet, max(i+1, 2*len(*s)))
		copy(grown, *s)
		*s = grown
	}
	(*s)[i] |= uint64(1) << (id & 63)
}

func (s idSet) unset(id EntityId) {
	i := int(id >> 6)
	if i >= len(s) {
		return
	}
	s[i] &^= uint64(1) << (id & 63)
}
