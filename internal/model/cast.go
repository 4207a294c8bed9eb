package model

import (
	"slices"
	"strings"
)

// CharacterSeparator joins the character names of a cast member when rendered
const CharacterSeparator = " / "

// CastMember is a distinct person in the cast of one title
type CastMember struct {
	PersonID       int64
	Name           string
	CharacterNames []string
	ProfilePath    string
}

// Character renders the character names of the member
func (cm CastMember) Character() string {
	return strings.Join(cm.CharacterNames, CharacterSeparator)
}

// AddCharacter appends a character name unless it is empty or already present
func (cm *CastMember) AddCharacter(name string) bool {
	if name == "" || slices.Contains(cm.CharacterNames, name) {
		return false
	}
	cm.CharacterNames = append(cm.CharacterNames, name)
	return true
}

// Cast maps person IDs to cast members and remembers insertion order
type Cast struct {
	order   []int64
	members map[int64]*CastMember
}

func NewCast() *Cast {
	return &Cast{
		members: make(map[int64]*CastMember),
	}
}

// Get returns the member with this person ID, if any
func (c *Cast) Get(personID int64) (*CastMember, bool) {
	if c == nil {
		return nil, false
	}
	member, ok := c.members[personID]
	return member, ok
}

// Insert stores a member if its person ID is new and returns the stored member
func (c *Cast) Insert(member CastMember) (stored *CastMember, inserted bool) {
	if existing, ok := c.members[member.PersonID]; ok {
		return existing, false
	}
	c.order = append(c.order, member.PersonID)
	c.members[member.PersonID] = &member
	return &member, true
}

// Len returns the number of distinct people in the cast
func (c *Cast) Len() int {
	if c == nil {
		return 0
	}
	return len(c.order)
}

// Members returns the cast members in insertion order
func (c *Cast) Members() []CastMember {
	if c == nil {
		return nil
	}
	members := make([]CastMember, 0, len(c.order))
	for _, personID := range c.order {
		members = append(members, *c.members[personID])
	}
	return members
}
