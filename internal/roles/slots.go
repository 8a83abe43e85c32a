// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package roles

import (
	"sort"

	"github.com/pdiddy/elementary-assertions/pkg/types"
)

// OtherSlot carries a role that has no legacy slot of its own.
type OtherSlot struct {
	Role       string   `json:"role" yaml:"role"`
	MentionIDs []string `json:"mention_ids" yaml:"mention_ids"`
}

// Slots is the legacy slot mapping older report scripts expect.
type Slots struct {
	Actor    []string    `json:"actor" yaml:"actor"`
	Theme    []string    `json:"theme" yaml:"theme"`
	Attr     []string    `json:"attr" yaml:"attr"`
	Topic    []string    `json:"topic" yaml:"topic"`
	Location []string    `json:"location" yaml:"location"`
	Other    []OtherSlot `json:"other" yaml:"other"`
}

// slotAliases maps role names onto legacy slot names.
var slotAliases = map[string]string{
	"actor":     "actor",
	"agent":     "actor",
	"theme":     "theme",
	"patient":   "theme",
	"attr":      "attr",
	"attribute": "attr",
	"topic":     "topic",
	"location":  "location",
	"loc":       "location",
}

// SlotName returns the legacy slot a role maps to, or "" for the other bucket.
func SlotName(role string) string {
	return slotAliases[role]
}

// ToSlots reconstructs the legacy slot mapping from an assertion's
// arguments and modifiers. Each slot lists sorted, unique mention ids.
// Unrecognised roles land in Other, one entry per role, sorted by role.
func ToSlots(a types.Assertion) Slots {
	s := Slots{
		Actor:    []string{},
		Theme:    []string{},
		Attr:     []string{},
		Topic:    []string{},
		Location: []string{},
		Other:    []OtherSlot{},
	}
	other := make(map[string][]string)
	for _, e := range a.Roles() {
		switch SlotName(e.Role) {
		case "actor":
			s.Actor = append(s.Actor, e.MentionIDs...)
		case "theme":
			s.Theme = append(s.Theme, e.MentionIDs...)
		case "attr":
			s.Attr = append(s.Attr, e.MentionIDs...)
		case "topic":
			s.Topic = append(s.Topic, e.MentionIDs...)
		case "location":
			s.Location = append(s.Location, e.MentionIDs...)
		default:
			other[e.Role] = append(other[e.Role], e.MentionIDs...)
		}
	}
	s.Actor = SortedUnique(s.Actor)
	s.Theme = SortedUnique(s.Theme)
	s.Attr = SortedUnique(s.Attr)
	s.Topic = SortedUnique(s.Topic)
	s.Location = SortedUnique(s.Location)

	names := make([]string, 0, len(other))
	for role := range other {
		names = append(names, role)
	}
	sort.Strings(names)
	for _, role := range names {
		mids := SortedUnique(other[role])
		if len(mids) == 0 {
			continue
		}
		s.Other = append(s.Other, OtherSlot{Role: role, MentionIDs: mids})
	}
	return s
}

// IsEmpty reports whether no slot holds a mention.
func (s Slots) IsEmpty() bool {
	return len(s.Actor) == 0 && len(s.Theme) == 0 && len(s.Attr) == 0 &&
		len(s.Topic) == 0 && len(s.Location) == 0 && len(s.Other) == 0
}
