package models

import "sort"

// SupplyStatus is the fill level reported for a single supply.
type SupplyStatus string

const (
    SupplyFull  SupplyStatus = "full"
    SupplyLow   SupplyStatus = "low"
    SupplyEmpty SupplyStatus = "empty"
)

// Known reports whether s is one of full, low or empty. Other values are kept
// as-is and rendered unstyled.
func (s SupplyStatus) Known() bool {
    switch s {
    case SupplyFull, SupplyLow, SupplyEmpty:
        return true
    }
    return false
}

// RoomStatus is derived from a room's supplies and never stored.
type RoomStatus string

const (
    RoomOK      RoomStatus = "ok"
    RoomWarning RoomStatus = "warning"
    RoomAlert   RoomStatus = "alert"
)

type Supply struct {
    Name   string       `json:"name"`
    Status SupplyStatus `json:"status"`
}

// Supplies maps a supply key (e.g. "soap") to its state.
type Supplies map[string]Supply

// Default supply keys, in display order.
const (
    KeyToiletPaper = "toilet_paper"
    KeySoap        = "soap"
    KeyTowel       = "towel"
    KeyTrash       = "trash"
)

var defaultOrder = []string{KeyToiletPaper, KeySoap, KeyTowel, KeyTrash}

var defaultNames = map[string]string{
    KeyToiletPaper: "Toilet Paper",
    KeySoap:        "Soap",
    KeyTowel:       "Paper Towel",
    KeyTrash:       "Trash Bin",
}

const fallbackIcon = "📦"

var icons = map[string]string{
    KeyToiletPaper: "🧻",
    KeySoap:        "🧼",
    KeyTowel:       "🤲",
    KeyTrash:       "🗑",
}

// DefaultSupplies returns a fresh four-entry set with every supply full.
func DefaultSupplies() Supplies {
    out := make(Supplies, len(defaultOrder))
    for _, key := range defaultOrder {
        out[key] = Supply{Name: defaultNames[key], Status: SupplyFull}
    }
    return out
}

// EffectiveSupplies substitutes the default set when a room carries none.
func EffectiveSupplies(s Supplies) Supplies {
    if len(s) == 0 {
        return DefaultSupplies()
    }
    return s
}

// DeriveRoomStatus: any empty supply raises an alert, otherwise any low supply
// raises a warning.
func DeriveRoomStatus(s Supplies) RoomStatus {
    status := RoomOK
    for _, sup := range s {
        switch sup.Status {
        case SupplyEmpty:
            return RoomAlert
        case SupplyLow:
            status = RoomWarning
        }
    }
    return status
}

// IconFor never fails; unknown keys get a generic icon.
func IconFor(key string) string {
    if icon, ok := icons[key]; ok {
        return icon
    }
    return fallbackIcon
}

// SupplyKeys returns the keys of s in display order: the default keys first,
// then any others alphabetically.
func SupplyKeys(s Supplies) []string {
    keys := make([]string, 0, len(s))
    for _, key := range defaultOrder {
        if _, ok := s[key]; ok {
            keys = append(keys, key)
        }
    }
    extra := make([]string, 0)
    for key := range s {
        if _, ok := defaultNames[key]; !ok {
            extra = append(extra, key)
        }
    }
    sort.Strings(extra)
    return append(keys, extra...)
}
