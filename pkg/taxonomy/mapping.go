// Package taxonomy maps raw spec-sheet labels onto the canonical
// (group, name) taxonomy. An exact-match Table is consulted first and an
// ordered keyword Classifier handles labels the table does not know.
package taxonomy

import (
	domain "github.com/donaldgifford/phone-spec-scraper/pkg/types"
)

// Canonical is a resolved (group, name) pair.
type Canonical struct {
	Group domain.Group
	Name  string
}

// Table is an immutable exact-match lookup from raw label to Canonical.
// Lookups are case-sensitive.
type Table struct {
	entries map[string]Canonical
}

// NewTable builds a Table from entries. The map is copied.
func NewTable(entries map[string]Canonical) *Table {
	t := &Table{entries: make(map[string]Canonical, len(entries))}
	for k, v := range entries {
		t.entries[k] = v
	}
	return t
}

// Lookup returns the canonical pair for an exact raw label.
func (t *Table) Lookup(label string) (Canonical, bool) {
	c, ok := t.entries[label]
	return c, ok
}

// Len returns the number of known labels.
func (t *Table) Len() int {
	return len(t.entries)
}

// Labels returns every known raw label, unordered.
func (t *Table) Labels() []string {
	labels := make([]string, 0, len(t.entries))
	for k := range t.entries {
		labels = append(labels, k)
	}
	return labels
}

// DefaultTable returns the table of GSMArena field labels. Several labels
// collapse onto one canonical pair on purpose.
func DefaultTable() *Table {
	return NewTable(defaultEntries())
}

func defaultEntries() map[string]Canonical {
	c := func(g domain.Group, name string) Canonical {
		return Canonical{Group: g, Name: name}
	}

	return map[string]Canonical{
		// Network
		"Technology": c(domain.GroupNetwork, domain.NameNetworkTechnology),
		"Network":    c(domain.GroupNetwork, domain.NameNetworkTechnology),
		"2G bands":   c(domain.GroupNetwork, "2G Bands"),
		"3G bands":   c(domain.GroupNetwork, "3G Bands"),
		"4G bands":   c(domain.GroupNetwork, "4G Bands"),
		"5G bands":   c(domain.GroupNetwork, "5G Bands"),
		"Speed":      c(domain.GroupNetwork, "Network Speed"),

		// Launch
		"Announced":    c(domain.GroupLaunch, "Announced"),
		"Status":       c(domain.GroupLaunch, "Status"),
		"Release date": c(domain.GroupLaunch, "Release Date"),

		// Body
		"Dimensions": c(domain.GroupDesign, "Dimensions"),
		"Weight":     c(domain.GroupDesign, "Weight"),
		"Build":      c(domain.GroupDesign, "Build"),
		"SIM":        c(domain.GroupDesign, "SIM"),
		"Colors":     c(domain.GroupDesign, "Colors"),
		"Models":     c(domain.GroupDesign, "Models"),

		// Display
		"Type":       c(domain.GroupDisplay, "Display Type"),
		"Size":       c(domain.GroupDisplay, "Display Size"),
		"Resolution": c(domain.GroupDisplay, "Resolution"),
		"Protection": c(domain.GroupDisplay, "Protection"),

		// Platform
		"OS":      c(domain.GroupPlatform, "Operating System"),
		"Chipset": c(domain.GroupPerformance, domain.NameProcessor),
		"CPU":     c(domain.GroupPerformance, "CPU"),
		"GPU":     c(domain.GroupPerformance, "GPU"),

		// Memory
		"Card slot": c(domain.GroupPerformance, "Card Slot"),
		"Internal":  c(domain.GroupPerformance, domain.NameStorage),
		"Storage":   c(domain.GroupPerformance, domain.NameStorage),
		"RAM":       c(domain.GroupPerformance, domain.NameRAM),

		// Cameras
		"Main Camera":   c(domain.GroupCamera, domain.NameMainCamera),
		"Single":        c(domain.GroupCamera, domain.NameFrontCamera),
		"Dual":          c(domain.GroupCamera, domain.NameMainCamera),
		"Triple":        c(domain.GroupCamera, domain.NameMainCamera),
		"Quad":          c(domain.GroupCamera, domain.NameMainCamera),
		"Selfie camera": c(domain.GroupCamera, domain.NameFrontCamera),
		"Front Camera":  c(domain.GroupCamera, domain.NameFrontCamera),
		"Features":      c(domain.GroupCamera, "Camera Features"),
		"Video":         c(domain.GroupCamera, "Video"),

		// Sound
		"Loudspeaker": c(domain.GroupAudio, "Loudspeaker"),
		"3.5mm jack":  c(domain.GroupAudio, "3.5mm Jack"),

		// Comms
		"WLAN":          c(domain.GroupConnectivity, "WiFi"),
		"Bluetooth":     c(domain.GroupConnectivity, "Bluetooth"),
		"Positioning":   c(domain.GroupConnectivity, "GPS"),
		"GPS":           c(domain.GroupConnectivity, "GPS"),
		"NFC":           c(domain.GroupConnectivity, "NFC"),
		"Infrared port": c(domain.GroupConnectivity, "Infrared"),
		"Radio":         c(domain.GroupConnectivity, "Radio"),
		"USB":           c(domain.GroupConnectivity, "USB"),

		// Features
		"Sensors": c(domain.GroupFeatures, "Sensors"),

		// Battery
		"Capacity":  c(domain.GroupBattery, domain.NameBatteryCapacity),
		"Charging":  c(domain.GroupBattery, "Charging"),
		"Stand-by":  c(domain.GroupBattery, "Standby Time"),
		"Talk time": c(domain.GroupBattery, "Talk Time"),

		// Misc
		"SAR":    c(domain.GroupSafety, "SAR"),
		"SAR EU": c(domain.GroupSafety, "SAR EU"),
		"Price":  c(domain.GroupPricing, domain.NamePrice),

		// Tests
		"Performance":   c(domain.GroupTests, "Benchmark"),
		"Display":       c(domain.GroupTests, "Display Test"),
		"Camera":        c(domain.GroupTests, "Camera Test"),
		"Audio quality": c(domain.GroupTests, "Audio Quality"),
		"Battery life":  c(domain.GroupTests, "Battery Life"),
		"Endurance":     c(domain.GroupTests, "Battery Life"),
	}
}
