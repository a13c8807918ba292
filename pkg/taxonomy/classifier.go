package taxonomy

import (
	"strings"

	domain "github.com/donaldgifford/phone-spec-scraper/pkg/types"
)

// Rule maps a lower-cased label to a canonical pair when Match returns true.
type Rule struct {
	Name      string
	Match     func(label string) bool
	Canonical Canonical
}

// Classifier resolves unknown labels with an ordered rule list. The first
// matching rule wins, so qualified rules must come before generic ones.
type Classifier struct {
	rules []Rule
}

// NewClassifier creates a Classifier over rules. The slice is copied.
func NewClassifier(rules []Rule) *Classifier {
	return &Classifier{rules: append([]Rule(nil), rules...)}
}

// DefaultClassifier returns a Classifier with DefaultRules.
func DefaultClassifier() *Classifier {
	return NewClassifier(DefaultRules())
}

// Classify returns the canonical pair of the first rule matching label.
func (c *Classifier) Classify(label string) (Canonical, bool) {
	lower := strings.ToLower(strings.TrimSpace(label))
	if lower == "" {
		return Canonical{}, false
	}
	for _, r := range c.rules {
		if r.Match(lower) {
			return r.Canonical, true
		}
	}
	return Canonical{}, false
}

// Rules returns a copy of the rule list in evaluation order.
func (c *Classifier) Rules() []Rule {
	return append([]Rule(nil), c.rules...)
}

func has(subs ...string) func(string) bool {
	return func(s string) bool {
		for _, sub := range subs {
			if strings.Contains(s, sub) {
				return true
			}
		}
		return false
	}
}

// word matches whole words only, for keywords short enough to appear inside
// other words ("ram" in "frame", "os" in "position").
func word(words ...string) func(string) bool {
	return func(s string) bool {
		fields := strings.FieldsFunc(s, func(r rune) bool {
			return (r < 'a' || r > 'z') && (r < '0' || r > '9')
		})
		for _, f := range fields {
			for _, w := range words {
				if f == w {
					return true
				}
			}
		}
		return false
	}
}

func all(preds ...func(string) bool) func(string) bool {
	return func(s string) bool {
		for _, p := range preds {
			if !p(s) {
				return false
			}
		}
		return true
	}
}

func rule(name string, match func(string) bool, g domain.Group, canonical string) Rule {
	return Rule{Name: name, Match: match, Canonical: Canonical{Group: g, Name: canonical}}
}

// DefaultRules returns the keyword rules in evaluation order.
func DefaultRules() []Rule {
	return []Rule{
		// Battery
		rule("battery capacity", all(has("battery"), has("capacity")),
			domain.GroupBattery, domain.NameBatteryCapacity),
		rule("mah capacity", word("mah"), domain.GroupBattery, domain.NameBatteryCapacity),
		rule("charging", has("charging", "charge", "wireless power"), domain.GroupBattery, "Charging"),
		rule("battery", has("battery"), domain.GroupBattery, "Battery Type"),

		// Cameras
		rule("main camera", all(has("camera"), has("main", "back", "rear", "primary")),
			domain.GroupCamera, domain.NameMainCamera),
		rule("front camera", all(has("camera"), has("front", "selfie")),
			domain.GroupCamera, domain.NameFrontCamera),
		rule("selfie", has("selfie"), domain.GroupCamera, domain.NameFrontCamera),
		rule("video", has("video"), domain.GroupCamera, "Video"),
		rule("camera", has("camera", "lens"), domain.GroupCamera, "Camera Features"),

		// Display
		rule("display size", all(has("display", "screen"), has("size", "diagonal")),
			domain.GroupDisplay, "Display Size"),
		rule("refresh rate", has("refresh", "hz"), domain.GroupDisplay, "Refresh Rate"),
		rule("resolution", has("resolution", "pixel density", "ppi"), domain.GroupDisplay, "Resolution"),
		rule("protection", has("gorilla", "glass protection"), domain.GroupDisplay, "Protection"),
		rule("display", has("display", "screen", "panel"), domain.GroupDisplay, "Display Type"),

		// Platform and memory
		rule("processor", has("processor", "chipset", "soc"), domain.GroupPerformance, domain.NameProcessor),
		rule("cpu", word("cpu", "cores"), domain.GroupPerformance, "CPU"),
		rule("gpu", has("gpu", "graphics"), domain.GroupPerformance, "GPU"),
		// sim precedes card slot so "SIM card" stays a body fact
		rule("sim", word("sim", "esim", "sims"), domain.GroupDesign, "SIM"),
		rule("card slot", either(has("card"), all(has("memory"), has("expand"))),
			domain.GroupPerformance, "Card Slot"),
		rule("ram", either(word("ram"), has("memory")), domain.GroupPerformance, domain.NameRAM),
		rule("storage", either(has("storage", "internal"), word("rom")),
			domain.GroupPerformance, domain.NameStorage),
		rule("operating system", either(has("operating system", "android", "firmware"), word("os", "ios")),
			domain.GroupPlatform, "Operating System"),

		// Comms
		rule("wifi", has("wifi", "wi-fi", "wlan", "wireless lan"), domain.GroupConnectivity, "WiFi"),
		rule("bluetooth", has("bluetooth"), domain.GroupConnectivity, "Bluetooth"),
		rule("gps", either(has("positioning", "navigation", "glonass", "galileo"), word("gps")),
			domain.GroupConnectivity, "GPS"),
		rule("nfc", word("nfc"), domain.GroupConnectivity, "NFC"),
		rule("usb", either(word("usb"), has("type-c", "lightning", "connector")),
			domain.GroupConnectivity, "USB"),
		rule("infrared", has("infrared"), domain.GroupConnectivity, "Infrared"),
		rule("radio", has("radio"), domain.GroupConnectivity, "Radio"),

		// Sound
		rule("headphone jack", has("jack", "headphone"), domain.GroupAudio, "3.5mm Jack"),
		rule("loudspeaker", has("speaker", "audio", "sound"), domain.GroupAudio, "Loudspeaker"),

		// Body
		rule("weight", has("weight"), domain.GroupDesign, "Weight"),
		rule("dimensions", has("dimension", "thickness", "height", "width"), domain.GroupDesign, "Dimensions"),
		rule("build", has("build", "material", "frame"), domain.GroupDesign, "Build"),
		rule("colors", has("color", "colour"), domain.GroupDesign, "Colors"),
		rule("water resistance", either(has("water", "dust"), word("ip67", "ip68")),
			domain.GroupDesign, "Water Resistance"),

		// Features and misc
		rule("sensors", has("sensor", "fingerprint", "face id"), domain.GroupFeatures, "Sensors"),
		rule("sar", word("sar"), domain.GroupSafety, "SAR"),
		rule("price", has("price", "cost", "msrp"), domain.GroupPricing, domain.NamePrice),
		rule("release date", has("release"), domain.GroupLaunch, "Release Date"),
		rule("announced", has("announce", "launch"), domain.GroupLaunch, "Announced"),
		rule("network bands", has("band"), domain.GroupNetwork, "Bands"),
		rule("network technology", either(has("network", "technology", "cellular"), word("lte", "5g")),
			domain.GroupNetwork, domain.NameNetworkTechnology),
	}
}

func either(a, b func(string) bool) func(string) bool {
	return func(s string) bool {
		return a(s) || b(s)
	}
}
