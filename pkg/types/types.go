// Package domain defines the core types for the phone spec scraper.
package domain

import (
	"strings"
	"time"
)

// Group is the top-level category a specification belongs to.
type Group string

// Group constants. The taxonomy is fixed.
const (
	GroupNetwork      Group = "Network"
	GroupLaunch       Group = "Launch"
	GroupDesign       Group = "Design"
	GroupDisplay      Group = "Display"
	GroupPlatform     Group = "Platform"
	GroupPerformance  Group = "Performance"
	GroupCamera       Group = "Camera"
	GroupAudio        Group = "Audio"
	GroupConnectivity Group = "Connectivity"
	GroupFeatures     Group = "Features"
	GroupBattery      Group = "Battery"
	GroupTests        Group = "Tests"
	GroupSafety       Group = "Safety"
	GroupOther        Group = "Other"

	// GroupPricing is never part of a result. It exists so price rows can
	// be recognised and dropped.
	GroupPricing Group = "Pricing"
)

// Groups returns the fixed taxonomy in display order.
func Groups() []Group {
	return []Group{
		GroupNetwork, GroupLaunch, GroupDesign, GroupDisplay, GroupPlatform,
		GroupPerformance, GroupCamera, GroupAudio, GroupConnectivity,
		GroupFeatures, GroupBattery, GroupTests, GroupSafety, GroupOther,
	}
}

// Canonical spec names referenced outside the mapping table.
const (
	NameNetworkTechnology = "Network Technology"
	NameBatteryCapacity   = "Battery Capacity"
	NameMainCamera        = "Main Camera"
	NameFrontCamera       = "Front Camera"
	NameRAM               = "RAM"
	NameStorage           = "Storage"
	NameProcessor         = "Processor"
	NamePrice             = "Price"
)

// NotFound is the placeholder value for a key spec with no source spec.
const NotFound = "Not found"

// RawField is a single label/value pair as it appears in a source table.
// TableIndex is the ordinal of the containing table on the page.
type RawField struct {
	Label      string
	Value      string
	TableIndex int
}

// CanonicalSpec is a normalized specification in the fixed taxonomy.
type CanonicalSpec struct {
	Group     Group  `json:"group"     example:"Display"`
	Name      string `json:"name"      example:"Display Size"`
	Value     string `json:"value"     example:"6.3 inches, 96.2 cm2"`
	SortOrder int    `json:"sortOrder" example:"0"`
}

// Key returns the (group, name) dedup key.
func (s CanonicalSpec) Key() string {
	return string(s.Group) + "\x00" + s.Name
}

// Excluded reports whether a spec must never appear in a result: price data
// of any kind, and any Network fact other than the network technology.
func (s CanonicalSpec) Excluded() bool {
	if s.Group == GroupPricing || strings.EqualFold(s.Name, NamePrice) {
		return true
	}
	return s.Group == GroupNetwork && s.Name != NameNetworkTechnology
}

// KeySpec is a highlighted specification derived from the spec list.
type KeySpec struct {
	Icon      string `json:"icon"      example:"cpu"`
	Title     string `json:"title"     example:"Processor"`
	Value     string `json:"value"     example:"Apple A18 Pro (3 nm)"`
	SortOrder int    `json:"sortOrder" example:"1"`
}

// ExtractionResult is the normalized record produced from one product page.
type ExtractionResult struct {
	Name              string          `json:"name"              example:"Apple iPhone 16 Pro"`
	SourceURL         string          `json:"sourceUrl"         example:"https://www.gsmarena.com/apple_iphone_16_pro-13315.php"`
	Specifications    []CanonicalSpec `json:"specifications"`
	KeySpecifications []KeySpec       `json:"keySpecifications"`
	Variants          []string        `json:"variants"`
	Colors            []string        `json:"colors"`
	TotalSpecs        int             `json:"totalSpecs"`
}

// ReconciledResult has the same shape as ExtractionResult but was produced
// by the completion service and re-filtered.
type ReconciledResult ExtractionResult

// SearchCandidate is a product link found on a search results page.
type SearchCandidate struct {
	Name    string `json:"name"    example:"Apple iPhone 16 Pro"`
	URL     string `json:"url"     example:"https://www.gsmarena.com/apple_iphone_16_pro-13315.php"`
	Snippet string `json:"snippet" example:"Apple iPhone 16 Pro smartphone. Announced Sep 2024."`
}

// SpecSheet is a persisted extraction or reconciliation result.
type SpecSheet struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	SourceURL         string          `json:"sourceUrl"`
	Specifications    []CanonicalSpec `json:"specifications"`
	KeySpecifications []KeySpec       `json:"keySpecifications"`
	Variants          []string        `json:"variants"`
	Colors            []string        `json:"colors"`
	TotalSpecs        int             `json:"totalSpecs"`
	Reconciled        bool            `json:"reconciled"`
	LastError         string          `json:"lastError,omitempty"`
	LastCheckedAt     *time.Time      `json:"lastCheckedAt,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// JobRun records a single execution of a scheduled job.
type JobRun struct {
	ID           string     `json:"id"`
	JobName      string     `json:"jobName"`
	StartedAt    time.Time  `json:"startedAt"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
	Status       string     `json:"status"`
	ErrorText    string     `json:"errorText,omitempty"`
	RowsAffected *int       `json:"rowsAffected,omitempty"`
}

// SheetFromResult builds an unsaved SpecSheet from an extraction result.
func SheetFromResult(r *ExtractionResult, reconciled bool) *SpecSheet {
	return &SpecSheet{
		Name:              r.Name,
		SourceURL:         r.SourceURL,
		Specifications:    r.Specifications,
		KeySpecifications: r.KeySpecifications,
		Variants:          r.Variants,
		Colors:            r.Colors,
		TotalSpecs:        r.TotalSpecs,
		Reconciled:        reconciled,
	}
}

// Result returns the sheet's data in ExtractionResult form.
func (s *SpecSheet) Result() *ExtractionResult {
	return &ExtractionResult{
		Name:              s.Name,
		SourceURL:         s.SourceURL,
		Specifications:    s.Specifications,
		KeySpecifications: s.KeySpecifications,
		Variants:          s.Variants,
		Colors:            s.Colors,
		TotalSpecs:        s.TotalSpecs,
	}
}
