package domain

// InputType describes how an answer to a question should be collected.
type InputType string

const (
	InputText         InputType = "text"
	InputSingleSelect InputType = "single-select"
	InputMultiSelect  InputType = "multi-select"
)

// ValidInputTypes is the canonical set of accepted input type strings.
var ValidInputTypes = map[string]bool{
	"text": true, "single-select": true, "multi-select": true,
}

// WantsOptions reports whether questions of this input type carry an
// options list. Text questions never do; both select types always do.
func (t InputType) WantsOptions() bool {
	return t == InputSingleSelect || t == InputMultiSelect
}

// Category classifies a daily activity.
type Category string

const (
	CategorySelfCare     Category = "self-care"
	CategoryConnection   Category = "connection"
	CategoryDecluttering Category = "decluttering"
	CategoryGiving       Category = "giving"
	CategoryNature       Category = "nature"
	CategoryReflection   Category = "reflection"
	CategoryCooking      Category = "cooking"
	CategoryDIY          Category = "diy"
)

// ValidCategories is the canonical set of accepted category strings.
var ValidCategories = map[string]bool{
	"self-care": true, "connection": true, "decluttering": true,
	"giving": true, "nature": true, "reflection": true,
	"cooking": true, "diy": true,
}

// categoryLabels maps categories to their display names.
var categoryLabels = map[Category]string{
	CategorySelfCare:     "Self-care",
	CategoryConnection:   "Connection",
	CategoryDecluttering: "Decluttering",
	CategoryGiving:       "Giving",
	CategoryNature:       "Nature",
	CategoryReflection:   "Reflection",
	CategoryCooking:      "Cooking",
	CategoryDIY:          "DIY",
}

// Label returns the human-readable display name for the category.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}
