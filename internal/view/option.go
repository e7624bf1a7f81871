package view

import (
	"strconv"
	"strings"

	"github.com/meur/rulesview/internal/models"
)

// InvalidOption is returned for a nil regiment option
const InvalidOption = "Invalid option"

// FormatOption renders one regiment option, e.g. "Any non-Hero Infantry" or
// "0-1 Lord-Veritant or Knight-Vexillor"
func FormatOption(opt *models.RegimentOption) string {
	if opt == nil {
		return InvalidOption
	}
	return optionAmount(opt) + " " + strings.Join(optionDescriptions(opt), " or ")
}

// FormatOptionList formats each option in order
func FormatOptionList(opts []*models.RegimentOption) []string {
	lines := make([]string, 0, len(opts))
	for _, opt := range opts {
		lines = append(lines, FormatOption(opt))
	}
	return lines
}

func optionAmount(opt *models.RegimentOption) string {
	switch {
	case opt.Max == models.Unlimited:
		return "Any"
	case opt.Min == opt.Max:
		return strconv.Itoa(opt.Min)
	default:
		return strconv.Itoa(opt.Min) + "-" + strconv.Itoa(opt.Max)
	}
}

func optionDescriptions(opt *models.RegimentOption) []string {
	var descriptions []string

	if len(opt.Keywords) > 0 {
		words := make([]string, 0, len(opt.NonKeywords)+len(opt.Keywords))
		for _, kw := range opt.NonKeywords {
			words = append(words, "non-"+kw)
		}
		words = append(words, opt.Keywords...)
		descriptions = append(descriptions, strings.Join(words, " "))
	}

	descriptions = append(descriptions, opt.SubheroCategories...)
	descriptions = append(descriptions, opt.UnitNames...)
	return descriptions
}
