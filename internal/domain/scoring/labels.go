package scoring

// CategoryLabels are the names shown to jurors and on exports.
var CategoryLabels = map[Category]string{
	CategoryInnovation:   "Innovation",
	CategoryTechnical:    "Feasibility",
	CategoryPresentation: "Statistics",
	CategoryImpact:       "Revenue",
}

func Label(c Category) string {
	if label, ok := CategoryLabels[c]; ok {
		return label
	}
	return string(c)
}
