package report

// Labels are the fixed strings of a reorder report.
type Labels struct {
	// Tag is the BCP 47 tag pages declare in their lang attribute.
	Tag         string
	Title       string
	Generated   string
	Unspecified string
	Current     string
	Threshold   string
}

// English is the default label set.
var English = Labels{
	Tag:         "en",
	Title:       "Reorder list (auto)",
	Generated:   "Generated",
	Unspecified: "unspecified",
	Current:     "current",
	Threshold:   "threshold",
}

// Korean matches the wording staff already paste into the ordering chat.
var Korean = Labels{
	Tag:         "ko",
	Title:       "발주 리스트 (자동)",
	Generated:   "생성",
	Unspecified: "미지정",
	Current:     "현재",
	Threshold:   "기준",
}

// LabelsFor returns the label set for a language tag, defaulting to English.
func LabelsFor(lang string) Labels {
	switch lang {
	case "ko", "ko-KR":
		return Korean
	default:
		return English
	}
}

func (l Labels) orDefault() Labels {
	if l.Title == "" {
		return English
	}
	return l
}
